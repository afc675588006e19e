package view

import tuitheme "github.com/glabrego/webterm/internal/tui/theme"

func Toolbar(width int) string {
	full := "tab/shift+tab: select link | enter: follow | up/down: scroll | pgup/pgdown: scroll 10 | y: copy URL | o: open externally | q: quit"
	if width <= 0 || len(full) <= width {
		return full
	}
	return "tab select | enter follow | ↑↓ pg scroll | y copy | o open | q quit"
}

// Footer shows the status message when there is one, the key help
// otherwise.
func Footer(status string, width int, th tuitheme.Theme) string {
	if status != "" {
		return th.Status.Render(fitText(sanitize(status), width))
	}
	return th.Help.Render(fitText(Toolbar(width), width))
}
