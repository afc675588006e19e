package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/webterm/internal/app"
	"github.com/glabrego/webterm/internal/platform"
	tuiactions "github.com/glabrego/webterm/internal/tui/actions"
	tuitheme "github.com/glabrego/webterm/internal/tui/theme"
	tuiview "github.com/glabrego/webterm/internal/tui/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// top border, bottom border, footer
	chromeRows = 3
)

type statusMsg struct {
	text string
}

type Model struct {
	browser   *app.Browser
	keys      tuiactions.KeyMap
	theme     tuitheme.Theme
	timeout   time.Duration
	width     int
	height    int
	status    string
	openURLFn func(string) error
	copyURLFn func(string) error
}

// NewModel wraps a browser whose first page has already been requested.
// Each navigation is bounded by timeout.
func NewModel(browser *app.Browser, timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return Model{
		browser:   browser,
		keys:      tuiactions.DefaultKeyMap(),
		theme:     tuitheme.Default(),
		timeout:   timeout,
		openURLFn: platform.OpenURLInBrowser,
		copyURLFn: platform.CopyToClipboard,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.browser.ClampScroll(m.viewportHeight())
		return m, nil
	case statusMsg:
		m.status = msg.text
		return m, nil
	case tea.KeyMsg:
		action := tuiactions.Resolve(msg, m.keys)
		m.status = ""
		switch action {
		case tuiactions.Quit:
			return m, tea.Quit
		case tuiactions.CopyURL:
			return m, m.withSelectedURL(func(url string) tea.Cmd {
				return copyURLCmd(url, m.copyURLFn)
			})
		case tuiactions.OpenURL:
			return m, m.withSelectedURL(func(url string) tea.Cmd {
				valid, err := platform.ValidateURL(url)
				if err != nil {
					return statusCmd(fmt.Sprintf("Cannot open link: %v", err))
				}
				return openURLCmd(valid, m.openURLFn)
			})
		}

		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		tuiactions.Apply(ctx, m.browser, action)
		cancel()
		m.browser.ClampScroll(m.viewportHeight())
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	width, _ := m.size()
	height := m.viewportHeight()
	p := m.browser.Page()
	nav := m.browser.Navigation()

	rows, _ := tuiview.Project(p.Lines, nav.Selected, height, nav.Scroll)
	if !m.framed() {
		return strings.Join(tuiview.RenderRows(rows, width, m.theme), "\n")
	}
	body := tuiview.RenderRows(rows, max(0, width-2), m.theme)

	var b strings.Builder
	b.WriteString(tuiview.Frame(p.URL, body, width, height, m.theme))
	b.WriteString("\n")
	b.WriteString(tuiview.Footer(m.status, width, m.theme))
	return b.String()
}

func (m Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// framed reports whether the terminal is tall enough for the border and
// footer around at least one content row.
func (m Model) framed() bool {
	_, height := m.size()
	return height > chromeRows
}

func (m Model) viewportHeight() int {
	_, height := m.size()
	if !m.framed() {
		return height
	}
	return height - chromeRows
}

func (m Model) withSelectedURL(build func(string) tea.Cmd) tea.Cmd {
	link, ok := m.browser.SelectedLink()
	if !ok {
		return statusCmd("No link selected")
	}
	return build(link.Target)
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func openURLCmd(url string, openFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn == nil {
			return statusMsg{text: "Opening links is not available"}
		}
		if err := openFn(url); err != nil {
			return statusMsg{text: fmt.Sprintf("Could not open URL: %v", err)}
		}
		return statusMsg{text: "Opened URL in browser"}
	}
}

func copyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn == nil {
			return statusMsg{text: "Clipboard is not available"}
		}
		if err := copyFn(url); err != nil {
			return statusMsg{text: fmt.Sprintf("Could not copy URL: %v", err)}
		}
		return statusMsg{text: "URL copied to clipboard"}
	}
}
