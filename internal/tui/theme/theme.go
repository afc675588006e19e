package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Border       lipgloss.Style
	Title        lipgloss.Style
	Text         lipgloss.Style
	Link         lipgloss.Style
	SelectedLink lipgloss.Style
	Help         lipgloss.Style
	Status       lipgloss.Style
}

func Default() Theme {
	cpBase := lipgloss.Color("#1e1e2e")
	cpMauve := lipgloss.Color("#cba6f7")
	cpBlue := lipgloss.Color("#89b4fa")
	cpPeach := lipgloss.Color("#fab387")
	cpText := lipgloss.Color("#cdd6f4")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface2 := lipgloss.Color("#585b70")

	return Theme{
		Border:       lipgloss.NewStyle().Foreground(cpSurface2),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Text:         lipgloss.NewStyle().Foreground(cpText),
		Link:         lipgloss.NewStyle().Underline(true).Foreground(cpBlue),
		SelectedLink: lipgloss.NewStyle().Bold(true).Foreground(cpBase).Background(cpBlue),
		Help:         lipgloss.NewStyle().Foreground(cpOverlay1),
		Status:       lipgloss.NewStyle().Foreground(cpPeach),
	}
}

func (t Theme) RenderLink(selected bool, label string) string {
	if label == "" {
		return label
	}
	if selected {
		return t.SelectedLink.Render(label)
	}
	return t.Link.Render(label)
}
