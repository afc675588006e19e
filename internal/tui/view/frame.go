package view

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	tuitheme "github.com/glabrego/webterm/internal/tui/theme"
)

const ellipsis = "…"

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// sanitize makes page-supplied text safe to paint: escape sequences are
// dropped and any remaining control rune becomes a space.
func sanitize(s string) string {
	s = ansi.Strip(lineBreaks.Replace(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// RenderRows paints rows with the theme, each exactly width cells wide.
func RenderRows(rows []Row, width int, th tuitheme.Theme) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		text := fitText(sanitize(row.Text), width)
		var styled string
		switch row.Kind {
		case RowLink:
			styled = th.RenderLink(false, text)
		case RowSelected:
			styled = th.RenderLink(true, text)
		default:
			if text != "" {
				styled = th.Text.Render(text)
			}
		}
		out = append(out, padRight(styled, width))
	}
	return out
}

// Frame draws body inside a bordered box of the given outer width with the
// title set into the top edge. Body rows past height are dropped and
// missing rows are blank.
func Frame(title string, body []string, width, height int, th tuitheme.Theme) string {
	if width < 2 {
		return ""
	}
	border := lipgloss.NormalBorder()
	inner := width - 2

	var b strings.Builder
	titleText := fitText(sanitize(title), inner)
	b.WriteString(th.Border.Render(border.TopLeft))
	if titleText != "" {
		b.WriteString(th.Title.Render(titleText))
	}
	b.WriteString(th.Border.Render(strings.Repeat(border.Top, inner-lipgloss.Width(titleText)) + border.TopRight))

	blank := strings.Repeat(" ", inner)
	for i := 0; i < height; i++ {
		line := blank
		if i < len(body) {
			line = padRight(body[i], inner)
		}
		b.WriteString("\n")
		b.WriteString(th.Border.Render(border.Left))
		b.WriteString(line)
		b.WriteString(th.Border.Render(border.Right))
	}

	b.WriteString("\n")
	b.WriteString(th.Border.Render(border.BottomLeft + strings.Repeat(border.Bottom, inner) + border.BottomRight))
	return b.String()
}

func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
