package view

import (
	"github.com/glabrego/webterm/internal/render/page"
	"github.com/glabrego/webterm/internal/tui/state"
)

type RowKind int

const (
	RowPlain RowKind = iota
	RowLink
	RowSelected
)

// Row is one projected line ready to be painted.
type Row struct {
	Text string
	Kind RowKind
}

// Project cuts the window of lines visible in a viewport of height rows
// starting at scroll. The offset is clamped to the content first and
// returned so the caller can store it. A linked line whose index equals
// selected is marked as the selection.
func Project(lines []page.Line, selected, height, scroll int) ([]Row, int) {
	if height < 0 {
		height = 0
	}
	offset := state.ClampScroll(scroll, len(lines), height)
	count := min(height, len(lines)-offset)

	rows := make([]Row, 0, count)
	for _, line := range lines[offset : offset+count] {
		row := Row{Text: line.Text, Kind: RowPlain}
		if idx, ok := line.LinkIndex(); ok {
			row.Kind = RowLink
			if idx == selected {
				row.Kind = RowSelected
			}
		}
		rows = append(rows, row)
	}
	return rows, offset
}
