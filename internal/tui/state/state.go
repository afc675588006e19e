package state

import "math"

// NoSelection marks a navigation state with no link selected.
const NoSelection = -1

// ScrollStep is the distance covered by page up/down.
const ScrollStep = 10

// Navigation is the per-page selection and scroll position.
type Navigation struct {
	Selected int
	Scroll   int
}

func NewNavigation() Navigation {
	return Navigation{Selected: NoSelection}
}

func (n Navigation) HasSelection() bool {
	return n.Selected != NoSelection
}

// CycleForward advances the selection through linkCount links, wrapping to
// the first link. It is a no-op without links.
func (n *Navigation) CycleForward(linkCount int) {
	if linkCount <= 0 {
		return
	}
	if n.Selected < 0 || n.Selected >= linkCount {
		n.Selected = 0
		return
	}
	n.Selected = (n.Selected + 1) % linkCount
}

func (n *Navigation) CycleBackward(linkCount int) {
	if linkCount <= 0 {
		return
	}
	if n.Selected <= 0 || n.Selected >= linkCount {
		n.Selected = linkCount - 1
		return
	}
	n.Selected--
}

func (n *Navigation) ScrollBy(delta int) {
	n.Scroll = SaturatingAdd(n.Scroll, delta)
}

func (n *Navigation) Reset() {
	n.Selected = NoSelection
	n.Scroll = 0
}

// SaturatingAdd adds delta to a non-negative offset without leaving
// [0, math.MaxInt].
func SaturatingAdd(offset, delta int) int {
	if offset < 0 {
		offset = 0
	}
	if delta > 0 && offset > math.MaxInt-delta {
		return math.MaxInt
	}
	offset += delta
	if offset < 0 {
		return 0
	}
	return offset
}

// MaxScroll is the largest offset that still fills a viewport of height
// rows.
func MaxScroll(totalLines, height int) int {
	if height < 0 {
		height = 0
	}
	if totalLines <= height {
		return 0
	}
	return totalLines - height
}

func ClampScroll(offset, totalLines, height int) int {
	if offset < 0 {
		return 0
	}
	if maxScroll := MaxScroll(totalLines, height); offset > maxScroll {
		return maxScroll
	}
	return offset
}
