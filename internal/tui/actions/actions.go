package actions

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/webterm/internal/tui/state"
)

type Action int

const (
	None Action = iota
	Quit
	CycleForward
	CycleBackward
	Activate
	ScrollDown
	ScrollUp
	PageDown
	PageUp
	CopyURL
	OpenURL
)

type KeyMap struct {
	Quit          key.Binding
	CycleForward  key.Binding
	CycleBackward key.Binding
	Activate      key.Binding
	ScrollDown    key.Binding
	ScrollUp      key.Binding
	PageDown      key.Binding
	PageUp        key.Binding
	CopyURL       key.Binding
	OpenURL       key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		CycleForward: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next link"),
		),
		CycleBackward: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous link"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "follow link"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "scroll down 10"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up 10"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy link URL"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open link externally"),
		),
	}
}

// Resolve maps a key press to the action bound to it.
func Resolve(msg tea.KeyMsg, km KeyMap) Action {
	switch {
	case key.Matches(msg, km.Quit):
		return Quit
	case key.Matches(msg, km.CycleForward):
		return CycleForward
	case key.Matches(msg, km.CycleBackward):
		return CycleBackward
	case key.Matches(msg, km.Activate):
		return Activate
	case key.Matches(msg, km.ScrollDown):
		return ScrollDown
	case key.Matches(msg, km.ScrollUp):
		return ScrollUp
	case key.Matches(msg, km.PageDown):
		return PageDown
	case key.Matches(msg, km.PageUp):
		return PageUp
	case key.Matches(msg, km.CopyURL):
		return CopyURL
	case key.Matches(msg, km.OpenURL):
		return OpenURL
	default:
		return None
	}
}

// Navigator is the set of transitions an action can drive.
type Navigator interface {
	CycleLinkForward()
	CycleLinkBackward()
	ActivateSelection(ctx context.Context) bool
	ScrollBy(delta int)
}

// Apply runs a navigation action against nav. Quit, copy and open are left
// to the caller. Reports whether a page load was attempted.
func Apply(ctx context.Context, nav Navigator, action Action) bool {
	switch action {
	case CycleForward:
		nav.CycleLinkForward()
	case CycleBackward:
		nav.CycleLinkBackward()
	case Activate:
		return nav.ActivateSelection(ctx)
	case ScrollDown:
		nav.ScrollBy(1)
	case ScrollUp:
		nav.ScrollBy(-1)
	case PageDown:
		nav.ScrollBy(state.ScrollStep)
	case PageUp:
		nav.ScrollBy(-state.ScrollStep)
	}
	return false
}
