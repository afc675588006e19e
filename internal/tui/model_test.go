package tui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/webterm/internal/app"
)

var ansiScreenStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type fakeFetcher map[string]string

func (f fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	body, ok := f[url]
	if !ok {
		return nil, errors.New("connection refused")
	}
	return []byte(body), nil
}

func newTestModel(t *testing.T, width, height int) Model {
	t.Helper()
	var long strings.Builder
	for i := 0; i < 40; i++ {
		long.WriteString("<div>row</div>")
	}
	fetcher := fakeFetcher{
		"http://e.com/":     `<body><p>Hello <a href="/next">Next page</a> <a href="/gone">Gone</a></p></body>`,
		"http://e.com/next": `<body><p>Second page</p>` + long.String() + `</body>`,
	}
	browser := app.NewBrowser(app.NewService(fetcher))
	browser.SetURL(context.Background(), "http://e.com/")

	m := NewModel(browser, time.Second)
	m.openURLFn = func(string) error { return nil }
	m.copyURLFn = func(string) error { return nil }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func screen(m Model) string {
	return ansiScreenStrip.ReplaceAllString(m.View(), "")
}

func TestModelView_ShowsTitleLinesAndFooter(t *testing.T) {
	m := newTestModel(t, 140, 10)
	view := screen(m)
	lines := strings.Split(view, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 screen lines, got %d:\n%s", len(lines), view)
	}
	if !strings.HasPrefix(lines[0], "┌http://e.com/") {
		t.Fatalf("expected URL in title, got %q", lines[0])
	}
	for _, want := range []string{"Hello", "Next page", "Gone", "q: quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}
}

func TestModelUpdate_TabSelectsAndEnterFollows(t *testing.T) {
	m := newTestModel(t, 60, 10)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.browser.Navigation().Selected; got != 0 {
		t.Fatalf("expected first link selected, got %d", got)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := m.browser.Navigation().Selected; got != 0 {
		t.Fatalf("expected wrap back to first link, got %d", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.browser.Page().URL; got != "http://e.com/next" {
		t.Fatalf("expected navigation to /next, got %s", got)
	}
	if m.browser.Navigation().HasSelection() {
		t.Fatal("expected selection reset after navigation")
	}
	if !strings.Contains(screen(m), "Second page") {
		t.Fatalf("expected new page content, got:\n%s", screen(m))
	}
}

func TestModelUpdate_FollowingBrokenLinkShowsErrorPage(t *testing.T) {
	m := newTestModel(t, 80, 10)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	p := m.browser.Page()
	if p.URL != "http://e.com/gone" {
		t.Fatalf("unexpected URL: %s", p.URL)
	}
	if len(p.Links) != 0 || len(p.Lines) != 1 {
		t.Fatalf("expected one-line error page, got %+v", p)
	}
	if !strings.Contains(screen(m), "Error fetching URL") {
		t.Fatalf("expected error message on screen, got:\n%s", screen(m))
	}
}

func TestModelUpdate_ScrollIsClampedEveryUpdate(t *testing.T) {
	m := newTestModel(t, 60, 10)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	total := len(m.browser.Page().Lines)
	viewport := 10 - chromeRows

	for i := 0; i < 10; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	}
	if got, want := m.browser.Navigation().Scroll, total-viewport; got != want {
		t.Fatalf("expected scroll clamped to %d, got %d", want, got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got, want := m.browser.Navigation().Scroll, total-viewport-1; got != want {
		t.Fatalf("expected scroll %d after one line up, got %d", want, got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 200})
	m = updated.(Model)
	if got := m.browser.Navigation().Scroll; got != 0 {
		t.Fatalf("expected scroll reset by tall viewport, got %d", got)
	}

	for i := 0; i < 3; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	}
	if got := m.browser.Navigation().Scroll; got != 0 {
		t.Fatalf("expected saturating scroll at 0, got %d", got)
	}
}

func TestModelUpdate_QuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t, 60, 10)
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestModelUpdate_CopyAndOpenSelectedLink(t *testing.T) {
	m := newTestModel(t, 60, 10)
	var copied, opened string
	m.copyURLFn = func(url string) error { copied = url; return nil }
	m.openURLFn = func(url string) error { opened = url; return nil }

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if m.status != "No link selected" {
		t.Fatalf("unexpected status without selection: %q", m.status)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.status != "" {
		t.Fatalf("expected status cleared by next key, got %q", m.status)
	}
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if copied != "http://e.com/next" || m.status != "URL copied to clipboard" {
		t.Fatalf("unexpected copy result: copied=%q status=%q", copied, m.status)
	}

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	updated, _ = m.Update(cmd())
	m = updated.(Model)
	if opened != "http://e.com/next" || m.status != "Opened URL in browser" {
		t.Fatalf("unexpected open result: opened=%q status=%q", opened, m.status)
	}
	if !strings.Contains(screen(m), "Opened URL in browser") {
		t.Fatalf("expected status in footer, got:\n%s", screen(m))
	}
	if m.browser.Page().URL != "http://e.com/" {
		t.Fatalf("copy/open must not navigate, got %s", m.browser.Page().URL)
	}
}

func TestModelUpdate_CopyFailureIsReported(t *testing.T) {
	m := newTestModel(t, 60, 10)
	m.copyURLFn = func(string) error { return errors.New("no clipboard command available") }
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	if !strings.Contains(m.status, "Could not copy URL") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestModelView_FitsVeryShortTerminals(t *testing.T) {
	m := newTestModel(t, 40, 2)
	lines := strings.Split(screen(m), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 screen lines, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "Hello") || !strings.HasPrefix(lines[1], "Next page") {
		t.Fatalf("expected bare content rows, got %q", lines)
	}

	m = newTestModel(t, 40, 4)
	lines = strings.Split(screen(m), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected border, one row, border and footer, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasPrefix(lines[1], "│Hello") {
		t.Fatalf("unexpected framed view: %q", lines)
	}
}
