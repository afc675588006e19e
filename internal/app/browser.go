package app

import (
	"context"
	"log"
	"time"

	"github.com/glabrego/webterm/internal/render/page"
	"github.com/glabrego/webterm/internal/tui/state"
)

// Loader produces the page for an address.
type Loader interface {
	Load(ctx context.Context, url string) (Page, error)
}

// Browser is the navigation state machine. It holds exactly one page and
// its navigation state; every transition leaves it idle again.
type Browser struct {
	loader Loader
	page   Page
	nav    state.Navigation
	nowFn  func() time.Time
}

func NewBrowser(loader Loader) *Browser {
	return &Browser{
		loader: loader,
		nav:    state.NewNavigation(),
		nowFn:  time.Now,
	}
}

func (b *Browser) Page() Page {
	return b.page
}

func (b *Browser) Navigation() state.Navigation {
	return b.nav
}

// SetURL loads url unless it is already the current page. Failures become
// an error page; they never leave this method. Reports whether a load was
// attempted.
func (b *Browser) SetURL(ctx context.Context, url string) bool {
	if url == b.page.URL {
		return false
	}

	start := b.nowFn()
	next, err := b.loader.Load(ctx, url)
	if err != nil {
		next = ErrorPage(url, err)
	}
	next.URL = url
	log.Printf("[nav] load %s (duration=%s, links=%d, lines=%d, err=%v)",
		url, b.nowFn().Sub(start), len(next.Links), len(next.Lines), err)

	b.page = next
	b.nav.Reset()
	return true
}

func (b *Browser) CycleLinkForward() {
	b.nav.CycleForward(len(b.page.Links))
}

func (b *Browser) CycleLinkBackward() {
	b.nav.CycleBackward(len(b.page.Links))
}

func (b *Browser) SelectedLink() (page.Link, bool) {
	if !b.nav.HasSelection() {
		return page.Link{}, false
	}
	return b.page.Links.Get(b.nav.Selected)
}

// ActivateSelection follows the selected link, if any.
func (b *Browser) ActivateSelection(ctx context.Context) bool {
	link, ok := b.SelectedLink()
	if !ok {
		return false
	}
	return b.SetURL(ctx, link.Target)
}

func (b *Browser) ScrollBy(delta int) {
	b.nav.ScrollBy(delta)
}

// ClampScroll pins the stored offset to what a viewport of height rows can
// show and returns it.
func (b *Browser) ClampScroll(height int) int {
	b.nav.Scroll = state.ClampScroll(b.nav.Scroll, len(b.page.Lines), height)
	return b.nav.Scroll
}
