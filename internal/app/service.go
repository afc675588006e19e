package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/glabrego/webterm/internal/render/page"
)

// Fetcher returns the raw body of the document at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Page is the flattened content of one loaded address. It is replaced as a
// whole on every navigation.
type Page struct {
	URL   string
	Links page.Links
	Lines []page.Line
}

// ErrorPage is the link-free page shown when loading url failed.
func ErrorPage(url string, err error) Page {
	return Page{
		URL:   url,
		Lines: []page.Line{page.PlainLine(ErrorMessage(err))},
	}
}

func ErrorMessage(err error) string {
	var addrErr *page.AddressError
	if errors.As(err, &addrErr) {
		return fmt.Sprintf("Error parsing URL: %v", err)
	}
	return fmt.Sprintf("Error fetching URL: %v", err)
}

type Service struct {
	fetcher Fetcher
}

func NewService(fetcher Fetcher) *Service {
	return &Service{fetcher: fetcher}
}

// Load fetches url, parses the body and flattens it against url as base.
func (s *Service) Load(ctx context.Context, url string) (Page, error) {
	base, err := page.ParseAddress(url)
	if err != nil {
		return Page{}, err
	}

	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return Page{}, fmt.Errorf("fetch document: %w", err)
	}

	root, err := page.ParseDocument(bytes.NewReader(body))
	if err != nil {
		return Page{}, fmt.Errorf("parse document: %w", err)
	}

	links, lines := page.Flatten(root, base)
	return Page{URL: url, Links: links, Lines: lines}, nil
}
