package page

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	nethtml "golang.org/x/net/html"
)

// AddressError reports a document or link address that cannot be used as a
// base for resolution.
type AddressError struct {
	Address string
	Err     error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %v", e.Address, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }

type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse document: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNotAbsolute = errors.New("address is not absolute")
	errMissingHost = errors.New("address has no host")
)

// ParseDocument parses raw markup and returns its body element. A document
// without a body yields a nil node and no error.
func ParseDocument(r io.Reader) (*nethtml.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, nil
	}
	return body.Get(0), nil
}

func ParseAddress(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, &AddressError{Address: raw, Err: err}
	}
	if !u.IsAbs() {
		return nil, &AddressError{Address: raw, Err: errNotAbsolute}
	}
	if u.Host == "" {
		return nil, &AddressError{Address: raw, Err: errMissingHost}
	}
	return u, nil
}

// ResolveLink joins href against base. Absolute hrefs pass through, and an
// href that cannot be resolved is returned as written.
func ResolveLink(base *url.URL, href string) string {
	trimmed := strings.TrimSpace(href)
	ref, err := url.Parse(trimmed)
	if err != nil {
		return href
	}
	if ref.IsAbs() {
		return trimmed
	}
	if base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
