package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/glabrego/webterm/internal/platform"
)

const (
	DefaultUserAgent = "webterm/0.1"
	MaxBodyBytes     = 8 << 20
)

var ErrBodyTooLarge = errors.New("response body too large")

// TransportError describes any failure to obtain a document body: a bad
// URL, an unreachable host, a non-2xx status or a broken read.
type TransportError struct {
	URL        string
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Client struct {
	userAgent string
	maxBytes  int64
	http      *http.Client
}

func NewClient(userAgent string, timeout time.Duration, httpClient *http.Client) *Client {
	if httpClient == nil {
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		userAgent: userAgent,
		maxBytes:  MaxBodyBytes,
		http:      httpClient,
	}
}

// Fetch performs a GET and returns the response body.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := platform.ValidateURL(rawURL)
	if err != nil {
		return nil, &TransportError{URL: rawURL, Op: "validate", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Op: "build request", Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Op: "request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &TransportError{URL: target, Op: "get", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, &TransportError{URL: target, Op: "read body", Err: err}
	}
	if int64(len(body)) > c.maxBytes {
		return nil, &TransportError{URL: target, Op: "read body", Err: fmt.Errorf("%w (limit %d bytes)", ErrBodyTooLarge, c.maxBytes)}
	}
	return body, nil
}
