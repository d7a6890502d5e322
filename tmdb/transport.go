package tmdb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is applied to the default http.Client
const DefaultTimeout = 30 * time.Second

// Transport sends one request and returns the raw response body.
type Transport interface {
	Fetch(ctx context.Context, method, url string, body []byte) ([]byte, error)
}

// HTTPDoer is satisfied by *http.Client and by test doubles
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ContentFetcher is a read-only page fetcher, e.g. a shared scraper client.
// It can only issue plain GETs.
type ContentFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// HTTPTransport is the default Transport. It supports GET, POST and DELETE.
type HTTPTransport struct {
	doer HTTPDoer
}

// NewHTTPTransport wraps doer; a nil doer gets an http.Client with DefaultTimeout.
func NewHTTPTransport(doer HTTPDoer) *HTTPTransport {
	if doer == nil {
		doer = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPTransport{doer: doer}
}

// Fetch implements Transport
func (t *HTTPTransport) Fetch(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, &Error{Kind: InvalidURL, Message: redact(url), Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.doer.Do(req)
	if err != nil {
		return nil, newError(ConnectionError, "request failed", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(ConnectionError, "failed to read response body", err)
	}

	if err := checkStatus(resp.StatusCode, data); err != nil {
		return nil, err
	}
	return data, nil
}

func checkStatus(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	e := &Error{
		Kind:       Unknown,
		Message:    http.StatusText(status),
		Body:       string(body),
		StatusCode: status,
	}
	switch status {
	case http.StatusServiceUnavailable:
		e.Kind = ServiceUnavailable
		e.Message = "service unavailable"
	case http.StatusUnauthorized:
		e.Kind = AuthorizationFailure
		e.Message = "invalid API key or session"
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("unexpected status %d", status)
	}
	return e
}

// ContentTransport adapts a ContentFetcher. Only GET without a body is supported.
type ContentTransport struct {
	fetcher ContentFetcher
}

// NewContentTransport wraps fetcher
func NewContentTransport(fetcher ContentFetcher) *ContentTransport {
	return &ContentTransport{fetcher: fetcher}
}

// Fetch implements Transport
func (t *ContentTransport) Fetch(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	if method != http.MethodGet {
		return nil, newError(UnsupportedOperation, method+" is not supported by the content fetcher", nil)
	}
	if body != nil {
		return nil, newError(UnsupportedOperation, "request bodies are not supported by the content fetcher", nil)
	}

	data, err := t.fetcher.Get(ctx, url)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, newError(ConnectionError, "content fetch failed", err)
	}
	return data, nil
}
