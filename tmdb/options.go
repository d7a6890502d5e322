package tmdb

import (
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the root of the v3 API
const DefaultBaseURL = "https://api.themoviedb.org/3/"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL   string
	timeout   time.Duration
	proxy     *url.URL
	doer      HTTPDoer
	fetcher   ContentFetcher
	transport Transport
	codec     Codec
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		codec:   DefaultCodec,
	}
}

// transportFor picks the Transport. An explicit transport wins over a content
// fetcher, which wins over an HTTP doer.
func (o clientOptions) transportFor() Transport {
	switch {
	case o.transport != nil:
		return o.transport
	case o.fetcher != nil:
		return NewContentTransport(o.fetcher)
	case o.doer != nil:
		return NewHTTPTransport(o.doer)
	}

	client := &http.Client{Timeout: o.timeout}
	if o.proxy != nil {
		client.Transport = &http.Transport{Proxy: http.ProxyURL(o.proxy)}
	}
	return NewHTTPTransport(client)
}

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP client timeout.
// Ignored when a custom HTTP client or transport is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithProxy routes requests of the default HTTP client through proxy.
func WithProxy(proxy *url.URL) Option {
	return func(o *clientOptions) {
		o.proxy = proxy
	}
}

// WithHTTPClient sends requests through doer, typically an *http.Client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(o *clientOptions) {
		o.doer = doer
	}
}

// WithContentFetcher sends requests through a read-only fetcher.
// Write operations then fail with UnsupportedOperation.
func WithContentFetcher(fetcher ContentFetcher) Option {
	return func(o *clientOptions) {
		o.fetcher = fetcher
	}
}

// WithTransport replaces the transport entirely.
func WithTransport(t Transport) Option {
	return func(o *clientOptions) {
		o.transport = t
	}
}

// WithCodec replaces the JSON codec.
func WithCodec(codec Codec) Option {
	return func(o *clientOptions) {
		if codec != nil {
			o.codec = codec
		}
	}
}

// Options are the per-call settings shared by most endpoints.
// Zero values are not sent.
type Options struct {
	Language         string
	Page             int
	AppendToResponse []string
}

// SearchOptions extend Options for the search endpoints
type SearchOptions struct {
	Options
	Year         int
	IncludeAdult bool
	SearchType   SearchType
}
