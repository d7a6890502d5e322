package tmdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantErr  bool
	}{
		{"ok", http.StatusOK, `{"id":1}`, Unknown, false},
		{"created", http.StatusCreated, `{"status_code":1}`, Unknown, false},
		{"service unavailable", http.StatusServiceUnavailable, `{"status_message":"down"}`, ServiceUnavailable, true},
		{"unauthorized", http.StatusUnauthorized, `{"status_code":7,"status_message":"Invalid API key"}`, AuthorizationFailure, true},
		{"not found", http.StatusNotFound, `{"status_code":34}`, Unknown, true},
		{"server error", http.StatusInternalServerError, `oops`, Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer server.Close()

			data, err := NewHTTPTransport(nil).Fetch(context.Background(), http.MethodGet, server.URL, nil)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(data))
				return
			}

			require.Error(t, err)
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.wantKind, e.Kind)
			assert.Equal(t, tt.status, e.StatusCode)
			assert.Equal(t, tt.body, e.Body)
			assert.Equal(t, tt.status == http.StatusNotFound, e.IsNotFound())
		})
	}
}

func TestHTTPTransportHeaders(t *testing.T) {
	var gotAccept, gotContentType, gotMethod, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	tr := NewHTTPTransport(server.Client())

	_, err := tr.Fetch(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	assert.Empty(t, gotContentType)
	assert.Equal(t, http.MethodGet, gotMethod)

	_, err = tr.Fetch(context.Background(), http.MethodPost, server.URL, []byte(`{"value":8}`))
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, `{"value":8}`, gotBody)

	_, err = tr.Fetch(context.Background(), http.MethodDelete, server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestHTTPTransportConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := NewHTTPTransport(nil).Fetch(context.Background(), http.MethodGet, addr, nil)
	require.Error(t, err)
	assert.Equal(t, ConnectionError, KindOf(err))
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingBody) Close() error { return nil }

type stubDoer struct {
	resp *http.Response
	err  error
}

func (d stubDoer) Do(*http.Request) (*http.Response, error) { return d.resp, d.err }

func TestHTTPTransportReadFailure(t *testing.T) {
	doer := stubDoer{resp: &http.Response{StatusCode: http.StatusOK, Body: failingBody{}}}

	_, err := NewHTTPTransport(doer).Fetch(context.Background(), http.MethodGet, "https://example.com", nil)
	require.Error(t, err)
	assert.Equal(t, ConnectionError, KindOf(err))
}

type recordingFetcher struct {
	calls []string
	body  string
	err   error
}

func (f *recordingFetcher) Get(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.body), nil
}

func TestContentTransport(t *testing.T) {
	t.Run("get is delegated", func(t *testing.T) {
		f := &recordingFetcher{body: `{"id":1}`}
		data, err := NewContentTransport(f).Fetch(context.Background(), http.MethodGet, "https://example.com/a", nil)
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, string(data))
		assert.Equal(t, []string{"https://example.com/a"}, f.calls)
	})

	t.Run("writes are rejected before fetching", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodDelete} {
			f := &recordingFetcher{}
			_, err := NewContentTransport(f).Fetch(context.Background(), method, "https://example.com/a", []byte(`{}`))
			require.Error(t, err)
			assert.Equal(t, UnsupportedOperation, KindOf(err))
			assert.Empty(t, f.calls)
		}
	})

	t.Run("get with body rejected", func(t *testing.T) {
		f := &recordingFetcher{}
		_, err := NewContentTransport(f).Fetch(context.Background(), http.MethodGet, "https://example.com/a", []byte(`{}`))
		assert.Equal(t, UnsupportedOperation, KindOf(err))
		assert.Empty(t, f.calls)
	})

	t.Run("fetch failure is a connection error", func(t *testing.T) {
		f := &recordingFetcher{err: errors.New("dial tcp: no such host")}
		_, err := NewContentTransport(f).Fetch(context.Background(), http.MethodGet, "https://example.com/a", nil)
		require.Error(t, err)
		assert.Equal(t, ConnectionError, KindOf(err))
		assert.True(t, strings.Contains(err.Error(), "no such host"))
	})

	t.Run("typed failures pass through", func(t *testing.T) {
		f := &recordingFetcher{err: &Error{Kind: ServiceUnavailable, StatusCode: 503}}
		_, err := NewContentTransport(f).Fetch(context.Background(), http.MethodGet, "https://example.com/a", nil)
		assert.Equal(t, ServiceUnavailable, KindOf(err))
	})

	t.Run("typed unknown failure passes through", func(t *testing.T) {
		cause := &Error{Kind: Unknown, Message: "Not Found", StatusCode: 404, Body: "Not Found"}
		f := &recordingFetcher{err: cause}
		_, err := NewContentTransport(f).Fetch(context.Background(), http.MethodGet, "https://example.com/a", nil)
		require.Error(t, err)
		assert.Equal(t, Unknown, KindOf(err))

		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Same(t, cause, e)
		assert.True(t, e.IsNotFound())
	})
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Kind: ServiceUnavailable, Message: "service unavailable", StatusCode: 503}
	assert.Equal(t, "tmdb HTTP_503_ERROR: service unavailable (status 503)", err.Error())

	wrapped := &Error{Kind: ConnectionError, Message: "request failed", Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "tmdb CONNECTION_ERROR: request failed: unexpected EOF", wrapped.Error())
	assert.True(t, errors.Is(wrapped, io.ErrUnexpectedEOF))
	assert.True(t, errors.Is(wrapped, ConnectionError))
	assert.False(t, errors.Is(wrapped, MappingFailed))

	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, "UNKNOWN_CAUSE", Unknown.String())
	assert.Equal(t, "AUTHORISATION_FAILURE", AuthorizationFailure.String())
}
