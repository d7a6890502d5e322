package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// ErrMissingAPIKey is returned by NewClient when no API key is given
var ErrMissingAPIKey = errors.New("tmdb API key is required")

// Client represents a TMDb API client
type Client struct {
	apiKey    string
	baseURL   string
	transport Transport
	codec     Codec
	logger    zerolog.Logger
	config    Configuration

	Account     *AccountService
	Auth        *AuthService
	Changes     *ChangesService
	Collections *CollectionService
	Companies   *CompanyService
	Discover    *DiscoverService
	Genres      *GenreService
	Jobs        *JobService
	Keywords    *KeywordService
	Lists       *ListService
	Movies      *MovieService
	People      *PersonService
	Search      *SearchService
	TV          *TVService
}

// NewClient creates a new TMDb client and fetches the server configuration.
// The configuration is read once and used by CreateImageURL.
func NewClient(ctx context.Context, apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{
		apiKey:    apiKey,
		baseURL:   o.baseURL,
		transport: o.transportFor(),
		codec:     o.codec,
		logger:    logger,
	}

	c.Account = &AccountService{c: c}
	c.Auth = &AuthService{c: c}
	c.Changes = &ChangesService{c: c}
	c.Collections = &CollectionService{c: c}
	c.Companies = &CompanyService{c: c}
	c.Discover = &DiscoverService{c: c}
	c.Genres = &GenreService{c: c}
	c.Jobs = &JobService{c: c}
	c.Keywords = &KeywordService{c: c}
	c.Lists = &ListService{c: c}
	c.Movies = &MovieService{c: c}
	c.People = &PersonService{c: c}
	c.Search = &SearchService{c: c}
	c.TV = &TVService{c: c}

	if err := c.get(ctx, newRequest("configuration"), &c.config); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	c.logger.Debug().
		Str("image_base_url", c.config.Images.BaseURL).
		Int("change_keys", len(c.config.ChangeKeys)).
		Msg("Loaded TMDb configuration")

	return c, nil
}

// Configuration returns the configuration fetched by NewClient
func (c *Client) Configuration() Configuration {
	return c.config
}

// CreateImageURL joins the image base URL, size and path. The size must be
// one of the sizes listed in the configuration, e.g. "w500" or "original".
// The secure base URL is used when the configuration has no plain one.
func (c *Client) CreateImageURL(path, size string) (*url.URL, error) {
	if !c.config.IsValidSize(size) {
		return nil, &Error{Kind: InvalidImageSize, Message: size}
	}

	base := c.config.Images.BaseURL
	if base == "" {
		base = c.config.Images.SecureBaseURL
	}
	raw := base + size + path
	u, err := url.Parse(raw)
	if err != nil {
		return nil, &Error{Kind: InvalidURL, Message: raw, Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, &Error{Kind: InvalidURL, Message: raw}
	}
	return u, nil
}

// fetch builds the URL for r and sends it
func (c *Client) fetch(ctx context.Context, method string, r *request, body []byte) ([]byte, error) {
	rawURL, err := r.build(c.baseURL, c.apiKey)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", redact(rawURL)).
		Msg("Making TMDb API request")

	data, err := c.transport.Fetch(ctx, method, rawURL, body)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", redact(rawURL)).Msg("TMDb API request failed")
		return nil, err
	}
	return data, nil
}

// get fetches r and decodes the response into v
func (c *Client) get(ctx context.Context, r *request, v any) error {
	data, err := c.fetch(ctx, http.MethodGet, r, nil)
	if err != nil {
		return err
	}
	return c.decode(r, data, v)
}

// send issues a write request with an optional JSON body and decodes the reply into v
func (c *Client) send(ctx context.Context, method string, r *request, fields map[string]any, v any) error {
	var body []byte
	if fields != nil {
		var err error
		if body, err = encodeBody(c.codec, fields); err != nil {
			return err
		}
	}

	data, err := c.fetch(ctx, method, r, body)
	if err != nil {
		return err
	}
	return c.decode(r, data, v)
}

func (c *Client) decode(r *request, data []byte, v any) error {
	if err := decode(c.codec, data, v); err != nil {
		c.logMapping(r, err)
		return err
	}
	return nil
}

func (c *Client) logMapping(r *request, err error) {
	c.logger.Warn().
		Err(err).
		Str("endpoint", r.endpoint()).
		Msg("Failed to map TMDb response")
}

// getList fetches r and projects the envelope into a ResultsList
func getList[T any, E envelope[T]](ctx context.Context, c *Client, r *request, env E) (*ResultsList[T], error) {
	data, err := c.fetch(ctx, http.MethodGet, r, nil)
	if err != nil {
		return nil, err
	}

	list, err := decodeList[T](c.codec, data, env)
	if err != nil {
		c.logMapping(r, err)
		return nil, err
	}
	return list, nil
}

// getPage fetches a standard paginated endpoint
func getPage[T any](ctx context.Context, c *Client, r *request) (*ResultsList[T], error) {
	return getList[T](ctx, c, r, &paged[T]{})
}
