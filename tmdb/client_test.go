package tmdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfiguration = `{
	"images": {
		"base_url": "http://image.tmdb.org/t/p/",
		"secure_base_url": "https://image.tmdb.org/t/p/",
		"backdrop_sizes": ["w300", "w780", "original"],
		"logo_sizes": ["w45", "w92"],
		"poster_sizes": ["w92", "w185", "w500", "original"],
		"profile_sizes": ["w45", "h632"],
		"still_sizes": ["w92", "w300"]
	},
	"change_keys": ["title", "genres"]
}`

// newTestClient serves the configuration endpoint plus the given routes
func newTestClient(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/3/configuration", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		io.WriteString(w, testConfiguration)
	})
	for pattern, h := range routes {
		mux.HandleFunc(pattern, h)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), "test-key", zerolog.Nop(),
		WithBaseURL(server.URL+"/3/"),
		WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		_, err := NewClient(context.Background(), " ", zerolog.Nop())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("loads configuration", func(t *testing.T) {
		client := newTestClient(t, nil)
		cfg := client.Configuration()
		assert.Equal(t, "http://image.tmdb.org/t/p/", cfg.Images.BaseURL)
		assert.Equal(t, []string{"title", "genres"}, cfg.ChangeKeys)
		assert.NotNil(t, client.Movies)
		assert.NotNil(t, client.TV)
		assert.NotNil(t, client.Search)
	})

	t.Run("unusable configuration", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"images": {}}`)
		}))
		defer server.Close()

		_, err := NewClient(context.Background(), "test-key", zerolog.Nop(), WithBaseURL(server.URL))
		require.Error(t, err)
		var e *Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, MappingFailed, e.Kind)
		assert.Equal(t, `{"images": {}}`, e.Body)
	})

	t.Run("service unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := NewClient(context.Background(), "test-key", zerolog.Nop(), WithBaseURL(server.URL))
		assert.Equal(t, ServiceUnavailable, KindOf(err))
	})
}

func TestCreateImageURL(t *testing.T) {
	client := newTestClient(t, nil)

	u, err := client.CreateImageURL("/abc.jpg", "w500")
	require.NoError(t, err)
	assert.Equal(t, "http://image.tmdb.org/t/p/w500/abc.jpg", u.String())

	u, err = client.CreateImageURL("/face.png", "h632")
	require.NoError(t, err)
	assert.Equal(t, "http://image.tmdb.org/t/p/h632/face.png", u.String())

	for _, size := range []string{"bogus", "", "W500"} {
		_, err = client.CreateImageURL("/abc.jpg", size)
		require.Error(t, err)
		assert.Equal(t, InvalidImageSize, KindOf(err))
	}
}

func TestCreateImageURLSecureOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"images": {"secure_base_url": "https://image.tmdb.org/t/p/", "poster_sizes": ["w500"]}}`)
	}))
	defer server.Close()

	client, err := NewClient(context.Background(), "test-key", zerolog.Nop(),
		WithBaseURL(server.URL),
		WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)

	u, err := client.CreateImageURL("/abc.jpg", "w500")
	require.NoError(t, err)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", u.String())
}

func TestMoviesGet(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/movie/603": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "en", q.Get("language"))
			assert.Equal(t, "credits,images", q.Get("append_to_response"))
			io.WriteString(w, `{
				"id": 603,
				"title": "The Matrix",
				"original_title": "The Matrix",
				"release_date": "1999-03-30",
				"credits": {"id": 603, "cast": [{"id": 6384, "name": "Keanu Reeves", "character": "Neo"}],
					"crew": [{"id": 9340, "name": "Lana Wachowski", "job": "Director"}]},
				"images": {"id": 603, "posters": [{"file_path": "/p.jpg", "width": 500}]}
			}`)
		},
	})

	m, err := client.Movies.Get(context.Background(), 603, Options{
		Language:         "en",
		AppendToResponse: []string{"credits", "images"},
	})
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", m.Title)
	require.NotNil(t, m.Credits)
	assert.Equal(t, "Neo", m.Credits.Cast[0].Character)
	assert.Len(t, m.Credits.Directors(), 1)
	require.NotNil(t, m.Images)
	assert.Equal(t, "/p.jpg", m.Images.Posters[0].FilePath)
	assert.True(t, CompareMovies(m, "The Matrix", "1999", 0))
}

func TestMoviesNotFound(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/movie/1": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"status_code":34,"status_message":"The resource you requested could not be found."}`)
		},
	})

	_, err := client.Movies.Get(context.Background(), 1, Options{})
	require.Error(t, err)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.True(t, e.IsNotFound())
	assert.Contains(t, e.Body, "could not be found")
}

func TestSearchMovies(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/search/movie": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "the lion king", q.Get("query"))
			assert.Equal(t, "1994", q.Get("year"))
			assert.Equal(t, "false", q.Get("include_adult"))
			assert.Equal(t, "2", q.Get("page"))
			assert.False(t, q.Has("language"))
			io.WriteString(w, `{"page": 2, "results": [{"id": 8587, "title": "The Lion King"}], "total_pages": 3, "total_results": 41}`)
		},
	})

	res, err := client.Search.Movies(context.Background(), "the lion king", SearchOptions{
		Options: Options{Page: 2},
		Year:    1994,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 41, res.TotalResults)
	require.Len(t, res.Results, 1)
	assert.Equal(t, 8587, res.Results[0].ID)
}

func TestSearchTV(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/search/tv": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "2008", q.Get("first_air_date_year"))
			assert.Equal(t, "ngram", q.Get("search_type"))
			assert.False(t, q.Has("year"))
			io.WriteString(w, `{"page": 1, "results": [{"id": 1396, "name": "Breaking Bad"}], "total_pages": 1, "total_results": 1}`)
		},
	})

	res, err := client.Search.TV(context.Background(), "breaking", SearchOptions{Year: 2008, SearchType: SearchTypeNgram})
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", res.Results[0].Name)
}

func TestDiscoverMovies(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/discover/movie": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "popularity.desc", q.Get("sort_by"))
			assert.Equal(t, "18|80", q.Get("with_genres"))
			assert.Equal(t, "7.5", q.Get("vote_average.gte"))
			assert.Equal(t, "US", q.Get("certification_country"))
			assert.Equal(t, "PG-13", q.Get("certification.lte"))
			assert.False(t, q.Has("year"))
			assert.False(t, q.Has("with_companies"))
			io.WriteString(w, `{"page": 1, "results": [], "total_pages": 0, "total_results": 0}`)
		},
	})

	res, err := client.Discover.Movies(context.Background(), Discover{
		SortBy:               "popularity.desc",
		WithGenres:           "18|80",
		VoteAverageGte:       7.5,
		CertificationCountry: "US",
		CertificationLte:     "PG-13",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Results)
}

func TestAuthNewSession(t *testing.T) {
	var sessionCalls atomic.Int32
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/authentication/token/new": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"success": true, "expires_at": "2026-10-14 12:00:00 UTC", "request_token": "tok"}`)
		},
		"/3/authentication/session/new": func(w http.ResponseWriter, r *http.Request) {
			sessionCalls.Add(1)
			assert.Equal(t, "tok", r.URL.Query().Get("request_token"))
			io.WriteString(w, `{"success": true, "session_id": "sess"}`)
		},
	})

	t.Run("rejected token is not sent", func(t *testing.T) {
		_, err := client.Auth.NewSession(context.Background(), &TokenAuthorisation{Success: false, RequestToken: "tok"})
		require.Error(t, err)
		assert.Equal(t, AuthorizationFailure, KindOf(err))

		_, err = client.Auth.NewSession(context.Background(), nil)
		assert.Equal(t, AuthorizationFailure, KindOf(err))
		assert.Zero(t, sessionCalls.Load())
	})

	t.Run("granted token", func(t *testing.T) {
		token, err := client.Auth.NewToken(context.Background())
		require.NoError(t, err)

		session, err := client.Auth.NewSession(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "sess", session.ID())
		assert.EqualValues(t, 1, sessionCalls.Load())
	})
}

func TestAccountWrites(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/account/42/favorite": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "sess", r.URL.Query().Get("session_id"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			gotBody = nil
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			io.WriteString(w, `{"status_code": 12, "status_message": "The item/record was updated successfully"}`)
		},
		"/3/account/42/movie_watchlist": func(w http.ResponseWriter, r *http.Request) {
			gotBody = nil
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			io.WriteString(w, `{"status_code": 1, "status_message": "Success"}`)
		},
	})

	sc, err := client.Account.ChangeFavoriteStatus(context.Background(), "sess", 42, 550, true)
	require.NoError(t, err)
	assert.Equal(t, 12, sc.Code)
	assert.Equal(t, map[string]any{"movie_id": float64(550), "favorite": true}, gotBody)

	_, err = client.Account.RemoveFromWatchList(context.Background(), "sess", 42, 550)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"movie_id": float64(550), "movie_watchlist": false}, gotBody)
}

func TestLists(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/list": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			io.WriteString(w, `{"status_code": 1, "status_message": "Success", "success": true, "list_id": "509ec17b19c2950a0600050d"}`)
		},
		"/3/list/509ec17b19c2950a0600050d": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			io.WriteString(w, `{"status_code": 13, "status_message": "The item/record was deleted successfully."}`)
		},
		"/3/list/509ec17b19c2950a0600050d/item_status": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "550", r.URL.Query().Get("movie_id"))
			io.WriteString(w, `{"id": "509ec17b19c2950a0600050d", "item_present": true}`)
		},
	})

	id, err := client.Lists.Create(context.Background(), "sess", "Favourites", "")
	require.NoError(t, err)
	assert.Equal(t, "509ec17b19c2950a0600050d", id)

	present, err := client.Lists.Contains(context.Background(), id, 550)
	require.NoError(t, err)
	assert.True(t, present)

	sc, err := client.Lists.Delete(context.Background(), "sess", id)
	require.NoError(t, err)
	assert.Equal(t, 13, sc.Code)
}

func TestContentFetcherClient(t *testing.T) {
	f := &recordingFetcher{body: testConfiguration}
	client, err := NewClient(context.Background(), "test-key", zerolog.Nop(), WithContentFetcher(f))
	require.NoError(t, err)
	require.Len(t, f.calls, 1)
	assert.Equal(t, "https://api.themoviedb.org/3/configuration?api_key=test-key", f.calls[0])

	_, err = client.Movies.Rate(context.Background(), "sess", 550, 8)
	require.Error(t, err)
	assert.Equal(t, UnsupportedOperation, KindOf(err))

	_, err = client.Lists.Delete(context.Background(), "sess", "abc")
	assert.Equal(t, UnsupportedOperation, KindOf(err))
	assert.Len(t, f.calls, 1)
}

func TestMovieChanges(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/movie/550/changes": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2026-10-01", r.URL.Query().Get("start_date"))
			assert.False(t, r.URL.Query().Has("end_date"))
			io.WriteString(w, `{"changes": [{"key": "runtime", "items": [{"id": "x", "action": "updated", "time": "2026-10-02", "value": 139}]}]}`)
		},
	})

	changes, err := client.Movies.Changes(context.Background(), 550, "2026-10-01", "")
	require.NoError(t, err)
	require.Len(t, changes.Results["runtime"], 1)

	var runtime int
	require.NoError(t, changes.Results["runtime"][0].DecodeValue(&runtime))
	assert.Equal(t, 139, runtime)
}

func TestImageLists(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/tv/1399/season/1/images": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"id": 3624, "posters": [{"file_path": "/a.jpg"}, {"file_path": "/b.jpg"}]}`)
		},
	})

	res, err := client.TV.SeasonImages(context.Background(), 1399, 1, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalResults)
	assert.Equal(t, 1, res.Page)
}

func TestTVEpisode(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/tv/1399/season/1/episode/2": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"id": 63057, "name": "The Kingsroad", "season_number": 1, "episode_number": 2}`)
		},
		"/3/tv/1399/season/1/episode/2/external_ids": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"id": 63057, "imdb_id": "tt1668746", "tvdb_id": 3436411}`)
		},
	})

	ep, err := client.TV.Episode(context.Background(), 1399, 1, 2, Options{})
	require.NoError(t, err)
	assert.Equal(t, "The Kingsroad", ep.Name)

	ids, err := client.TV.EpisodeExternalIDs(context.Background(), 1399, 1, 2, Options{})
	require.NoError(t, err)
	assert.Equal(t, "tt1668746", ids.IMDbID)
	assert.Equal(t, 3436411, ids.TVDBID)
}

func TestGenresList(t *testing.T) {
	client := newTestClient(t, map[string]http.HandlerFunc{
		"/3/genre/list": func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"genres": [{"id": 28, "name": "Action"}, {"id": 18, "name": "Drama"}]}`)
		},
	})

	genres, err := client.Genres.List(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, genres.TotalResults)
	assert.Equal(t, "Drama", genres.Results[1].Name)
}

type countingCodec struct {
	calls int
}

func (c *countingCodec) Unmarshal(data []byte, v any) error {
	c.calls++
	return json.Unmarshal(data, v)
}

func (c *countingCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func TestWithCodec(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testConfiguration)
	}))
	defer server.Close()

	codec := &countingCodec{}
	_, err := NewClient(context.Background(), "test-key", zerolog.Nop(), WithBaseURL(server.URL), WithCodec(codec))
	require.NoError(t, err)
	assert.Equal(t, 1, codec.calls)
}
