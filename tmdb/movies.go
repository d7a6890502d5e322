package tmdb

import (
	"context"
	"net/http"
)

// MovieService covers the movie/* endpoints
type MovieService struct {
	c *Client
}

// Get retrieves a movie. Sub-resources such as "credits" or "images" can be
// inlined through opts.AppendToResponse.
func (s *MovieService) Get(ctx context.Context, id int, opts Options) (*Movie, error) {
	var m Movie
	r := newRequest("movie").pathInt(id).withOptions(opts)
	if err := s.c.get(ctx, r, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByIMDb retrieves a movie by its IMDb identifier, e.g. "tt0111161"
func (s *MovieService) GetByIMDb(ctx context.Context, imdbID string, opts Options) (*Movie, error) {
	var m Movie
	r := newRequest("movie").path(imdbID).withOptions(opts)
	if err := s.c.get(ctx, r, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// AlternativeTitles lists the titles a movie is known by, optionally for one country
func (s *MovieService) AlternativeTitles(ctx context.Context, id int, country string, opts Options) (*ResultsList[AlternativeTitle], error) {
	r := newRequest("movie").pathInt(id).path("alternative_titles").
		set(paramCountry, country).
		withOptions(opts)
	return getList[AlternativeTitle](ctx, s.c, r, &AlternativeTitles{})
}

// Credits retrieves cast and crew
func (s *MovieService) Credits(ctx context.Context, id int, opts Options) (*Credits, error) {
	var cr Credits
	r := newRequest("movie").pathInt(id).path("credits").withOptions(opts)
	if err := s.c.get(ctx, r, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// Images lists posters and backdrops
func (s *MovieService) Images(ctx context.Context, id int, opts Options) (*ResultsList[Artwork], error) {
	r := newRequest("movie").pathInt(id).path("images").withOptions(opts)
	return getList[Artwork](ctx, s.c, r, &Images{})
}

// Keywords lists the keywords of a movie
func (s *MovieService) Keywords(ctx context.Context, id int, opts Options) (*ResultsList[Keyword], error) {
	r := newRequest("movie").pathInt(id).path("keywords").withOptions(opts)
	return getList[Keyword](ctx, s.c, r, &MovieKeywords{})
}

// Releases lists per-country release dates and certifications
func (s *MovieService) Releases(ctx context.Context, id int, opts Options) (*ResultsList[ReleaseInfo], error) {
	r := newRequest("movie").pathInt(id).path("releases").withOptions(opts)
	return getList[ReleaseInfo](ctx, s.c, r, &Releases{})
}

// Trailers lists trailers from every hosting site
func (s *MovieService) Trailers(ctx context.Context, id int, opts Options) (*ResultsList[Trailer], error) {
	r := newRequest("movie").pathInt(id).path("trailers").withOptions(opts)
	return getList[Trailer](ctx, s.c, r, &Trailers{})
}

// Translations lists available translations
func (s *MovieService) Translations(ctx context.Context, id int, opts Options) (*ResultsList[Translation], error) {
	r := newRequest("movie").pathInt(id).path("translations").withOptions(opts)
	return getList[Translation](ctx, s.c, r, &Translations{})
}

// Similar lists movies similar to id
func (s *MovieService) Similar(ctx context.Context, id int, opts Options) (*ResultsList[Movie], error) {
	r := newRequest("movie").pathInt(id).path("similar").withOptions(opts)
	return getPage[Movie](ctx, s.c, r)
}

// Reviews lists user reviews
func (s *MovieService) Reviews(ctx context.Context, id int, opts Options) (*ResultsList[Review], error) {
	r := newRequest("movie").pathInt(id).path("reviews").withOptions(opts)
	return getPage[Review](ctx, s.c, r)
}

// Lists lists the user lists containing the movie
func (s *MovieService) Lists(ctx context.Context, id int, opts Options) (*ResultsList[MovieList], error) {
	r := newRequest("movie").pathInt(id).path("lists").withOptions(opts)
	return getPage[MovieList](ctx, s.c, r)
}

// Changes returns the edits made to a movie, grouped by changed field.
// Dates are YYYY-MM-DD and optional.
func (s *MovieService) Changes(ctx context.Context, id int, startDate, endDate string) (*ResultsMap[string, []ChangedItem], error) {
	r := newRequest("movie").pathInt(id).path("changes").
		set(paramStartDate, startDate).
		set(paramEndDate, endDate)
	return getChanges(ctx, s.c, r)
}

// Latest retrieves the most recently added movie
func (s *MovieService) Latest(ctx context.Context) (*Movie, error) {
	var m Movie
	if err := s.c.get(ctx, newRequest("movie/latest"), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Upcoming lists movies about to be released
func (s *MovieService) Upcoming(ctx context.Context, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, newRequest("movie/upcoming").withOptions(opts))
}

// NowPlaying lists movies currently in theatres
func (s *MovieService) NowPlaying(ctx context.Context, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, newRequest("movie/now_playing").withOptions(opts))
}

// Popular lists movies by popularity
func (s *MovieService) Popular(ctx context.Context, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, newRequest("movie/popular").withOptions(opts))
}

// TopRated lists movies by rating
func (s *MovieService) TopRated(ctx context.Context, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, newRequest("movie/top_rated").withOptions(opts))
}

// Rate posts a rating for a movie. A valid session is required.
func (s *MovieService) Rate(ctx context.Context, sessionID string, id int, value float64) (*StatusCode, error) {
	var sc StatusCode
	r := newRequest("movie").pathInt(id).path("rating").set(paramSession, sessionID)
	if err := s.c.send(ctx, http.MethodPost, r, map[string]any{"value": value}, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func getChanges(ctx context.Context, c *Client, r *request) (*ResultsMap[string, []ChangedItem], error) {
	var cs changeSet
	if err := c.get(ctx, r, &cs); err != nil {
		return nil, err
	}

	out := &ResultsMap[string, []ChangedItem]{Results: make(map[string][]ChangedItem, len(cs.Changes))}
	for _, ch := range cs.Changes {
		out.Results[ch.Key] = append(out.Results[ch.Key], ch.Items...)
	}
	return out, nil
}
