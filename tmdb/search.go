package tmdb

import "context"

// SearchService covers the search/* endpoints
type SearchService struct {
	c *Client
}

func searchRequest(kind, query string, opts SearchOptions) *request {
	return newRequest("search", kind).
		set(paramQuery, query).
		set(paramSearchType, string(opts.SearchType)).
		withOptions(opts.Options)
}

// Movies searches movies by title. opts.Year restricts the release year.
func (s *SearchService) Movies(ctx context.Context, query string, opts SearchOptions) (*ResultsList[Movie], error) {
	r := searchRequest("movie", query, opts).
		setInt(paramYear, opts.Year).
		setBool(paramIncludeAdult, opts.IncludeAdult)
	return getPage[Movie](ctx, s.c, r)
}

// TV searches series by name. opts.Year restricts the first air date year.
func (s *SearchService) TV(ctx context.Context, query string, opts SearchOptions) (*ResultsList[TVSeries], error) {
	r := searchRequest("tv", query, opts).setInt(paramFirstAirDateYear, opts.Year)
	return getPage[TVSeries](ctx, s.c, r)
}

// Collections searches collections by name
func (s *SearchService) Collections(ctx context.Context, query string, opts SearchOptions) (*ResultsList[Collection], error) {
	return getPage[Collection](ctx, s.c, searchRequest("collection", query, opts))
}

// People searches people by name
func (s *SearchService) People(ctx context.Context, query string, opts SearchOptions) (*ResultsList[Person], error) {
	r := searchRequest("person", query, opts).setBool(paramIncludeAdult, opts.IncludeAdult)
	return getPage[Person](ctx, s.c, r)
}

// Lists searches user lists by name
func (s *SearchService) Lists(ctx context.Context, query string, opts SearchOptions) (*ResultsList[MovieList], error) {
	return getPage[MovieList](ctx, s.c, searchRequest("list", query, opts))
}

// Companies searches production companies by name
func (s *SearchService) Companies(ctx context.Context, query string, opts SearchOptions) (*ResultsList[Company], error) {
	return getPage[Company](ctx, s.c, searchRequest("company", query, opts))
}

// Keywords searches keywords
func (s *SearchService) Keywords(ctx context.Context, query string, opts SearchOptions) (*ResultsList[Keyword], error) {
	return getPage[Keyword](ctx, s.c, searchRequest("keyword", query, opts))
}
