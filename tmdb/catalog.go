package tmdb

import "context"

// CollectionService covers the collection/* endpoints
type CollectionService struct {
	c *Client
}

// Get retrieves a collection with its parts
func (s *CollectionService) Get(ctx context.Context, id int, opts Options) (*CollectionInfo, error) {
	var ci CollectionInfo
	if err := s.c.get(ctx, newRequest("collection").pathInt(id).withOptions(opts), &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}

// Images lists the posters and backdrops of a collection
func (s *CollectionService) Images(ctx context.Context, id int, opts Options) (*ResultsList[Artwork], error) {
	r := newRequest("collection").pathInt(id).path("images").withOptions(opts)
	return getList[Artwork](ctx, s.c, r, &Images{})
}

// CompanyService covers the company/* endpoints
type CompanyService struct {
	c *Client
}

// Get retrieves a production company
func (s *CompanyService) Get(ctx context.Context, id int) (*Company, error) {
	var co Company
	if err := s.c.get(ctx, newRequest("company").pathInt(id), &co); err != nil {
		return nil, err
	}
	return &co, nil
}

// Movies lists the movies of a company
func (s *CompanyService) Movies(ctx context.Context, id int, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, newRequest("company").pathInt(id).path("movies").withOptions(opts))
}

// GenreService covers the genre/* endpoints
type GenreService struct {
	c *Client
}

// List lists the movie genres
func (s *GenreService) List(ctx context.Context, opts Options) (*ResultsList[Genre], error) {
	return getList[Genre](ctx, s.c, newRequest("genre/list").withOptions(opts), &genreList{})
}

// Movies lists the movies of a genre. includeAll also returns movies with
// few votes.
func (s *GenreService) Movies(ctx context.Context, id int, includeAll bool, opts Options) (*ResultsList[Movie], error) {
	r := newRequest("genre").pathInt(id).path("movies").
		setBool(paramIncludeAllMovies, includeAll).
		withOptions(opts)
	return getPage[Movie](ctx, s.c, r)
}

// KeywordService covers the keyword/* endpoints
type KeywordService struct {
	c *Client
}

// Get retrieves a keyword
func (s *KeywordService) Get(ctx context.Context, id int) (*Keyword, error) {
	var k Keyword
	if err := s.c.get(ctx, newRequest("keyword").pathInt(id), &k); err != nil {
		return nil, err
	}
	return &k, nil
}

// Movies lists the movies tagged with a keyword
func (s *KeywordService) Movies(ctx context.Context, id int, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, newRequest("keyword").pathInt(id).path("movies").withOptions(opts))
}

// ChangesService covers the global change lists
type ChangesService struct {
	c *Client
}

// Movies lists the ids of movies edited between startDate and endDate
func (s *ChangesService) Movies(ctx context.Context, page int, startDate, endDate string) (*ResultsList[ChangedMedia], error) {
	return getPage[ChangedMedia](ctx, s.c, changesRequest("movie/changes", page, startDate, endDate))
}

// People lists the ids of people edited between startDate and endDate
func (s *ChangesService) People(ctx context.Context, page int, startDate, endDate string) (*ResultsList[ChangedMedia], error) {
	return getPage[ChangedMedia](ctx, s.c, changesRequest("person/changes", page, startDate, endDate))
}

func changesRequest(base string, page int, startDate, endDate string) *request {
	return newRequest(base).
		setInt(paramPage, page).
		set(paramStartDate, startDate).
		set(paramEndDate, endDate)
}

// JobService covers job/list
type JobService struct {
	c *Client
}

// List lists the crew jobs by department
func (s *JobService) List(ctx context.Context) (*ResultsList[JobDepartment], error) {
	return getList[JobDepartment](ctx, s.c, newRequest("job/list"), &jobList{})
}
