package tmdb

import "context"

// PersonService covers the person/* endpoints
type PersonService struct {
	c *Client
}

// Get retrieves a person
func (s *PersonService) Get(ctx context.Context, id int, opts Options) (*Person, error) {
	var p Person
	if err := s.c.get(ctx, newRequest("person").pathInt(id).withOptions(opts), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Credits lists the movies and series a person worked on
func (s *PersonService) Credits(ctx context.Context, id int, opts Options) (*PersonCredits, error) {
	var pc PersonCredits
	r := newRequest("person").pathInt(id).path("combined_credits").withOptions(opts)
	if err := s.c.get(ctx, r, &pc); err != nil {
		return nil, err
	}
	return &pc, nil
}

// Images lists profile images
func (s *PersonService) Images(ctx context.Context, id int) (*ResultsList[Artwork], error) {
	return getList[Artwork](ctx, s.c, newRequest("person").pathInt(id).path("images"), &Images{})
}

// Changes returns the edits made to a person, grouped by changed field
func (s *PersonService) Changes(ctx context.Context, id int, startDate, endDate string) (*ResultsMap[string, []ChangedItem], error) {
	r := newRequest("person").pathInt(id).path("changes").
		set(paramStartDate, startDate).
		set(paramEndDate, endDate)
	return getChanges(ctx, s.c, r)
}

// Popular lists people by popularity
func (s *PersonService) Popular(ctx context.Context, opts Options) (*ResultsList[Person], error) {
	return getPage[Person](ctx, s.c, newRequest("person/popular").withOptions(opts))
}

// Latest retrieves the most recently added person
func (s *PersonService) Latest(ctx context.Context) (*Person, error) {
	var p Person
	if err := s.c.get(ctx, newRequest("person/latest"), &p); err != nil {
		return nil, err
	}
	return &p, nil
}
