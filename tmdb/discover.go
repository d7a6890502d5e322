package tmdb

import "context"

// Discover holds the discover/movie filters. Zero values are not sent.
type Discover struct {
	Page     int
	Language string
	// SortBy is one of popularity, vote_average or release_date with a
	// .asc or .desc suffix
	SortBy             string
	IncludeAdult       bool
	Year               int
	PrimaryReleaseYear int
	VoteCountGte       int
	VoteAverageGte     float64
	// WithGenres takes genre ids; "," means AND, "|" means OR
	WithGenres     string
	ReleaseDateGte string
	ReleaseDateLte string
	// CertificationCountry requires CertificationLte
	CertificationCountry string
	CertificationLte     string
	WithCompanies        string
}

func (d Discover) apply(r *request) *request {
	return r.
		setInt(paramPage, d.Page).
		set(paramLanguage, d.Language).
		set(paramSortBy, d.SortBy).
		setBool(paramIncludeAdult, d.IncludeAdult).
		setInt(paramYear, d.Year).
		setInt(paramPrimaryReleaseYear, d.PrimaryReleaseYear).
		setInt(paramVoteCountGte, d.VoteCountGte).
		setFloat(paramVoteAverageGte, d.VoteAverageGte).
		set(paramWithGenres, d.WithGenres).
		set(paramReleaseDateGte, d.ReleaseDateGte).
		set(paramReleaseDateLte, d.ReleaseDateLte).
		set(paramCertificationCountry, d.CertificationCountry).
		set(paramCertificationLte, d.CertificationLte).
		set(paramWithCompanies, d.WithCompanies)
}

// DiscoverService covers discover/movie
type DiscoverService struct {
	c *Client
}

// Movies lists movies matching the filters in d
func (s *DiscoverService) Movies(ctx context.Context, d Discover) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, d.apply(newRequest("discover/movie")))
}
