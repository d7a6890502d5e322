package filter

import (
	"strconv"
	"time"

	"github.com/s0up4200/moviedb/tmdb"
)

// Kind tells movies and TV series apart inside expressions
type Kind string

const (
	KindMovie Kind = "movie"
	KindTV    Kind = "tv"
)

// Item is the flattened view of a TMDb title that expressions run against
type Item struct {
	Kind          Kind
	ID            int
	Title         string
	OriginalTitle string
	Overview      string
	Language      string
	Released      time.Time
	Year          int
	Adult         bool
	Popularity    float64
	VoteAverage   float64
	VoteCount     int
	Runtime       int
	GenreIDs      []int
	Genres        []string
}

// GenreNames maps genre ids to display names. Search and discover results
// only carry ids, so callers usually build one from GenreService.List.
type GenreNames map[int]string

// NewGenreNames indexes a genre list by id
func NewGenreNames(genres []tmdb.Genre) GenreNames {
	names := make(GenreNames, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}
	return names
}

// FromMovie flattens a movie. names may be nil.
func FromMovie(m *tmdb.Movie, names GenreNames) Item {
	item := Item{
		Kind:          KindMovie,
		ID:            m.ID,
		Title:         m.Title,
		OriginalTitle: m.OriginalTitle,
		Overview:      m.Overview,
		Language:      m.OriginalLanguage,
		Adult:         m.Adult,
		Popularity:    m.Popularity,
		VoteAverage:   m.VoteAverage,
		VoteCount:     m.VoteCount,
		Runtime:       m.Runtime,
	}
	item.Released, item.Year = parseRelease(m.ReleaseDate)
	item.GenreIDs, item.Genres = resolveGenres(m.Genres, m.GenreIDs, names)
	return item
}

// FromTV flattens a TV series. names may be nil.
func FromTV(s *tmdb.TVSeries, names GenreNames) Item {
	item := Item{
		Kind:          KindTV,
		ID:            s.ID,
		Title:         s.Name,
		OriginalTitle: s.OriginalName,
		Overview:      s.Overview,
		Popularity:    s.Popularity,
		VoteAverage:   s.VoteAverage,
		VoteCount:     s.VoteCount,
	}
	if len(s.Languages) > 0 {
		item.Language = s.Languages[0]
	}
	if len(s.EpisodeRunTime) > 0 {
		item.Runtime = s.EpisodeRunTime[0]
	}
	item.Released, item.Year = parseRelease(s.FirstAirDate)
	item.GenreIDs, item.Genres = resolveGenres(s.Genres, s.GenreIDs, names)
	return item
}

func parseRelease(date string) (time.Time, int) {
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		return t, t.Year()
	}
	if len(date) >= 4 {
		if y, err := strconv.Atoi(date[:4]); err == nil {
			return time.Time{}, y
		}
	}
	return time.Time{}, 0
}

// resolveGenres prefers full genre objects and falls back to ids looked up in names
func resolveGenres(genres []tmdb.Genre, ids []int, names GenreNames) ([]int, []string) {
	if len(genres) > 0 {
		outIDs := make([]int, 0, len(genres))
		outNames := make([]string, 0, len(genres))
		for _, g := range genres {
			outIDs = append(outIDs, g.ID)
			outNames = append(outNames, g.Name)
		}
		return outIDs, outNames
	}

	outNames := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			outNames = append(outNames, name)
		}
	}
	return ids, outNames
}
