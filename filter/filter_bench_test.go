package filter

import (
	"fmt"
	"testing"

	"github.com/s0up4200/moviedb/tmdb"
)

// generateTestMovies creates test movie data
func generateTestMovies(count int) []tmdb.Movie {
	movies := make([]tmdb.Movie, count)

	for i := range count {
		movies[i] = tmdb.Movie{
			ID:          i + 1,
			Title:       fmt.Sprintf("Movie %d", i),
			ReleaseDate: fmt.Sprintf("%d-06-01", 2020+(i%5)),
			Popularity:  float64(i % 100),
			VoteAverage: 5.0 + float64(i%5),
			VoteCount:   i * 10,
			Runtime:     90 + i%60,
			GenreIDs:    []int{28, 18, 878}[:(i%3)+1],
		}
	}

	return movies
}

func BenchmarkCompileFilter(b *testing.B) {
	expression := `hasGenre("Action") and year > 2021 and vote_average > 7.0`

	b.Run("uncached", func(b *testing.B) {
		compiler := NewExprCompiler()
		for b.Loop() {
			if _, err := compiler.Compile(expression); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("cached", func(b *testing.B) {
		compiler := NewExprCompiler(WithCache(10))
		for b.Loop() {
			if _, err := compiler.Compile(expression); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSelect(b *testing.B) {
	movies := generateTestMovies(1000)
	names := testGenres()
	filter, err := Compile(`hasGenre("Drama") and year >= 2022`)
	if err != nil {
		b.Fatal(err)
	}

	project := func(m tmdb.Movie) Item { return FromMovie(&m, names) }
	for b.Loop() {
		Select(filter, movies, project)
	}
}
