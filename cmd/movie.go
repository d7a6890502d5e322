package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/moviedb/tmdb"
)

var movieAppend []string

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id|imdb-id>...",
	Short: "Show movie details",
	Long: `Show details for one or more movies. Arguments are TMDb ids or IMDb ids
(tt0133093). Sub-resources such as credits, releases or keywords can be
appended to the same request with --append.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runMovie,
}

var movieListCmd = &cobra.Command{
	Use:       "list <popular|top-rated|upcoming|now-playing|latest>",
	Short:     "Show one of the curated movie lists",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"popular", "top-rated", "upcoming", "now-playing", "latest"},
	PreRunE:   initializeApp,
	RunE:      runMovieList,
}

func init() {
	rootCmd.AddCommand(movieCmd)
	movieCmd.AddCommand(movieListCmd)

	movieCmd.Flags().StringSliceVarP(&movieAppend, "append", "a", nil, "sub-resources to append (credits,images,keywords,releases,trailers,translations,similar,reviews,lists)")
}

func runMovie(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts := defaultOptions(movieAppend...)
	movies := make([]*tmdb.Movie, len(args))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.TMDb.Concurrency)

	for i, arg := range args {
		g.Go(func() error {
			var (
				m   *tmdb.Movie
				err error
			)
			if strings.HasPrefix(arg, "tt") {
				m, err = client.Movies.GetByIMDb(ctx, arg, opts)
			} else {
				id, convErr := strconv.Atoi(arg)
				if convErr != nil {
					return fmt.Errorf("invalid movie id %q", arg)
				}
				m, err = client.Movies.Get(ctx, id, opts)
			}
			if err != nil {
				return fmt.Errorf("movie %s: %w", arg, err)
			}
			movies[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug().Int("count", len(movies)).Msg("Fetched movies")

	return render(movies, func(w io.Writer) {
		for i, m := range movies {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printMovieDetail(w, m)
		}
	})
}

func runMovieList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	opts := defaultOptions()

	var (
		results *tmdb.ResultsList[tmdb.Movie]
		err     error
	)
	switch args[0] {
	case "popular":
		results, err = client.Movies.Popular(ctx, opts)
	case "top-rated":
		results, err = client.Movies.TopRated(ctx, opts)
	case "upcoming":
		results, err = client.Movies.Upcoming(ctx, opts)
	case "now-playing":
		results, err = client.Movies.NowPlaying(ctx, opts)
	case "latest":
		m, err := client.Movies.Latest(ctx)
		if err != nil {
			return err
		}
		return render(m, func(w io.Writer) { printMovieDetail(w, m) })
	default:
		return fmt.Errorf("unknown movie list %q", args[0])
	}
	if err != nil {
		return err
	}

	return render(results, func(w io.Writer) {
		printMovies(w, results.Results)
		pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
	})
}

func printMovieDetail(w io.Writer, m *tmdb.Movie) {
	row(w, "Title:", fmt.Sprintf("%s (%s)", m.Title, yearOrDash(m.ReleaseDate)))
	if m.OriginalTitle != "" && m.OriginalTitle != m.Title {
		row(w, "Original title:", m.OriginalTitle)
	}
	row(w, "TMDb id:", m.ID)
	if m.IMDbID != "" {
		row(w, "IMDb id:", m.IMDbID)
	}
	if m.Tagline != "" {
		row(w, "Tagline:", m.Tagline)
	}
	if m.Runtime > 0 {
		row(w, "Runtime:", fmt.Sprintf("%d min", m.Runtime))
	}
	row(w, "Rating:", fmt.Sprintf("%.1f (%d votes)", m.VoteAverage, m.VoteCount))

	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		row(w, "Genres:", strings.Join(names, ", "))
	}

	if m.Credits != nil {
		directors := m.Credits.Directors()
		names := make([]string, len(directors))
		for i, d := range directors {
			names[i] = d.Name
		}
		if len(names) > 0 {
			row(w, "Directed by:", strings.Join(names, ", "))
		}
		for i, c := range m.Credits.Cast {
			if i == 5 {
				break
			}
			label := ""
			if i == 0 {
				label = "Starring:"
			}
			row(w, label, fmt.Sprintf("%s as %s", c.Name, c.Character))
		}
	}

	if m.PosterPath != "" {
		if poster, err := client.CreateImageURL(m.PosterPath, cfg.Output.ImageSize); err == nil {
			row(w, "Poster:", poster.String())
		}
	}

	if m.Overview != "" {
		row(w, "Overview:", truncate(m.Overview, 200))
	}
}
