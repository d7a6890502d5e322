package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/moviedb/filter"
	"github.com/s0up4200/moviedb/tmdb"
)

var (
	discover       tmdb.Discover
	discoverFilter string
)

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover movies by server side filters",
	Long: `Discover movies using TMDb's discover filters. Results can be narrowed
further with --filter, either a preset from the config file or an expression:

  moviedb discover --year 1999 --filter 'hasGenre("Science Fiction") and vote_average > 7'`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	flags := discoverCmd.Flags()
	flags.IntVarP(&discover.Year, "year", "y", 0, "release year")
	flags.IntVar(&discover.PrimaryReleaseYear, "primary-year", 0, "primary release year")
	flags.StringVar(&discover.SortBy, "sort", "popularity.desc", "sort order, e.g. vote_average.desc")
	flags.StringVarP(&discover.WithGenres, "genres", "g", "", "genre ids; ',' for AND, '|' for OR")
	flags.StringVar(&discover.WithCompanies, "companies", "", "company ids")
	flags.IntVar(&discover.VoteCountGte, "min-votes", 0, "minimum vote count")
	flags.Float64Var(&discover.VoteAverageGte, "min-rating", 0, "minimum vote average")
	flags.StringVar(&discover.ReleaseDateGte, "released-after", "", "earliest release date (YYYY-MM-DD)")
	flags.StringVar(&discover.ReleaseDateLte, "released-before", "", "latest release date (YYYY-MM-DD)")
	flags.StringVar(&discover.CertificationCountry, "certification-country", "", "country for --certification")
	flags.StringVar(&discover.CertificationLte, "certification", "", "highest certification, e.g. PG-13")
	flags.StringVarP(&discoverFilter, "filter", "f", "", "filter expression or preset name applied to the results")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	f, err := resolveFilter(discoverFilter)
	if err != nil {
		return err
	}

	d := discover
	d.Page = page
	d.Language = cfg.TMDb.Language
	d.IncludeAdult = cfg.TMDb.IncludeAdult

	ctx := cmd.Context()
	results, err := client.Discover.Movies(ctx, d)
	if err != nil {
		return err
	}

	movies := results.Results
	if f != nil {
		names := genreNames(ctx)
		movies = filter.Select(f, movies, func(m tmdb.Movie) filter.Item { return filter.FromMovie(&m, names) })
		logger.Info().Str("filter", f.Expression()).Int("matched", len(movies)).Int("total", len(results.Results)).Msg("Applied filter")
	}

	return render(movies, func(w io.Writer) {
		printMovies(w, movies)
		pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
	})
}
