package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/moviedb/filter"
	"github.com/s0up4200/moviedb/tmdb"
)

var (
	searchYear   int
	searchFilter string
)

// searchCmd groups the search endpoints
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search TMDb by name",
}

var searchMovieCmd = &cobra.Command{
	Use:     "movie <query>",
	Short:   "Search movies by title",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFilter(searchFilter)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		results, err := client.Search.Movies(ctx, strings.Join(args, " "), searchOptions(searchYear))
		if err != nil {
			return err
		}

		movies := results.Results
		if f != nil {
			names := genreNames(ctx)
			movies = filter.Select(f, movies, func(m tmdb.Movie) filter.Item { return filter.FromMovie(&m, names) })
			logger.Debug().Str("filter", f.Expression()).Int("matched", len(movies)).Int("total", len(results.Results)).Msg("Filtered results")
		}

		return render(movies, func(w io.Writer) {
			printMovies(w, movies)
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

var searchTVCmd = &cobra.Command{
	Use:     "tv <query>",
	Short:   "Search TV series by name",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFilter(searchFilter)
		if err != nil {
			return err
		}

		results, err := client.Search.TV(cmd.Context(), strings.Join(args, " "), searchOptions(searchYear))
		if err != nil {
			return err
		}

		series := results.Results
		if f != nil {
			series = filter.Select(f, series, func(s tmdb.TVSeries) filter.Item { return filter.FromTV(&s, nil) })
		}

		return render(series, func(w io.Writer) {
			row(w, "ID", "NAME", "FIRST AIRED", "RATING")
			for _, s := range series {
				row(w, s.ID, truncate(s.Name, 50), yearOrDash(s.FirstAirDate), fmt.Sprintf("%.1f", s.VoteAverage))
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

var searchPersonCmd = &cobra.Command{
	Use:     "person <query>",
	Short:   "Search people by name",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := client.Search.People(cmd.Context(), strings.Join(args, " "), searchOptions(0))
		if err != nil {
			return err
		}

		return render(results, func(w io.Writer) {
			row(w, "ID", "NAME", "POPULARITY", "KNOWN FOR")
			for _, p := range results.Results {
				known := make([]string, 0, len(p.KnownFor))
				for _, m := range p.KnownFor {
					if m.Title != "" {
						known = append(known, m.Title)
					}
				}
				row(w, p.ID, p.Name, fmt.Sprintf("%.1f", p.Popularity), truncate(strings.Join(known, ", "), 60))
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

var searchCompanyCmd = &cobra.Command{
	Use:     "company <query>",
	Short:   "Search production companies",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := client.Search.Companies(cmd.Context(), strings.Join(args, " "), searchOptions(0))
		if err != nil {
			return err
		}
		return render(results, func(w io.Writer) {
			row(w, "ID", "NAME")
			for _, c := range results.Results {
				row(w, c.ID, c.Name)
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

var searchCollectionCmd = &cobra.Command{
	Use:     "collection <query>",
	Short:   "Search movie collections",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := client.Search.Collections(cmd.Context(), strings.Join(args, " "), searchOptions(0))
		if err != nil {
			return err
		}
		return render(results, func(w io.Writer) {
			row(w, "ID", "NAME")
			for _, c := range results.Results {
				row(w, c.ID, c.Name)
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

var searchKeywordCmd = &cobra.Command{
	Use:     "keyword <query>",
	Short:   "Search keywords",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := client.Search.Keywords(cmd.Context(), strings.Join(args, " "), searchOptions(0))
		if err != nil {
			return err
		}
		return render(results, func(w io.Writer) {
			row(w, "ID", "NAME")
			for _, k := range results.Results {
				row(w, k.ID, k.Name)
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

var searchListCmd = &cobra.Command{
	Use:     "list <query>",
	Short:   "Search user lists",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := client.Search.Lists(cmd.Context(), strings.Join(args, " "), searchOptions(0))
		if err != nil {
			return err
		}
		return render(results, func(w io.Writer) {
			row(w, "ID", "NAME", "ITEMS", "FAVORITES")
			for _, l := range results.Results {
				row(w, l.ID, truncate(l.Name, 50), l.ItemCount, l.FavoriteCount)
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.AddCommand(searchMovieCmd, searchTVCmd, searchPersonCmd, searchCompanyCmd,
		searchCollectionCmd, searchKeywordCmd, searchListCmd)

	for _, c := range []*cobra.Command{searchMovieCmd, searchTVCmd} {
		c.Flags().IntVarP(&searchYear, "year", "y", 0, "restrict to a release (or first air) year")
		c.Flags().StringVarP(&searchFilter, "filter", "f", "", "filter expression or preset name applied to the results")
	}
}

// printMovies writes the common movie table
func printMovies(w io.Writer, movies []tmdb.Movie) {
	row(w, "ID", "TITLE", "YEAR", "RATING", "VOTES")
	for _, m := range movies {
		row(w, m.ID, truncate(m.Title, 50), yearOrDash(m.ReleaseDate), fmt.Sprintf("%.1f", m.VoteAverage), m.VoteCount)
	}
}
