package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/moviedb/tmdb"
)

var (
	matchYear     string
	matchDistance int
)

// matchCmd resolves a free text title to TMDb movies
var matchCmd = &cobra.Command{
	Use:   "match <title>",
	Short: "Find the TMDb movies matching a title and optional year",
	Long: `Search for a title and keep only the results whose original or translated
title is within --distance edits of it. When --year is given, results from that
year are preferred but a title match from another year is still reported.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVarP(&matchYear, "year", "y", "", "release year")
	matchCmd.Flags().IntVarP(&matchDistance, "distance", "d", 0, "maximum edit distance between titles (0 = exact)")
}

func runMatch(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	// The year is only a preference, so search without it
	results, err := client.Search.Movies(cmd.Context(), title, searchOptions(0))
	if err != nil {
		return err
	}

	var exactYear, otherYear []tmdb.Movie
	for _, m := range results.Results {
		if !tmdb.CompareMovies(&m, title, matchYear, matchDistance) {
			continue
		}
		if matchYear != "" && strings.HasPrefix(m.ReleaseDate, matchYear) {
			exactYear = append(exactYear, m)
		} else {
			otherYear = append(otherYear, m)
		}
	}
	matches := append(make([]tmdb.Movie, 0, len(exactYear)+len(otherYear)), exactYear...)
	matches = append(matches, otherYear...)

	logger.Debug().
		Str("title", title).
		Str("year", matchYear).
		Int("searched", len(results.Results)).
		Int("matched", len(matches)).
		Msg("Matched titles")

	if len(matches) == 0 && cfg.Output.Format != "json" {
		fmt.Printf("No movie matches %q", title)
		if matchYear != "" {
			fmt.Printf(" (%s)", matchYear)
		}
		fmt.Println()
		return nil
	}

	return render(matches, func(w io.Writer) {
		printMovies(w, matches)
		fmt.Fprintf(w, "\n%d %s\n", len(matches), plural(len(matches), "match", "matches"))
	})
}
