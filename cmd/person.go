package cmd

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s0up4200/moviedb/tmdb"
)

var personCreditLimit int

// personCmd represents the person command
var personCmd = &cobra.Command{
	Use:     "person <id>",
	Short:   "Show a person with their most recent credits",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runPerson,
}

var personPopularCmd = &cobra.Command{
	Use:     "popular",
	Short:   "List popular people",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := client.People.Popular(cmd.Context(), defaultOptions())
		if err != nil {
			return err
		}
		return render(results, func(w io.Writer) {
			row(w, "ID", "NAME", "POPULARITY")
			for _, p := range results.Results {
				row(w, p.ID, p.Name, fmt.Sprintf("%.1f", p.Popularity))
			}
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

func init() {
	rootCmd.AddCommand(personCmd)
	personCmd.AddCommand(personPopularCmd)

	personCmd.Flags().IntVar(&personCreditLimit, "credits", 10, "number of credits to show")
}

func runPerson(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid person id %q", args[0])
	}

	ctx := cmd.Context()
	person, err := client.People.Get(ctx, id, defaultOptions())
	if err != nil {
		return err
	}
	credits, err := client.People.Credits(ctx, id, defaultOptions())
	if err != nil {
		return err
	}
	person.Credits = credits

	// Newest first; undated credits last
	cast := slices.Clone(credits.Cast)
	slices.SortStableFunc(cast, func(a, b tmdb.PersonCredit) int {
		return cmp.Compare(b.ReleaseDate, a.ReleaseDate)
	})
	if personCreditLimit >= 0 && len(cast) > personCreditLimit {
		cast = cast[:personCreditLimit]
	}

	return render(person, func(w io.Writer) {
		row(w, "Name:", person.Name)
		if person.Birthday != "" {
			row(w, "Born:", fmt.Sprintf("%s %s", person.Birthday, person.PlaceOfBirth))
		}
		if person.Deathday != "" {
			row(w, "Died:", person.Deathday)
		}
		row(w, "Credits:", fmt.Sprintf("%d cast, %d crew", len(credits.Cast), len(credits.Crew)))
		for _, c := range cast {
			title := cmp.Or(c.Title, c.Name)
			row(w, "  "+yearOrDash(c.ReleaseDate), fmt.Sprintf("%s as %s", truncate(title, 50), c.Character))
		}
	})
}
