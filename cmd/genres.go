package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

var genreIncludeAll bool

// genresCmd lists genres, or the movies of one genre
var genresCmd = &cobra.Command{
	Use:     "genres [id]",
	Short:   "List movie genres, or the movies of a genre",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if len(args) == 0 {
			genres, err := client.Genres.List(ctx, defaultOptions())
			if err != nil {
				return err
			}
			return render(genres.Results, func(w io.Writer) {
				row(w, "ID", "NAME")
				for _, g := range genres.Results {
					row(w, g.ID, g.Name)
				}
			})
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid genre id %q", args[0])
		}
		results, err := client.Genres.Movies(ctx, id, genreIncludeAll, defaultOptions())
		if err != nil {
			return err
		}
		return render(results, func(w io.Writer) {
			printMovies(w, results.Results)
			pageFooter(w, results.Page, results.TotalPages, results.TotalResults)
		})
	},
}

// jobsCmd lists the crew departments and their jobs
var jobsCmd = &cobra.Command{
	Use:     "jobs",
	Short:   "List crew departments and jobs",
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs, err := client.Jobs.List(cmd.Context())
		if err != nil {
			return err
		}
		return render(jobs.Results, func(w io.Writer) {
			for _, d := range jobs.Results {
				row(w, d.Department, fmt.Sprintf("%d %s", len(d.Jobs), plural(len(d.Jobs), "job", "jobs")))
			}
		})
	},
}

func init() {
	rootCmd.AddCommand(genresCmd, jobsCmd)

	genresCmd.Flags().BoolVar(&genreIncludeAll, "all", false, "include movies with few votes")
}
