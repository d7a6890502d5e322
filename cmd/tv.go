package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

// tvCmd represents the tv command
var tvCmd = &cobra.Command{
	Use:     "tv <id> [season [episode]]",
	Short:   "Show a TV series, season or episode",
	Args:    cobra.RangeArgs(1, 3),
	PreRunE: initializeApp,
	RunE:    runTV,
}

func init() {
	rootCmd.AddCommand(tvCmd)
}

func runTV(cmd *cobra.Command, args []string) error {
	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid number %q: must be a non-negative integer", a)
		}
		nums[i] = n
	}

	ctx := cmd.Context()
	opts := defaultOptions("external_ids")

	switch len(nums) {
	case 1:
		series, err := client.TV.Get(ctx, nums[0], opts)
		if err != nil {
			return err
		}
		return render(series, func(w io.Writer) {
			row(w, "Name:", fmt.Sprintf("%s (%s)", series.Name, yearOrDash(series.FirstAirDate)))
			row(w, "Status:", series.Status)
			row(w, "Seasons:", series.NumberOfSeasons)
			row(w, "Episodes:", series.NumberOfEpisodes)
			row(w, "Rating:", fmt.Sprintf("%.1f (%d votes)", series.VoteAverage, series.VoteCount))
			if series.ExternalIDs != nil && series.ExternalIDs.IMDbID != "" {
				row(w, "IMDb id:", series.ExternalIDs.IMDbID)
			}
			for _, s := range series.Seasons {
				row(w, fmt.Sprintf("  S%02d", s.SeasonNumber), fmt.Sprintf("%s (%d episodes)", s.Name, s.EpisodeCount))
			}
		})

	case 2:
		season, err := client.TV.Season(ctx, nums[0], nums[1], opts)
		if err != nil {
			return err
		}
		return render(season, func(w io.Writer) {
			row(w, "Season:", fmt.Sprintf("%s (%s)", season.Name, yearOrDash(season.AirDate)))
			row(w, "EPISODE", "NAME", "AIRED", "RATING")
			for _, e := range season.Episodes {
				row(w, fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.EpisodeNumber), truncate(e.Name, 50), e.AirDate, fmt.Sprintf("%.1f", e.VoteAverage))
			}
		})

	default:
		episode, err := client.TV.Episode(ctx, nums[0], nums[1], nums[2], opts)
		if err != nil {
			return err
		}
		return render(episode, func(w io.Writer) {
			row(w, "Episode:", fmt.Sprintf("S%02dE%02d %s", episode.SeasonNumber, episode.EpisodeNumber, episode.Name))
			row(w, "Aired:", episode.AirDate)
			row(w, "Rating:", fmt.Sprintf("%.1f (%d votes)", episode.VoteAverage, episode.VoteCount))
			for _, g := range episode.GuestStars {
				row(w, "Guest:", fmt.Sprintf("%s as %s", g.Name, g.Character))
			}
			if episode.Overview != "" {
				row(w, "Overview:", truncate(episode.Overview, 200))
			}
		})
	}
}
