package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/moviedb/config"
	"github.com/s0up4200/moviedb/filter"
	"github.com/s0up4200/moviedb/tmdb"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tmdb.Client
	filters *filter.Manager

	// Command flags
	outputFormat string
	language     string
	page         int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "moviedb",
	Short: "Query TheMovieDB from the command line",
	Long: `moviedb is a CLI for TheMovieDB (TMDb) v3 API. It searches movies, TV series,
people and companies, shows details with appended sub-resources, discovers titles
by filter and narrows results further with expressions.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: table or json (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&language, "language", "l", "", "ISO 639-1 response language (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&page, "page", "p", 0, "result page for paged endpoints")
}

// initializeApp loads the configuration and creates the TMDb client. Commands
// that talk to TMDb use it as PreRunE.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		if outputFormat != "table" && outputFormat != "json" {
			return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
		}
		cfg.Output.Format = outputFormat
	}
	if language != "" {
		cfg.TMDb.Language = language
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	opts := []tmdb.Option{
		tmdb.WithBaseURL(cfg.TMDb.BaseURL),
		tmdb.WithTimeout(cfg.TMDb.Timeout),
	}
	if proxy := cfg.TMDb.ProxyURL(); proxy != nil {
		opts = append(opts, tmdb.WithProxy(proxy))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.TMDb.Timeout)
	defer cancel()

	client, err = tmdb.NewClient(ctx, cfg.TMDb.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TMDb client: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.TMDb.BaseURL).
		Str("language", cfg.TMDb.Language).
		Msg("TMDb client ready")

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; colors only when stderr is a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// defaultOptions returns the per-call options from config and flags
func defaultOptions(appendTo ...string) tmdb.Options {
	return tmdb.Options{
		Language:         cfg.TMDb.Language,
		Page:             page,
		AppendToResponse: appendTo,
	}
}

func searchOptions(year int) tmdb.SearchOptions {
	return tmdb.SearchOptions{
		Options:      defaultOptions(),
		Year:         year,
		IncludeAdult: cfg.TMDb.IncludeAdult,
	}
}

// resolveFilter returns nil when no expression or preset was given
func resolveFilter(nameOrExpression string) (filter.CompiledFilter, error) {
	if strings.TrimSpace(nameOrExpression) == "" {
		return nil, nil
	}
	f, err := filters.Resolve(nameOrExpression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// genreNames fetches the movie genre list so id-only results can be filtered by name
func genreNames(ctx context.Context) filter.GenreNames {
	genres, err := client.Genres.List(ctx, tmdb.Options{Language: cfg.TMDb.Language})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load genre names, genre filters will only see ids")
		return nil
	}
	return filter.NewGenreNames(genres.Results)
}
