package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/danfortin/quotescrape/internal/config"
	"github.com/danfortin/quotescrape/internal/exporter"
	"github.com/danfortin/quotescrape/internal/logging"
	"github.com/danfortin/quotescrape/internal/pipeline"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL     string
	flagOutput  string
	flagFormat  string
	flagProxy   string
	flagConfig  string
	flagTimeout time.Duration
	flagRaise   bool
	flagTags    []string
	flagAuthor  string
	flagLogJSON bool
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotescrape",
		Short: "Scrape a quotes page and export the records to CSV",
		Long: `A CLI tool that fetches a static quotes page, extracts one record per
quote block (text, author, tags), and writes the records to a CSV or JSON file.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagURL, "url", config.DefaultURL, "Target page URL")
	cmd.Flags().StringVar(&flagOutput, "output", config.DefaultOutput, "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", "csv", "Output format: csv or json")
	cmd.Flags().StringVar(&flagProxy, "proxy", "", "Proxy endpoint, e.g. http://127.0.0.1:8080")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Config file path (default quotescrape.yaml if present)")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Request timeout (default 30s)")
	cmd.Flags().BoolVar(&flagRaise, "raise-for-status", false, "Treat 4xx/5xx responses as failures")
	cmd.Flags().StringSliceVar(&flagTags, "tag", nil, "Only export quotes carrying one of these tags")
	cmd.Flags().StringVar(&flagAuthor, "author", "", "Only export quotes whose author contains this text")
	cmd.Flags().BoolVar(&flagLogJSON, "log-json", false, "Emit logs as JSON")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	level := "info"
	if flagVerbose {
		level = "debug"
	}
	encoding := "console"
	if flagLogJSON {
		encoding = "json"
	}
	log, err := logging.New(level, encoding)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	file, err := config.LoadFile(flagConfig)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(file)
	if err != nil {
		return err
	}

	// Flags beat environment and config file, but only when actually set.
	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = flagURL
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("format") {
		format, err := exporter.ParseFormat(flagFormat)
		if err != nil {
			return err
		}
		cfg.Format = format
	}
	if flags.Changed("proxy") {
		cfg.Request.Proxy = flagProxy
	}
	if flags.Changed("timeout") {
		cfg.Request.Timeout = flagTimeout
	}
	if flags.Changed("raise-for-status") {
		cfg.Request.RaiseForStatus = flagRaise
	}
	if flags.Changed("tag") {
		cfg.Filter.Tags = flagTags
	}
	if flags.Changed("author") {
		cfg.Filter.Author = flagAuthor
	}

	summary, err := pipeline.Run(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d of %d quotes to %s\n",
		summary.Exported, summary.Extracted, summary.Output)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
