package pipeline

import (
	"context"
	"fmt"

	"github.com/danfortin/quotescrape/internal/config"
	"github.com/danfortin/quotescrape/internal/exporter"
	"github.com/danfortin/quotescrape/internal/extractor"
	"github.com/danfortin/quotescrape/internal/fetcher"
	"go.uber.org/zap"
)

// Summary describes a completed run.
type Summary struct {
	StatusCode int    `json:"status_code"`
	Extracted  int    `json:"extracted"`
	Exported   int    `json:"exported"`
	Output     string `json:"output"`
}

// Run executes one scrape: fetch the page, extract the quotes, apply the
// configured filter, export to the destination. Any stage error aborts the
// run and is surfaced to the caller; nothing is retried.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Summary, error) {
	log.Info("fetching page", zap.String("url", cfg.URL))

	res, err := fetcher.Fetch(ctx, cfg.URL, cfg.Request)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	log.Debug("page fetched",
		zap.Int("status", res.StatusCode),
		zap.Int("bytes", len(res.Body)))

	quotes, err := extractor.Extract(res.Body)
	if err != nil {
		return nil, fmt.Errorf("extracting quotes: %w", err)
	}
	extracted := len(quotes)
	log.Debug("quotes extracted", zap.Int("count", extracted))

	quotes = cfg.Filter.Apply(quotes)
	if len(quotes) < extracted {
		log.Debug("filter applied",
			zap.Int("kept", len(quotes)),
			zap.Int("dropped", extracted-len(quotes)))
	}

	if err := exporter.Export(cfg.Output, quotes, cfg.Format); err != nil {
		return nil, fmt.Errorf("exporting quotes: %w", err)
	}

	log.Info("export complete",
		zap.Int("quotes", len(quotes)),
		zap.String("output", cfg.Output))

	return &Summary{
		StatusCode: res.StatusCode,
		Extracted:  extracted,
		Exported:   len(quotes),
		Output:     cfg.Output,
	}, nil
}
