package config

import (
	"fmt"
	"os"
	"time"

	"github.com/danfortin/quotescrape/internal/exporter"
	"github.com/danfortin/quotescrape/internal/fetcher"
	"github.com/danfortin/quotescrape/internal/quote"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURL    = "https://quotes.toscrape.com/"
	DefaultOutput = "quotes.csv"

	// DefaultFileName is looked up in the working directory when no
	// --config flag is given.
	DefaultFileName = "quotescrape.yaml"

	// Environment override variables
	EnvURL    = "QUOTESCRAPE_URL"
	EnvOutput = "QUOTESCRAPE_OUTPUT"
	EnvProxy  = "QUOTESCRAPE_PROXY"
)

// File represents the structure of an optional quotescrape.yaml.
type File struct {
	URL            string            `yaml:"url,omitempty"`
	Output         string            `yaml:"output,omitempty"`
	Format         string            `yaml:"format,omitempty"`
	Proxy          string            `yaml:"proxy,omitempty"`
	Timeout        string            `yaml:"timeout,omitempty"` // Go duration string, e.g. "30s"
	RaiseForStatus bool              `yaml:"raise_for_status,omitempty"`
	Headers        map[string]string `yaml:"headers,omitempty"`
	Cookies        map[string]string `yaml:"cookies,omitempty"`
	Filter         quote.Filter      `yaml:"filter,omitempty"`
}

// Config is the fully resolved run configuration.
type Config struct {
	URL     string
	Output  string
	Format  exporter.Format
	Request fetcher.Config
	Filter  quote.Filter
}

// LoadFile loads a config file. With an empty path the default file name is
// tried and a missing file is not an error (returns nil). An explicit path
// that does not exist or cannot be parsed is an error.
func LoadFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &f, nil
}

// Resolve merges defaults, the config file (may be nil), and environment
// overrides into a run configuration. Flag overrides are applied by the
// caller on top, so the full precedence is flags > env > file > defaults.
func Resolve(f *File) (*Config, error) {
	cfg := &Config{
		URL:    DefaultURL,
		Output: DefaultOutput,
		Format: exporter.FormatCSV,
	}

	if f != nil {
		if f.URL != "" {
			cfg.URL = f.URL
		}
		if f.Output != "" {
			cfg.Output = f.Output
		}
		if f.Format != "" {
			format, err := exporter.ParseFormat(f.Format)
			if err != nil {
				return nil, fmt.Errorf("config file: %w", err)
			}
			cfg.Format = format
		}
		if f.Timeout != "" {
			timeout, err := time.ParseDuration(f.Timeout)
			if err != nil {
				return nil, fmt.Errorf("config file: invalid timeout: %w", err)
			}
			cfg.Request.Timeout = timeout
		}
		cfg.Request.Proxy = f.Proxy
		cfg.Request.RaiseForStatus = f.RaiseForStatus
		cfg.Request.Headers = f.Headers
		cfg.Request.Cookies = f.Cookies
		cfg.Filter = f.Filter
	}

	if url := os.Getenv(EnvURL); url != "" {
		cfg.URL = url
	}
	if output := os.Getenv(EnvOutput); output != "" {
		cfg.Output = output
	}
	if proxy := os.Getenv(EnvProxy); proxy != "" {
		cfg.Request.Proxy = proxy
	}

	return cfg, nil
}
