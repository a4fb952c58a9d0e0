// Package config resolves the run configuration for a scrape.
//
// Settings come from four layers with increasing precedence: built-in
// defaults, an optional quotescrape.yaml file, QUOTESCRAPE_* environment
// variables, and command-line flags (applied by the CLI on top of the
// resolved value).
package config
