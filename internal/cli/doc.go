// Package cli implements the command-line interface for quotescrape.
//
// The cli package provides the Cobra-based CLI: flag parsing, configuration
// layering (flags over environment over config file over defaults), and the
// single scrape command. It coordinates the config, logging, and pipeline
// packages and maps any failure to a non-zero exit code.
package cli
