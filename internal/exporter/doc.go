// Package exporter serializes extracted quotes to a tabular file.
//
// The primary format is UTF-8 CSV with the fixed header text,author,tags and
// one data row per quote in extraction order. The tags column holds the tag
// labels comma-joined into a single field. A JSON array format is available
// as an alternative.
package exporter
