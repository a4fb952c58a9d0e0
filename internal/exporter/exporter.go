package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danfortin/quotescrape/internal/quote"
	"github.com/gocarina/gocsv"
)

// Format specifies the output file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format string from a flag or config file.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s (must be 'csv' or 'json')", s)
	}
}

// TagList serializes an ordered tag sequence as one CSV field: the labels
// joined with commas. The CSV layer quotes the field, so the inner commas
// never collide with the column delimiter. An empty list is an empty field.
type TagList []string

func (t TagList) MarshalCSV() (string, error) {
	return strings.Join(t, ","), nil
}

func (t *TagList) UnmarshalCSV(s string) error {
	if s == "" {
		*t = TagList{}
		return nil
	}
	*t = strings.Split(s, ",")
	return nil
}

// row is the CSV shape of one quote: header text,author,tags.
type row struct {
	Text   string  `csv:"text"`
	Author string  `csv:"author"`
	Tags   TagList `csv:"tags"`
}

// WriteCSV writes the header row followed by one row per quote, in order.
func WriteCSV(w io.Writer, quotes quote.Quotes) error {
	rows := make([]row, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, row{Text: q.Text, Author: q.Author, Tags: TagList(q.Tags)})
	}
	return gocsv.Marshal(&rows, w)
}

// WriteJSON writes the quotes as an indented JSON array.
func WriteJSON(w io.Writer, quotes quote.Quotes) error {
	if quotes == nil {
		quotes = quote.Quotes{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(quotes)
}

// Export creates or truncates the destination file and writes the quotes in
// the given format. A failure mid-write leaves the destination contents
// undefined; this tool makes no partial-write recovery attempt.
func Export(path string, quotes quote.Quotes, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	switch format {
	case FormatJSON:
		err = WriteJSON(f, quotes)
	default:
		err = WriteCSV(f, quotes)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("writing output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}
