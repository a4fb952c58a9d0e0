package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/danfortin/quotescrape/internal/quote"
)

// Structural predicates for the quotes page markup.
const (
	containerSelector = "div.quote"
	textSelector      = "span.text"
	authorSelector    = "small.author"
	tagSelector       = "a.tag"
)

// Decorative curly quote glyphs wrapping the text on the source page.
const (
	openingGlyph = "“" // “
	closingGlyph = "”" // ”
)

// MalformedDocumentError indicates a quote block was missing its text or
// author element. The whole extraction fails; partial results are never
// returned for structurally broken input.
type MalformedDocumentError struct {
	Index   int    // position of the broken block in document order
	Missing string // "text" or "author"
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("quote block %d: missing %s element", e.Index, e.Missing)
}

// Extract parses HTML text and returns one quote per matched block, in
// document order. It is a pure function of its input: no I/O, no state.
func Extract(html string) (quote.Quotes, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	quotes := make(quote.Quotes, 0)
	var extractErr error

	doc.Find(containerSelector).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := sel.Find(textSelector).First()
		if text.Length() == 0 {
			extractErr = &MalformedDocumentError{Index: i, Missing: "text"}
			return false
		}

		author := sel.Find(authorSelector).First()
		if author.Length() == 0 {
			extractErr = &MalformedDocumentError{Index: i, Missing: "author"}
			return false
		}

		var tags []string
		sel.Find(tagSelector).Each(func(_ int, tag *goquery.Selection) {
			tags = append(tags, tag.Text())
		})

		quotes = append(quotes, quote.New(
			stripGlyphs(strings.TrimSpace(text.Text())),
			author.Text(),
			tags,
		))
		return true
	})

	if extractErr != nil {
		return nil, extractErr
	}

	return quotes, nil
}

// stripGlyphs removes the decorative curly quotes from the extremities if
// present. This is a literal trim of the two fixed glyphs, nothing more.
func stripGlyphs(s string) string {
	s = strings.TrimPrefix(s, openingGlyph)
	s = strings.TrimSuffix(s, closingGlyph)
	return s
}
