package quote

import "strings"

// Quote represents one scraped quotation
type Quote struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
}

// Quotes is an ordered collection of quotes, in document order.
// Duplicates are permitted; the source page decides.
type Quotes []Quote

// New creates a Quote from the three extracted values. The tags slice is
// copied so later mutation of the caller's slice cannot leak in.
func New(text, author string, tags []string) Quote {
	copied := make([]string, len(tags))
	copy(copied, tags)
	return Quote{
		Text:   text,
		Author: author,
		Tags:   copied,
	}
}

// HasTag reports whether the quote carries the given tag label
// (case-insensitive exact match).
func (q Quote) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TagString returns the tags joined with commas, the encoding used for the
// single CSV tags field. An empty tag list yields an empty string.
func (q Quote) TagString() string {
	return strings.Join(q.Tags, ",")
}
