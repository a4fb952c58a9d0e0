package quote

import "strings"

// Filter represents quote filtering criteria. All criteria are optional;
// an empty filter matches every quote.
type Filter struct {
	// Tags the quote must carry at least one of (case-insensitive exact match)
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Author name filtering (case-insensitive substring match)
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Quote text filtering (case-insensitive substring match)
	Contains string `json:"contains,omitempty" yaml:"contains,omitempty"`
}

// IsEmpty checks if the filter has any active criteria.
// Returns true if the filter would match all quotes.
func (f *Filter) IsEmpty() bool {
	return len(f.Tags) == 0 && f.Author == "" && f.Contains == ""
}

// Matches checks if a quote passes all active filter criteria.
// An empty filter matches all quotes.
func (f *Filter) Matches(q Quote) bool {
	if f.IsEmpty() {
		return true
	}

	if len(f.Tags) > 0 {
		matched := false
		for _, tag := range f.Tags {
			if q.HasTag(tag) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.Author != "" {
		if !strings.Contains(strings.ToLower(q.Author), strings.ToLower(f.Author)) {
			return false
		}
	}

	if f.Contains != "" {
		if !strings.Contains(strings.ToLower(q.Text), strings.ToLower(f.Contains)) {
			return false
		}
	}

	return true
}

// Apply filters the quotes, preserving document order.
func (f *Filter) Apply(quotes Quotes) Quotes {
	if f.IsEmpty() {
		return quotes
	}

	filtered := make(Quotes, 0, len(quotes))
	for _, q := range quotes {
		if f.Matches(q) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
