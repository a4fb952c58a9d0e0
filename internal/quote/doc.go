// Package quote provides the data model for scraped quotations.
//
// A Quote holds the text, attributed author, and ordered tag labels extracted
// from one quote block. Quotes collections preserve document order and allow
// duplicates. The package also provides tag/author/text filtering over a
// collection.
package quote
