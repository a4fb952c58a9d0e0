// Package extractor turns fetched HTML into quote records.
//
// The extractor walks every div.quote block in document order and pulls the
// quote text (span.text, decorative curly quotes stripped), the author
// (small.author, verbatim), and the ordered tag labels (a.tag). A block
// missing its text or author element fails the whole extraction with
// MalformedDocumentError; broken input is never silently skipped.
package extractor
