// Package pipeline runs the fetch, extract, export sequence of one scrape.
//
// The pipeline is strictly linear and single-shot: one page fetched, its
// quote blocks extracted in document order, the optional filter applied, and
// the result written to the destination file. Every error aborts the run.
package pipeline
