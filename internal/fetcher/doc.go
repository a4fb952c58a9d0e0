// Package fetcher performs the single outbound HTTP GET of a scrape run.
//
// Fetch takes the target URL and an immutable per-request Config (headers,
// cookies, proxy, timeout, raise-for-status) and returns the status code and
// decoded body text. Network-level failures surface as TransportError;
// 4xx/5xx responses surface as StatusError only when raise-for-status is
// enabled, otherwise the body is returned transparently.
package fetcher
