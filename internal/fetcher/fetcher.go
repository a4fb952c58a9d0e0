package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout = 30 * time.Second
	UserAgent      = "quotescrape/1.0 (github.com/danfortin/quotescrape)"
)

// Config holds per-request settings. All fields are optional and the zero
// value is a usable default: no extra headers, no cookies, no proxy, any
// status returned transparently. A Config is never mutated by Fetch, so one
// value can be shared across calls.
type Config struct {
	Headers        map[string]string
	Cookies        map[string]string
	Proxy          string
	RaiseForStatus bool
	Timeout        time.Duration
}

// Result is a completed HTTP exchange: the numeric status code and the
// decoded response body.
type Result struct {
	StatusCode int
	Body       string
}

// TransportError indicates the request never produced a response: connection
// refusal, DNS failure, or timeout. It wraps the underlying cause.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError indicates the remote answered with a 4xx/5xx status while
// Config.RaiseForStatus was enabled.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %s", e.Status)
}

// Fetch performs one HTTP GET against url and returns the status code plus
// the body text. With cfg.RaiseForStatus disabled the body is returned
// unconditionally regardless of status; enabled, any status >= 400 becomes a
// *StatusError. Network-level failures become a *TransportError.
func Fetch(ctx context.Context, url string, cfg Config) (*Result, error) {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", UserAgent)
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
	}

	req := client.R().SetContext(ctx)
	if len(cfg.Headers) > 0 {
		req.SetHeaders(cfg.Headers)
	}
	for name, value := range cfg.Cookies {
		req.SetCookie(&http.Cookie{Name: name, Value: value})
	}

	res, err := req.Get(url)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	if cfg.RaiseForStatus && res.StatusCode() >= http.StatusBadRequest {
		return nil, &StatusError{StatusCode: res.StatusCode(), Status: res.Status()}
	}

	return &Result{
		StatusCode: res.StatusCode(),
		Body:       res.String(),
	}, nil
}
