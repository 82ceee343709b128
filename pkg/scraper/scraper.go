package scraper

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

type Scraper interface {
	Get(ctx context.Context, url string, funcs ...RequestOptionFunc) (io.ReadCloser, error)
	Post(ctx context.Context, url string, form url.Values, funcs ...RequestOptionFunc) (io.ReadCloser, error)
}

type RequestOptions struct {
	UserAgent string
	Headers   http.Header
}

type RequestOptionFunc func(opts *RequestOptions)

// WithUserAgent sets the User-Agent header sent with the request.
func WithUserAgent(userAgent string) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.UserAgent = userAgent
	}
}

// WithHeader adds an arbitrary header to the request.
func WithHeader(key, value string) RequestOptionFunc {
	return func(opts *RequestOptions) {
		opts.Headers.Add(key, value)
	}
}

func NewRequestOptions(funcs ...RequestOptionFunc) *RequestOptions {
	opts := &RequestOptions{
		Headers: http.Header{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
