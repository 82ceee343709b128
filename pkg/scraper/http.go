package scraper

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Restrict error bodies to 4MB
const maxErrorBodySize = 4e+6

type HTTPScraper struct {
	client *http.Client
}

// Get implements scraper.Scraper.
func (s *HTTPScraper) Get(ctx context.Context, url string, funcs ...RequestOptionFunc) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return s.do(req, NewRequestOptions(funcs...))
}

// Post implements scraper.Scraper.
func (s *HTTPScraper) Post(ctx context.Context, url string, form url.Values, funcs ...RequestOptionFunc) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.do(req, NewRequestOptions(funcs...))
}

func (s *HTTPScraper) do(req *http.Request, opts *RequestOptions) (io.ReadCloser, error) {
	for key, values := range opts.Headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if !IsSuccess(res.StatusCode) {
		defer res.Body.Close()

		body, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBodySize))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return nil, errors.WithStack(&StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       body,
		})
	}

	return res.Body, nil
}

func NewHTTPScraper(client *http.Client) *HTTPScraper {
	return &HTTPScraper{
		client: client,
	}
}

var _ Scraper = &HTTPScraper{}
