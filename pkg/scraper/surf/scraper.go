package surf

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/enetx/g"
	"github.com/enetx/surf"
	"github.com/pkg/errors"
)

const maxErrorBodySize = 4e+6

type Scraper struct {
	timeout time.Duration
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string, funcs ...scraper.RequestOptionFunc) (io.ReadCloser, error) {
	opts := scraper.NewRequestOptions(funcs...)
	client := s.getClient(opts)

	resp := client.Get(g.String(url)).
		SetHeaders(headers(opts)).
		WithContext(ctx).
		Do()

	return s.body(resp)
}

// Post implements scraper.Scraper.
func (s *Scraper) Post(ctx context.Context, url string, form url.Values, funcs ...scraper.RequestOptionFunc) (io.ReadCloser, error) {
	opts := scraper.NewRequestOptions(funcs...)
	client := s.getClient(opts)

	data := make(map[string]string, len(form))
	for key := range form {
		data[key] = form.Get(key)
	}

	resp := client.Post(g.String(url), data).
		SetHeaders(headers(opts)).
		WithContext(ctx).
		Do()

	return s.body(resp)
}

func (s *Scraper) body(resp g.Result[*surf.Response]) (io.ReadCloser, error) {
	if resp.IsErr() {
		return nil, errors.WithStack(resp.Err())
	}

	res := resp.Ok()

	statusCode := int(res.StatusCode)
	if !scraper.IsSuccess(statusCode) {
		defer res.Body.Reader.Close()

		body, err := io.ReadAll(io.LimitReader(res.Body.Reader, maxErrorBodySize))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return nil, errors.WithStack(&scraper.StatusError{
			StatusCode: statusCode,
			Status:     http.StatusText(statusCode),
			Body:       body,
		})
	}

	return res.Body.Reader, nil
}

func (s *Scraper) getClient(opts *scraper.RequestOptions) *surf.Client {
	builder := surf.NewClient().
		Builder()

	if proxy := os.Getenv("HTTP_PROXY"); proxy != "" {
		builder = builder.Proxy(proxy)
	}

	builder = builder.Impersonate().RandomOS().Chrome().
		Timeout(s.timeout).
		Session()

	// Set after the impersonation profile, which otherwise picks its own.
	if opts.UserAgent != "" {
		builder = builder.UserAgent(opts.UserAgent)
	}

	return builder.Build()
}

func headers(opts *scraper.RequestOptions) map[string]string {
	h := make(map[string]string, len(opts.Headers))
	for key := range opts.Headers {
		h[key] = opts.Headers.Get(key)
	}

	return h
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		timeout: timeout,
	}
}

var _ scraper.Scraper = &Scraper{}
