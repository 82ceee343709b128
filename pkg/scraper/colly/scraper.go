package colly

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/gocolly/colly"
	"github.com/pkg/errors"
)

// Scraper fetches pages through a gocolly collector. A fresh collector is
// created for each request so that user agents never leak between engines.
type Scraper struct {
	timeout time.Duration
}

// Get implements scraper.Scraper.
func (s *Scraper) Get(ctx context.Context, url string, funcs ...scraper.RequestOptionFunc) (io.ReadCloser, error) {
	return s.do(ctx, scraper.NewRequestOptions(funcs...), func(c *colly.Collector) error {
		return c.Visit(url)
	})
}

// Post implements scraper.Scraper.
func (s *Scraper) Post(ctx context.Context, url string, form url.Values, funcs ...scraper.RequestOptionFunc) (io.ReadCloser, error) {
	data := make(map[string]string, len(form))
	for key := range form {
		data[key] = form.Get(key)
	}

	return s.do(ctx, scraper.NewRequestOptions(funcs...), func(c *colly.Collector) error {
		return c.Post(url, data)
	})
}

func (s *Scraper) do(ctx context.Context, opts *scraper.RequestOptions, visit func(c *colly.Collector) error) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	collector := s.newCollector(opts)

	var (
		body      []byte
		statusErr error
	)

	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r == nil || r.StatusCode == 0 {
			return
		}

		statusErr = &scraper.StatusError{
			StatusCode: r.StatusCode,
			Status:     http.StatusText(r.StatusCode),
			Body:       r.Body,
		}
	})

	if err := visit(collector); err != nil {
		if statusErr != nil {
			return nil, errors.WithStack(statusErr)
		}

		return nil, errors.WithStack(err)
	}

	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s *Scraper) newCollector(opts *scraper.RequestOptions) *colly.Collector {
	options := []func(*colly.Collector){}
	if opts.UserAgent != "" {
		options = append(options, colly.UserAgent(opts.UserAgent))
	}

	collector := colly.NewCollector(options...)

	collector.WithTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   s.timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: s.timeout,
		ExpectContinueTimeout: 1 * time.Second,
	})

	collector.OnRequest(func(r *colly.Request) {
		for key := range opts.Headers {
			r.Headers.Set(key, opts.Headers.Get(key))
		}
	})

	return collector
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		timeout: timeout,
	}
}

var _ scraper.Scraper = &Scraper{}
