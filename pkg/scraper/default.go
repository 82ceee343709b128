package scraper

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

var defaultScraper Scraper = NewHTTPScraper(http.DefaultClient)

func SetDefault(scraper Scraper) {
	defaultScraper = scraper
}

func DefaultScraper() Scraper {
	return defaultScraper
}

func Get(ctx context.Context, url string, funcs ...RequestOptionFunc) (io.ReadCloser, error) {
	return defaultScraper.Get(ctx, url, funcs...)
}

func Post(ctx context.Context, url string, form url.Values, funcs ...RequestOptionFunc) (io.ReadCloser, error) {
	return defaultScraper.Post(ctx, url, form, funcs...)
}
