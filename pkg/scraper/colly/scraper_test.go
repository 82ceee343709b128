package colly

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/pkg/errors"
)

func TestScraper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, "not here")
		default:
			if err := r.ParseForm(); err != nil {
				t.Errorf("%+v", errors.WithStack(err))
			}

			io.WriteString(w, r.Method+"|"+r.UserAgent()+"|"+r.Form.Get("q"))
		}
	}))
	defer server.Close()

	s := NewScraper(5 * time.Second)
	ctx := context.Background()

	body, err := s.Get(ctx, server.URL+"/search?q=golang", scraper.WithUserAgent("test-agent"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "GET|test-agent|golang", readAll(t, body); e != g {
		t.Errorf("body: expected %q, got %q", e, g)
	}

	form := url.Values{}
	form.Set("q", "gopher")

	body, err = s.Post(ctx, server.URL+"/html/", form, scraper.WithUserAgent("test-agent"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "POST|test-agent|gopher", readAll(t, body); e != g {
		t.Errorf("body: expected %q, got %q", e, g)
	}

	_, err = s.Get(ctx, server.URL+"/missing")

	var statusErr *scraper.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a *scraper.StatusError, got %v", err)
	}

	if e, g := http.StatusNotFound, statusErr.StatusCode; e != g {
		t.Errorf("statusErr.StatusCode: expected %d, got %d", e, g)
	}
}

func TestScraperCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScraper(time.Second)

	if _, err := s.Get(ctx, "http://127.0.0.1:0/"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func readAll(t *testing.T, body io.ReadCloser) string {
	t.Helper()

	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return string(data)
}
