package scraper

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pkg/errors"
)

func TestHTTPScraperGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("r.Method: expected %q, got %q", http.MethodGet, r.Method)
		}

		if e, g := "test-agent", r.UserAgent(); e != g {
			t.Errorf("r.UserAgent(): expected %q, got %q", e, g)
		}

		if e, g := "en-US", r.Header.Get("Accept-Language"); e != g {
			t.Errorf("Accept-Language: expected %q, got %q", e, g)
		}

		io.WriteString(w, "<html>"+r.URL.Query().Get("q")+"</html>")
	}))
	defer server.Close()

	s := NewHTTPScraper(server.Client())

	body, err := s.Get(context.Background(), server.URL+"?q=golang", WithUserAgent("test-agent"), WithHeader("Accept-Language", "en-US"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "<html>golang</html>", string(data); e != g {
		t.Errorf("body: expected %q, got %q", e, g)
	}
}

func TestHTTPScraperPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("r.Method: expected %q, got %q", http.MethodPost, r.Method)
		}

		if err := r.ParseForm(); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}

		io.WriteString(w, r.PostForm.Get("q")+"|"+r.PostForm.Get("s"))
	}))
	defer server.Close()

	s := NewHTTPScraper(server.Client())

	form := url.Values{}
	form.Set("q", "golang")
	form.Set("s", "123")

	body, err := s.Post(context.Background(), server.URL, form)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "golang|123", string(data); e != g {
		t.Errorf("body: expected %q, got %q", e, g)
	}
}

func TestHTTPScraperStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, "slow down")
	}))
	defer server.Close()

	s := NewHTTPScraper(server.Client())

	_, err := s.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected an error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a *StatusError, got %T", errors.Cause(err))
	}

	if e, g := http.StatusTooManyRequests, statusErr.StatusCode; e != g {
		t.Errorf("statusErr.StatusCode: expected %d, got %d", e, g)
	}

	if e, g := "slow down", string(statusErr.Body); e != g {
		t.Errorf("statusErr.Body: expected %q, got %q", e, g)
	}
}
