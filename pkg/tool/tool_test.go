package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/bornholm/websearch/pkg/search"
	"github.com/pkg/errors"
)

func TestFormatResults(t *testing.T) {
	results, err := search.ParseDuckDuckGo(strings.NewReader(`
		<a class="result__a" href="https://go.dev/">Go</a>
		<a class="result__a" href="https://pkg.go.dev/">Packages</a>
	`), 2)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	markdown := FormatResults(results)

	for _, expected := range []string{
		"## 1. https://go.dev/",
		"## 2. https://pkg.go.dev/",
		"**Engine**: Duckduckgo",
		"**Page**: 2",
	} {
		if !strings.Contains(markdown, expected) {
			t.Errorf("expected markdown to contain %q, got:\n%s", expected, markdown)
		}
	}
}

func TestFormatNoResults(t *testing.T) {
	if e, g := "No result found.", FormatResults(nil); !strings.Contains(g, e) {
		t.Errorf("expected %q in %q", e, g)
	}
}

func TestScrapeMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>Ignored</title></head><body><h1>Hello</h1><p>Some <strong>bold</strong> text.</p></body></html>`))
	}))
	defer server.Close()

	markdown, err := ScrapeMarkdown(context.Background(), scraper.NewHTTPScraper(server.Client()), server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(markdown, "# Hello") {
		t.Errorf("expected a markdown heading, got:\n%s", markdown)
	}

	if !strings.Contains(markdown, "**bold**") {
		t.Errorf("expected bold text, got:\n%s", markdown)
	}

	if strings.Contains(markdown, "Ignored") {
		t.Errorf("expected head to be ignored, got:\n%s", markdown)
	}
}

func TestDefaultTools(t *testing.T) {
	tools := DefaultTools(scraper.DefaultScraper())

	if e, g := 2, len(tools); e != g {
		t.Errorf("len(tools): expected %d, got %d", e, g)
	}
}
