package tool

import (
	"github.com/bornholm/genai/llm"
	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/bornholm/websearch/pkg/search"
)

// DefaultTools returns the web search and scraping tools backed by the given scraper
func DefaultTools(scraper scraper.Scraper) []llm.Tool {
	session := search.NewSession(
		search.WithEngine(search.EngineDuckDuckGo),
		search.WithScraper(scraper),
	)

	return []llm.Tool{
		NewWebSearchTool(session),
		NewScrapeWebpageTool(scraper),
	}
}
