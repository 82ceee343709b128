package tool

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bornholm/genai/llm"
	"github.com/bornholm/websearch/pkg/search"
	"github.com/pkg/errors"
)

func NewWebSearchTool(client search.Client) llm.Tool {
	return llm.NewFuncTool(
		"web_search",
		"execute a research on the web and return the ranked result links of one result page",
		llm.NewJSONSchema().
			RequiredProperty("query", "the search terms", "string").
			RequiredProperty("page", "the result page to retrieve, starting at 1", "number"),
		func(ctx context.Context, params map[string]any) (string, error) {
			query, err := llm.ToolParam[string](params, "query")
			if err != nil {
				return "", errors.WithStack(err)
			}

			page, err := llm.ToolParam[float64](params, "page")
			if err != nil {
				return "", errors.WithStack(err)
			}

			if page < 1 {
				page = 1
			}

			slog.DebugContext(ctx, "executing a web search", slog.String("query", query), slog.Int("page", int(page)))

			results, err := client.Search(ctx, query, int(page))
			if err != nil {
				return "", errors.WithStack(err)
			}

			return FormatResults(results), nil
		},
	)
}

// FormatResults renders results as a markdown document.
func FormatResults(results []search.Result) string {
	var sb strings.Builder

	sb.WriteString("# Search results\n\n")

	if len(results) == 0 {
		sb.WriteString("No result found.\n")
		return sb.String()
	}

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("## %d. %s\n\n", r.Rank(), r.URL()))
		sb.WriteString(fmt.Sprintf("**Engine**: %s\n", r.RetrievedFrom()))
		sb.WriteString(fmt.Sprintf("**Page**: %d\n\n", r.Page()))
	}

	return sb.String()
}
