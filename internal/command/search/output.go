package search

import (
	"encoding/json"
	"io"

	"github.com/bornholm/websearch/pkg/search"
	"github.com/bornholm/websearch/pkg/tool"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

var extensions = map[string]string{
	FormatText:     ".txt",
	FormatJSON:     ".json",
	FormatYAML:     ".yaml",
	FormatMarkdown: ".md",
}

func extension(format string) (string, error) {
	ext, exists := extensions[format]
	if !exists {
		return "", errors.Errorf("unknown output format '%s'", format)
	}

	return ext, nil
}

func writeResults(w io.Writer, format string, results []search.Result) error {
	switch format {
	case FormatText:
		for i, r := range results {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return errors.WithStack(err)
				}
			}

			if err := r.PrintInfo(w); err != nil {
				return errors.WithStack(err)
			}
		}

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return errors.WithStack(err)
		}

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(results); err != nil {
			return errors.WithStack(err)
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

	case FormatMarkdown:
		if _, err := io.WriteString(w, tool.FormatResults(results)); err != nil {
			return errors.WithStack(err)
		}

	default:
		return errors.Errorf("unknown output format '%s'", format)
	}

	return nil
}

// filterResults drops the results whose url matches one of the given glob
// patterns. Remaining results keep their original rank.
func filterResults(results []search.Result, patterns ...string) ([]search.Result, error) {
	if len(patterns) == 0 {
		return results, nil
	}

	ignored := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ignore pattern '%s'", p)
		}

		ignored = append(ignored, g)
	}

	filtered := make([]search.Result, 0, len(results))

	for _, r := range results {
		match := false
		for _, g := range ignored {
			if g.Match(r.URL()) {
				match = true
				break
			}
		}

		if match {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered, nil
}
