package search

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bornholm/websearch/internal/command"
	"github.com/bornholm/websearch/pkg/search"
	"github.com/bornholm/websearch/pkg/search/meta"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const allEngines = "all"

func Search() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "query",
			Required: true,
			Aliases:  []string{"q"},
			EnvVars:  []string{"WEBSEARCH_QUERY"},
			Usage:    "The search terms",
		},
		&cli.StringFlag{
			Name:    "engine",
			Value:   search.EngineGoogle.String(),
			Aliases: []string{"e"},
			EnvVars: []string{"WEBSEARCH_ENGINE"},
			Usage:   "The search engine to query (google, bing, duckduckgo, yahoo or all)",
		},
		&cli.IntFlag{
			Name:    "page",
			Value:   1,
			Aliases: []string{"p"},
			EnvVars: []string{"WEBSEARCH_PAGE"},
			Usage:   "The first result page to retrieve",
		},
		&cli.IntFlag{
			Name:    "pages",
			Value:   1,
			Aliases: []string{"n"},
			EnvVars: []string{"WEBSEARCH_PAGES"},
			Usage:   "The number of consecutive result pages to retrieve",
		},
		&cli.StringFlag{
			Name:    "format",
			Value:   FormatText,
			Aliases: []string{"f"},
			EnvVars: []string{"WEBSEARCH_FORMAT"},
			Usage:   "The output format (text, json, yaml or markdown)",
		},
		&cli.StringSliceFlag{
			Name:    "ignore",
			Aliases: []string{"i"},
			EnvVars: []string{"WEBSEARCH_IGNORE"},
			Usage:   "Glob patterns of result urls to leave out of the output",
		},
		&cli.StringFlag{
			Name:      "output",
			Value:     "-",
			Aliases:   []string{"o"},
			EnvVars:   []string{"WEBSEARCH_OUTPUT"},
			TakesFile: true,
			Usage:     "The output file, '-' for stdout",
		},
		&cli.BoolFlag{
			Name:    "save",
			EnvVars: []string{"WEBSEARCH_SAVE"},
			Usage:   "Write the results to a file named after the query",
		},
	}

	return &cli.Command{
		Name:  "search",
		Usage: "Search the web and print the ranked result links",
		Flags: append(flags, command.ScraperFlags()...),
		Action: func(cliCtx *cli.Context) error {
			query := strings.TrimSpace(cliCtx.String("query"))
			engine := cliCtx.String("engine")
			page := cliCtx.Int("page")
			pages := cliCtx.Int("pages")
			format := cliCtx.String("format")
			output := cliCtx.String("output")

			ext, err := extension(format)
			if err != nil {
				return errors.WithStack(err)
			}

			if cliCtx.Bool("save") {
				output = slug.Make(query) + ext
			}

			scraper, closeScraper, err := command.NewScraper(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			defer closeScraper()

			var client search.Client

			if strings.EqualFold(engine, allEngines) {
				client = meta.ForEngines(scraper, search.Engines()...)
			} else {
				e, err := search.ParseEngine(engine)
				if err != nil {
					return errors.WithStack(err)
				}

				client = search.NewSession(search.WithEngine(e), search.WithScraper(scraper))
			}

			results, err := searchPages(cliCtx.Context, client, query, page, pages)
			if err != nil {
				return errors.Wrap(err, "search failed")
			}

			results, err = filterResults(results, cliCtx.StringSlice("ignore")...)
			if err != nil {
				return errors.WithStack(err)
			}

			var w io.Writer = cliCtx.App.Writer

			if output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return errors.Wrapf(err, "could not create output file '%s'", output)
				}

				defer file.Close()

				w = file
			}

			if err := writeResults(w, format, results); err != nil {
				return errors.Wrap(err, "could not write results")
			}

			if output != "-" {
				slog.InfoContext(cliCtx.Context, "results written", slog.String("output", output), slog.Int("results", len(results)))
			}

			return nil
		},
	}
}

// searchPages fetches consecutive result pages, one search each, and stops
// at the first page without results.
func searchPages(ctx context.Context, client search.Client, query string, page int, pages int) ([]search.Result, error) {
	if pages < 1 {
		pages = 1
	}

	all := make([]search.Result, 0)

	for p := page; p < page+pages; p++ {
		results, err := client.Search(ctx, query, p)
		if err != nil {
			if len(results) == 0 {
				return nil, errors.WithStack(err)
			}

			// Multi-engine sweeps return what the other engines found
			slog.WarnContext(ctx, "some engines failed", slog.Int("page", p), slog.Any("error", err))
		}

		if len(results) == 0 {
			slog.DebugContext(ctx, "no more results", slog.Int("page", p))
			break
		}

		all = append(all, results...)
	}

	return all, nil
}
