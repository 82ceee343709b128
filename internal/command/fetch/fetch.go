package fetch

import (
	"fmt"
	"strings"

	"github.com/bornholm/websearch/internal/command"
	"github.com/bornholm/websearch/pkg/tool"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Fetch() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "url",
			Required: true,
			Aliases:  []string{"u"},
			EnvVars:  []string{"WEBSEARCH_URL"},
			Usage:    "The url of the page to fetch",
		},
	}

	return &cli.Command{
		Name:  "fetch",
		Usage: "Fetch a web page and print it as markdown",
		Flags: append(flags, command.ScraperFlags()...),
		Action: func(cliCtx *cli.Context) error {
			url := strings.TrimSpace(cliCtx.String("url"))

			scraper, closeScraper, err := command.NewScraper(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			defer closeScraper()

			markdown, err := tool.ScrapeMarkdown(cliCtx.Context, scraper, url)
			if err != nil {
				return errors.Wrapf(err, "could not fetch '%s'", url)
			}

			if _, err := fmt.Fprintln(cliCtx.App.Writer, markdown); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
