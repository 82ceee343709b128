package command

import (
	"net/http"
	"time"

	"github.com/bornholm/websearch/pkg/scraper"
	"github.com/bornholm/websearch/pkg/scraper/chromedp"
	"github.com/bornholm/websearch/pkg/scraper/colly"
	"github.com/bornholm/websearch/pkg/scraper/surf"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	ScraperHTTP     = "http"
	ScraperSurf     = "surf"
	ScraperColly    = "colly"
	ScraperChromedp = "chromedp"
)

func ScraperFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "scraper",
			Value:   ScraperHTTP,
			EnvVars: []string{"WEBSEARCH_SCRAPER"},
			Usage:   "The transport used to fetch pages (http, surf, colly or chromedp)",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Value:   30 * time.Second,
			EnvVars: []string{"WEBSEARCH_TIMEOUT"},
			Usage:   "The timeout of each outbound request",
		},
		&cli.BoolFlag{
			Name:    "headless",
			Value:   true,
			EnvVars: []string{"WEBSEARCH_HEADLESS"},
			Usage:   "Run the browser in headless mode (chromedp scraper only)",
		},
	}
}

// NewScraper creates the scraper selected by the command line flags.
// The returned function releases the scraper resources.
func NewScraper(ctx *cli.Context) (scraper.Scraper, func(), error) {
	timeout := ctx.Duration("timeout")
	noop := func() {}

	switch name := ctx.String("scraper"); name {
	case ScraperHTTP:
		return scraper.NewHTTPScraper(&http.Client{Timeout: timeout}), noop, nil

	case ScraperSurf:
		return surf.NewScraper(timeout), noop, nil

	case ScraperColly:
		return colly.NewScraper(timeout), noop, nil

	case ScraperChromedp:
		s, err := chromedp.NewScraper(ctx.Bool("headless"))
		if err != nil {
			return nil, nil, errors.Wrap(err, "could not start browser")
		}

		return s, s.Close, nil

	default:
		return nil, nil, errors.Errorf("unknown scraper '%s'", name)
	}
}
