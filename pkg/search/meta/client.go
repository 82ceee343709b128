package meta

import (
	"context"
	"log/slog"

	"github.com/bornholm/websearch/pkg/scraper"
	se "github.com/bornholm/websearch/pkg/search"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Client queries several clients one after the other and concatenates their
// results. Results are not de-duplicated: each one keeps the rank and origin
// given by the engine it came from.
type Client struct {
	clients []se.Client
}

// Search implements search.Client.
func (s *Client) Search(ctx context.Context, searchTerm string, startPage int) ([]se.Result, error) {
	var aggregatedErr error

	results := make([]se.Result, 0)

	for _, c := range s.clients {
		if err := ctx.Err(); err != nil {
			aggregatedErr = multierror.Append(aggregatedErr, errors.WithStack(err))
			break
		}

		clientResults, err := c.Search(ctx, searchTerm, startPage)
		if err != nil {
			slog.WarnContext(ctx, "search failed", slog.Any("error", errors.WithStack(err)))
			aggregatedErr = multierror.Append(aggregatedErr, errors.WithStack(err))
			continue
		}

		results = append(results, clientResults...)
	}

	if aggregatedErr != nil {
		return results, aggregatedErr
	}

	return results, nil
}

func NewClient(clients ...se.Client) *Client {
	return &Client{
		clients: clients,
	}
}

// ForEngines returns a client sweeping the given engines, each with its own session.
func ForEngines(scraper scraper.Scraper, engines ...se.Engine) *Client {
	clients := make([]se.Client, 0, len(engines))
	for _, e := range engines {
		clients = append(clients, se.NewSession(se.WithEngine(e), se.WithScraper(scraper)))
	}

	return NewClient(clients...)
}

var _ se.Client = &Client{}
