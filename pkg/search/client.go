package search

import "context"

type Client interface {
	Search(ctx context.Context, searchTerm string, startPage int) ([]Result, error)
}
