package listings

import "context"

// Searcher fetches candidate listings for a free-text property query.
// A response with no results field maps to a not-found error, distinct
// from transport or provider failures.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Listing, error)
}
