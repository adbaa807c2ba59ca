package narrative

import (
	"context"

	"github.com/charknest/charknest/internal/domain/geo"
	"github.com/charknest/charknest/internal/domain/listings"
)

// Composer turns structured pipeline data into natural-language analysis.
// Every call is a stateless single-turn completion; callers degrade to the
// fallback strings below when a call fails.
type Composer interface {
	ComposeListings(ctx context.Context, items []listings.Listing) (string, error)
	ComposeProximity(ctx context.Context, amenities geo.AmenityMap, score float64) (string, error)
	ComposeMarketInsights(ctx context.Context, location string) (string, error)
}
