package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charknest/charknest/internal/domain/geo"
	"github.com/charknest/charknest/internal/domain/listings"
	"github.com/charknest/charknest/internal/infra/ai/prompt"
)

func TestListingsIncludesEveryCandidate(t *testing.T) {
	got := prompt.Listings([]listings.Listing{
		{Title: "2 BHK Flat", Price: "₹45.5 Lac", Link: "https://99acres.com/p1", Image: "https://img/p1.jpg", Description: "near metro"},
		{Title: "Villa", Price: "N/A", Link: "https://99acres.com/p2", Image: "N/A", Description: "gated society"},
	})

	require.Contains(t, got, "2 BHK Flat")
	require.Contains(t, got, "₹45.5 Lac")
	require.Contains(t, got, "https://99acres.com/p2")
	require.Contains(t, got, "**Size**")
	require.Contains(t, got, "**Location**")
}

func TestProximityIsDeterministic(t *testing.T) {
	amenities := geo.AmenityMap{
		"school":   {"s1"},
		"hospital": {"h1"},
		"park":     {"p1"},
	}

	first := prompt.Proximity(amenities, 6.5)
	second := prompt.Proximity(amenities, 6.5)
	require.Equal(t, first, second)

	require.Contains(t, first, "6.5/10")
	require.True(t, strings.Index(first, "hospital") < strings.Index(first, "school"))
}

func TestMarketInsightsNamesLocation(t *testing.T) {
	got := prompt.MarketInsights("Pune")
	require.Contains(t, got, "**Pune**")
	require.Contains(t, got, "Rental Yield Trends")
}
