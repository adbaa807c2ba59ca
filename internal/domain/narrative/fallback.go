package narrative

// Fixed placeholders used when a composition call fails. The pipeline
// still returns whatever structured data it has.
const (
	FallbackListings       = "Failed to analyze property details."
	FallbackProximity      = "No proximity analysis available."
	FallbackMarketInsights = "No market insights available."
)
