package geo

// Coordinates is a WGS 84 point resolved from a free-text location.
// It lives for a single request and is never persisted.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AmenityCategories are the fixed place types scanned around a coordinate.
var AmenityCategories = []string{
	"hospital", "school", "restaurant", "shopping_mall", "gym",
	"park", "bank", "pharmacy", "supermarket", "bus_station",
}

// AmenityMap groups unique nearby place names by category. Only categories
// that actually reported results appear as keys.
type AmenityMap map[string][]string
