package geo

import "context"

// Geocoder resolves a free-text location to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (Coordinates, error)
}

// PlacesFinder lists place names of one category around a coordinate.
type PlacesFinder interface {
	// Nearby returns names in provider order. reported is false when the
	// provider answered without a results field; such categories are
	// excluded from the proximity-score denominator.
	Nearby(ctx context.Context, at Coordinates, radius int, category string) (names []string, reported bool, err error)
}
