package analysis

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/charknest/charknest/internal/domain/apperr"
	"github.com/charknest/charknest/internal/domain/geo"
	"github.com/charknest/charknest/internal/domain/listings"
	"github.com/charknest/charknest/internal/domain/narrative"
)

// DefaultRadius is the amenity-scan radius in meters when the caller
// does not supply one.
const DefaultRadius = 2000

// displayLimit caps how many names per category appear in the response.
const displayLimit = 5

// Service composes the search, geocoding, places and narrative
// collaborators into the two public operations. It is stateless and
// safe for concurrent use.
type Service struct {
	Search   listings.Searcher
	Geocoder geo.Geocoder
	Places   geo.PlacesFinder
	Composer narrative.Composer
	Log      *slog.Logger
}

// Result is the assembled location analysis. It is returned once and
// never stored.
type Result struct {
	Location              string         `json:"location"`
	Latitude              float64        `json:"latitude"`
	Longitude             float64        `json:"longitude"`
	AverageProximityScore float64        `json:"average_proximity_score"`
	ProximityAnalysis     string         `json:"proximity_analysis"`
	Amenities             geo.AmenityMap `json:"amenities"`
	MarketInsights        string         `json:"market_insights"`
}

// Recommend fetches property listings for a free-text query and returns
// the composed recommendation text. A failed fetch fails the whole
// operation; a failed composition degrades to a fixed fallback.
func (s *Service) Recommend(ctx context.Context, userInput string) (string, error) {
	if strings.TrimSpace(userInput) == "" {
		return "", apperr.Validation("user_input_required", "userInput is required")
	}

	items, err := s.Search.Search(ctx, userInput)
	if err != nil {
		return "", err
	}

	text, err := s.Composer.ComposeListings(ctx, items)
	if err != nil {
		s.Log.Warn("listing composition failed", slog.Any("err", err))
		return narrative.FallbackListings, nil
	}
	return text, nil
}

// AnalyzeLocation resolves a location, scans nearby amenities, and
// gathers market insights. The amenity scan and the market-insights
// call are independent: a market-insights failure is replaced by a
// placeholder and never fails the request.
func (s *Service) AnalyzeLocation(ctx context.Context, location string, radius int) (*Result, error) {
	if strings.TrimSpace(location) == "" {
		return nil, apperr.Validation("location_required", "location parameter is required")
	}
	if radius <= 0 {
		return nil, apperr.Validation("invalid_radius", "radius must be a positive integer")
	}

	coords, err := s.Geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, err
	}

	insightCh := make(chan string, 1)
	go func() {
		text, err := s.Composer.ComposeMarketInsights(ctx, location)
		if err != nil {
			s.Log.Warn("market insights unavailable", slog.String("location", location), slog.Any("err", err))
			text = narrative.FallbackMarketInsights
		}
		insightCh <- text
	}()

	scan, err := s.scanAmenities(ctx, coords, radius)
	if err != nil {
		return nil, err
	}

	proximity, err := s.Composer.ComposeProximity(ctx, scan.amenities, scan.score)
	if err != nil {
		s.Log.Warn("proximity composition failed", slog.Any("err", err))
		proximity = narrative.FallbackProximity
	}

	return &Result{
		Location:              location,
		Latitude:              coords.Latitude,
		Longitude:             coords.Longitude,
		AverageProximityScore: scan.score,
		ProximityAnalysis:     strings.TrimSpace(proximity),
		Amenities:             scan.amenities,
		MarketInsights:        <-insightCh,
	}, nil
}

type amenityScan struct {
	amenities geo.AmenityMap
	score     float64
}

// scanAmenities queries every category concurrently and merges results
// by category key. A category that fails or answers without a results
// field contributes nothing and is excluded from the score denominator;
// only context cancellation aborts the scan as a whole.
func (s *Service) scanAmenities(ctx context.Context, at geo.Coordinates, radius int) (amenityScan, error) {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		out    = geo.AmenityMap{}
		counts []int
	)

	for _, category := range geo.AmenityCategories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()

			names, reported, err := s.Places.Nearby(ctx, at, radius, category)
			if err != nil {
				s.Log.Warn("amenity lookup failed", slog.String("category", category), slog.Any("err", err))
				return
			}
			if !reported {
				return
			}

			unique := dedupe(names)
			display := unique
			if len(display) > displayLimit {
				display = display[:displayLimit]
			}

			mu.Lock()
			out[category] = display
			counts = append(counts, len(unique))
			mu.Unlock()
		}(category)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return amenityScan{}, apperr.Provider("amenity_scan_aborted", "amenity scan aborted", err)
	}
	return amenityScan{amenities: out, score: geo.ProximityScore(counts)}, nil
}

// dedupe removes duplicate names while preserving provider order, so
// the display truncation keeps the first occurrences.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
