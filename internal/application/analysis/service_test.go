package analysis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charknest/charknest/internal/application/analysis"
	"github.com/charknest/charknest/internal/domain/apperr"
	"github.com/charknest/charknest/internal/domain/geo"
	"github.com/charknest/charknest/internal/domain/listings"
	"github.com/charknest/charknest/internal/domain/narrative"
)

type fakeSearcher struct {
	items []listings.Listing
	err   error
	calls int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) ([]listings.Listing, error) {
	f.calls++
	return f.items, f.err
}

type fakeGeocoder struct {
	coords geo.Coordinates
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (geo.Coordinates, error) {
	f.calls++
	return f.coords, f.err
}

type placesReply struct {
	names    []string
	reported bool
	err      error
}

type fakePlaces struct {
	byCategory map[string]placesReply
}

func (f *fakePlaces) Nearby(_ context.Context, _ geo.Coordinates, _ int, category string) ([]string, bool, error) {
	r, ok := f.byCategory[category]
	if !ok {
		return nil, false, nil
	}
	return r.names, r.reported, r.err
}

type fakeComposer struct {
	listingsText  string
	listingsErr   error
	proximityText string
	proximityErr  error
	marketText    string
	marketErr     error

	gotScore float64
}

func (f *fakeComposer) ComposeListings(_ context.Context, _ []listings.Listing) (string, error) {
	return f.listingsText, f.listingsErr
}

func (f *fakeComposer) ComposeProximity(_ context.Context, _ geo.AmenityMap, score float64) (string, error) {
	f.gotScore = score
	return f.proximityText, f.proximityErr
}

func (f *fakeComposer) ComposeMarketInsights(_ context.Context, _ string) (string, error) {
	return f.marketText, f.marketErr
}

func newService(search *fakeSearcher, geocoder *fakeGeocoder, places *fakePlaces, composer *fakeComposer) *analysis.Service {
	return &analysis.Service{
		Search:   search,
		Geocoder: geocoder,
		Places:   places,
		Composer: composer,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	search := &fakeSearcher{}
	svc := newService(search, &fakeGeocoder{}, &fakePlaces{}, &fakeComposer{})

	_, err := svc.Recommend(context.Background(), "   ")
	require.Error(t, err)

	kind, ok := apperr.KindOf(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindValidation, kind)
	require.Zero(t, search.calls, "no collaborator may be invoked for invalid input")
}

func TestRecommendSearchFailureIsFatal(t *testing.T) {
	search := &fakeSearcher{err: apperr.NotFound("search_no_results", "no results found")}
	svc := newService(search, &fakeGeocoder{}, &fakePlaces{}, &fakeComposer{})

	_, err := svc.Recommend(context.Background(), "2 BHK in Pune")
	require.Error(t, err)

	kind, _ := apperr.KindOf(err)
	require.Equal(t, apperr.KindNotFound, kind)
}

func TestRecommendReturnsComposedText(t *testing.T) {
	search := &fakeSearcher{items: []listings.Listing{{Title: "Flat", Price: "₹45.5 Lac"}}}
	composer := &fakeComposer{listingsText: "structured listings"}
	svc := newService(search, &fakeGeocoder{}, &fakePlaces{}, composer)

	got, err := svc.Recommend(context.Background(), "2 BHK in Pune")
	require.NoError(t, err)
	require.Equal(t, "structured listings", got)
}

func TestRecommendComposerFailureDegrades(t *testing.T) {
	search := &fakeSearcher{items: []listings.Listing{{Title: "Flat"}}}
	composer := &fakeComposer{listingsErr: context.DeadlineExceeded}
	svc := newService(search, &fakeGeocoder{}, &fakePlaces{}, composer)

	got, err := svc.Recommend(context.Background(), "2 BHK in Pune")
	require.NoError(t, err)
	require.Equal(t, narrative.FallbackListings, got)
}

func TestAnalyzeLocationValidation(t *testing.T) {
	geocoder := &fakeGeocoder{}
	svc := newService(&fakeSearcher{}, geocoder, &fakePlaces{}, &fakeComposer{})

	_, err := svc.AnalyzeLocation(context.Background(), "", analysis.DefaultRadius)
	kind, _ := apperr.KindOf(err)
	require.Equal(t, apperr.KindValidation, kind)

	_, err = svc.AnalyzeLocation(context.Background(), "Pune", -5)
	kind, _ = apperr.KindOf(err)
	require.Equal(t, apperr.KindValidation, kind)

	require.Zero(t, geocoder.calls)
}

func TestAnalyzeLocationGeocodeFailureIsFatal(t *testing.T) {
	geocoder := &fakeGeocoder{err: apperr.NotFound("location_not_found", "no location found")}
	svc := newService(&fakeSearcher{}, geocoder, &fakePlaces{}, &fakeComposer{})

	_, err := svc.AnalyzeLocation(context.Background(), "Nowhere", analysis.DefaultRadius)
	require.Error(t, err)

	kind, _ := apperr.KindOf(err)
	require.Equal(t, apperr.KindNotFound, kind)
}

func TestAnalyzeLocationAssemblesResult(t *testing.T) {
	places := &fakePlaces{byCategory: map[string]placesReply{
		"hospital": {names: []string{"Apollo", "Ruby Hall", "Apollo"}, reported: true},
		"school": {names: []string{
			"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12",
		}, reported: true},
		"park": {err: apperr.Provider("places_failed", "failed to fetch nearby places", nil)},
	}}
	composer := &fakeComposer{proximityText: "walkable area", marketText: "steady growth"}
	svc := newService(&fakeSearcher{}, &fakeGeocoder{coords: geo.Coordinates{Latitude: 18.52, Longitude: 73.85}}, places, composer)

	res, err := svc.AnalyzeLocation(context.Background(), "Pune", analysis.DefaultRadius)
	require.NoError(t, err)

	require.Equal(t, "Pune", res.Location)
	require.Equal(t, 18.52, res.Latitude)
	require.Equal(t, 73.85, res.Longitude)

	// hospital: 2 unique; school: 12 unique clamped to 10; park failed and
	// is excluded from both the map and the denominator.
	require.Equal(t, 6.0, res.AverageProximityScore)
	require.Equal(t, 6.0, composer.gotScore)
	require.Len(t, res.Amenities, 2)
	require.Equal(t, []string{"Apollo", "Ruby Hall"}, res.Amenities["hospital"])
	require.Equal(t, []string{"s1", "s2", "s3", "s4", "s5"}, res.Amenities["school"])

	require.Equal(t, "walkable area", res.ProximityAnalysis)
	require.Equal(t, "steady growth", res.MarketInsights)
}

func TestAnalyzeLocationMarketInsightsFailureIsIsolated(t *testing.T) {
	places := &fakePlaces{byCategory: map[string]placesReply{
		"hospital": {names: []string{"Apollo"}, reported: true},
	}}
	composer := &fakeComposer{proximityText: "ok", marketErr: context.DeadlineExceeded}
	svc := newService(&fakeSearcher{}, &fakeGeocoder{}, places, composer)

	res, err := svc.AnalyzeLocation(context.Background(), "Pune", analysis.DefaultRadius)
	require.NoError(t, err)
	require.Equal(t, narrative.FallbackMarketInsights, res.MarketInsights)
	require.Equal(t, 1.0, res.AverageProximityScore)
	require.Equal(t, []string{"Apollo"}, res.Amenities["hospital"])
}

func TestAnalyzeLocationProximityComposerFailureDegrades(t *testing.T) {
	places := &fakePlaces{byCategory: map[string]placesReply{
		"hospital": {names: []string{"Apollo"}, reported: true},
	}}
	composer := &fakeComposer{proximityErr: context.DeadlineExceeded, marketText: "fine"}
	svc := newService(&fakeSearcher{}, &fakeGeocoder{}, places, composer)

	res, err := svc.AnalyzeLocation(context.Background(), "Pune", analysis.DefaultRadius)
	require.NoError(t, err)
	require.Equal(t, narrative.FallbackProximity, res.ProximityAnalysis)
	require.Equal(t, "fine", res.MarketInsights)
}

func TestAnalyzeLocationNoReporters(t *testing.T) {
	composer := &fakeComposer{proximityText: "sparse", marketText: "unknown"}
	svc := newService(&fakeSearcher{}, &fakeGeocoder{}, &fakePlaces{}, composer)

	res, err := svc.AnalyzeLocation(context.Background(), "Middle of nowhere", analysis.DefaultRadius)
	require.NoError(t, err)
	require.Zero(t, res.AverageProximityScore)
	require.Empty(t, res.Amenities)
}
