package google

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charknest/charknest/internal/domain/apperr"
	"github.com/charknest/charknest/internal/domain/geo"
)

const (
	defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultPlacesURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client talks to the Google geocoding and places-nearby endpoints.
type Client struct {
	httpClient *http.Client
	geocodeURL string
	placesURL  string
	apiKey     string
	log        *slog.Logger
}

func New(apiKey string, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		geocodeURL: defaultGeocodeURL,
		placesURL:  defaultPlacesURL,
		apiKey:     apiKey,
		log:        log,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text location to coordinates. ZERO_RESULTS maps
// to a not-found error; any other non-OK status is a provider failure
// carrying the raw status for logs. No retries.
func (c *Client) Geocode(ctx context.Context, location string) (geo.Coordinates, error) {
	q := url.Values{}
	q.Set("address", location)
	q.Set("key", c.apiKey)

	var body geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL, q, &body); err != nil {
		return geo.Coordinates{}, apperr.Provider("geocoding_failed", "failed to resolve location", err)
	}

	switch {
	case body.Status == statusZeroResults:
		return geo.Coordinates{}, apperr.NotFound("location_not_found", "no location found, try a more specific query")
	case body.Status != statusOK:
		return geo.Coordinates{}, apperr.Provider("geocoding_failed", "failed to resolve location",
			fmt.Errorf("geocoding status %s", body.Status))
	case len(body.Results) == 0:
		return geo.Coordinates{}, apperr.Provider("geocoding_failed", "failed to resolve location",
			fmt.Errorf("geocoding returned OK with no results"))
	}

	loc := body.Results[0].Geometry.Location
	return geo.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

type nearbyResponse struct {
	// Pointer so an absent field is distinguishable from an empty list.
	Results *[]struct {
		Name string `json:"name"`
	} `json:"results"`
}

// Nearby lists place names of one category around a coordinate, in
// provider order. reported is false when the response carried no results
// field at all.
func (c *Client) Nearby(ctx context.Context, at geo.Coordinates, radius int, category string) ([]string, bool, error) {
	q := url.Values{}
	q.Set("location", formatCoord(at.Latitude)+","+formatCoord(at.Longitude))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", category)
	q.Set("key", c.apiKey)

	var body nearbyResponse
	if err := c.getJSON(ctx, c.placesURL, q, &body); err != nil {
		return nil, false, apperr.Provider("places_failed", "failed to fetch nearby places", err)
	}
	if body.Results == nil {
		return nil, false, nil
	}

	names := make([]string, 0, len(*body.Results))
	for _, place := range *body.Results {
		names = append(names, place.Name)
	}
	return names, true, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
