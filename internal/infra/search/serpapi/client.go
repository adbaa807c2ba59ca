package serpapi

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
	"github.com/charknest/charknest/internal/domain/listings"
)

const defaultBaseURL = "https://serpapi.com/search"

// Client queries SerpAPI organic results scoped to a listing site.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	engine     string
	site       string
	log        *slog.Logger
}

func New(apiKey, engine, site string, log *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		engine:     engine,
		site:       site,
		log:        log,
	}
}

type organicResult struct {
	Title         string          `json:"title"`
	Link          string          `json:"link"`
	Thumbnail     string          `json:"thumbnail"`
	Snippet       string          `json:"snippet"`
	RichSnippet   json.RawMessage `json:"rich_snippet"`
	InlineSnippet json.RawMessage `json:"inline_snippet"`
}

type searchResponse struct {
	// Pointer so an absent field is distinguishable from an empty list.
	OrganicResults *[]organicResult `json:"organic_results"`
}

// Search runs a site-scoped query and maps the raw organic results into
// listing candidates. A response without an organic_results field is a
// not-found outcome, not a provider error.
func (c *Client) Search(ctx context.Context, query string) ([]listings.Listing, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("site:%s %s", c.site, query))
	q.Set("api_key", c.apiKey)
	q.Set("engine", c.engine)
	q.Set("num", strconv.Itoa(listings.MaxResults))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, apperr.Provider("search_failed", "property search failed", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Provider("search_failed", "property search failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Provider("search_failed", "property search failed",
			fmt.Errorf("serpapi status %s", resp.Status))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperr.Provider("search_failed", "property search failed", err)
	}
	if body.OrganicResults == nil {
		return nil, apperr.NotFound("search_no_results", "no results found")
	}

	results := *body.OrganicResults
	if len(results) > listings.MaxResults {
		results = results[:listings.MaxResults]
	}

	out := make([]listings.Listing, 0, len(results))
	for _, r := range results {
		out = append(out, listings.Listing{
			Title:       orNA(r.Title),
			Price:       resolvePrice(r),
			Link:        orNA(r.Link),
			Image:       orNA(r.Thumbnail),
			Description: orNA(r.Snippet),
		})
	}
	c.log.Debug("search results mapped", slog.Int("count", len(out)))
	return out, nil
}

// resolvePrice probes the snippet locations in fixed priority order:
// provider responses are inconsistent about where price data lands.
func resolvePrice(r organicResult) string {
	price := listings.ExtractPrice(r.Snippet)
	if price == listings.PriceNotAvailable && len(r.RichSnippet) > 0 {
		price = listings.ExtractPrice(string(r.RichSnippet))
	}
	if price == listings.PriceNotAvailable && len(r.InlineSnippet) > 0 {
		price = listings.ExtractPrice(string(r.InlineSnippet))
	}
	return price
}

func orNA(s string) string {
	if s == "" {
		return listings.PriceNotAvailable
	}
	return s
}
