package listings

// MaxResults bounds how many candidates one request may carry.
const MaxResults = 5

// Listing is one candidate property mapped from a raw search result.
// Price is derived, not authoritative: either extracted from a snippet
// or the PriceNotAvailable sentinel.
type Listing struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Link        string `json:"link"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
