package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charknest/charknest/internal/domain/geo"
	"github.com/charknest/charknest/internal/domain/listings"
)

// Listings builds the structuring prompt for raw property candidates.
// The model fills in fields that are not mechanically extracted (size,
// location, canonicalized title).
func Listings(items []listings.Listing) string {
	var b strings.Builder
	for _, p := range items {
		fmt.Fprintf(&b,
			"- **Sub-Title**: %s\n- **Price**: %s\n- **Description**: %s\n- **Website Link**: %s\n- **Image URL**: %s\n",
			p.Title, p.Price, p.Description, p.Link, p.Image)
	}

	return fmt.Sprintf(`Please structure the following property listings with accurate details:
%s
**Return output in this structured format:**
- **Sub-Title**:
- **Price**:
- **Size**:
- **Title**:
- **Location**:
- **Website Link**:
- **Image URL**:
Ensure that the details match correctly.`, b.String())
}

// Proximity builds the accessibility-narrative prompt from the categories
// present and the averaged score. Categories are sorted so the prompt is
// deterministic regardless of fan-out merge order.
func Proximity(amenities geo.AmenityMap, score float64) string {
	categories := make([]string, 0, len(amenities))
	for c := range amenities {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return fmt.Sprintf(`Based on the following amenities data, generate a structured and well-explained proximity analysis:
- **Key Amenities Present:** %s
- **Average Accessibility Score:** %.1f/10
Please ensure the response is well-structured and easy to read. Highlight the strengths of the area and mention any missing amenities that might impact livability.`,
		strings.Join(categories, ", "), score)
}

// MarketInsights builds the multi-section market-analysis prompt for a
// location name.
func MarketInsights(location string) string {
	return fmt.Sprintf(`Provide **detailed** real estate market insights for **%s**, covering:
- **Current Property Prices** (Buying & Rental)
- **Rental Yield Trends** (Expected %% returns)
- **Investment Potential** (Growth prospects & demand)
- **Upcoming Infrastructure Projects** (Metro, Roads, Commercial hubs)
- **Risks & Concerns** (Volatility, regulation changes)
- **Safety & Livability** (Community, crime rates, green spaces)
Ensure the response is clear, concise, and formatted for easy reading.`, location)
}
