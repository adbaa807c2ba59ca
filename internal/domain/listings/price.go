package listings

import "regexp"

// PriceNotAvailable marks a listing whose price could not be determined.
// It is a normal outcome, not an error.
const PriceNotAvailable = "N/A"

var priceRe = regexp.MustCompile(`₹[\d,.]+(?:\s*(?:Lac|Crore))?`)

// ExtractPrice returns the first currency amount found in text, including
// an optional magnitude word, or the PriceNotAvailable sentinel. Empty
// input is a normal no-match.
func ExtractPrice(text string) string {
	if text == "" {
		return PriceNotAvailable
	}
	if m := priceRe.FindString(text); m != "" {
		return m
	}
	return PriceNotAvailable
}
