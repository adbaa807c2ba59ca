package geo

import "math"

// maxCategoryScore caps a single category's contribution to the score.
const maxCategoryScore = 10

// CategoryScore clamps a category's unique-amenity count to [0,10].
func CategoryScore(uniqueCount int) float64 {
	if uniqueCount < 0 {
		return 0
	}
	if uniqueCount > maxCategoryScore {
		return maxCategoryScore
	}
	return float64(uniqueCount)
}

// ProximityScore averages per-category contributions over the categories
// that reported, rounded to one decimal place with ties going to the
// even digit. The per-category clamp keeps the average inside [0,10].
// No reporters means 0.
func ProximityScore(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	var total float64
	for _, c := range counts {
		total += CategoryScore(c)
	}
	return math.RoundToEven(total/float64(len(counts))*10) / 10
}
