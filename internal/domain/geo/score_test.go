package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charknest/charknest/internal/domain/geo"
)

func TestCategoryScore(t *testing.T) {
	require.Equal(t, 0.0, geo.CategoryScore(0))
	require.Equal(t, 7.0, geo.CategoryScore(7))
	require.Equal(t, 10.0, geo.CategoryScore(10))
	require.Equal(t, 10.0, geo.CategoryScore(25))
	require.Equal(t, 0.0, geo.CategoryScore(-1))
}

func TestProximityScore(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   float64
	}{
		{name: "no reporters", counts: nil, want: 0},
		{name: "four reporters", counts: []int{3, 10, 0, 7}, want: 5.0},
		{name: "clamped before averaging", counts: []int{30, 0}, want: 5.0},
		{name: "rounds to one decimal", counts: []int{1, 2, 2}, want: 1.7},
		{name: "half rounds down to even", counts: []int{1, 0, 0, 0}, want: 0.2},
		{name: "half rounds up to even", counts: []int{3, 0, 0, 0}, want: 0.8},
		{name: "single reporter", counts: []int{4}, want: 4.0},
		{name: "all saturated", counts: []int{12, 15, 40}, want: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, geo.ProximityScore(tt.counts))
		})
	}
}
