package dish

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateServings(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"serves pattern", "Hearty beef nilaga, serves 8 with rice", 8},
		{"servings pattern", "makes 10 servings", 10},
		{"pax pattern", "good lunch, 15 pax", 15},
		{"good for pattern", "good for 3", 3},
		{"tagalog pattern", "sapat para sa 5 katao", 5},
		{"party keyword", "perfect for a birthday party", 12},
		{"fiesta keyword", "pang-fiesta na ulam", 12},
		{"family keyword", "a family favorite", 6},
		{"solo keyword", "quick solo meal", 1},
		{"no hint defaults", "classic pork adobo", DefaultServings},
		{"empty text defaults", "", DefaultServings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateServings(tt.text))
		})
	}
}

func TestScaleServings(t *testing.T) {
	assert.Equal(t, 2.0, ScaleServings(1.0, 4, 8))
	assert.Equal(t, 0.5, ScaleServings(1.0, 4, 2))
	assert.Equal(t, 3.0, ScaleServings(3.0, 6, 6))

	// non-positive head counts leave the quantity alone
	assert.Equal(t, 3.0, ScaleServings(3.0, 0, 6))
	assert.Equal(t, 3.0, ScaleServings(3.0, 4, 0))
}
