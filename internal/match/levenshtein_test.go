package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"VkFence", "VkFence", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Registry names
		{"renderpasscreateinfo", "renderpascreateinfo", 1},
		{"swapchain", "swapchian", 2},
		{"VkImageCreateInfo", "VkImageViewCreateInfo", 4},
		{"Hello", "hello", 1},

		// Runes, not bytes
		{"größe", "grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	assert.InDelta(t, 1.0, LevenshteinNormalized("", ""), 1e-9)
	assert.InDelta(t, 1.0, LevenshteinNormalized("fence", "fence"), 1e-9)
	assert.InDelta(t, 0.0, LevenshteinNormalized("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.5, LevenshteinNormalized("ab", "ax"), 1e-9)
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	assert.InDelta(t, 1.0, NormalizedLevenshteinScore("queue_family_index", "QueueFamilyIndex"), 1e-9)
	assert.Less(t, NormalizedLevenshteinScore("image", "buffer"), 0.5)
}
