package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "DESK", "desk"},
		{"spaces to dashes", "oak desk", "oak-desk"},
		{"already normalized", "oak-desk", "oak-desk"},

		{"trim whitespace", "  oak desk  ", "oak-desk"},
		{"multiple spaces", "oak   desk", "oak-desk"},

		{"punctuation collapses", "Sofa!! (3-seater)", "sofa-3-seater"},
		{"apostrophe", "Juliette's Armchair", "juliette-s-armchair"},
		{"unicode stripped", "Stühle & Tische", "st-hle-tische"},

		{"leading trailing dashes", "--desk--", "desk"},
		{"empty string", "", ""},
		{"only special chars", "!@#$%", ""},
		{"numbers allowed", "55 inch TV stand", "55-inch-tv-stand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestUniqueSlug_Suffix(t *testing.T) {
	slug, err := UniqueSlug("Mid-Century Oak Desk")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(slug, "mid-century-oak-desk-"))
	assert.Len(t, slug, len("mid-century-oak-desk-")+6)

	// Suffix must be lowercase alphanumeric.
	suffix := slug[len(slug)-6:]
	for _, r := range suffix {
		assert.True(t, (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'),
			"suffix char %c should be lowercase alphanumeric", r)
	}
}

func TestUniqueSlug_DistinctForSameTitle(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		slug, err := UniqueSlug("Velvet Sofa")
		require.NoError(t, err)
		assert.False(t, seen[slug], "slug should be unique: %s", slug)
		seen[slug] = true
	}
}

func TestUniqueSlug_EmptyTitle(t *testing.T) {
	slug, err := UniqueSlug("!!!")
	require.NoError(t, err)
	assert.Len(t, slug, 6)
}
