// Package util provides common utility functions.
package util

import (
	"fmt"
	"regexp"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// suffixAlphabet deliberately excludes uppercase so slugs stay lowercase.
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 6
)

var (
	// Matches runs of anything that is not a letter or digit.
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify converts a title to a URL-safe slug:
//
//	"Mid-Century Oak Desk"  → "mid-century-oak-desk"
//	"  Sofa!!  (3-seater) " → "sofa-3-seater"
//
// Runs of non-alphanumeric characters collapse into a single dash and
// leading/trailing dashes are trimmed.
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlphanumericRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug returns Slugify(input) with a random 6-character suffix
// appended, so identical titles still yield distinct slugs.
func UniqueSlug(input string) (string, error) {
	suffix, err := gonanoid.Generate(suffixAlphabet, suffixLength)
	if err != nil {
		return "", fmt.Errorf("generate slug suffix: %w", err)
	}
	base := Slugify(input)
	if base == "" {
		return suffix, nil
	}
	return base + "-" + suffix, nil
}
