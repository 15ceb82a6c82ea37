// Package media provides image-metadata helpers for the acquisition engine.
package media

import (
	"fmt"
	"image"

	"github.com/bbrks/go-blurhash"
)

// decodeSize is the thumbnail size used to average a BlurHash back into a
// single color. BlurHash is already a heavy low-pass of the photo, so a
// tiny decode is enough.
const decodeSize = 8

// DominantColorFromBlurHash derives an approximate dominant color from a
// BlurHash string by decoding it at low resolution and averaging the
// pixels. Used for providers that return a BlurHash but no average color.
// Returns a "#rrggbb" hex string.
func DominantColorFromBlurHash(hash string) (string, error) {
	img, err := blurhash.Decode(hash, decodeSize, decodeSize, 1)
	if err != nil {
		return "", fmt.Errorf("decode blurhash: %w", err)
	}
	return averageHex(img), nil
}

// averageHex averages all pixels of img into a single hex color.
func averageHex(img image.Image) string {
	bounds := img.Bounds()
	var r, g, b, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return "#000000"
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r/n), uint8(g/n), uint8(b/n))
}
