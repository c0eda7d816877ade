package image

import (
	_ "image/jpeg" // decoders are registered for image.Decode
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Suffixes are the accepted file name endings, in discovery order.
// Matching is case-sensitive.
var Suffixes = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff"}

const (
	// DefaultQuality matches the usual encoder default for resized photos
	DefaultQuality Quality = 95
)
