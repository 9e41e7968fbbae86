// Package image provides utilities for loading and scaling images.
package image

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultMaxDimension is the default bound on the working bitmap's larger
// dimension. Extraction cost stays predictable regardless of source size.
const DefaultMaxDimension = 400

// Downscale returns a working copy of img whose larger dimension is at most
// maxDimension, preserving aspect ratio. The scale factor is capped at 1, so
// images already within the bound are never upscaled. The result is always a
// fresh NRGBA buffer; the source image is not mutated.
func Downscale(img image.Image, maxDimension int) *image.NRGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	larger := width
	if height > larger {
		larger = height
	}

	if maxDimension <= 0 || larger <= maxDimension {
		return imaging.Clone(img)
	}

	scale := float64(maxDimension) / float64(larger)
	targetWidth := int(math.Round(float64(width) * scale))
	targetHeight := int(math.Round(float64(height) * scale))
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}

	// Box filtering is plenty for a frequency estimate; quantization
	// downstream coarsens colours far more than the resample does.
	return imaging.Resize(img, targetWidth, targetHeight, imaging.Box)
}
