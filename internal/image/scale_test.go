package image

import (
	"image"
	"image/color"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func TestDownscale(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		maxDimension int
		wantWidth    int
		wantHeight   int
	}{
		{
			name:         "already within bound is not upscaled",
			width:        200,
			height:       100,
			maxDimension: 400,
			wantWidth:    200,
			wantHeight:   100,
		},
		{
			name:         "exactly at bound is untouched",
			width:        400,
			height:       300,
			maxDimension: 400,
			wantWidth:    400,
			wantHeight:   300,
		},
		{
			name:         "wide image bounds width",
			width:        800,
			height:       600,
			maxDimension: 400,
			wantWidth:    400,
			wantHeight:   300,
		},
		{
			name:         "tall image bounds height",
			width:        300,
			height:       800,
			maxDimension: 400,
			wantWidth:    150,
			wantHeight:   400,
		},
		{
			name:         "minor dimension rounds",
			width:        1000,
			height:       333,
			maxDimension: 400,
			wantWidth:    400,
			wantHeight:   133,
		},
		{
			name:         "non-positive bound disables scaling",
			width:        900,
			height:       500,
			maxDimension: 0,
			wantWidth:    900,
			wantHeight:   500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Downscale(testImage(tt.width, tt.height), tt.maxDimension)
			bounds := got.Bounds()
			if bounds.Dx() != tt.wantWidth || bounds.Dy() != tt.wantHeight {
				t.Errorf("Downscale() dimensions = %dx%d, want %dx%d",
					bounds.Dx(), bounds.Dy(), tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestDownscaleFreshBuffer(t *testing.T) {
	src := testImage(50, 50)
	original := src.NRGBAAt(0, 0)

	got := Downscale(src, DefaultMaxDimension)
	got.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	if src.NRGBAAt(0, 0) != original {
		t.Error("mutating the working bitmap changed the source image")
	}
}
