package colour

import (
	"image/color"
	"testing"
)

func TestSortByLuminance(t *testing.T) {
	palette := NewPalette([]color.Color{
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
		color.RGBA{R: 30, G: 30, B: 30, A: 255},
		color.RGBA{R: 128, G: 128, B: 128, A: 255},
	})

	palette.SortByLuminance()

	want := []RGB{
		{R: 30, G: 30, B: 30},
		{R: 128, G: 128, B: 128},
		{R: 255, G: 255, B: 255},
	}
	for i, rgb := range palette.ToRGBSlice() {
		if rgb != want[i] {
			t.Errorf("colour %d = %+v, want %+v", i, rgb, want[i])
		}
	}
}
