package cli

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"

	"github.com/jmylchreest/pigment/internal/colour"
)

func testPalette() *colour.Palette {
	return colour.NewPalette([]color.Color{
		color.RGBA{R: 255, G: 0, B: 0, A: 255},
		color.RGBA{R: 0, G: 0, B: 255, A: 255},
	})
}

func TestFormatPaletteHex(t *testing.T) {
	got, err := formatPalette(testPalette(), "hex", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}
	if got != "#FF0000\n#0000FF\n" {
		t.Errorf("formatPalette(hex) = %q", got)
	}
}

func TestFormatPaletteRGB(t *testing.T) {
	got, err := formatPalette(testPalette(), "rgb", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}
	if got != "rgb(255, 0, 0)\nrgb(0, 0, 255)\n" {
		t.Errorf("formatPalette(rgb) = %q", got)
	}
}

func TestFormatPaletteJSON(t *testing.T) {
	got, err := formatPalette(testPalette(), "json", false)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Error("JSON output missing trailing newline")
	}

	var decoded colour.PaletteJSON
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("formatPalette(json) produced invalid JSON: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("count = %d, want 2", decoded.Count)
	}
}

func TestFormatPaletteUnsupported(t *testing.T) {
	if _, err := formatPalette(testPalette(), "yaml", false); err == nil {
		t.Error("formatPalette(yaml) did not return an error")
	}
}

func TestFormatPaletteWithPreview(t *testing.T) {
	got, err := formatPalette(testPalette(), "hex", true)
	if err != nil {
		t.Fatalf("formatPalette() error = %v", err)
	}
	if !strings.Contains(got, "\033[48;2;255;0;0m") {
		t.Errorf("preview output missing ANSI swatch: %q", got)
	}
	if !strings.Contains(got, "#FF0000") {
		t.Errorf("preview output missing hex code: %q", got)
	}
}

func TestSortOrderSet(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "rank", value: "rank", wantErr: false},
		{name: "luminance", value: "luminance", wantErr: false},
		{name: "unknown", value: "hue", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s sortOrder
			err := s.Set(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && s.String() != tt.value {
				t.Errorf("String() = %q, want %q", s.String(), tt.value)
			}
		})
	}
}
