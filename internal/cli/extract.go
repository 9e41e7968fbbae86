// Package cli provides the command-line interface for Pigment.
package cli

import (
	"fmt"
	"os"

	"github.com/jmylchreest/pigment/internal/colour"
	"github.com/jmylchreest/pigment/internal/image"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sortOrder is a pflag.Value restricting --sort to known orderings.
type sortOrder string

const (
	sortRank      sortOrder = "rank"
	sortLuminance sortOrder = "luminance"
)

var _ pflag.Value = (*sortOrder)(nil)

func (s *sortOrder) String() string { return string(*s) }

func (s *sortOrder) Type() string { return "string" }

func (s *sortOrder) Set(value string) error {
	switch sortOrder(value) {
	case sortRank, sortLuminance:
		*s = sortOrder(value)
		return nil
	default:
		return fmt.Errorf("invalid sort order: %s (valid: rank, luminance)", value)
	}
}

var (
	// Extract command flags
	extractColours     int
	extractAlgorithm   string
	extractFormat      string
	extractOutput      string
	extractShowPreview bool
	extractSort        = sortRank
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image.

The extract command analyses an image and reports its dominant colours,
deduplicated so the palette stays visually distinct. The input may be a
local file, a directory (a random image is picked), or an HTTP(S) URL.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Extract 6 colours (default) from an image
  pigment extract wallpaper.jpg

  # Extract 4 colours with terminal previews
  pigment extract --preview --colours 4 wallpaper.png

  # Extract colours and output as JSON
  pigment extract --format json wallpaper.jpg

  # Extract colours ordered darkest to brightest
  pigment extract --sort luminance wallpaper.jpg

  # Extract colours and save to a file
  pigment extract --output palette.txt wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	// Define flags for the extract command
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 6, "number of colours to extract (1-256)")
	extractCmd.Flags().StringVarP(&extractAlgorithm, "algorithm", "a", "dominant", "extraction algorithm (dominant)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&extractShowPreview, "preview", false, "show colour previews in terminal")
	extractCmd.Flags().Var(&extractSort, "sort", "palette order (rank, luminance)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	imagePath := args[0]

	// Validate the image path
	if err := image.ValidatePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	// Validate configuration
	config := colour.ExtractorConfig{
		Algorithm:  colour.Algorithm(extractAlgorithm),
		ColorCount: extractColours,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve the input: directories yield a randomly picked member image.
	resolved, err := image.ResolvePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	if resolved != imagePath {
		logger.Debug("resolved directory to image", "path", resolved)
	}

	// Load the image
	logger.Debug("loading image", "path", resolved)
	img, err := image.NewLoader().Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	// Create the colour extractor
	extractor, err := colour.NewExtractor(config.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	// Extract the colour palette
	logger.Debug("extracting colours", "count", extractColours, "algorithm", extractAlgorithm)
	palette, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	// An empty palette is a valid outcome for degenerate images (fully
	// transparent, or uniformly near-white/near-black). Report it and exit
	// cleanly rather than treating it as a failure.
	if palette.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no palette could be extracted: every sampled pixel was filtered out (transparent or uniform extreme image)")
		return nil
	}

	if palette.Len() < extractColours {
		logger.Debug("fewer distinct colours than requested", "requested", extractColours, "extracted", palette.Len())
	}

	if extractSort == sortLuminance {
		palette.SortByLuminance()
	}

	// Format the output
	output, err := formatPalette(palette, extractFormat, extractShowPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Write output to file or stdout
	if extractOutput != "" {
		logger.Debug("writing output", "path", extractOutput)
		if err := os.WriteFile(extractOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatHex formats the palette as hex colour codes, one per line.
func formatHex(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			output += colour.FormatColourWithPreview(rgb, 8) + "\n"
		} else {
			output += rgb.Hex() + "\n"
		}
	}
	return output
}

// formatRGB formats the palette as RGB values, one per line.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	output := ""
	for _, rgb := range palette.ToRGBSlice() {
		if showPreview {
			output += colour.FormatColourWithPreview(rgb, 8) + "  " + rgb.String() + "\n"
		} else {
			output += rgb.String() + "\n"
		}
	}
	return output
}
