// Package colour provides colour extraction and palette formatting functionality.
package colour

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	imageutil "github.com/jmylchreest/pigment/internal/image"
)

// Default tuning for the dominant-colour pipeline.
const (
	// defaultMaxDimension bounds the working bitmap so sampling cost is
	// independent of the source resolution.
	defaultMaxDimension = 400

	// defaultSampleStride examines one of every N pixels along the linear
	// pixel sequence. Quantization coarsens colour precision far more than
	// this sampling does.
	defaultSampleStride = 5

	// defaultQuantStep is the rounding granularity per channel. A step of 24
	// gives roughly 11 levels per channel: coarse enough to cluster shades,
	// fine enough to keep distinct hues apart.
	defaultQuantStep = 24

	// defaultMinDistance is the minimum Euclidean RGB distance between any
	// two colours in the final palette.
	defaultMinDistance = 60.0

	// defaultAlphaCutoff rejects pixels whose alpha is below this value.
	defaultAlphaCutoff = 128
)

// DominantExtractor implements colour extraction by quantized frequency
// counting followed by a greedy minimum-distance deduplication pass.
//
// The pipeline is: downscale -> stride sampling with alpha and extreme
// filters -> per-channel quantization into buckets -> frequency ranking ->
// greedy selection of mutually well-separated colours. It is fully
// deterministic for a given image and count.
type DominantExtractor struct {
	maxDimension int
	sampleStride int
	quantStep    int
	minDistance  float64
	alphaCutoff  uint8
}

// NewDominantExtractor creates a new DominantExtractor with default settings.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{
		maxDimension: defaultMaxDimension,
		sampleStride: defaultSampleStride,
		quantStep:    defaultQuantStep,
		minDistance:  defaultMinDistance,
		alphaCutoff:  defaultAlphaCutoff,
	}
}

// Extract extracts up to count dominant colours from an image, ordered by
// descending frequency. The result may hold fewer colours than requested,
// down to zero when every sampled pixel is filtered out (fully transparent
// or uniformly near-extreme images). That empty result is valid data, not
// an error. A count below 1 is clamped to 1.
func (e *DominantExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	if count < 1 {
		count = 1
	}

	working := imageutil.Downscale(img, e.maxDimension)

	counts := e.sampleAndQuantize(working)
	buckets := rankBuckets(counts)
	selected := e.selectDistinct(buckets, count)

	colors := make([]color.Color, len(selected))
	for i, key := range selected {
		colors[i] = color.RGBA{R: key.R, G: key.G, B: key.B, A: 255}
	}

	return NewPalette(colors), nil
}

// bucketKey identifies a quantized colour. Each channel is a multiple of the
// quantization step.
type bucketKey struct {
	R, G, B uint8
}

// packed returns the key as a single integer, used as a deterministic
// tie-break when two buckets have equal counts.
func (k bucketKey) packed() int {
	return int(k.R)<<16 | int(k.G)<<8 | int(k.B)
}

// bucket is a quantized colour candidate with its accumulated sample count.
type bucket struct {
	key   bucketKey
	count int
}

// sampleAndQuantize walks the linear pixel sequence at the sample stride,
// filters out transparent and near-extreme pixels, and accumulates frequency
// counts keyed by quantized colour.
func (e *DominantExtractor) sampleAndQuantize(img *image.NRGBA) map[bucketKey]int {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	totalPixels := width * height

	counts := make(map[bucketKey]int)
	for i := 0; i < totalPixels; i += e.sampleStride {
		offset := (i/width)*img.Stride + (i%width)*4
		r := img.Pix[offset]
		g := img.Pix[offset+1]
		b := img.Pix[offset+2]
		a := img.Pix[offset+3]

		// Semi- and fully-transparent pixels do not contribute.
		if a < e.alphaCutoff {
			continue
		}

		maxC := max(r, g, b)
		minC := min(r, g, b)

		// Soft extreme filter: drop near-pure whites and blacks so flat
		// backgrounds cannot dominate the palette, while tinted near-white
		// and near-black tones still pass.
		if maxC > 248 && minC > 240 {
			continue
		}
		if maxC < 8 {
			continue
		}

		key := bucketKey{
			R: snapChannel(r, e.quantStep),
			G: snapChannel(g, e.quantStep),
			B: snapChannel(b, e.quantStep),
		}
		counts[key]++
	}

	return counts
}

// snapChannel rounds a channel value to the nearest multiple of step.
// Values that would round past 255 snap down to the largest multiple still
// in range, keeping every bucket channel a step multiple within [0, 255].
func snapChannel(v uint8, step int) uint8 {
	q := int(math.Round(float64(v)/float64(step))) * step
	if q > 255 {
		q = 255 - 255%step
	}
	return uint8(q)
}

// rankBuckets orders buckets by descending count. Equal counts break by
// packed key so that ranking is deterministic.
func rankBuckets(counts map[bucketKey]int) []bucket {
	buckets := make([]bucket, 0, len(counts))
	for key, count := range counts {
		buckets = append(buckets, bucket{key: key, count: count})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].key.packed() < buckets[j].key.packed()
	})

	return buckets
}

// selectDistinct greedily scans buckets in ranked order and accepts each
// candidate whose distance to every already-accepted colour is at least the
// minimum. The first candidate is always accepted. Selection stops once
// count colours are accepted or the buckets are exhausted.
//
// The scan is inherently sequential: each decision depends on all prior
// accepted colours.
func (e *DominantExtractor) selectDistinct(buckets []bucket, count int) []bucketKey {
	selected := make([]bucketKey, 0, count)
	for _, candidate := range buckets {
		if len(selected) >= count {
			break
		}

		distinct := true
		for _, existing := range selected {
			if rgbDistance(candidate.key, existing) < e.minDistance {
				distinct = false
				break
			}
		}
		if distinct {
			selected = append(selected, candidate.key)
		}
	}
	return selected
}

// rgbDistance is the Euclidean distance between two colours in RGB space.
func rgbDistance(a, b bucketKey) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
