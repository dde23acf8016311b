// Package stats computes document-wide font statistics used as the baseline
// for heading classification. Collection is a pure reduction over all
// fragments and must complete before any page is scored.
package stats

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/fragment"
)

// bucketSize is the rounding granularity for the modal font size, in points.
const bucketSize = 0.5

// DocumentStats holds font-size statistics for one document. It is computed
// once and read-only afterward.
type DocumentStats struct {
	// MeanFontSize is the character-weighted mean font size, so a long body
	// paragraph outweighs a short caption.
	MeanFontSize float64

	// StdDev is the character-weighted standard deviation of font size.
	// Zero when the document has fewer than three distinct sizes.
	StdDev float64

	// BodyFontSize is the most frequent font size (modal 0.5pt bucket,
	// character-weighted), treated as the body-text baseline.
	BodyFontSize float64

	// MaxFontSize is the largest font size seen.
	MaxFontSize float64

	// DistinctSizes is the number of distinct font-size buckets observed.
	DistinctSizes int

	// CharCount is the total number of characters measured.
	CharCount int
}

// ZScore returns how many standard deviations a font size sits above the
// body size. A size at or below body contributes zero. For degenerate
// documents the size signal is disabled entirely: with so few distinct
// sizes, any deviation from body is noise, and classification must rely on
// the other cues. The divisor is clamped to epsilon so near-uniform but
// non-degenerate documents never divide by zero.
func (s DocumentStats) ZScore(fontSize float64) float64 {
	const epsilon = 0.25
	if s.Degenerate() || fontSize <= s.BodyFontSize {
		return 0
	}
	dev := s.StdDev
	if dev < epsilon {
		dev = epsilon
	}
	return (fontSize - s.BodyFontSize) / dev
}

// Degenerate reports whether the document had too few distinct font sizes
// for size-based classification to be meaningful. Scoring then relies on
// the remaining cues (weight, position, numbering, shape).
func (s DocumentStats) Degenerate() bool {
	return s.DistinctSizes < 3
}

// Collect reduces all fragments of a document to its font statistics.
// A document with no measurable text yields the zero value.
func Collect(pages []fragment.PageFragments) DocumentStats {
	var (
		sum     float64
		sumSq   float64
		chars   int
		maxSize float64
	)
	buckets := make(map[int]int)

	for _, page := range pages {
		for _, frag := range page.Fragments {
			n := frag.CharCount()
			if n == 0 || frag.FontSize <= 0 {
				continue
			}
			w := float64(n)
			sum += frag.FontSize * w
			sumSq += frag.FontSize * frag.FontSize * w
			chars += n
			buckets[bucketOf(frag.FontSize)] += n
			if frag.FontSize > maxSize {
				maxSize = frag.FontSize
			}
		}
	}

	if chars == 0 {
		return DocumentStats{}
	}

	mean := sum / float64(chars)
	variance := sumSq/float64(chars) - mean*mean
	if variance < 0 {
		variance = 0 // floating point noise on uniform documents
	}

	s := DocumentStats{
		MeanFontSize:  mean,
		StdDev:        math.Sqrt(variance),
		BodyFontSize:  modalSize(buckets),
		MaxFontSize:   maxSize,
		DistinctSizes: len(buckets),
		CharCount:     chars,
	}

	// Soft fallback: with fewer than 3 distinct sizes the deviation is not
	// a usable signal, so size-based classification is disabled.
	if s.Degenerate() {
		s.StdDev = 0
	}

	return s
}

// bucketOf rounds a font size to the nearest bucket index.
func bucketOf(size float64) int {
	return int(math.Round(size / bucketSize))
}

// modalSize returns the most frequent bucket's font size. Ties resolve to
// the smaller size so body text never loses to a heavily used heading face.
func modalSize(buckets map[int]int) float64 {
	keys := make([]int, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best := 0
	bestCount := -1
	for _, k := range keys {
		if buckets[k] > bestCount {
			best = k
			bestCount = buckets[k]
		}
	}
	return float64(best) * bucketSize
}
