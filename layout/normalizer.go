package layout

import (
	"github.com/tsawler/outliner/model"
)

// NormalizerConfig holds configuration for hierarchy normalization.
type NormalizerConfig struct {
	// RepeatPageCount is the number of distinct pages on which a line's
	// exact text must recur, at nearly the same vertical position, to be
	// treated as a running header or footer and dropped.
	// Default: 3
	RepeatPageCount int

	// BandTolerance is the maximum spread, in points, of the vertical
	// positions of repeated text for it to count as the same band.
	// Default: 6
	BandTolerance float64
}

// DefaultNormalizerConfig returns sensible default configuration.
func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		RepeatPageCount: 3,
		BandTolerance:   6,
	}
}

// Normalizer resolves inconsistencies in the scored candidate stream and
// produces the final ordered outline. It is inherently sequential: it
// carries cross-page state (current depth, repetition counts) through a
// single left-to-right pass.
type Normalizer struct {
	config NormalizerConfig
}

// NewNormalizer creates a normalizer with default configuration.
func NewNormalizer() *Normalizer {
	return &Normalizer{config: DefaultNormalizerConfig()}
}

// NewNormalizerWithConfig creates a normalizer with custom configuration.
func NewNormalizerWithConfig(config NormalizerConfig) *Normalizer {
	return &Normalizer{config: config}
}

// Normalize filters and repairs the document-ordered candidate stream and
// returns the final outline entries. Candidates must arrive in reading
// order; output order is identical (entries are never reordered, only
// dropped or demoted).
func (n *Normalizer) Normalize(cands []HeadingCandidate) []model.OutlineEntry {
	running := n.runningBands(cands)

	entries := make([]model.OutlineEntry, 0, len(cands))
	seen := make(map[pageKey]bool)

	// The depth accumulator starts at 1 (a virtual root), so a document
	// whose first detected heading is an H3 opens with an H2, not an H1.
	depth := 1

	for _, c := range cands {
		if c.Level == model.LevelNone {
			continue
		}
		text := NormalizeText(c.Line.Text)
		if text == "" {
			continue
		}
		key := foldKey(text)

		// Repetition filter: running headers/footers are not headings.
		if running[key] {
			continue
		}

		// Duplicate collapse: the same normalized text on the same page is
		// emitted once (guards against double detection upstream).
		pk := pageKey{page: c.Line.Page, text: key}
		if seen[pk] {
			continue
		}
		seen[pk] = true

		// Monotonicity repair: never jump more than one level deeper than
		// the last emitted entry. Demotion only moves shallower.
		d := c.Level.Depth()
		if d > depth+1 {
			d = depth + 1
		}
		depth = d

		entries = append(entries, model.OutlineEntry{
			Level: model.Level(d),
			Text:  text,
			Page:  c.Line.Page,
		})
	}

	return entries
}

// pageKey identifies a normalized heading text on a specific page.
type pageKey struct {
	page int
	text string
}

// bandStat accumulates the vertical positions of one repeated text.
type bandStat struct {
	pages map[int]bool
	minY  float64
	maxY  float64
}

// runningBands returns the set of normalized texts that recur on enough
// distinct pages within a narrow vertical band to be running headers or
// footers.
func (n *Normalizer) runningBands(cands []HeadingCandidate) map[string]bool {
	bands := make(map[string]*bandStat)

	for _, c := range cands {
		if c.Level == model.LevelNone {
			continue
		}
		key := foldKey(c.Line.Text)
		if key == "" {
			continue
		}
		y := c.Line.BBox.Top()

		b, ok := bands[key]
		if !ok {
			b = &bandStat{pages: make(map[int]bool), minY: y, maxY: y}
			bands[key] = b
		}
		b.pages[c.Line.Page] = true
		if y < b.minY {
			b.minY = y
		}
		if y > b.maxY {
			b.maxY = y
		}
	}

	running := make(map[string]bool)
	for key, b := range bands {
		if len(b.pages) >= n.config.RepeatPageCount && b.maxY-b.minY <= n.config.BandTolerance {
			running[key] = true
		}
	}
	return running
}
