package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/outliner/fragment"
	"github.com/tsawler/outliner/model"
)

// Line represents one or more fragments merged into a single logical visual
// line. Fragments within a line are contiguous in reading order and share a
// page index.
type Line struct {
	// Page is the 1-indexed page number.
	Page int

	// Text is the assembled text content of the line.
	Text string

	// BBox is the union of the member fragments' bounding boxes.
	BBox model.BBox

	// FontSize is the dominant font size: the size of the fragment
	// contributing the most characters.
	FontSize float64

	// FontName is the font name of the dominant fragment.
	FontName string

	// Bold and Italic are set when any member fragment carries the style.
	Bold   bool
	Italic bool

	// Order is the stream order of the line's first fragment, used for
	// deterministic document ordering.
	Order int
}

// IsEmpty reports whether the line has no visible text.
func (l Line) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// WordCount returns the number of whitespace-separated tokens in the line.
func (l Line) WordCount() int {
	return tokenCount(l.Text)
}

// Page holds the assembled lines of one page together with its geometry.
type Page struct {
	// Number is the 1-indexed page number.
	Number int

	// Width and Height are the page dimensions in points.
	Width  float64
	Height float64

	// Lines are the page's lines in reading order (top to bottom).
	Lines []Line
}

// AssemblerConfig holds configuration for line assembly.
type AssemblerConfig struct {
	// VerticalTolerance is the maximum difference between two fragments'
	// vertical centers, as a fraction of the larger fragment's font size,
	// for them to share a line.
	// Default: 0.3
	VerticalTolerance float64

	// JoinGapRatio is the horizontal gap, as a multiple of the average
	// character width, below which fragments join without a space
	// (kerned runs, hyphenation splits).
	// Default: 0.25
	JoinGapRatio float64

	// SplitGapRatio is the horizontal gap, as a multiple of the average
	// character width, above which fragments on the same band become
	// separate lines (TOC dot leaders, page numbers, side-by-side cells).
	// Default: 2.5
	SplitGapRatio float64

	// MinLineChars is the minimum number of visible characters for a line
	// to be kept. Shorter lines are stray marks, not candidates.
	// Default: 1
	MinLineChars int
}

// DefaultAssemblerConfig returns sensible default configuration.
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		VerticalTolerance: 0.3,
		JoinGapRatio:      0.25,
		SplitGapRatio:     2.5,
		MinLineChars:      1,
	}
}

// LineAssembler merges adjacent same-style fragments on a page into logical
// text lines. Merging must happen before any size or boldness comparison is
// meaningful, because extractors frequently split a single visual heading
// into many low-level glyph runs.
type LineAssembler struct {
	config AssemblerConfig
}

// NewLineAssembler creates a line assembler with default configuration.
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{config: DefaultAssemblerConfig()}
}

// NewLineAssemblerWithConfig creates a line assembler with custom configuration.
func NewLineAssemblerWithConfig(config AssemblerConfig) *LineAssembler {
	return &LineAssembler{config: config}
}

// Assemble groups one page's fragments into lines in reading order
// (top to bottom, left to right). A page with no extractable text yields a
// Page with zero lines; that is a valid result, not an error.
func (a *LineAssembler) Assemble(pf fragment.PageFragments) Page {
	page := Page{
		Number: pf.Page,
		Width:  pf.PageWidth,
		Height: pf.PageHeight,
	}

	// Drop fragments that cannot participate in layout analysis.
	frags := make([]fragment.TextFragment, 0, len(pf.Fragments))
	for _, f := range pf.Fragments {
		if f.IsEmpty() || f.FontSize <= 0 {
			continue
		}
		frags = append(frags, f)
	}
	if len(frags) == 0 {
		return page
	}

	// Step 1: sort by vertical center, top of page first. Stable so the
	// extractor's stream order breaks ties deterministically.
	sorted := make([]fragment.TextFragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci := sorted[i].Y + sorted[i].Height/2
		cj := sorted[j].Y + sorted[j].Height/2
		tol := a.config.VerticalTolerance * maxFloat(sorted[i].FontSize, sorted[j].FontSize)
		if absFloat(ci-cj) > tol {
			return ci > cj // higher center = earlier in reading order
		}
		return false
	})

	// Step 2: group consecutive fragments whose vertical centers overlap.
	var groups [][]fragment.TextFragment
	var current []fragment.TextFragment
	for _, f := range sorted {
		if len(current) == 0 {
			current = append(current, f)
			continue
		}
		if a.sameLine(current, f) {
			current = append(current, f)
		} else {
			groups = append(groups, current)
			current = []fragment.TextFragment{f}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	// Step 3: order each group left to right, split at large horizontal
	// gaps, and build the lines.
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X < group[j].X
		})
		for _, run := range a.splitRuns(group) {
			line := a.buildLine(pf.Page, run)
			if len([]rune(strings.TrimSpace(line.Text))) < a.config.MinLineChars {
				continue
			}
			page.Lines = append(page.Lines, line)
		}
	}

	return page
}

// sameLine reports whether a fragment belongs to the line under construction.
func (a *LineAssembler) sameLine(line []fragment.TextFragment, f fragment.TextFragment) bool {
	// Compare against the running average center of the line for stability
	// when baselines wobble.
	var sum, maxSize float64
	for _, g := range line {
		sum += g.Y + g.Height/2
		if g.FontSize > maxSize {
			maxSize = g.FontSize
		}
	}
	avg := sum / float64(len(line))

	center := f.Y + f.Height/2
	tol := a.config.VerticalTolerance * maxFloat(maxSize, f.FontSize)
	return absFloat(center-avg) <= tol
}

// splitRuns breaks an X-ordered band of fragments into separate lines where
// the horizontal gap is too large to be intra-line spacing.
func (a *LineAssembler) splitRuns(group []fragment.TextFragment) [][]fragment.TextFragment {
	var runs [][]fragment.TextFragment
	current := []fragment.TextFragment{group[0]}
	for _, f := range group[1:] {
		prev := current[len(current)-1]
		gap := f.X - (prev.X + prev.Width)
		if a.config.SplitGapRatio > 0 && gap > a.config.SplitGapRatio*avgCharWidth(prev, f) {
			runs = append(runs, current)
			current = []fragment.TextFragment{f}
			continue
		}
		current = append(current, f)
	}
	return append(runs, current)
}

// buildLine concatenates a left-to-right ordered fragment group into a Line.
// A single space separates fragments unless the gap is near zero.
func (a *LineAssembler) buildLine(pageNum int, group []fragment.TextFragment) Line {
	var sb strings.Builder
	bbox := fragmentBBox(group[0])
	order := group[0].Order

	charWeight := make(map[int]int) // index in group -> chars
	for i, f := range group {
		if i > 0 {
			prev := group[i-1]
			gap := f.X - (prev.X + prev.Width)
			if gap > a.config.JoinGapRatio*avgCharWidth(prev, f) {
				sb.WriteString(" ")
			}
			bbox = bbox.Union(fragmentBBox(f))
			if f.Order < order {
				order = f.Order
			}
		}
		sb.WriteString(f.Text)
		charWeight[i] = f.CharCount()
	}

	// Dominant fragment: the one contributing the most characters, earliest
	// position winning ties.
	dominant := 0
	for i := 1; i < len(group); i++ {
		if charWeight[i] > charWeight[dominant] {
			dominant = i
		}
	}

	line := Line{
		Page:     pageNum,
		Text:     sb.String(),
		BBox:     bbox,
		FontSize: group[dominant].FontSize,
		FontName: group[dominant].FontName,
		Order:    order,
	}
	for _, f := range group {
		if f.IsBold() {
			line.Bold = true
		}
		if f.IsItalic() {
			line.Italic = true
		}
	}
	return line
}

// avgCharWidth estimates the average character width around a join point.
func avgCharWidth(prev, next fragment.TextFragment) float64 {
	chars := prev.CharCount() + next.CharCount()
	if chars == 0 {
		return next.FontSize * 0.5
	}
	w := (prev.Width + next.Width) / float64(chars)
	if w <= 0 {
		return next.FontSize * 0.5
	}
	return w
}

// fragmentBBox returns a fragment's bounding box, substituting the font size
// for a missing height so pathological metadata never produces a degenerate
// box.
func fragmentBBox(f fragment.TextFragment) model.BBox {
	h := f.Height
	if h <= 0 {
		h = f.FontSize
	}
	w := f.Width
	if w <= 0 {
		w = f.FontSize * 0.5 * float64(f.CharCount())
	}
	return model.NewBBox(f.X, f.Y, w, h)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
