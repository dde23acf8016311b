// Package fragment defines the input contract for outline extraction: the
// positioned, styled text runs produced by an external PDF content-model
// extractor, grouped by page.
//
// Fragments use PDF coordinates (origin bottom-left, Y increasing upward).
// Page numbers are 1-indexed. Fragments are immutable once produced; the
// pipeline only reads them.
package fragment

import "strings"

// TextFragment represents a single styled run of text as reported by the
// extractor, before line merging.
type TextFragment struct {
	// Page is the 1-indexed page number the fragment appears on.
	Page int

	// Text is the UTF-8 text content of the run.
	Text string

	// X, Y are the coordinates of the run's bottom-left corner, in points.
	X, Y float64

	// Width and Height are the run's dimensions, in points.
	Width  float64
	Height float64

	// FontName is the PostScript font name (e.g. "Helvetica-Bold").
	FontName string

	// FontSize is the font size in points.
	FontSize float64

	// Bold and Italic are style flags as reported by the extractor. Boldness
	// is additionally inferred from the font name; use IsBold.
	Bold   bool
	Italic bool

	// Order is the fragment's position in the extractor's output stream,
	// 0-based across the whole document.
	Order int
}

// boldMarkers are font-name substrings that indicate a bold face even when
// the extractor reports no style flags.
var boldMarkers = []string{"bold", "black", "heavy", "semibold", "demibold"}

// IsBold reports whether the fragment is bold, either by style flag or by a
// bold marker in the font name.
func (f TextFragment) IsBold() bool {
	if f.Bold {
		return true
	}
	name := strings.ToLower(f.FontName)
	for _, marker := range boldMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// IsItalic reports whether the fragment is italic, either by style flag or
// by an italic marker in the font name.
func (f TextFragment) IsItalic() bool {
	if f.Italic {
		return true
	}
	name := strings.ToLower(f.FontName)
	return strings.Contains(name, "italic") || strings.Contains(name, "oblique")
}

// CharCount returns the number of runes in the fragment text.
func (f TextFragment) CharCount() int {
	return len([]rune(f.Text))
}

// IsEmpty reports whether the fragment has no visible text.
func (f TextFragment) IsEmpty() bool {
	return strings.TrimSpace(f.Text) == ""
}

// PageFragments holds the fragments of a single page together with the page
// geometry needed for position-relative heuristics.
type PageFragments struct {
	// Page is the 1-indexed page number.
	Page int

	// PageWidth and PageHeight are the page dimensions in points.
	PageWidth  float64
	PageHeight float64

	// Fragments are the page's text runs in extractor stream order.
	Fragments []TextFragment
}

// Document is the complete input to the extraction pipeline: pages of
// fragments plus optional embedded metadata.
type Document struct {
	// Pages holds per-page fragments ordered by page number.
	Pages []PageFragments

	// MetadataTitle is the embedded document title, if any.
	MetadataTitle string

	// PageCount is the total number of pages in the source document, which
	// may exceed len(Pages) when extraction was capped.
	PageCount int
}

// IsEmpty reports whether the document contains no text fragments at all.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	for _, page := range d.Pages {
		for _, frag := range page.Fragments {
			if !frag.IsEmpty() {
				return false
			}
		}
	}
	return true
}
