// Package outliner extracts a structured outline from PDF files: the
// document title plus an ordered hierarchy of H1-H3 headings with page
// numbers. Headings are inferred from layout (font size, weight, position,
// numbering, text shape), so no embedded bookmarks are required.
//
// Basic usage:
//
//	outline, err := outliner.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With options:
//
//	outline, err := outliner.Open("report.pdf").
//	    MaxPages(20).
//	    Parallelism(2).
//	    Outline()
//
// For advanced use cases, the lower-level engine and pdfx packages are also
// available.
package outliner

import (
	"github.com/tsawler/outliner/engine"
	"github.com/tsawler/outliner/fragment"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/pdfx"
)

// Extraction is a fluent builder for one outline extraction. Configure it
// with option methods, then call a terminal operation like Outline().
type Extraction struct {
	filename string
	doc      *fragment.Document
	options  Options
}

// Open prepares an extraction from a PDF file on disk. The file is not
// touched until a terminal operation runs.
//
// Example:
//
//	outline, err := outliner.Open("report.pdf").Outline()
func Open(filename string) *Extraction {
	return &Extraction{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument prepares an extraction from an already-extracted fragment
// document. This is useful for custom extraction frontends and for testing
// the pipeline without PDF files.
func FromDocument(doc *fragment.Document) *Extraction {
	return &Extraction{
		doc:     doc,
		options: defaultOptions(),
	}
}

// MaxPages caps how many pages are read from the file. Zero or negative
// means no cap.
func (x *Extraction) MaxPages(n int) *Extraction {
	x.options.extract.MaxPages = n
	return x
}

// Parallelism bounds how many pages are analyzed concurrently.
func (x *Extraction) Parallelism(n int) *Extraction {
	x.options.engine.Parallelism = n
	return x
}

// Weights replaces the heading scorer's weights.
func (x *Extraction) Weights(w layout.ScoreConfig) *Extraction {
	x.options.engine.Scorer = w
	return x
}

// SkipPreflight disables the structural validation pass over the file.
func (x *Extraction) SkipPreflight() *Extraction {
	x.options.extract.SkipPreflight = true
	return x
}

// Outline runs the extraction and returns the document outline. On failure
// it returns an empty outline record alongside the error, so callers that
// batch documents can emit the record and continue.
func (x *Extraction) Outline() (model.DocumentOutline, error) {
	doc := x.doc
	if doc == nil {
		extracted, err := pdfx.NewFileExtractorWithOptions(x.options.extract).Extract(x.filename)
		if err != nil {
			return model.Empty(), err
		}
		doc = extracted
	}
	return engine.NewWithConfig(x.options.engine).Extract(doc), nil
}

// Title runs the extraction and returns only the document title.
func (x *Extraction) Title() (string, error) {
	outline, err := x.Outline()
	return outline.Title, err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := outliner.Must(outliner.Open("report.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
