// Package pdfx adapts a PDF content-model library to the fragment contract.
// It is the only package that touches PDF bytes; everything downstream works
// on fragments and is testable without PDF files.
//
// Opening a document runs a structural preflight with pdfcpu first, then
// extracts positioned text runs with ledongthuc/pdf. Documents that fail
// either stage are reported as ErrExtractionUnavailable: encrypted,
// malformed, or image-only PDFs are an expected input class, not a bug.
package pdfx

import (
	"errors"
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/tsawler/outliner/fragment"
)

// ErrExtractionUnavailable reports that a document's text cannot be
// extracted. Callers should emit an empty outline record and move on.
var ErrExtractionUnavailable = errors.New("pdf extraction unavailable")

// Extractor produces a fragment document from a PDF file on disk.
type Extractor interface {
	Extract(path string) (*fragment.Document, error)
}

// Options holds configuration for the file extractor.
type Options struct {
	// MaxPages caps how many pages are extracted. Outline structure is
	// front-loaded, so a cap keeps pathological documents cheap.
	// Zero or negative means no cap.
	// Default: 50
	MaxPages int

	// SkipPreflight disables the pdfcpu structural validation pass.
	SkipPreflight bool
}

// DefaultOptions returns the default extractor options.
func DefaultOptions() Options {
	return Options{MaxPages: 50}
}

// FileExtractor extracts positioned text fragments from PDF files.
type FileExtractor struct {
	opts Options
}

// NewFileExtractor creates a file extractor with default options.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{opts: DefaultOptions()}
}

// NewFileExtractorWithOptions creates a file extractor with custom options.
func NewFileExtractorWithOptions(opts Options) *FileExtractor {
	return &FileExtractor{opts: opts}
}

// Extract opens the PDF at path and returns its text fragments, page by
// page. The parser panics on some malformed inputs; that is converted to
// ErrExtractionUnavailable rather than taking the process down.
func (e *FileExtractor) Extract(path string) (doc *fragment.Document, err error) {
	if !e.opts.SkipPreflight {
		if err := preflight(path); err != nil {
			return nil, err
		}
	}

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: parser panic: %v", ErrExtractionUnavailable, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %v", ErrExtractionUnavailable, err)
	}
	defer f.Close()

	total := reader.NumPage()
	limit := total
	if e.opts.MaxPages > 0 && limit > e.opts.MaxPages {
		limit = e.opts.MaxPages
	}

	doc = &fragment.Document{
		PageCount:     total,
		MetadataTitle: metadataTitle(reader),
	}

	order := 0
	for pageNr := 1; pageNr <= limit; pageNr++ {
		page := reader.Page(pageNr)
		if page.V.IsNull() {
			continue
		}

		width, height := pageSize(page)
		frags := fragmentsFromTexts(pageNr, page.Content().Text, order)
		order += len(frags)

		doc.Pages = append(doc.Pages, fragment.PageFragments{
			Page:       pageNr,
			PageWidth:  width,
			PageHeight: height,
			Fragments:  frags,
		})
	}

	return doc, nil
}

// preflight validates the document structure with pdfcpu before the text
// parser sees it, catching encrypted and truncated files early.
func preflight(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	if _, err := api.ReadValidateAndOptimize(f, conf); err != nil {
		return fmt.Errorf("%w: preflight: %v", ErrExtractionUnavailable, err)
	}
	return nil
}

// fragmentsFromTexts converts the parser's positioned text runs into
// fragments. Runs with no visible text or no font size carry no layout
// signal and are dropped here.
func fragmentsFromTexts(pageNr int, texts []pdflib.Text, startOrder int) []fragment.TextFragment {
	frags := make([]fragment.TextFragment, 0, len(texts))
	for _, t := range texts {
		if t.S == "" || t.FontSize <= 0 {
			continue
		}
		frags = append(frags, fragment.TextFragment{
			Page:     pageNr,
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			Height:   t.FontSize,
			FontName: t.Font,
			FontSize: t.FontSize,
			Order:    startOrder + len(frags),
		})
	}
	return frags
}

// metadataTitle reads the document title from the Info dictionary, if any.
func metadataTitle(reader *pdflib.Reader) string {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return info.Key("Title").Text()
}

// pageSize returns the page dimensions from its MediaBox, walking the Pages
// tree for an inherited box and falling back to US Letter when absent.
func pageSize(page pdflib.Page) (width, height float64) {
	box := page.V.Key("MediaBox")

	// MediaBox is inheritable; walk up a bounded number of Parent links.
	node := page.V
	for depth := 0; box.IsNull() && depth < 32; depth++ {
		node = node.Key("Parent")
		if node.IsNull() {
			break
		}
		box = node.Key("MediaBox")
	}

	if box.IsNull() || box.Len() < 4 {
		return 612, 792
	}
	width = box.Index(2).Float64() - box.Index(0).Float64()
	height = box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return 612, 792
	}
	return width, height
}
