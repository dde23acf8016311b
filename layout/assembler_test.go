package layout

import (
	"testing"

	"github.com/tsawler/outliner/fragment"
)

// makeFrag creates a fragment for assembler tests.
func makeFrag(text string, x, y, w, h, fs float64, fontName string) fragment.TextFragment {
	return fragment.TextFragment{
		Page:     1,
		Text:     text,
		X:        x,
		Y:        y,
		Width:    w,
		Height:   h,
		FontName: fontName,
		FontSize: fs,
	}
}

func pageOf(frags ...fragment.TextFragment) fragment.PageFragments {
	return fragment.PageFragments{Page: 1, PageWidth: 612, PageHeight: 792, Fragments: frags}
}

func TestAssembleEmptyPage(t *testing.T) {
	a := NewLineAssembler()
	page := a.Assemble(pageOf())

	if len(page.Lines) != 0 {
		t.Errorf("expected 0 lines, got %d", len(page.Lines))
	}
	if page.Number != 1 || page.Width != 612 {
		t.Errorf("page geometry not carried: %+v", page)
	}
}

func TestAssembleSingleLine(t *testing.T) {
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("Hello world", 72, 700, 80, 12, 12, "Helvetica"),
	))

	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "Hello world" {
		t.Errorf("Text = %q", page.Lines[0].Text)
	}
	if page.Lines[0].FontSize != 12 {
		t.Errorf("FontSize = %f, want 12", page.Lines[0].FontSize)
	}
}

func TestAssembleMergesSplitWord(t *testing.T) {
	// A heading split mid-word by the extractor: near-zero gap joins
	// without a space.
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("Intro", 72, 700, 40, 18, 18, "Helvetica-Bold"),
		makeFrag("duction", 112.2, 700, 56, 18, 18, "Helvetica-Bold"),
	))

	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "Introduction" {
		t.Errorf("Text = %q, want Introduction", page.Lines[0].Text)
	}
	if !page.Lines[0].Bold {
		t.Error("expected bold line")
	}
}

func TestAssembleInsertsSpaceAcrossGap(t *testing.T) {
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("1.", 72, 700, 10, 14, 14, "Times-Bold"),
		makeFrag("Overview", 87, 700, 60, 14, 14, "Times-Bold"),
	))

	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "1. Overview" {
		t.Errorf("Text = %q, want \"1. Overview\"", page.Lines[0].Text)
	}
}

func TestAssembleSeparatesVerticalLines(t *testing.T) {
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("First line", 72, 700, 70, 12, 12, "Times-Roman"),
		makeFrag("Second line", 72, 684, 80, 12, 12, "Times-Roman"),
	))

	if len(page.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "First line" || page.Lines[1].Text != "Second line" {
		t.Errorf("reading order wrong: %q, %q", page.Lines[0].Text, page.Lines[1].Text)
	}
}

func TestAssembleReadingOrderTopToBottom(t *testing.T) {
	// Fragments arrive bottom-first; output must be top-first.
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("bottom", 72, 100, 45, 12, 12, "Times-Roman"),
		makeFrag("top", 72, 700, 25, 12, 12, "Times-Roman"),
	))

	if len(page.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "top" {
		t.Errorf("first line = %q, want top", page.Lines[0].Text)
	}
}

func TestAssembleLeftToRightWithinLine(t *testing.T) {
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("world", 120, 700, 40, 12, 12, "Times-Roman"),
		makeFrag("Hello", 72, 700, 40, 12, 12, "Times-Roman"),
	))

	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "Hello world" {
		t.Errorf("Text = %q, want \"Hello world\"", page.Lines[0].Text)
	}
}

func TestAssembleSplitsAtLargeGap(t *testing.T) {
	// A TOC-style row: entry text on the left, page number far right. The
	// band holds two logical lines, not one.
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("Introduction", 72, 700, 90, 12, 12, "Times-Roman"),
		makeFrag("5", 520, 700, 8, 12, 12, "Times-Roman"),
	))

	if len(page.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %+v", len(page.Lines), page.Lines)
	}
	if page.Lines[0].Text != "Introduction" || page.Lines[1].Text != "5" {
		t.Errorf("lines = %q, %q", page.Lines[0].Text, page.Lines[1].Text)
	}
}

func TestAssembleSkipsPathologicalFragments(t *testing.T) {
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("", 72, 700, 10, 12, 12, "Times-Roman"),
		makeFrag("   ", 90, 700, 10, 12, 12, "Times-Roman"),
		makeFrag("valid", 72, 650, 35, 12, 12, "Times-Roman"),
		makeFrag("no size", 72, 600, 40, 12, 0, "Times-Roman"),
	))

	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(page.Lines))
	}
	if page.Lines[0].Text != "valid" {
		t.Errorf("Text = %q", page.Lines[0].Text)
	}
}

func TestAssembleDominantFontSize(t *testing.T) {
	// The fragment with the most characters decides the line's font size.
	a := NewLineAssembler()
	page := a.Assemble(pageOf(
		makeFrag("x", 72, 700, 6, 9, 9, "Times-Roman"),
		makeFrag("the rest of the heading", 82, 701, 160, 14, 14, "Times-Bold"),
	))

	if len(page.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %+v", len(page.Lines), page.Lines)
	}
	if page.Lines[0].FontSize != 14 {
		t.Errorf("FontSize = %f, want 14", page.Lines[0].FontSize)
	}
	if page.Lines[0].FontName != "Times-Bold" {
		t.Errorf("FontName = %q, want Times-Bold", page.Lines[0].FontName)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	frags := pageOf(
		makeFrag("Alpha", 72, 700, 40, 12, 12, "Times-Roman"),
		makeFrag("Beta", 120, 700, 35, 12, 12, "Times-Roman"),
		makeFrag("Gamma", 72, 680, 45, 12, 12, "Times-Roman"),
	)

	a := NewLineAssembler()
	first := a.Assemble(frags)
	for i := 0; i < 10; i++ {
		got := a.Assemble(frags)
		if len(got.Lines) != len(first.Lines) {
			t.Fatal("nondeterministic line count")
		}
		for j := range got.Lines {
			if got.Lines[j].Text != first.Lines[j].Text {
				t.Fatalf("nondeterministic text at %d: %q vs %q", j, got.Lines[j].Text, first.Lines[j].Text)
			}
		}
	}
}
