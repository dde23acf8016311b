package fragment

import "testing"

func TestIsBold(t *testing.T) {
	tests := []struct {
		name     string
		frag     TextFragment
		expected bool
	}{
		{"flag set", TextFragment{Bold: true, FontName: "Helvetica"}, true},
		{"bold in name", TextFragment{FontName: "Helvetica-Bold"}, true},
		{"black in name", TextFragment{FontName: "Arial Black"}, true},
		{"semibold in name", TextFragment{FontName: "SourceSans-SemiBold"}, true},
		{"heavy in name", TextFragment{FontName: "Helvetica-Heavy"}, true},
		{"regular", TextFragment{FontName: "Times-Roman"}, false},
		{"no font name", TextFragment{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frag.IsBold(); got != tt.expected {
				t.Errorf("IsBold() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsItalic(t *testing.T) {
	tests := []struct {
		name     string
		frag     TextFragment
		expected bool
	}{
		{"flag set", TextFragment{Italic: true}, true},
		{"italic in name", TextFragment{FontName: "Times-Italic"}, true},
		{"oblique in name", TextFragment{FontName: "Helvetica-Oblique"}, true},
		{"regular", TextFragment{FontName: "Times-Roman"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frag.IsItalic(); got != tt.expected {
				t.Errorf("IsItalic() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCharCount(t *testing.T) {
	f := TextFragment{Text: "héllo"}
	if got := f.CharCount(); got != 5 {
		t.Errorf("CharCount() = %d, want 5", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(TextFragment{Text: "   "}).IsEmpty() {
		t.Error("whitespace-only fragment should be empty")
	}
	if (TextFragment{Text: "x"}).IsEmpty() {
		t.Error("non-blank fragment should not be empty")
	}
}

func TestDocumentIsEmpty(t *testing.T) {
	var nilDoc *Document
	if !nilDoc.IsEmpty() {
		t.Error("nil document should be empty")
	}

	doc := &Document{
		Pages: []PageFragments{
			{Page: 1, Fragments: []TextFragment{{Text: "  "}}},
		},
		PageCount: 1,
	}
	if !doc.IsEmpty() {
		t.Error("document with only blank fragments should be empty")
	}

	doc.Pages[0].Fragments = append(doc.Pages[0].Fragments, TextFragment{Text: "Introduction"})
	if doc.IsEmpty() {
		t.Error("document with text should not be empty")
	}
}
