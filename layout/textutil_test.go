package layout

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"collapse spaces", "Annual   Report\t2024", "Annual Report 2024"},
		{"trim", "  Introduction  ", "Introduction"},
		{"newlines", "Table of\nContents", "Table of Contents"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestNumberingDepth(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"1. Introduction", 1},
		{"3) Results", 1},
		{"2.3 Methodology", 2},
		{"1.2.3 Experimental Setup", 3},
		{"1.2.3. Trailing terminator", 3},
		{"1.2.3.4 Very deep", 3}, // capped
		{"Introduction", 0},
		{"2024 Annual Report", 0}, // bare number is not enumeration
		{"1.Introduction", 0},     // no whitespace after pattern
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := numberingDepth(tt.text); got != tt.expected {
				t.Errorf("numberingDepth(%q) = %d, want %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestHasTerminalPunct(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"This sentence ends with a period.", true},
		{"a trailing comma,", true},
		{"a trailing semicolon;", true},
		{"Introduction", false},
		{"What now?", false},
		{"3.", false}, // lone enumeration terminator
		{"", false},
	}

	for _, tt := range tests {
		if got := hasTerminalPunct(tt.text); got != tt.expected {
			t.Errorf("hasTerminalPunct(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"EXECUTIVE SUMMARY", true},
		{"APPENDIX A", true},
		{"Executive Summary", false},
		{"AB", false},    // too short
		{"1.2.3", false}, // no letters
	}

	for _, tt := range tests {
		if got := isAllCaps(tt.text); got != tt.expected {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"Statement of Cash Flows", true},
		{"Annual Report", true},
		{"the quick brown fox", false},
		{"Mixed case Heading here", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isTitleCase(tt.text); got != tt.expected {
			t.Errorf("isTitleCase(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}

func TestFoldKey(t *testing.T) {
	if foldKey("  Annual  REPORT ") != "annual report" {
		t.Errorf("foldKey mismatch: %q", foldKey("  Annual  REPORT "))
	}
}
