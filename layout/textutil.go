package layout

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// numberingRe matches a leading enumeration pattern: "1.", "1.2", "1.2.3",
// or "1)" followed by whitespace and more text. A bare number with no
// terminator ("2024 Annual Report") is not an enumeration.
var numberingRe = regexp.MustCompile(`^(?:(\d+(?:\.\d+)+)\.?|\d+[.)])\s+\S`)

// whitespaceRe collapses runs of whitespace, including newlines and tabs.
var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeText returns the NFC-normalized text with whitespace collapsed to
// single spaces and leading/trailing whitespace removed. All emitted heading
// and title text passes through here.
func NormalizeText(s string) string {
	s = norm.NFC.String(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// foldKey returns a case-folded normalization key for text comparison.
func foldKey(s string) string {
	return strings.ToLower(NormalizeText(s))
}

// FoldEqual reports whether two strings are equal after normalization and
// case folding.
func FoldEqual(a, b string) bool {
	return foldKey(a) == foldKey(b)
}

// numberingDepth returns the depth of a leading enumeration pattern: the
// count of dot-separated numeric components ("1.2.1" has depth 3), capped
// at 3. Zero means no numbering.
func numberingDepth(s string) int {
	m := numberingRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	if m[1] == "" {
		return 1 // "N." or "N)" style
	}
	depth := strings.Count(m[1], ".") + 1
	if depth > 3 {
		depth = 3
	}
	return depth
}

// tokenCount returns the number of whitespace-separated tokens.
func tokenCount(s string) int {
	return len(strings.Fields(s))
}

// hasTerminalPunct reports whether the text ends in sentence punctuation
// characteristic of body prose.
func hasTerminalPunct(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', ',', ';':
		// An enumeration terminator like "3." alone is not prose shape.
		return tokenCount(s) > 1
	}
	return false
}

// isAllCaps reports whether the text is (almost) entirely uppercase.
// Requires at least three letters to avoid flagging initials.
func isAllCaps(s string) bool {
	upper, lower := 0, 0
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}

// isTitleCase reports whether most words start with an uppercase letter.
// Short connectives ("of", "and") are ignored, matching common title style.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}

	significant, capitalized := 0, 0
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		if len(w) <= 3 && significant > 0 {
			continue // connective
		}
		significant++
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	if significant == 0 {
		return false
	}
	return capitalized == significant
}
