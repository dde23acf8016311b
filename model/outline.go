package model

import "fmt"

// Level represents the hierarchical level of an outline heading.
type Level int

const (
	LevelNone Level = iota
	H1              // Top-level section
	H2              // Subsection
	H3              // Sub-subsection
)

// String returns the wire representation of the level ("H1", "H2", "H3").
func (l Level) String() string {
	switch l {
	case H1:
		return "H1"
	case H2:
		return "H2"
	case H3:
		return "H3"
	default:
		return "none"
	}
}

// Depth returns the numeric depth of the level (H1=1, H2=2, H3=3, none=0).
func (l Level) Depth() int {
	if l < H1 || l > H3 {
		return 0
	}
	return int(l)
}

// MarshalJSON renders the level as its wire string.
func (l Level) MarshalJSON() ([]byte, error) {
	if l < H1 || l > H3 {
		return nil, fmt.Errorf("level %d is not serializable", l)
	}
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON parses a wire-format level string.
func (l *Level) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = H1
	case `"H2"`:
		*l = H2
	case `"H3"`:
		*l = H3
	default:
		return fmt.Errorf("unknown level %s", data)
	}
	return nil
}

// OutlineEntry is a single heading in the final outline. Entries appear in
// document reading order: non-decreasing in (page, vertical position).
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"` // 1-indexed
}

// TitleSource indicates how the document title was determined.
type TitleSource int

const (
	// TitleNone means no title could be determined.
	TitleNone TitleSource = iota

	// TitleMetadata means the title came from embedded document metadata.
	TitleMetadata

	// TitleInferred means the title was inferred from page-1 layout.
	TitleInferred
)

// String returns a string representation of the title source.
func (s TitleSource) String() string {
	switch s {
	case TitleMetadata:
		return "metadata"
	case TitleInferred:
		return "inferred"
	default:
		return "none"
	}
}

// TitleResult holds the resolved document title and its provenance.
type TitleResult struct {
	// Text is the title text; empty when Source is TitleNone.
	Text string

	// Source records where the title came from.
	Source TitleSource
}

// DocumentOutline is the terminal output record of the extraction pipeline.
type DocumentOutline struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// Empty returns an outline record for a document with no extractable
// structure. The Outline slice is non-nil so it serializes as [].
func Empty() DocumentOutline {
	return DocumentOutline{
		Title:   "",
		Outline: []OutlineEntry{},
	}
}
