package layout

import (
	"github.com/tsawler/outliner/model"
)

// TitleConfig holds configuration for title resolution.
type TitleConfig struct {
	// TopFraction is the portion of page 1, measured from the top, in which
	// an inferred title may appear.
	// Default: 1/3
	TopFraction float64

	// MinRunes and MaxRunes bound a plausible inferred title length.
	// Defaults: 5 and 200
	MinRunes int
	MaxRunes int
}

// DefaultTitleConfig returns sensible default configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		TopFraction: 1.0 / 3.0,
		MinRunes:    5,
		MaxRunes:    200,
	}
}

// TitleResolver determines the document title, preferring embedded metadata
// over layout inference.
type TitleResolver struct {
	config TitleConfig
}

// NewTitleResolver creates a title resolver with default configuration.
func NewTitleResolver() *TitleResolver {
	return &TitleResolver{config: DefaultTitleConfig()}
}

// NewTitleResolverWithConfig creates a title resolver with custom configuration.
func NewTitleResolverWithConfig(config TitleConfig) *TitleResolver {
	return &TitleResolver{config: config}
}

// Resolve determines the title.
//
//  1. Non-empty metadata title wins, whitespace-normalized.
//  2. Otherwise, among page-1 lines whose top edge lies in the top fraction
//     of the page, the line with the largest font size wins (topmost on
//     ties), provided its heading score clears minScore and its length is
//     plausible.
//  3. Otherwise the title is empty.
//
// page1 holds the scored candidates of page 1 in reading order; it may be
// nil for an empty document.
func (r *TitleResolver) Resolve(metadataTitle string, page1 []HeadingCandidate, pageHeight, minScore float64) model.TitleResult {
	if t := NormalizeText(metadataTitle); t != "" {
		return model.TitleResult{Text: t, Source: model.TitleMetadata}
	}

	if len(page1) == 0 || pageHeight <= 0 {
		return model.TitleResult{Source: model.TitleNone}
	}

	cutoff := pageHeight * (1 - r.config.TopFraction)

	var best *HeadingCandidate
	for i := range page1 {
		c := &page1[i]
		if !c.Line.BBox.IsValid() || c.Line.BBox.Top() < cutoff {
			continue
		}
		text := NormalizeText(c.Line.Text)
		runes := len([]rune(text))
		if runes < r.config.MinRunes || runes > r.config.MaxRunes {
			continue
		}
		if best == nil ||
			c.Line.FontSize > best.Line.FontSize ||
			(c.Line.FontSize == best.Line.FontSize && c.Line.BBox.Top() > best.Line.BBox.Top()) {
			best = c
		}
	}

	if best == nil || best.Score < minScore {
		return model.TitleResult{Source: model.TitleNone}
	}

	return model.TitleResult{
		Text:   NormalizeText(best.Line.Text),
		Source: model.TitleInferred,
	}
}
