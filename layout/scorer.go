package layout

import (
	"math"
	"sort"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/stats"
)

// HeadingCandidate is a scored line with a provisional level. Every line on
// a page produces a candidate; lines scoring below ScoreConfig.MinScore keep
// model.LevelNone and are body text.
type HeadingCandidate struct {
	// Line is the underlying assembled line.
	Line Line

	// Score is the composite heading score, always >= 0.
	Score float64

	// Level is the provisional level before normalization.
	Level model.Level

	// NumberingDepth is the depth of a leading enumeration pattern in the
	// line text (0 when none). A non-zero depth fixes the level directly.
	NumberingDepth int
}

// ScoreConfig holds the tunable weights of the heading scorer. Weights are
// additive contributions to the composite score; they are configuration, not
// semantics, and can be overridden wholesale (see the config package).
type ScoreConfig struct {
	// SizeWeight scales the font-size z-score contribution. A line at or
	// below the body font size contributes nothing.
	// Default: 1.0
	SizeWeight float64

	// BoldBonus is added when the line is bold (style flag or a bold marker
	// in the font name).
	// Default: 1.5
	BoldBonus float64

	// PositionBonus is added when the line starts within MarginTolerance of
	// the page's dominant left margin, or is a short centered line.
	// Default: 0.5
	PositionBonus float64

	// MarginTolerance is the maximum distance, in points, from the dominant
	// left margin for the position bonus.
	// Default: 18
	MarginTolerance float64

	// CenterTolerance is the maximum distance of a line's center from the
	// page's horizontal midpoint, as a fraction of page width, for the
	// centered variant of the position bonus.
	// Default: 0.08
	CenterTolerance float64

	// NumberingWeight is divided by the numbering depth to produce the
	// numbering bonus, so shallower enumeration scores higher.
	// Default: 3.0
	NumberingWeight float64

	// BrevityBonus is added when the line has at most MaxHeadingTokens
	// tokens and no terminal sentence punctuation.
	// Default: 1.0
	BrevityBonus float64

	// MaxHeadingTokens is the token count above which a line stops looking
	// like a heading.
	// Default: 12
	MaxHeadingTokens int

	// ProsePenalty is subtracted when the line exceeds MaxHeadingTokens and
	// ends in sentence punctuation (body-text prose shape).
	// Default: 3.0
	ProsePenalty float64

	// CaseBonus is added when the line is fully capitalized or title-cased.
	// Default: 0.75
	CaseBonus float64

	// MinScore is the minimum composite score for a line to be classified
	// as any heading level.
	// Default: 2.0
	MinScore float64
}

// DefaultScoreConfig returns the default scoring weights. The defaults are
// validated against the scenario tests in this package.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		SizeWeight:       1.0,
		BoldBonus:        1.5,
		PositionBonus:    0.5,
		MarginTolerance:  18,
		CenterTolerance:  0.08,
		NumberingWeight:  3.0,
		BrevityBonus:     1.0,
		MaxHeadingTokens: 12,
		ProsePenalty:     3.0,
		CaseBonus:        0.75,
		MinScore:         2.0,
	}
}

// HeadingScorer assigns composite heading scores and provisional levels.
// Scoring one page is independent of other pages once document statistics
// are available; level assignment for unnumbered candidates is document-wide.
type HeadingScorer struct {
	config ScoreConfig
}

// NewHeadingScorer creates a heading scorer with default weights.
func NewHeadingScorer() *HeadingScorer {
	return &HeadingScorer{config: DefaultScoreConfig()}
}

// NewHeadingScorerWithConfig creates a heading scorer with custom weights.
func NewHeadingScorerWithConfig(config ScoreConfig) *HeadingScorer {
	return &HeadingScorer{config: config}
}

// Config returns the scorer's weights.
func (s *HeadingScorer) Config() ScoreConfig {
	return s.config
}

// ScorePage scores every line of a page against the document statistics.
// Numbering-derived levels are fixed here; size-derived levels are assigned
// later by AssignLevels once all pages are scored.
func (s *HeadingScorer) ScorePage(page Page, st stats.DocumentStats) []HeadingCandidate {
	if len(page.Lines) == 0 {
		return nil
	}

	margin := dominantLeftMargin(page.Lines)
	cands := make([]HeadingCandidate, 0, len(page.Lines))

	for _, line := range page.Lines {
		c := HeadingCandidate{Line: line, Level: model.LevelNone}
		c.Score, c.NumberingDepth = s.scoreLine(line, page, st, margin)

		if c.Score >= s.config.MinScore && c.NumberingDepth > 0 {
			// Numbering fixes the level directly: depth 1 -> H1, 2 -> H2,
			// 3 -> H3, overriding size-based classification.
			c.Level = model.Level(c.NumberingDepth)
		}
		cands = append(cands, c)
	}

	return cands
}

// scoreLine computes the composite score for a single line.
func (s *HeadingScorer) scoreLine(line Line, page Page, st stats.DocumentStats, margin float64) (float64, int) {
	text := NormalizeText(line.Text)
	if text == "" {
		return 0, 0
	}

	score := 0.0

	// Size signal: document-relative z-score of the line's font size.
	score += s.config.SizeWeight * st.ZScore(line.FontSize)

	// Weight signal.
	if line.Bold {
		score += s.config.BoldBonus
	}

	// Position signal: dominant left margin proximity, or a short centered
	// line near the page's horizontal midpoint.
	atMargin := absFloat(line.BBox.Left()-margin) <= s.config.MarginTolerance
	centered := false
	if page.Width > 0 && line.WordCount() <= s.config.MaxHeadingTokens {
		mid := page.Width / 2
		centered = absFloat(line.BBox.Center().X-mid) <= s.config.CenterTolerance*page.Width &&
			line.BBox.Width < page.Width*0.7
	}
	if atMargin || centered {
		score += s.config.PositionBonus
	}

	// Numbering signal: bonus inversely proportional to depth.
	depth := numberingDepth(text)
	if depth > 0 {
		score += s.config.NumberingWeight / float64(depth)
	}

	// Brevity/shape signal.
	tokens := line.WordCount()
	prose := hasTerminalPunct(text)
	if tokens <= s.config.MaxHeadingTokens && !prose {
		score += s.config.BrevityBonus
	} else if tokens > s.config.MaxHeadingTokens && prose {
		score -= s.config.ProsePenalty
	}

	// Case signal.
	if isAllCaps(text) || isTitleCase(text) {
		score += s.config.CaseBonus
	}

	if score < 0 {
		score = 0
	}
	return score, depth
}

// AssignLevels assigns size-derived levels to qualifying candidates that did
// not receive a numbering-fixed level. Distinct font sizes among qualifying
// lines are ranked document-wide: the largest tier becomes H1, the next H2,
// and all smaller qualifying tiers H3. Thresholds are document-relative, so
// the same weights work across font scales. Candidates are expected in
// document order; equal scores therefore resolve to the earlier line first.
func (s *HeadingScorer) AssignLevels(cands []HeadingCandidate) {
	// Collect distinct size buckets among qualifying, unnumbered candidates.
	const sizeBucket = 0.5
	seen := make(map[int]bool)
	var buckets []int
	for _, c := range cands {
		if c.Score < s.config.MinScore || c.NumberingDepth > 0 {
			continue
		}
		b := int(math.Round(c.Line.FontSize / sizeBucket))
		if !seen[b] {
			seen[b] = true
			buckets = append(buckets, b)
		}
	}
	if len(buckets) == 0 {
		return
	}
	sort.Sort(sort.Reverse(sort.IntSlice(buckets)))

	rank := make(map[int]model.Level, len(buckets))
	for i, b := range buckets {
		switch i {
		case 0:
			rank[b] = model.H1
		case 1:
			rank[b] = model.H2
		default:
			rank[b] = model.H3
		}
	}

	for i := range cands {
		c := &cands[i]
		if c.Score < s.config.MinScore || c.NumberingDepth > 0 {
			continue
		}
		b := int(math.Round(c.Line.FontSize / sizeBucket))
		c.Level = rank[b]
	}
}

// dominantLeftMargin returns the most common line start position on a page,
// bucketed to whole points. Earlier (smaller) margins win ties so indented
// blocks never displace the true margin.
func dominantLeftMargin(lines []Line) float64 {
	counts := make(map[int]int)
	for _, line := range lines {
		counts[int(math.Round(line.BBox.Left()))]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best, bestCount := 0, -1
	for _, k := range keys {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return float64(best)
}
