// Package engine orchestrates the outline extraction pipeline: document
// statistics, per-page line assembly and scoring, document-wide level
// assignment, hierarchy normalization, and title resolution.
package engine

import (
	"runtime"
	"sync"

	"github.com/tsawler/outliner/fragment"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/stats"
)

// Config holds configuration for the extraction engine. Zero values fall
// back to each stage's defaults.
type Config struct {
	// Assembler configures line assembly.
	Assembler layout.AssemblerConfig

	// Scorer configures heading scoring weights.
	Scorer layout.ScoreConfig

	// Normalizer configures hierarchy normalization.
	Normalizer layout.NormalizerConfig

	// Title configures title resolution.
	Title layout.TitleConfig

	// Parallelism is the maximum number of pages assembled and scored
	// concurrently. Zero or negative means runtime.NumCPU().
	Parallelism int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Assembler:  layout.DefaultAssemblerConfig(),
		Scorer:     layout.DefaultScoreConfig(),
		Normalizer: layout.DefaultNormalizerConfig(),
		Title:      layout.DefaultTitleConfig(),
	}
}

// Engine runs the extraction pipeline over a fragment document. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	config     Config
	assembler  *layout.LineAssembler
	scorer     *layout.HeadingScorer
	normalizer *layout.Normalizer
	titles     *layout.TitleResolver
}

// New creates an engine with default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(config Config) *Engine {
	def := DefaultConfig()
	if config.Assembler == (layout.AssemblerConfig{}) {
		config.Assembler = def.Assembler
	}
	if config.Scorer == (layout.ScoreConfig{}) {
		config.Scorer = def.Scorer
	}
	if config.Normalizer == (layout.NormalizerConfig{}) {
		config.Normalizer = def.Normalizer
	}
	if config.Title == (layout.TitleConfig{}) {
		config.Title = def.Title
	}

	return &Engine{
		config:     config,
		assembler:  layout.NewLineAssemblerWithConfig(config.Assembler),
		scorer:     layout.NewHeadingScorerWithConfig(config.Scorer),
		normalizer: layout.NewNormalizerWithConfig(config.Normalizer),
		titles:     layout.NewTitleResolverWithConfig(config.Title),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// pageResult carries one page's scored candidates plus the geometry needed
// downstream.
type pageResult struct {
	candidates []layout.HeadingCandidate
	pageHeight float64
}

// Extract runs the full pipeline and returns the document outline. The same
// input always yields the same output: pages are processed concurrently, but
// results are joined in page order before any order-sensitive stage runs.
// An empty document yields an empty outline, not an error.
func (e *Engine) Extract(doc *fragment.Document) model.DocumentOutline {
	if doc.IsEmpty() {
		return model.Empty()
	}

	// Phase barrier: statistics over the whole document must complete before
	// any page is scored, because scoring is relative to the body font size.
	st := stats.Collect(doc.Pages)

	results := e.scorePages(doc.Pages, st)

	// Flatten in page order, then assign size-derived levels document-wide.
	var all []layout.HeadingCandidate
	for _, r := range results {
		all = append(all, r.candidates...)
	}
	e.scorer.AssignLevels(all)

	// Title resolution sees page 1 before normalization, since a title is
	// usually the page's largest line and would otherwise dominate the
	// outline as a spurious H1.
	var page1 []layout.HeadingCandidate
	var page1Height float64
	if len(results) > 0 && len(doc.Pages) > 0 && doc.Pages[0].Page == 1 {
		page1 = results[0].candidates
		page1Height = results[0].pageHeight
	}
	title := e.titles.Resolve(doc.MetadataTitle, page1, page1Height, e.config.Scorer.MinScore)

	entries := e.normalizer.Normalize(all)
	entries = stripTitleEntry(entries, title)

	return model.DocumentOutline{Title: title.Text, Outline: entries}
}

// scorePages assembles and scores every page, fanning work out over a bounded
// worker pool and joining results in page order.
func (e *Engine) scorePages(pages []fragment.PageFragments, st stats.DocumentStats) []pageResult {
	workers := e.config.Parallelism
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pages) {
		workers = len(pages)
	}

	results := make([]pageResult, len(pages))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range pages {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			page := e.assembler.Assemble(pages[i])
			results[i] = pageResult{
				candidates: e.scorer.ScorePage(page, st),
				pageHeight: page.Height,
			}
		}(i)
	}
	wg.Wait()

	return results
}

// stripTitleEntry removes the first outline entry when it is the title
// restated on page 1. The title names the document; it is not a section of
// itself.
func stripTitleEntry(entries []model.OutlineEntry, title model.TitleResult) []model.OutlineEntry {
	if title.Text == "" || len(entries) == 0 {
		return entries
	}
	first := entries[0]
	if first.Page == 1 && layout.FoldEqual(first.Text, title.Text) {
		return entries[1:]
	}
	return entries
}
