// Package layout implements the heading and title inference engine: line
// assembly from raw text fragments, multi-signal heading scoring, hierarchy
// normalization, and title resolution.
//
// The pipeline shape is:
//
//	fragments -> LineAssembler -> []Line
//	[]Line + stats.DocumentStats -> HeadingScorer -> []HeadingCandidate
//	[]HeadingCandidate -> Normalizer -> []model.OutlineEntry
//
// Document-wide statistics (see the stats package) must be collected before
// any page is scored. Line assembly and scoring are independent per page;
// normalization is sequential because it carries cross-page state.
//
// All tunable heuristics live in explicit configuration structs
// ([AssemblerConfig], [ScoreConfig], [NormalizerConfig], [TitleConfig]) so
// the weights can be adjusted and tested independently of the pipeline.
package layout
