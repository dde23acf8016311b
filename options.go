package outliner

import (
	"github.com/tsawler/outliner/engine"
	"github.com/tsawler/outliner/pdfx"
)

// Options holds the combined configuration of one extraction: file reading
// options plus pipeline configuration.
type Options struct {
	extract pdfx.Options
	engine  engine.Config
}

// defaultOptions returns the default extraction options.
func defaultOptions() Options {
	return Options{
		extract: pdfx.DefaultOptions(),
		engine:  engine.DefaultConfig(),
	}
}
