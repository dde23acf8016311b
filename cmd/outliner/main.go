// Command outliner extracts outlines from every PDF in an input directory
// and writes one JSON file per document to an output directory. A document
// that cannot be processed still produces an output file with an empty
// outline, so downstream consumers always find one record per input.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/internal/config"
	"github.com/tsawler/outliner/layout"
	"github.com/tsawler/outliner/model"
)

func main() {
	cfg := config.Load()

	inputDir := flag.String("input", cfg.InputDir, "directory containing PDF files")
	outputDir := flag.String("output", cfg.OutputDir, "directory for JSON outline files")
	workers := flag.Int("workers", cfg.WorkerCount, "number of documents processed concurrently")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	weights, err := config.LoadWeights(cfg.WeightsFile)
	if err != nil {
		log.Error("invalid weights file", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Error("create output directory", "dir", *outputDir, "error", err)
		os.Exit(1)
	}

	paths, err := listPDFs(*inputDir)
	if err != nil {
		log.Error("read input directory", "dir", *inputDir, "error", err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		log.Info("no pdf files found", "dir", *inputDir)
		return
	}

	log.Info("starting batch", "documents", len(paths), "workers", *workers)
	start := time.Now()

	p := processor{
		outputDir: *outputDir,
		timeout:   cfg.DocTimeout,
		maxPages:  cfg.MaxPages,
		weights:   weights,
		log:       log,
	}
	p.run(paths, *workers)

	log.Info("batch complete", "documents", len(paths), "elapsed", time.Since(start).String())
}

type processor struct {
	outputDir string
	timeout   time.Duration
	maxPages  int
	weights   layout.ScoreConfig
	log       *slog.Logger
}

// run fans the documents out over a bounded worker pool. Failures are
// per-document; the batch always runs to completion.
func (p processor) run(paths []string, workers int) {
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()
			p.processOne(path)
		}(path)
	}
	wg.Wait()
}

// processOne extracts a single document's outline and writes it out. The
// extraction runs under a deadline; a document that overruns it gets an
// empty record rather than stalling the batch. The extraction goroutine
// itself is abandoned on timeout and finishes in the background, still
// holding its worker slot, so a slow document costs one slot until its
// parse completes rather than blocking the whole batch.
func (p processor) processOne(path string) {
	start := time.Now()
	log := p.log.With("file", filepath.Base(path))

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	type result struct {
		outline model.DocumentOutline
		err     error
	}
	ch := make(chan result, 1)
	go func() {
		outline, err := outliner.Open(path).
			MaxPages(p.maxPages).
			Weights(p.weights).
			Outline()
		ch <- result{outline, err}
	}()

	var outline model.DocumentOutline
	select {
	case r := <-ch:
		if r.err != nil {
			log.Warn("extraction failed, emitting empty outline", "error", r.err)
			outline = model.Empty()
		} else {
			outline = r.outline
		}
	case <-ctx.Done():
		log.Warn("extraction timed out, emitting empty outline", "timeout", p.timeout.String())
		outline = model.Empty()
		// The abandoned parse keeps running; hold this worker slot until
		// it finishes so in-flight extractions stay bounded by the pool.
		defer func() { <-ch }()
	}

	outPath := filepath.Join(p.outputDir, jsonName(path))
	if err := writeJSON(outPath, outline); err != nil {
		log.Error("write output", "path", outPath, "error", err)
		return
	}

	log.Info("processed",
		"title", outline.Title,
		"headings", len(outline.Outline),
		"elapsed", time.Since(start).String(),
	)
}

// listPDFs returns the .pdf files directly inside dir, sorted by name.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// jsonName maps report.pdf to report.json.
func jsonName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

func writeJSON(path string, outline model.DocumentOutline) error {
	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
