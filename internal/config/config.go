// Package config loads CLI runtime settings from the environment, with an
// optional YAML file overriding the heading scorer's weights.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/outliner/layout"
)

type Config struct {
	// Input and output directories for batch mode.
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount int

	// Per-document processing budget.
	DocTimeout time.Duration

	// Extraction
	MaxPages int

	// WeightsFile points to an optional YAML file overriding scorer weights.
	WeightsFile string

	// Logging
	LogLevel string
}

func Load() Config {
	cfg := Config{
		InputDir:  envOr("OUTLINER_INPUT_DIR", "input"),
		OutputDir: envOr("OUTLINER_OUTPUT_DIR", "output"),

		WorkerCount: envInt("OUTLINER_WORKERS", 4),
		DocTimeout:  envDuration("OUTLINER_DOC_TIMEOUT", 10*time.Second),
		MaxPages:    envInt("OUTLINER_MAX_PAGES", 50),

		WeightsFile: os.Getenv("OUTLINER_WEIGHTS_FILE"),

		LogLevel: envOr("OUTLINER_LOG_LEVEL", "info"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.DocTimeout <= 0 {
		cfg.DocTimeout = 10 * time.Second
	}

	return cfg
}

// weightsFile mirrors layout.ScoreConfig with pointer fields, so a YAML file
// can override a subset of weights and leave the rest at their defaults.
type weightsFile struct {
	SizeWeight       *float64 `yaml:"size_weight"`
	BoldBonus        *float64 `yaml:"bold_bonus"`
	PositionBonus    *float64 `yaml:"position_bonus"`
	MarginTolerance  *float64 `yaml:"margin_tolerance"`
	CenterTolerance  *float64 `yaml:"center_tolerance"`
	NumberingWeight  *float64 `yaml:"numbering_weight"`
	BrevityBonus     *float64 `yaml:"brevity_bonus"`
	MaxHeadingTokens *int     `yaml:"max_heading_tokens"`
	ProsePenalty     *float64 `yaml:"prose_penalty"`
	CaseBonus        *float64 `yaml:"case_bonus"`
	MinScore         *float64 `yaml:"min_score"`
}

// LoadWeights returns the default scorer weights, overlaid with any values
// set in the YAML file at path. An empty path returns the defaults as-is.
func LoadWeights(path string) (layout.ScoreConfig, error) {
	weights := layout.DefaultScoreConfig()
	if path == "" {
		return weights, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return weights, fmt.Errorf("read weights file: %w", err)
	}

	var wf weightsFile
	if err := yaml.Unmarshal(data, &wf); err != nil {
		return weights, fmt.Errorf("parse weights file %s: %w", path, err)
	}

	overlayWeights(&weights, wf)
	return weights, nil
}

func overlayWeights(w *layout.ScoreConfig, wf weightsFile) {
	if wf.SizeWeight != nil {
		w.SizeWeight = *wf.SizeWeight
	}
	if wf.BoldBonus != nil {
		w.BoldBonus = *wf.BoldBonus
	}
	if wf.PositionBonus != nil {
		w.PositionBonus = *wf.PositionBonus
	}
	if wf.MarginTolerance != nil {
		w.MarginTolerance = *wf.MarginTolerance
	}
	if wf.CenterTolerance != nil {
		w.CenterTolerance = *wf.CenterTolerance
	}
	if wf.NumberingWeight != nil {
		w.NumberingWeight = *wf.NumberingWeight
	}
	if wf.BrevityBonus != nil {
		w.BrevityBonus = *wf.BrevityBonus
	}
	if wf.MaxHeadingTokens != nil {
		w.MaxHeadingTokens = *wf.MaxHeadingTokens
	}
	if wf.ProsePenalty != nil {
		w.ProsePenalty = *wf.ProsePenalty
	}
	if wf.CaseBonus != nil {
		w.CaseBonus = *wf.CaseBonus
	}
	if wf.MinScore != nil {
		w.MinScore = *wf.MinScore
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
