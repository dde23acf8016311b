package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tsawler/outliner/layout"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.InputDir != "input" || cfg.OutputDir != "output" {
		t.Errorf("dirs = %q, %q", cfg.InputDir, cfg.OutputDir)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want 4", cfg.WorkerCount)
	}
	if cfg.DocTimeout != 10*time.Second {
		t.Errorf("DocTimeout = %v", cfg.DocTimeout)
	}
	if cfg.MaxPages != 50 {
		t.Errorf("MaxPages = %d, want 50", cfg.MaxPages)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("OUTLINER_INPUT_DIR", "/data/in")
	t.Setenv("OUTLINER_WORKERS", "8")
	t.Setenv("OUTLINER_DOC_TIMEOUT", "30s")

	cfg := Load()
	if cfg.InputDir != "/data/in" {
		t.Errorf("InputDir = %q", cfg.InputDir)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d", cfg.WorkerCount)
	}
	if cfg.DocTimeout != 30*time.Second {
		t.Errorf("DocTimeout = %v", cfg.DocTimeout)
	}
}

func TestLoadRejectsNonPositiveWorkers(t *testing.T) {
	t.Setenv("OUTLINER_WORKERS", "-2")
	if cfg := Load(); cfg.WorkerCount != 4 {
		t.Errorf("WorkerCount = %d, want fallback 4", cfg.WorkerCount)
	}
}

func TestLoadWeightsEmptyPath(t *testing.T) {
	weights, err := LoadWeights("")
	if err != nil {
		t.Fatal(err)
	}
	if weights != layout.DefaultScoreConfig() {
		t.Errorf("weights = %+v, want defaults", weights)
	}
}

func TestLoadWeightsPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	data := "bold_bonus: 2.5\nmin_score: 3.0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	weights, err := LoadWeights(path)
	if err != nil {
		t.Fatal(err)
	}
	if weights.BoldBonus != 2.5 {
		t.Errorf("BoldBonus = %f, want 2.5", weights.BoldBonus)
	}
	if weights.MinScore != 3.0 {
		t.Errorf("MinScore = %f, want 3.0", weights.MinScore)
	}

	// Everything not named in the file keeps its default.
	def := layout.DefaultScoreConfig()
	if weights.SizeWeight != def.SizeWeight || weights.NumberingWeight != def.NumberingWeight {
		t.Errorf("unrelated weights changed: %+v", weights)
	}
}

func TestLoadWeightsMissingFile(t *testing.T) {
	if _, err := LoadWeights("/nonexistent/weights.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadWeightsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.yaml")
	if err := os.WriteFile(path, []byte("bold_bonus: [not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWeights(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
