package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default configuration should validate, got %v", err)
	}
	if cfg.Motion.OvershootThreshold <= 0 {
		t.Errorf("Default motion params should be populated, got %+v", cfg.Motion)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("A missing config file should not be an error, got %v", err)
	}
	if cfg.Idle.MaxIntervalMs != Default().Idle.MaxIntervalMs {
		t.Errorf("Expected defaults, got %+v", cfg.Idle)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostcursor.yaml")
	raw := []byte(`
motion:
  overshootThreshold: 750
  overshootRadius: 90
trace:
  stepDelayMs: 4
idle:
  enabled: false
  minIntervalMs: 100
  maxIntervalMs: 300
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Motion.OvershootThreshold != 750 {
		t.Errorf("Expected overridden threshold 750, got %f", cfg.Motion.OvershootThreshold)
	}
	if cfg.Motion.OvershootRadius != 90 {
		t.Errorf("Expected overridden radius 90, got %f", cfg.Motion.OvershootRadius)
	}
	if cfg.Idle.Enabled {
		t.Errorf("Expected idle to be disabled")
	}
	if cfg.Trace.StepDelayMs != 4 {
		t.Errorf("Expected step delay 4ms, got %d", cfg.Trace.StepDelayMs)
	}
	// Untouched keys keep their defaults.
	if cfg.Click.HoldMaxMs != Default().Click.HoldMaxMs {
		t.Errorf("Unset keys should keep defaults, got %+v", cfg.Click)
	}
}

func TestLoadRejectsInvalidWindows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostcursor.yaml")
	raw := []byte(`
click:
  holdMinMs: 200
  holdMaxMs: 50
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("An inverted hold window should fail validation")
	}
}

func TestLoadRejectsNegativeStepDelay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostcursor.yaml")
	raw := []byte(`
trace:
  stepDelayMs: -5
`)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("A negative step delay should fail validation")
	}
}
