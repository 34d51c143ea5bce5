package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AngleUnit != "degrees" {
		t.Errorf("expected default angle unit degrees, got %s", cfg.AngleUnit)
	}
	if cfg.HistoryLimit != 0 {
		t.Errorf("expected unlimited history by default, got %d", cfg.HistoryLimit)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.AngleUnit = "radians"
	cfg.HistoryLimit = 50

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.AngleUnit != "radians" {
		t.Errorf("expected radians, got %s", loaded.AngleUnit)
	}
	if loaded.HistoryLimit != 50 {
		t.Errorf("expected history limit 50, got %d", loaded.HistoryLimit)
	}
}

func TestLoadSanitizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"angle_unit":"gradians","history_limit":-3}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AngleUnit != "degrees" {
		t.Errorf("expected invalid angle unit to fall back to degrees, got %s", cfg.AngleUnit)
	}
	if cfg.HistoryLimit != 0 {
		t.Errorf("expected negative history limit to clamp to 0, got %d", cfg.HistoryLimit)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
