package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen = %dx%d, want positive", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Foliage.Count <= 0 {
		t.Errorf("foliage count = %d, want positive", cfg.Foliage.Count)
	}
	if cfg.Foliage.Tau <= 0 || cfg.Lights.Tau <= 0 {
		t.Error("layer time constants must be positive")
	}
	if cfg.Lights.Tau <= cfg.Foliage.Tau {
		t.Errorf("lights tau %v should exceed foliage tau %v so layers stagger",
			cfg.Lights.Tau, cfg.Foliage.Tau)
	}
	if cfg.PostFX.BloomSamples <= 0 || cfg.PostFX.BloomQuality <= 0 {
		t.Errorf("bloom kernel = %v samples / %v quality, want positive",
			cfg.PostFX.BloomSamples, cfg.PostFX.BloomQuality)
	}
	if cfg.Gifts.MaxHeight <= 0 {
		t.Errorf("gift max height = %v, want positive", cfg.Gifts.MaxHeight)
	}
}

func TestLoadDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if cfg.Derived.ApexY != float32(cfg.Foliage.Height) {
		t.Errorf("apex = %v, want %v", cfg.Derived.ApexY, cfg.Foliage.Height)
	}
	wantTopper := float32(cfg.Foliage.Height + cfg.Topper.HeightOffset)
	if cfg.Derived.TopperY != wantTopper {
		t.Errorf("topper y = %v, want %v", cfg.Derived.TopperY, wantTopper)
	}
	wantTotal := cfg.Foliage.Count + cfg.Lights.Count + cfg.Ornaments.Count + cfg.Gifts.Count + 1
	if cfg.Derived.TotalOnTree != wantTotal {
		t.Errorf("total = %d, want %d", cfg.Derived.TotalOnTree, wantTotal)
	}
}

func TestLoadMergesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := "foliage:\n  count: 1234\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("write partial config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Foliage.Count != 1234 {
		t.Errorf("foliage count = %d, want override 1234", cfg.Foliage.Count)
	}
	// Untouched fields keep their defaults.
	defaults, _ := Load("")
	if cfg.Lights.Count != defaults.Lights.Count {
		t.Errorf("lights count = %d, want default %d", cfg.Lights.Count, defaults.Lights.Count)
	}
	if cfg.Foliage.Height != defaults.Foliage.Height {
		t.Errorf("foliage height = %v, want default %v", cfg.Foliage.Height, defaults.Foliage.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestMustInitPanicsOnMissingFile(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing config file")
		}
	}()
	MustInit(filepath.Join(t.TempDir(), "nope.yaml"))
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	cfg.Foliage.Count = 777

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Foliage.Count != 777 {
		t.Errorf("round-tripped count = %d, want 777", back.Foliage.Count)
	}
}
