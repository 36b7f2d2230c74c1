package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkort/tannen/config"
	"github.com/mkort/tannen/tree"
)

func newHeadless(t *testing.T, outputDir string) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	// Shrink particle counts so tests stay fast.
	cfg := config.Cfg()
	cfg.Foliage.Count = 500
	cfg.Lights.Count = 40
	cfg.Ornaments.Count = 24
	cfg.Gifts.Count = 5

	g, err := New(Options{
		Seed:      7,
		Headless:  true,
		OutputDir: outputDir,
	})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestHeadlessRunAdvances(t *testing.T) {
	g := newHeadless(t, "")
	defer g.Unload()

	for i := 0; i < 60; i++ {
		g.UpdateHeadless()
	}

	if g.Tick() != 60 {
		t.Errorf("tick = %d, want 60", g.Tick())
	}

	// The first headless tick starts a morph toward the formed shape.
	if g.Tree().Target() != tree.Formed {
		t.Errorf("target = %v, want formed", g.Tree().Target())
	}
	p := g.Tree().Foliage.Progress()
	if p <= 0.1 || p >= 1 {
		t.Errorf("foliage progress after 1s = %v, want in (0.1, 1)", p)
	}
}

func TestHeadlessOutputFiles(t *testing.T) {
	dir := t.TempDir()
	g := newHeadless(t, dir)

	// 600 ticks is 10 simulated seconds, enough for the slowest layer to
	// settle and the first morph event to flush.
	for i := 0; i < 600; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"frames.csv", "perf.csv", "morphs.csv", "config.yaml"} {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("%s missing: %v", name, err)
			continue
		}
		if name == "config.yaml" && info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestHeadlessPingPong(t *testing.T) {
	g := newHeadless(t, "")
	defer g.Unload()

	// Run long enough for the first morph to settle and a second to start.
	sawScattered := false
	for i := 0; i < 3600; i++ {
		g.UpdateHeadless()
		if g.Tree().Target() == tree.Scattered && i > 60 {
			sawScattered = true
			break
		}
	}

	if !sawScattered {
		t.Error("headless driver never toggled back toward scattered")
	}
}
