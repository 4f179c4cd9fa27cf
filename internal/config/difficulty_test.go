package config

import "testing"

func testDifficultyConfig() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 1000,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			GapWidening:     4,
			WidthReduction:  5,
		},
	}
}

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if lvl := d.Level(0, 0); lvl != 0.0 {
		t.Errorf("Level at score 0 should be 0, got %f", lvl)
	}
	if lvl := d.Level(500, 0); lvl != 0.5 {
		t.Errorf("Level at half the max score should be 0.5, got %f", lvl)
	}
	if lvl := d.Level(1000, 0); lvl != 1.0 {
		t.Errorf("Level at max score should be 1.0, got %f", lvl)
	}
	if lvl := d.Level(5000, 0); lvl != 1.0 {
		t.Errorf("Level should cap at 1.0, got %f", lvl)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Enabled = false
	cfg.InitialLevel = 0.4
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("Disabled difficulty should report IsEnabled false")
	}
	if lvl := d.Level(900, 0); lvl != 0.4 {
		t.Errorf("Disabled difficulty should stay at the initial level, got %f", lvl)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 500); lvl != 0.5 {
		t.Errorf("Time progression at half max_at should be 0.5, got %f", lvl)
	}
	// Score should be ignored under time progression
	if lvl := d.Level(9999, 0); lvl != 0.0 {
		t.Errorf("Score should not affect time progression, got %f", lvl)
	}
}

func TestDifficultySpeedScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	base := 0.5
	if s := d.Speed(base, 0, 0); s != base {
		t.Errorf("Speed at level 0 should be base %f, got %f", base, s)
	}
	if s := d.Speed(base, 1000, 0); s != base*2 {
		t.Errorf("Speed at max level with multiplier 1.0 should double, got %f", s)
	}
}

func TestDifficultyGapWidening(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if g := d.MaxGap(9, 0, 0); g != 9 {
		t.Errorf("Max gap at level 0 should be base 9, got %d", g)
	}
	if g := d.MaxGap(9, 1000, 0); g != 13 {
		t.Errorf("Max gap at max level should widen by 4, got %d", g)
	}
}

func TestDifficultyWidthReductionFloorsAtMin(t *testing.T) {
	d := NewDifficultyManager(testDifficultyConfig())

	if w := d.MaxWidth(14, 6, 0, 0); w != 14 {
		t.Errorf("Max width at level 0 should be base 14, got %d", w)
	}
	if w := d.MaxWidth(14, 6, 1000, 0); w != 9 {
		t.Errorf("Max width at max level should shrink by 5, got %d", w)
	}

	// Reduction never drops below the minimum width
	if w := d.MaxWidth(8, 6, 1000, 0); w != 6 {
		t.Errorf("Max width should floor at min width 6, got %d", w)
	}
}

func TestDifficultyInitialLevelInterpolation(t *testing.T) {
	cfg := testDifficultyConfig()
	cfg.InitialLevel = 0.5
	d := NewDifficultyManager(cfg)

	// Level interpolates from the initial level up to 1.0
	if lvl := d.Level(0, 0); lvl != 0.5 {
		t.Errorf("Level at score 0 should be the initial 0.5, got %f", lvl)
	}
	if lvl := d.Level(500, 0); lvl != 0.75 {
		t.Errorf("Level at half progress should be 0.75, got %f", lvl)
	}
	if lvl := d.Level(1000, 0); lvl != 1.0 {
		t.Errorf("Level at full progress should be 1.0, got %f", lvl)
	}
}
