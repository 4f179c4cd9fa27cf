package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPlatformerConfig(t *testing.T) {
	cfg := DefaultPlatformerConfig()

	if cfg.Physics.Gravity <= 0 {
		t.Error("Gravity must be positive (downward)")
	}
	if cfg.Physics.JumpImpulse >= 0 {
		t.Error("Jump impulse must be negative (upward)")
	}
	if cfg.Physics.MaxFallSpeed <= 0 {
		t.Error("Max fall speed must be positive")
	}
	if cfg.Platforms.MinWidth > cfg.Platforms.MaxWidth {
		t.Error("Platform min width must not exceed max width")
	}
	if cfg.Platforms.MinGap > cfg.Platforms.MaxGap {
		t.Error("Platform min gap must not exceed max gap")
	}
	if cfg.Platforms.MinYFrac >= cfg.Platforms.MaxYFrac {
		t.Error("Platform y-fraction band must be non-empty")
	}
	if cfg.Camera.FollowFrac <= 0 || cfg.Camera.FollowFrac >= 1 {
		t.Errorf("Follow fraction should be in (0, 1), got %f", cfg.Camera.FollowFrac)
	}
}

func TestLoadPlatformerFromCustomPath(t *testing.T) {
	content := `
physics:
  gravity: 0.5
  jump_impulse: -2.5
  move_speed: 1.0
  run_speed: 0.7
  max_fall_speed: 4.0
platforms:
  min_width: 3
  max_width: 8
  min_gap: 2
  max_gap: 5
  height: 1
  min_y_frac: 0.2
  max_y_frac: 0.8
`
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.5 {
		t.Errorf("Expected gravity 0.5, got %f", cfg.Physics.Gravity)
	}
	if cfg.Platforms.MaxGap != 5 {
		t.Errorf("Expected max gap 5, got %d", cfg.Platforms.MaxGap)
	}
}

func TestLoadPlatformerMissingCustomPathFails(t *testing.T) {
	if _, err := LoadPlatformer("/nonexistent/config.yaml"); err == nil {
		t.Error("Explicit config path that does not exist should be an error")
	}
}

func TestLoadPlatformerEmbeddedDefault(t *testing.T) {
	// No custom path: falls through to the embedded default, which must
	// parse and carry sane values.
	cfg, err := LoadPlatformer("")
	if err != nil {
		t.Fatalf("LoadPlatformer with no path failed: %v", err)
	}

	if cfg.Physics.Gravity <= 0 {
		t.Error("Embedded default should have positive gravity")
	}
	if cfg.Platforms.MaxWidth <= 0 {
		t.Error("Embedded default should bound platform widths")
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantInitial float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
	}

	for _, tc := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, tc.preset)

		if cfg.Difficulty.Enabled != tc.wantEnabled {
			t.Errorf("Preset %s: enabled = %v, expected %v", tc.preset, cfg.Difficulty.Enabled, tc.wantEnabled)
		}
		if cfg.Difficulty.InitialLevel != tc.wantInitial {
			t.Errorf("Preset %s: initial level = %f, expected %f", tc.preset, cfg.Difficulty.InitialLevel, tc.wantInitial)
		}
	}

	// Fixed preset disables progression entirely
	cfg := DefaultPlatformerConfig()
	ApplyPlatformerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable difficulty progression")
	}
}
