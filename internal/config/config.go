// Package config provides YAML-based game configuration loading and
// difficulty management for the hopper platform.
package config

// PlatformerConfig contains all configuration for the platformer game.
// The same config drives both the classic (fixed-screen) and endless
// (scrolling) modes.
type PlatformerConfig struct {
	Physics    PlatformerPhysics   `yaml:"physics"`
	Player     PlatformerPlayer    `yaml:"player"`
	Platforms  PlatformerPlatforms `yaml:"platforms"`
	Camera     PlatformerCamera    `yaml:"camera"`
	Difficulty DifficultyConfig    `yaml:"difficulty"`
}

// PlatformerPhysics defines the per-tick kinematics parameters.
// Velocities are in cells per tick; gravity in cells per tick squared.
type PlatformerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MoveSpeed    float64 `yaml:"move_speed"`
	RunSpeed     float64 `yaml:"run_speed"`      // Endless mode auto-run speed
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlatformerPlayer defines the player's size and spawn point.
// StartXFrac/StartYFrac are fractions of the screen size so the spawn
// point follows terminal resizes.
type PlatformerPlayer struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	StartXFrac float64 `yaml:"start_x_frac"`
	StartYFrac float64 `yaml:"start_y_frac"`
}

// PlatformerPlatforms bounds the procedural platform generator.
// Gap and width are in cells; MinYFrac/MaxYFrac bound the platform top
// as fractions of the screen height.
type PlatformerPlatforms struct {
	MinWidth int     `yaml:"min_width"`
	MaxWidth int     `yaml:"max_width"`
	MinGap   int     `yaml:"min_gap"`
	MaxGap   int     `yaml:"max_gap"`
	Height   int     `yaml:"height"`
	MinYFrac float64 `yaml:"min_y_frac"`
	MaxYFrac float64 `yaml:"max_y_frac"`
}

// PlatformerCamera controls horizontal scrolling in endless mode.
// FollowFrac is the screen-relative threshold: once the player passes
// this fraction of the screen width, the camera tracks them.
type PlatformerCamera struct {
	FollowFrac float64 `yaml:"follow_frac"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to run speed at max difficulty
	GapWidening     int     `yaml:"gap_widening"`     // Extra cells added to the max gap at max difficulty
	WidthReduction  int     `yaml:"width_reduction"`  // Platform max width reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
