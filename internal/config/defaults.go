package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// Used as the last-resort fallback when no YAML source can be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:      0.25,
			JumpImpulse:  -1.9,
			MoveSpeed:    0.9,
			RunSpeed:     0.5,
			MaxFallSpeed: 3.0,
		},
		Player: PlatformerPlayer{
			Width:      2,
			Height:     2,
			StartXFrac: 0.1,
			StartYFrac: 0.25,
		},
		Platforms: PlatformerPlatforms{
			MinWidth: 6,
			MaxWidth: 14,
			MinGap:   4,
			MaxGap:   9,
			Height:   1,
			MinYFrac: 0.3,
			MaxYFrac: 0.7,
		},
		Camera: PlatformerCamera{
			FollowFrac: 0.4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.5,
				GapWidening:     4,
				WidthReduction:  5,
			},
		},
	}
}
