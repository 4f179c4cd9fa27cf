package platformer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LayoutPlatform describes one static platform as fractions of the screen
// size, so a layout re-positions itself on every terminal resize.
type LayoutPlatform struct {
	XFrac float64 `yaml:"x_frac"`
	YFrac float64 `yaml:"y_frac"`
	WFrac float64 `yaml:"w_frac"`
}

// Layout is a fixed-screen platform arrangement for classic mode.
type Layout struct {
	Name      string           `yaml:"name"`
	Platforms []LayoutPlatform `yaml:"platforms"`
}

// ClassicLayout returns the built-in layout: three platforms staggered
// upward from the lower left to the upper right.
func ClassicLayout() Layout {
	return Layout{
		Name: "classic",
		Platforms: []LayoutPlatform{
			{XFrac: 0.05, YFrac: 0.75, WFrac: 0.25},
			{XFrac: 0.38, YFrac: 0.55, WFrac: 0.22},
			{XFrac: 0.70, YFrac: 0.35, WFrac: 0.25},
		},
	}
}

// Build instantiates the layout against a concrete screen size.
func (l Layout) Build(screenW, screenH, height int) []Platform {
	platforms := make([]Platform, 0, len(l.Platforms))
	for _, lp := range l.Platforms {
		platforms = append(platforms, Platform{
			X: lp.XFrac * float64(screenW),
			Y: lp.YFrac * float64(screenH),
			W: lp.WFrac * float64(screenW),
			H: float64(height),
		})
	}
	return platforms
}

// Validate checks that the layout is playable.
func (l Layout) Validate() error {
	if len(l.Platforms) == 0 {
		return fmt.Errorf("layout %q has no platforms", l.Name)
	}
	for i, lp := range l.Platforms {
		if lp.XFrac < 0 || lp.XFrac > 1 || lp.YFrac < 0 || lp.YFrac > 1 {
			return fmt.Errorf("layout %q platform %d: position fractions must be in [0, 1]", l.Name, i)
		}
		if lp.WFrac <= 0 || lp.WFrac > 1 {
			return fmt.Errorf("layout %q platform %d: width fraction must be in (0, 1]", l.Name, i)
		}
	}
	return nil
}

// LoadLayout reads a layout from a YAML file.
func LoadLayout(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}

	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
