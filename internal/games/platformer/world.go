package platformer

import (
	"math/rand"

	"github.com/vgladkov/hopper/internal/config"
	"github.com/vgladkov/hopper/internal/core"
)

// Platform is an axis-aligned rectangle the player can land on.
// Immutable once created.
type Platform struct {
	X, Y float64 // Top-left corner in world coordinates
	W, H float64 // Width and height in cells
}

// Rect returns the platform's world-space bounding box.
func (p Platform) Rect() core.FRect {
	return core.NewFRect(p.X, p.Y, p.W, p.H)
}

// Right returns the x-coordinate of the platform's right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// World owns the platform list and the camera offset.
// In classic mode the camera never moves and the platform list is static;
// in endless mode the world generates platforms ahead of the camera and
// drops the ones fully behind it.
type World struct {
	Platforms []Platform
	CameraX   float64

	rng        *rand.Rand
	cfg        *config.PlatformerConfig
	difficulty *config.DifficultyManager
	screenW    int
	screenH    int
}

// NewWorld creates a world for the given screen size and RNG seed.
func NewWorld(seed int64, screenW, screenH int, cfg *config.PlatformerConfig, diff *config.DifficultyManager) *World {
	return &World{
		Platforms:  make([]Platform, 0, 16),
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: diff,
		screenW:    screenW,
		screenH:    screenH,
	}
}

// SeedStart installs the starting platform for endless mode: a wide ledge
// at mid-height spanning the left edge of the world, so the player always
// spawns on solid ground.
func (w *World) SeedStart() {
	y := 0.6 * float64(w.screenH)
	start := Platform{
		X: 0,
		Y: y,
		W: float64(core.Max(w.cfg.Platforms.MaxWidth, w.screenW/4)),
		H: float64(w.cfg.Platforms.Height),
	}
	w.Platforms = append(w.Platforms[:0], start)
}

// SetStatic replaces the platform list with a fixed layout (classic mode).
func (w *World) SetStatic(platforms []Platform) {
	w.Platforms = append(w.Platforms[:0], platforms...)
}

// Follow advances the camera once the player crosses the screen-relative
// follow threshold. The camera only ever moves forward.
func (w *World) Follow(playerX float64) {
	anchor := w.cfg.Camera.FollowFrac * float64(w.screenW)
	if playerX-w.CameraX > anchor {
		w.CameraX = playerX - anchor
	}
}

// Maintain drops platforms fully behind the camera and generates new ones
// until coverage extends at least one screen width past the right edge.
// The platform list is never left empty.
func (w *World) Maintain(score, ticks int) {
	keep := w.Platforms[:0]
	for _, p := range w.Platforms {
		if p.Right() > w.CameraX {
			keep = append(keep, p)
		}
	}
	w.Platforms = keep

	if len(w.Platforms) == 0 {
		// Generation keeps coverage ahead of the retention cut, so this
		// only fires after an extreme camera jump.
		w.SeedStart()
	}

	horizon := w.CameraX + 2*float64(w.screenW)
	for w.lastRight() < horizon {
		w.Platforms = append(w.Platforms, w.generateNext(score, ticks))
	}
}

// lastRight returns the right edge of the right-most platform.
func (w *World) lastRight() float64 {
	last := 0.0
	for _, p := range w.Platforms {
		if p.Right() > last {
			last = p.Right()
		}
	}
	return last
}

// generateNext samples the next platform after the current right-most one:
// x starts a uniform gap past the previous right edge, width is uniform in
// the configured bounds, and the top sits at a uniform fraction of the
// screen height. Difficulty widens the maximum gap and shrinks the maximum
// width as the run progresses.
func (w *World) generateNext(score, ticks int) Platform {
	pc := w.cfg.Platforms

	minGap := pc.MinGap
	maxGap := w.difficulty.MaxGap(pc.MaxGap, score, ticks)
	gap := minGap
	if maxGap > minGap {
		gap = minGap + w.rng.Intn(maxGap-minGap+1)
	}

	minW := pc.MinWidth
	maxW := w.difficulty.MaxWidth(pc.MaxWidth, pc.MinWidth, score, ticks)
	width := minW
	if maxW > minW {
		width = minW + w.rng.Intn(maxW-minW+1)
	}

	yLo := pc.MinYFrac * float64(w.screenH)
	yHi := pc.MaxYFrac * float64(w.screenH)
	y := yLo + w.rng.Float64()*(yHi-yLo)

	return Platform{
		X: w.lastRight() + float64(gap),
		Y: y,
		W: float64(width),
		H: float64(pc.Height),
	}
}
