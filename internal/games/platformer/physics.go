package platformer

import (
	"github.com/vgladkov/hopper/internal/config"
	"github.com/vgladkov/hopper/internal/core"
)

// supportEps is the tolerance used when checking whether the player's feet
// still rest on a platform top after a horizontal move.
const supportEps = 1e-6

// Player holds the player's kinematic state in world coordinates.
// Y grows downward; X grows to the right. The position is the top-left
// corner of the player's bounding box.
type Player struct {
	X, Y     float64 // Position (top-left)
	VX, VY   float64 // Velocity in cells per tick
	W, H     int     // Size in cells
	Airborne bool    // True while not standing on a platform
}

// Rect returns the player's world-space bounding box.
func (p *Player) Rect() core.FRect {
	return core.NewFRect(p.X, p.Y, float64(p.W), float64(p.H))
}

// Bottom returns the y-coordinate of the player's feet.
func (p *Player) Bottom() float64 {
	return p.Y + float64(p.H)
}

// ApplyGravity accelerates the player downward, clamped to the maximum
// fall speed. Grounded players are untouched.
func (p *Player) ApplyGravity(phys config.PlatformerPhysics) {
	if !p.Airborne {
		return
	}
	p.VY += phys.Gravity
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}
}

// Integrate advances the player's position by its velocity.
func (p *Player) Integrate() {
	p.X += p.VX
	p.Y += p.VY
}

// Jump launches the player upward if grounded.
// Returns true if the jump was taken.
func (p *Player) Jump(phys config.PlatformerPhysics) bool {
	if p.Airborne {
		return false
	}
	p.VY = phys.JumpImpulse
	p.Airborne = true
	return true
}

// ResolveLanding applies the one-sided top-landing rule against a list of
// platforms: a collision counts only if the bounding boxes overlap on both
// axes, the player is falling, and the player's feet were at or above the
// platform top on the previous tick. On a hit the player is snapped onto
// the platform top with zero vertical velocity.
//
// prevBottom is the player's feet position before this tick's integration.
// Returns the index of the platform landed on, or -1.
func ResolveLanding(p *Player, prevBottom float64, platforms []Platform) int {
	if p.VY <= 0 {
		return -1
	}

	rect := p.Rect()
	for i, plat := range platforms {
		if !rect.Intersects(plat.Rect()) {
			continue
		}
		if prevBottom > plat.Y+supportEps {
			// Came from below or from the side; pass through.
			continue
		}

		p.Y = plat.Y - float64(p.H)
		p.VY = 0
		p.Airborne = false
		return i
	}

	return -1
}

// Supported reports whether the player's feet rest on any platform top.
// Used to flip the airborne flag when the player walks off an edge.
func Supported(p *Player, platforms []Platform) bool {
	if p.Airborne {
		return false
	}

	feet := p.Bottom()
	left := p.X
	right := p.X + float64(p.W)

	for _, plat := range platforms {
		if feet < plat.Y-supportEps || feet > plat.Y+supportEps {
			continue
		}
		if right > plat.X && left < plat.Right() {
			return true
		}
	}
	return false
}
