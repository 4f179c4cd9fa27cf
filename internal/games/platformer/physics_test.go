package platformer

import (
	"testing"

	"github.com/vgladkov/hopper/internal/config"
)

func testPhysics() config.PlatformerPhysics {
	return config.DefaultPlatformerConfig().Physics
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	phys := testPhysics()

	p := Player{X: 10, Y: 10, W: 2, H: 2, Airborne: false}
	if !p.Jump(phys) {
		t.Error("Grounded player should be able to jump")
	}
	if !p.Airborne {
		t.Error("Jumping should mark the player airborne")
	}
	if p.VY >= 0 {
		t.Errorf("Jump velocity should be negative (upward), got %f", p.VY)
	}

	// Second jump while airborne must be rejected
	velBefore := p.VY
	if p.Jump(phys) {
		t.Error("Airborne player should not be able to jump")
	}
	if p.VY != velBefore {
		t.Errorf("Rejected jump should not change velocity, was %f, now %f", velBefore, p.VY)
	}
}

func TestGravityClampedToMaxFallSpeed(t *testing.T) {
	phys := testPhysics()

	p := Player{X: 0, Y: 0, W: 2, H: 2, Airborne: true}
	for i := 0; i < 100; i++ {
		p.ApplyGravity(phys)
	}

	if p.VY != phys.MaxFallSpeed {
		t.Errorf("Fall speed should clamp at %f, got %f", phys.MaxFallSpeed, p.VY)
	}
}

func TestGravitySkipsGroundedPlayer(t *testing.T) {
	phys := testPhysics()

	p := Player{X: 0, Y: 10, W: 2, H: 2, Airborne: false}
	p.ApplyGravity(phys)

	if p.VY != 0 {
		t.Errorf("Grounded player should not accelerate, got VY=%f", p.VY)
	}
}

func TestResolveLandingSnapsToTop(t *testing.T) {
	platforms := []Platform{{X: 0, Y: 10, W: 10, H: 1}}

	// Falling player whose feet were above the platform top last tick and
	// now overlap it.
	p := Player{X: 2, Y: 9, VY: 2, W: 2, H: 2, Airborne: true}
	prevBottom := 9.0 // Feet position before integration

	idx := ResolveLanding(&p, prevBottom, platforms)
	if idx != 0 {
		t.Fatalf("Expected landing on platform 0, got %d", idx)
	}
	if p.Y != 8 {
		t.Errorf("Player should snap to platform top minus height, got Y=%f", p.Y)
	}
	if p.VY != 0 {
		t.Errorf("Landing should zero vertical velocity, got %f", p.VY)
	}
	if p.Airborne {
		t.Error("Landing should clear the airborne flag")
	}
}

func TestResolveLandingIgnoresRisingPlayer(t *testing.T) {
	platforms := []Platform{{X: 0, Y: 10, W: 10, H: 1}}

	// Overlapping but moving upward: must pass through.
	p := Player{X: 2, Y: 9.5, VY: -1.5, W: 2, H: 2, Airborne: true}

	if idx := ResolveLanding(&p, 12, platforms); idx != -1 {
		t.Errorf("Rising player should pass through, got landing on %d", idx)
	}
	if p.VY != -1.5 {
		t.Errorf("Pass-through should not change velocity, got %f", p.VY)
	}
}

func TestResolveLandingIgnoresApproachFromBelow(t *testing.T) {
	platforms := []Platform{{X: 0, Y: 10, W: 10, H: 1}}

	// Falling, overlapping, but the feet were already below the platform
	// top on the previous tick. No landing.
	p := Player{X: 2, Y: 9.5, VY: 1, W: 2, H: 2, Airborne: true}
	prevBottom := 11.2

	if idx := ResolveLanding(&p, prevBottom, platforms); idx != -1 {
		t.Errorf("Player coming from below should pass through, got landing on %d", idx)
	}
	if p.Y != 9.5 {
		t.Errorf("Pass-through should not move the player, got Y=%f", p.Y)
	}
}

func TestResolveLandingNoHorizontalOverlap(t *testing.T) {
	platforms := []Platform{{X: 20, Y: 10, W: 10, H: 1}}

	p := Player{X: 2, Y: 9, VY: 2, W: 2, H: 2, Airborne: true}

	if idx := ResolveLanding(&p, 9, platforms); idx != -1 {
		t.Errorf("No horizontal overlap should mean no landing, got %d", idx)
	}
}

func TestSupportedWalkOffEdge(t *testing.T) {
	platforms := []Platform{{X: 0, Y: 10, W: 10, H: 1}}

	// Standing on the platform
	p := Player{X: 4, Y: 8, W: 2, H: 2, Airborne: false}
	if !Supported(&p, platforms) {
		t.Error("Player standing on platform should be supported")
	}

	// Partially over the edge still counts
	p.X = 9.5
	if !Supported(&p, platforms) {
		t.Error("Player overlapping the edge should still be supported")
	}

	// Fully past the right edge
	p.X = 10.5
	if Supported(&p, platforms) {
		t.Error("Player past the edge should not be supported")
	}
}
