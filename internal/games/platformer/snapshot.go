package platformer

import "math"

// Snapshot captures the complete game state for determinism testing.
// Float fields are stored as raw bits so comparisons are exact.
type Snapshot struct {
	Tick     int
	Mode     string
	Score    int
	Landings int
	Falls    int
	State    string

	PlayerX  uint64
	PlayerY  uint64
	PlayerVX uint64
	PlayerVY uint64
	Airborne bool

	CameraX uint64

	PlatformCount int
	PlatformData  []uint64 // 4 values per platform: X, Y, W, H bits
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := "playing"
	switch {
	case g.screenTooSmall:
		state = "too_small"
	case g.gameOver:
		state = "game_over"
	case g.paused:
		state = "paused"
	}

	platformData := make([]uint64, 0, len(g.world.Platforms)*4)
	for _, p := range g.world.Platforms {
		platformData = append(platformData,
			math.Float64bits(p.X),
			math.Float64bits(p.Y),
			math.Float64bits(p.W),
			math.Float64bits(p.H),
		)
	}

	return Snapshot{
		Tick:     g.tickCount,
		Mode:     string(g.mode),
		Score:    g.score,
		Landings: g.landings,
		Falls:    g.falls,
		State:    state,

		PlayerX:  math.Float64bits(g.player.X),
		PlayerY:  math.Float64bits(g.player.Y),
		PlayerVX: math.Float64bits(g.player.VX),
		PlayerVY: math.Float64bits(g.player.VY),
		Airborne: g.player.Airborne,

		CameraX: math.Float64bits(g.world.CameraX),

		PlatformCount: len(g.world.Platforms),
		PlatformData:  platformData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- tick count is always positive
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Landings) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Falls)    //#nosec G115 -- hash computation

	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + snap.PlayerVX
	h = h*31 + snap.PlayerVY
	if snap.Airborne {
		h = h*31 + 1
	}

	h = h*31 + snap.CameraX
	h = h*31 + uint64(snap.PlatformCount) //#nosec G115 -- hash computation

	for _, v := range snap.PlatformData {
		h = h*31 + v
	}

	for _, c := range snap.Mode + snap.State {
		h = h*31 + uint64(c)
	}

	return h
}
