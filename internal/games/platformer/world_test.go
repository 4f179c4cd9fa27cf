package platformer

import (
	"testing"

	"github.com/vgladkov/hopper/internal/config"
)

func testWorld(seed int64) (*World, config.PlatformerConfig) {
	cfg := config.DefaultPlatformerConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	w := NewWorld(seed, 80, 24, &cfg, diff)
	return w, cfg
}

func TestSeedStartPlacesGroundUnderSpawn(t *testing.T) {
	w, _ := testWorld(1)
	w.SeedStart()

	if len(w.Platforms) != 1 {
		t.Fatalf("SeedStart should create exactly one platform, got %d", len(w.Platforms))
	}

	start := w.Platforms[0]
	if start.X != 0 {
		t.Errorf("Start platform should span from the left edge, got X=%f", start.X)
	}
	if start.W < float64(80/4) {
		t.Errorf("Start platform should be wide, got W=%f", start.W)
	}
}

func TestCameraFollowThreshold(t *testing.T) {
	w, cfg := testWorld(1)

	anchor := cfg.Camera.FollowFrac * 80

	// Player behind the threshold: camera stays put
	w.Follow(anchor - 5)
	if w.CameraX != 0 {
		t.Errorf("Camera should not move before the threshold, got %f", w.CameraX)
	}

	// Player past the threshold: camera tracks
	w.Follow(anchor + 10)
	if w.CameraX != 10 {
		t.Errorf("Camera should track the player past the threshold, got %f", w.CameraX)
	}
}

func TestCameraNeverMovesBackward(t *testing.T) {
	w, cfg := testWorld(1)

	anchor := cfg.Camera.FollowFrac * 80
	w.Follow(anchor + 20)
	before := w.CameraX

	// Player drops back behind the camera anchor
	w.Follow(anchor - 10)
	if w.CameraX != before {
		t.Errorf("Camera must be monotonic, was %f, now %f", before, w.CameraX)
	}
}

func TestMaintainCoversAheadOfCamera(t *testing.T) {
	w, _ := testWorld(42)
	w.SeedStart()
	w.Maintain(0, 0)

	horizon := w.CameraX + 2*80
	if w.lastRight() < horizon {
		t.Errorf("Coverage should extend to %f, got %f", horizon, w.lastRight())
	}
}

func TestMaintainDropsPassedPlatforms(t *testing.T) {
	w, _ := testWorld(42)
	w.SeedStart()
	w.Maintain(0, 0)

	firstRight := w.Platforms[0].Right()
	w.CameraX = firstRight + 1
	w.Maintain(0, 0)

	for i, p := range w.Platforms {
		if p.Right() <= w.CameraX {
			t.Errorf("Platform %d (right=%f) should have been dropped at camera %f", i, p.Right(), w.CameraX)
		}
	}
	if len(w.Platforms) == 0 {
		t.Error("Platform list must never be empty after Maintain")
	}
}

func TestGeneratedPlatformsRespectBounds(t *testing.T) {
	w, cfg := testWorld(7)
	w.SeedStart()
	w.CameraX = 500 // Force a long stretch of generation
	w.Maintain(0, 0)

	pc := cfg.Platforms
	yLo := pc.MinYFrac * 24
	yHi := pc.MaxYFrac * 24

	// Skip the seed platform; check every generated one
	for i := 1; i < len(w.Platforms); i++ {
		p := w.Platforms[i]

		if p.W < float64(pc.MinWidth) || p.W > float64(pc.MaxWidth) {
			t.Errorf("Platform %d width %f outside [%d, %d]", i, p.W, pc.MinWidth, pc.MaxWidth)
		}
		if p.Y < yLo || p.Y > yHi {
			t.Errorf("Platform %d top %f outside [%f, %f]", i, p.Y, yLo, yHi)
		}

		gap := p.X - w.Platforms[i-1].Right()
		if gap < float64(pc.MinGap) || gap > float64(pc.MaxGap) {
			t.Errorf("Platform %d gap %f outside [%d, %d]", i, gap, pc.MinGap, pc.MaxGap)
		}
	}
}

func TestGenerationDeterministicPerSeed(t *testing.T) {
	w1, _ := testWorld(99)
	w1.SeedStart()
	w1.Maintain(0, 0)

	w2, _ := testWorld(99)
	w2.SeedStart()
	w2.Maintain(0, 0)

	if len(w1.Platforms) != len(w2.Platforms) {
		t.Fatalf("Same seed should generate same count, got %d vs %d", len(w1.Platforms), len(w2.Platforms))
	}
	for i := range w1.Platforms {
		if w1.Platforms[i] != w2.Platforms[i] {
			t.Errorf("Platform %d differs: %+v vs %+v", i, w1.Platforms[i], w2.Platforms[i])
		}
	}
}
