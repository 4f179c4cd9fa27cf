// Package platformer implements a side-scrolling platformer in two modes:
// classic, a fixed-screen arrangement of three static platforms, and
// endless, a procedurally generated runner with a scrolling camera.
package platformer

import (
	"fmt"

	"github.com/vgladkov/hopper/internal/config"
	"github.com/vgladkov/hopper/internal/core"
	"github.com/vgladkov/hopper/internal/registry"
)

// Visual characters for rendering
const (
	PlayerBody   = '█'
	PlayerFace   = '◆'
	PlatformChar = '█'
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Game implements the platformer game logic for both modes.
type Game struct {
	mode Mode

	player Player
	world  *World
	layout Layout

	// Run state
	tickCount int
	score     int
	landings  int
	falls     int
	startX    float64
	gameOver  bool
	paused    bool

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// Package-level variables set via CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	layoutPath       string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLayoutPath sets a custom classic-mode layout YAML file.
func SetLayoutPath(path string) {
	layoutPath = path
}

// New creates a new platformer game instance (classic mode).
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates a new platformer game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "hopper_endless"
	}
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Hopper (Endless)"
	}
	return "Hopper"
}

// Reset initializes or restarts the game. Also called on terminal resize,
// which is what re-positions the classic layout against the new screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.tickCount = 0
	g.score = 0
	g.landings = 0
	g.falls = 0
	g.gameOver = false
	g.paused = false

	g.world = NewWorld(runtime.Seed, runtime.ScreenW, runtime.ScreenH, &g.cfg, g.difficulty)

	if g.mode == ModeClassic {
		g.layout = ClassicLayout()
		if layoutPath != "" {
			if custom, layoutErr := LoadLayout(layoutPath); layoutErr == nil {
				g.layout = custom
			}
		}
		g.world.SetStatic(g.layout.Build(runtime.ScreenW, runtime.ScreenH, g.cfg.Platforms.Height))
		g.respawn()
	} else {
		g.world.SeedStart()
		start := g.world.Platforms[0]
		g.player = Player{
			X:        2,
			Y:        start.Y - float64(g.cfg.Player.Height),
			W:        g.cfg.Player.Width,
			H:        g.cfg.Player.Height,
			Airborne: false,
		}
		g.world.Maintain(0, 0)
	}

	g.startX = g.player.X
}

// respawn places the player back at the fixed start position.
func (g *Game) respawn() {
	g.player = Player{
		X:        g.cfg.Player.StartXFrac * float64(g.runtime.ScreenW),
		Y:        g.cfg.Player.StartYFrac * float64(g.runtime.ScreenH),
		W:        g.cfg.Player.Width,
		H:        g.cfg.Player.Height,
		Airborne: true,
	}
}

// Step advances the game by one tick. The update order is fixed: input to
// velocity, gravity, position integration, platform maintenance, collision
// resolution, fall handling.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.applyInput(in)

	prevBottom := g.player.Bottom()
	g.player.ApplyGravity(g.cfg.Physics)
	g.player.Integrate()

	if g.mode == ModeClassic {
		g.player.X = core.ClampF(g.player.X, 0, float64(g.runtime.ScreenW-g.player.W))
	} else {
		g.world.Follow(g.player.X)
		if g.player.X < g.world.CameraX {
			g.player.X = g.world.CameraX
		}
		g.world.Maintain(g.score, g.tickCount)
	}

	if idx := ResolveLanding(&g.player, prevBottom, g.world.Platforms); idx >= 0 {
		g.landings++
	} else if !g.player.Airborne && !Supported(&g.player, g.world.Platforms) {
		g.player.Airborne = true
	}

	g.handleFall()
	g.updateScore()

	return core.StepResult{State: g.State()}
}

// applyInput maps this frame's actions onto the player's velocity.
func (g *Game) applyInput(in core.InputFrame) {
	phys := g.cfg.Physics

	if g.mode == ModeClassic {
		g.player.VX = 0
		if in.Has(core.ActionLeft) {
			g.player.VX = -phys.MoveSpeed
		}
		if in.Has(core.ActionRight) {
			g.player.VX = phys.MoveSpeed
		}
	} else {
		// Auto-run, scaled by difficulty; input only nudges the pace.
		g.player.VX = g.difficulty.Speed(phys.RunSpeed, g.score, g.tickCount)
		if in.Has(core.ActionRight) {
			g.player.VX += phys.MoveSpeed
		}
		if in.Has(core.ActionLeft) {
			g.player.VX -= phys.MoveSpeed
			if g.player.VX < 0 {
				g.player.VX = 0
			}
		}
	}

	if in.Has(core.ActionJump) {
		g.player.Jump(phys)
	}
}

// handleFall deals with the player dropping below the screen: classic mode
// respawns at the start position, endless mode ends the run.
func (g *Game) handleFall() {
	if g.player.Y <= float64(g.runtime.ScreenH) {
		return
	}

	if g.mode == ModeClassic {
		g.falls++
		g.respawn()
		return
	}
	g.gameOver = true
}

// updateScore recomputes the score: landings in classic mode, distance
// traveled in endless mode.
func (g *Game) updateScore() {
	if g.mode == ModeClassic {
		g.score = g.landings
		return
	}
	if d := int(g.player.X - g.startX); d > g.score {
		g.score = d
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderPlatforms(dst)
	g.renderPlayer(dst)
	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// renderPlatforms draws every platform translated by the camera offset.
func (g *Game) renderPlatforms(dst *core.Screen) {
	for _, p := range g.world.Platforms {
		x := int(p.X - g.world.CameraX)
		y := int(p.Y)
		w := int(p.W)
		h := core.Max(int(p.H), 1)

		if x+w < 0 || x >= dst.Width() {
			continue
		}
		dst.DrawRectColored(core.NewRect(x, y, w, h), PlatformChar, core.ColorGreen)
	}
}

// renderPlayer draws the player's bounding box with a face marker.
func (g *Game) renderPlayer(dst *core.Screen) {
	x := int(g.player.X - g.world.CameraX)
	y := int(g.player.Y)

	dst.DrawRectColored(core.NewRect(x, y, g.player.W, g.player.H), PlayerBody, core.ColorBrightYellow)
	dst.SetColored(x+g.player.W-1, y, PlayerFace, core.ColorOrange)
}

// renderHUD draws the score line.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText)

	if g.mode == ModeClassic {
		fallsText := fmt.Sprintf(" Falls: %d ", g.falls)
		dst.DrawText(dst.Width()-len(fallsText)-2, 0, fallsText)
		return
	}

	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Physics.RunSpeed, g.score, g.tickCount)
		speedText := fmt.Sprintf(" Spd: %.1f ", speed)
		dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// RunStats reports statistics about the current run for persistence.
func (g *Game) RunStats() registry.RunStats {
	return registry.RunStats{
		Mode:     string(g.mode),
		Distance: int(g.player.X - g.startX),
		Landings: g.landings,
		Falls:    g.falls,
		Ticks:    g.tickCount,
	}
}

// Register the games with the registry
func init() {
	registry.Register("hopper", func() registry.Game {
		return New()
	})
	registry.Register("hopper_endless", func() registry.Game {
		return NewEndless()
	})
}
