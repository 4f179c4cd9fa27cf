package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vgladkov/hopper/internal/core"
	"github.com/vgladkov/hopper/internal/games/platformer"
	"github.com/vgladkov/hopper/internal/platform/tui"
	"github.com/vgladkov/hopper/internal/registry"
	"github.com/vgladkov/hopper/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLayout     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play hopper",
	Long: `Start playing. With no arguments a mode/difficulty picker is shown;
pass "classic" or "endless" to skip it.

Controls:
  A/D or Left/Right - Move (classic)
  Space/W/Up        - Jump
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  hopper play
  hopper play classic
  hopper play endless --difficulty hard
  hopper play classic --layout ./my-layout.yaml
  hopper play --config ./my-hopper.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Path to custom classic layout YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLayoutPath(flagLayout)

	var gameID string
	if len(args) == 1 {
		id, err := resolveGameID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'hopper list' to see available modes.")
			os.Exit(1)
		}
		gameID = id
	} else {
		// No mode given: show the mode/difficulty selector
		selection, updatedCfg, selErr := tui.RunHopperModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = "hopper"
		if selection.Mode == tui.HopperModeEndless {
			gameID = "hopper_endless"
		}
		if selection.Difficulty != "" && flagDifficulty == "" {
			platformer.SetDifficultyPreset(selection.Difficulty)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
