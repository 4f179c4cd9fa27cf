// hopper is a terminal platformer: hop across platforms on a fixed screen,
// or outrun the camera in endless mode.
//
// Usage:
//
//	hopper play [mode]       - Play (classic or endless)
//	hopper menu              - Interactive mode picker
//	hopper list              - List available modes
//	hopper serve             - Start SSH server for remote play
//	hopper scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hopper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game packages to register them
	_ "github.com/vgladkov/hopper/internal/games/platformer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopper",
	Short: "Hopper - a terminal platformer",
	Long: `Hopper is a terminal platformer with two modes:

  classic  - Fixed screen with three platforms. Hop between them without
             falling. The layout re-derives itself when the terminal resizes.
  endless  - The screen scrolls as you run. Platforms are generated ahead
             of you; falling into a gap ends the run.

Available commands:
  list     - Show all available modes
  play     - Play directly (shows a mode picker if no mode given)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hopper play
  hopper play endless
  hopper menu
  hopper serve --ssh :2222
  hopper scores endless`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopper/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// resolveGameID maps a user-facing mode name to a registry game ID.
// Accepts "classic", "endless", or a raw game ID.
func resolveGameID(mode string) (string, error) {
	switch mode {
	case "", "classic", "hopper":
		return "hopper", nil
	case "endless", "hopper_endless":
		return "hopper_endless", nil
	}
	return "", fmt.Errorf("unknown mode %q (try 'classic' or 'endless')", mode)
}
