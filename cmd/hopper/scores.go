package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vgladkov/hopper/internal/registry"
	"github.com/vgladkov/hopper/internal/storage"
)

var (
	flagRuns  bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the given mode (default: classic).

Examples:
  hopper scores
  hopper scores endless
  hopper scores endless --runs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Also show recent run statistics")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := ""
	if len(args) == 1 {
		mode = args[0]
	}

	gameID, err := resolveGameID(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'hopper list' to see available modes.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hopper play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score and lifetime distance
	fmt.Println()
	if highScore, hsErr := store.HighScore(gameID); hsErr == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if dist, distErr := store.TotalDistance(gameID); distErr == nil && dist > 0 {
		fmt.Printf("Lifetime distance: %d cells\n", dist)
	}

	if flagRuns {
		printRecentRuns(store, gameID)
	}
}

// printRecentRuns shows per-run statistics for the last 10 runs.
func printRecentRuns(store *storage.Store, gameID string) {
	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %-8s  %-5s  %-8s  %s\n",
		"Score", "Distance", "Landings", "Falls", "Duration", "Date")
	fmt.Printf("  %-10s  %-8s  %-8s  %-5s  %-8s  %s\n",
		"-----", "--------", "--------", "-----", "--------", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-8d  %-8d  %-5d  %-7ds  %s\n",
			r.Score, r.Distance, r.Landings, r.Falls, r.Duration, dateStr)
	}
}
