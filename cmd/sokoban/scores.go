package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show completion records for a level",
	Long: `Display the top 10 completions for the specified level, fewest moves first.

Examples:
  sokoban scores 1
  sokoban scores 3`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	levelID, err := strconv.Atoi(args[0])
	if err != nil || levelID < 1 {
		fmt.Fprintf(os.Stderr, "Error: invalid level id %q\n", args[0])
		os.Exit(1)
	}

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	lvl, ok := reg.Get(levelID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		os.Exit(1)
	}

	// Open completion storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening completions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.BestCompletions(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Records - Level %d: %s\n", lvl.ID, lvl.Name)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play --level %d' to set the first record!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-7s  %s\n", "Rank", "Moves", "Pushes", "Undos", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-6s  %-7s  %s\n", "----", "-----", "------", "-----", "----", "----")

	for i, entry := range records {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", int(entry.DurationSecs)/60, int(entry.DurationSecs)%60)
		fmt.Printf("  %-4d  %-6d  %-7d  %-6d  %-7s  %s\n",
			i+1, entry.Moves, entry.Pushes, entry.Undos, timeStr, dateStr)
	}

	fmt.Println()
	if best, err := store.BestMoves(levelID); err == nil && best > 0 {
		fmt.Printf("Best: %d moves\n", best)
	}
}
