// sokoban is a TUI puzzle game: push every block onto a goal tile.
//
// Usage:
//
//	sokoban list              - List available levels
//	sokoban play              - Play the campaign from level 1
//	sokoban play --level 3    - Play a specific level
//	sokoban menu              - Start the interactive level picker
//	sokoban serve             - Start SSH server for remote play
//	sokoban scores <level>    - Show completion records for a level
//
// Global flags:
//
//	--fps <rate>      - Override tick rate
//	--db <path>       - Set database path (default: ~/.sokoban/completions.db)
//	--config <path>   - Path to a custom config YAML
//	--levels <path>   - Path to a YAML level pack (replaces the builtin campaign)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/levels"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelPack string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - Push blocks onto goals in your terminal",
	Long: `Sokoban is a terminal puzzle game. Push every block onto a goal
tile to solve a level; blocks only move one at a time and never pull.

Available commands:
  list     - Show all available levels
  play     - Play the campaign or a specific level
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View completion records

Examples:
  sokoban list
  sokoban play
  sokoban play --level 3
  sokoban play --levels ./mypack.yaml
  sokoban menu
  sokoban serve --ssh :2222
  sokoban scores 1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/completions.db", "Path to completions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelPack, "levels", "", "Path to YAML level pack")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig resolves the effective game config from flags.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	return cfg, cfg.Validate()
}

// loadRegistry resolves the level registry: a pack file when given,
// otherwise the builtin campaign.
func loadRegistry() (*levels.Registry, error) {
	if flagLevelPack == "" {
		return levels.Default, nil
	}
	return levels.LoadPack(flagLevelPack)
}
