package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing from the first level, or from the level given with --level.
Solving a level advances straight to the next one.

Controls:
  Arrows/WASD - Move
  U/Z         - Undo last move
  P/Space     - Pause
  R           - Restart level
  Q/Ctrl+C    - Quit

Examples:
  sokoban play
  sokoban play --level 3
  sokoban play --levels ./mypack.yaml
  sokoban play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level id to start at (0 = config's start level)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gcfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	startLevel := gcfg.Gameplay.StartLevel
	if flagLevel > 0 {
		startLevel = flagLevel
	}
	if _, ok := reg.Get(startLevel); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %d\n", startLevel)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: gcfg.Display.FPS,
	}

	// Open completion storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open completions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(reg, store, rcfg, gcfg, startLevel)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
