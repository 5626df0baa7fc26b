package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the levels of the builtin campaign, or of the pack given with --levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	reg, err := loadRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	all := reg.All()
	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	fmt.Printf("  %-4s  %-20s  %s\n", "ID", "Name", "Size")
	fmt.Printf("  %-4s  %-20s  %s\n", "--", "----", "----")

	for _, lvl := range all {
		w := 0
		for _, row := range lvl.Layout {
			if len(row) > w {
				w = len(row)
			}
		}
		fmt.Printf("  %-4d  %-20s  %dx%d\n", lvl.ID, lvl.Name, w, len(lvl.Layout))
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play --level <id>' to play a level.")
}
