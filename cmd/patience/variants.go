package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patience/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List all available deals",
	Long:    `Shows every registered variant with the deal it produces under the loaded configuration.`,
	Run:     runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available deals:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Deal")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, v := range variants {
		// Registry metadata predates the loaded config; ask a fresh game.
		desc := v.Description
		if g, err := registry.Create(v.ID); err == nil {
			desc = g.Description()
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, desc)
	}

	fmt.Println()
	fmt.Println("Run 'patience play <id>' to play a deal.")
}
