package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

var (
	flagBest  bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show recorded results",
	Long: `Without a variant, summarise every deal that has been played.
With a variant, list its most recent games, or its best wins with --best.

Examples:
  patience scores
  patience scores classic
  patience scores small --best --limit 5
  patience scores large --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBest, "best", false, "Show won games with the fewest moves")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a variant")
		}
		return printAllStats(store)
	}

	variant := args[0]
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'patience variants' to see available deals)", variant)
	}

	if flagClear {
		if err := store.ClearResults(variant); err != nil {
			return err
		}
		logger.Info("results cleared", "variant", variant)
		return nil
	}

	return printVariant(store, variant)
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Println("Results")
	fmt.Println()

	if len(all) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'patience play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-10s  %6s  %6s  %5s  %6s  %8s\n", "Variant", "Played", "Won", "Rate", "Best", "Fastest")
	fmt.Printf("  %-10s  %6s  %6s  %5s  %6s  %8s\n", "-------", "------", "---", "----", "----", "-------")
	for _, v := range registry.List() {
		st, ok := all[v.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %6d  %6d  %4.0f%%  %6s  %8s\n",
			v.ID, st.Played, st.Won, st.WinRate()*100, bestMoves(st), fastest(st))
	}
	return nil
}

func printVariant(store *storage.Store, variant string) error {
	st, err := store.Stats(variant)
	if err != nil {
		return err
	}

	var results []storage.Result
	heading := "Recent games"
	if flagBest {
		heading = "Best wins"
		results, err = store.BestResults(variant, flagLimit)
	} else {
		results, err = store.RecentResults(variant, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, variant)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'patience play %s' to record the first one!\n", variant)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %6s  %8s  %-20s  %s\n", "#", "Result", "Moves", "Time", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %6s  %8s  %-20s  %s\n", "-", "------", "-----", "----", "----", "----")
	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-4d  %-6s  %6d  %8s  %-20d  %s\n",
			i+1, outcome, r.Moves, r.Duration, r.Seed, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Played %d, won %d (%.0f%%), best %s moves, fastest %s\n",
		st.Played, st.Won, st.WinRate()*100, bestMoves(st), fastest(st))
	return nil
}

func bestMoves(st *storage.VariantStats) string {
	if st.Won == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", st.BestMoves)
}

func fastest(st *storage.VariantStats) string {
	if st.Won == 0 {
		return "-"
	}
	return st.Fastest.Truncate(time.Second).String()
}
