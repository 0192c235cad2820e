package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	flagResultsRecent bool
	flagResultsLimit  int
	flagResultsClear  bool
	flagResultsTUI    bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [level-id]",
	Short: "Show finished rounds",
	Long: `Display the finished rounds stored in the results database.

With a level ID the best wins (fewest steps) of that level are listed, or the
latest rounds with --recent. Without an ID a summary of every played level is
shown.

Examples:
  pipes results
  pipes results 01
  pipes results 01 --recent --limit 20
  pipes results 01 --clear
  pipes results --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagResultsRecent, "recent", false, "List latest rounds instead of best wins")
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of rounds to list")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete stored rounds (of one level, or all)")
	resultsCmd.Flags().BoolVar(&flagResultsTUI, "tui", false, "Open the interactive results board")
}

func runResults(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	store, err := storage.Open(a.cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	switch {
	case flagResultsClear:
		if err := store.ClearRounds(levelID); err != nil {
			return err
		}
		if levelID == "" {
			fmt.Println("Cleared all rounds.")
		} else {
			fmt.Printf("Cleared rounds of level %s.\n", levelID)
		}
		return nil

	case flagResultsTUI:
		cfg := a.runtimeConfig()
		_, err := tui.RunResults(a.catalog, store, cfg.ScreenW, cfg.ScreenH, a.theme)
		return err

	case levelID == "":
		return printSummary(a, store)
	}

	return printRounds(store, levelID)
}

// printSummary prints one line of stats per played level.
func printSummary(a *app, store *storage.Store) error {
	all, err := store.AllLevelStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pipes play' to record the first one!")
		return nil
	}

	fmt.Println("Results by level")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-4s  %-6s  %-4s  %s\n", "Level", "Played", "Won", "Rate", "Best", "Last played")
	fmt.Printf("  %-10s  %-6s  %-4s  %-6s  %-4s  %s\n", "-----", "------", "---", "----", "----", "-----------")

	// Catalog order first, then levels that are no longer installed.
	ids := levels.IDs(a.catalog)
	var removed []string
	for id := range all {
		if !slices.Contains(ids, id) {
			removed = append(removed, id)
		}
	}
	slices.Sort(removed)
	ids = append(ids, removed...)

	for _, id := range ids {
		s, ok := all[id]
		if !ok {
			continue
		}

		best := "-"
		if s.Wins > 0 {
			best = fmt.Sprintf("%d", s.BestSteps)
		}
		fmt.Printf("  %-10s  %-6d  %-4d  %5.0f%%  %-4s  %s\n",
			id, s.Played, s.Wins, s.WinRate()*100, best, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// printRounds prints the rounds of one level.
func printRounds(store *storage.Store, levelID string) error {
	var (
		rounds []storage.Round
		err    error
		title  = "Best wins"
	)
	if flagResultsRecent {
		title = "Recent rounds"
		rounds, err = store.RecentRounds(levelID, flagResultsLimit)
	} else {
		rounds, err = store.BestRounds(levelID, flagResultsLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - level %s\n", title, levelID)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pipes play %s' to record the first one!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %-12s  %s\n", "#", "Result", "Steps", "Mode", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-8s  %-12s  %s\n", "-", "------", "-----", "----", "------", "----")
	for i, r := range rounds {
		fmt.Printf("  %-4d  %-6s  %-7s  %-8s  %-12s  %s\n",
			i+1, r.Result, fmt.Sprintf("%d/%d", r.StepsUsed, r.RoundSteps),
			r.Complexity, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(levelID)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d (%.0f%%)", stats.Played, stats.Wins, stats.WinRate()*100)
		if stats.Wins > 0 {
			fmt.Printf(", best %d, average %.1f steps", stats.BestSteps, stats.AvgSteps)
		}
		fmt.Println()
	}
	return nil
}
