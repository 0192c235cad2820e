package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	pipescore "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a level, left/right to change complexity and
Enter to play. Esc in a game returns to the menu; Tab opens the results.

Examples:
  pipes menu
  pipes menu --complexity hard
  pipes menu --db ./pipes.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	return menuLoop(a, store, a.complexity)
}

// menuLoop alternates between the menu, a game and the results board until
// the player quits.
func menuLoop(a *app, store *storage.Store, complexity pipescore.Complexity) error {
	cfg := a.runtimeConfig()
	logger := a.tuiLogger()

	for {
		res, err := tui.RunMenu(a.catalog, store, complexity, cfg, a.theme)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil

		case res.WantsResults:
			goBack, err := tui.RunResults(a.catalog, store, cfg.ScreenW, cfg.ScreenH, a.theme)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		sel := res.Selection
		game, err := pipes.New(a.catalog, pipes.Options{LevelID: sel.LevelID, Complexity: sel.Complexity})
		if err != nil {
			a.logger.Error("cannot start level", "level", sel.LevelID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
		complexity = game.Complexity()
	}
}
