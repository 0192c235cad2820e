package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a level",
	Long: `Start playing a level. Without an ID the first level is used.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Rotate the pipe under the cursor (costs a step)
  R                - Restart the round
  N/P              - Next/previous level (between rounds)
  C                - Cycle complexity (between rounds)
  Esc/B            - Level menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  pipes play
  pipes play 02
  pipes play 04 --complexity easy
  pipes play my-level --levels ./levels`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	opts := pipes.Options{Complexity: a.complexity}
	if len(args) == 1 {
		opts.LevelID = args[0]
	}

	game, err := pipes.New(a.catalog, opts)
	if err != nil {
		return err
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := a.runtimeConfig()
	backToMenu, err := tui.Run(game, store, cfg, a.tuiLogger())
	if err != nil {
		return err
	}
	if backToMenu {
		return menuLoop(a, store, game.Complexity())
	}
	return nil
}
