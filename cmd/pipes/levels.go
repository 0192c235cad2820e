package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes"
	pipescore "github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels merged with the levels found in the levels
directory (config game.levels_dir or --levels). A file whose id matches a
built-in level replaces it.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <level-id>",
	Short: "Print the starting board of a level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelsShow,
}

func init() {
	levelsCmd.AddCommand(levelsShowCmd)
}

func runLevels(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	if len(a.catalog) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, lvl := range a.catalog {
		maxIDLen = max(maxIDLen, len(lvl.ID))
		maxNameLen = max(maxNameLen, len(lvl.Name))
	}

	fmt.Printf("  %-3s  %-*s  %-*s  %-5s  %-14s  %s\n", "#", maxIDLen, "ID", maxNameLen, "Name", "Size", "Steps e/m/h", "Source")
	fmt.Printf("  %-3s  %-*s  %-*s  %-5s  %-14s  %s\n", "-", maxIDLen, "--", maxNameLen, "----", "----", "-----------", "------")

	for _, lvl := range a.catalog {
		steps := fmt.Sprintf("%d/%d/%d",
			pipescore.ComplexityEasy.Evaluate(lvl.MaxSteps),
			pipescore.ComplexityMedium.Evaluate(lvl.MaxSteps),
			pipescore.ComplexityHard.Evaluate(lvl.MaxSteps),
		)
		source := lvl.FilePath
		if source == "" {
			source = "built-in"
		}
		fmt.Printf("  %-3d  %-*s  %-*s  %-5s  %-14s  %s\n",
			lvl.Index, maxIDLen, lvl.ID, maxNameLen, lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Size, lvl.Size), steps, source)
	}

	fmt.Println()
	fmt.Println("Run 'pipes play <id>' to play a level.")
	return nil
}

func runLevelsShow(_ *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	game, err := pipes.New(a.catalog, pipes.Options{LevelID: args[0], Complexity: a.complexity})
	if err != nil {
		return err
	}

	w, h := pipes.MinScreenSize(game.Level().Size)
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = max(w, 48), h
	game.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Render(screen)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.RenderScreen(screen))
	} else {
		fmt.Println(screen.String())
	}
	return nil
}
