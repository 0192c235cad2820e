// pipes is a terminal pipe-rotation puzzle: turn the pipes until water flows
// from the input at the top of the board to the output at the bottom.
//
// Usage:
//
//	pipes play [level-id]     - Play a level (the first one by default)
//	pipes menu                - Pick levels interactively
//	pipes levels              - List available levels
//	pipes levels show <id>    - Print a level board
//	pipes results [level-id]  - Show finished rounds
//	pipes serve               - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Configuration file (default: search order)
//	--db <path>          - Results database (default: from config)
//	--fps <rate>         - Tick rate (default: from config)
//	--complexity <name>  - easy, medium or hard
//	--levels <dir>       - Extra level directory
//	--log-file <path>    - Write logs to a file while the TUI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDBPath     string
	flagFPS        int
	flagComplexity string
	flagLevelsDir  string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Pipes - connect the water flow in your terminal",
	Long: `Pipes is a rotation puzzle for the terminal.

Every level is a square board of pipes. Water enters from the top and must
reach the output at the bottom. Each rotation costs one step; run out of
steps and the round is lost.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List or show levels
  results  - View finished rounds
  serve    - Start SSH server for remote play

Examples:
  pipes play
  pipes play 03 --complexity hard
  pipes menu
  pipes results 01
  pipes serve --ssh :2323`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagComplexity, "complexity", "", "Complexity preset: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
