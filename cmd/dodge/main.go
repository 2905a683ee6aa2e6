// dodge is a terminal arcade game: slide along the bottom of the field and
// dodge the blocks falling from above.
//
// Usage:
//
//	dodge list              - List available games
//	dodge play [game]       - Play a game (default: dodge)
//	dodge sim               - Run a headless session and print the result
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--verbose       - Log spawns and despawns too
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - dodge falling blocks in your terminal",
	Long: `Dodge is a terminal arcade game. Move along the bottom of the field
and keep clear of the blocks falling from the top. Every block that falls
past scores a point; the first one that touches you ends the run.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  sim      - Run a headless session on a simulated clock

Examples:
  dodge play
  dodge play --autoplay --difficulty hard
  dodge sim --duration 2m --seed 7`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodge",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
