package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAutoplay   bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in the terminal. The game opens on its menu.

Controls:
  Enter/Space  - Start
  Mouse        - Move to the pointer
  Left/Right   - Nudge left or right (also A/D)
  T            - Toggle auto-play
  P            - Pause
  R            - Restart (after game over)
  M/Esc        - Back to the menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower blocks at every score
  normal - Default tuning
  hard   - Faster blocks from the start
  fixed  - Block speed never increases

Examples:
  dodge play
  dodge play --difficulty easy
  dodge play --autoplay
  dodge play --config ./my-dodge.yaml --log-file dodge.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagAutoplay, "autoplay", false, "Start sessions with auto-play on")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "dodge"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dodge list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The alternate screen owns stdout, so logs only go to a file
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		dodge.SetLogger(newLogger(f))
	}

	// Set config path and difficulty for games before creation
	if gameID == "dodge" {
		dodge.SetConfigPath(flagConfig)
		dodge.SetDifficultyPreset(flagDifficulty)
		dodge.SetAutoplayDefault(flagAutoplay)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
