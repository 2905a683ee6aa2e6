package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true)
	listIDStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	listHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("  %-*s  %s", width, "ID", "Title")))
	for _, g := range games {
		id := listIDStyle.Render(fmt.Sprintf("%-*s", width, g.ID))
		fmt.Printf("  %s  %s\n", id, g.Title)
	}

	fmt.Println()
	fmt.Println(listHintStyle.Render("Run 'dodge play <id>' to play, or 'dodge sim' for a headless run."))
}
