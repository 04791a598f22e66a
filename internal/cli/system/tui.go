package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// Automatic backup on startup, after a successful load
	ctx.PerformAutomaticBackup()

	assistantClient, err := ctx.AssistantClient()
	if err != nil {
		// The dashboard works without AI, those tabs just report the
		// missing key.
		assistantClient = nil
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, assistantClient, ctx.NutritionClient()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
