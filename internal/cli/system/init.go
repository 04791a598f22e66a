package system

import (
	"fmt"
	"os"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
)

type InitCmd struct {
	Force bool `short:"f" help:"Reinitialize even if a database already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()

	if _, err := os.Stat(path); err == nil && !c.Force {
		// Init is idempotent and never destroys data, but an explicit
		// flag keeps accidental re-runs from being silent.
		fmt.Printf("Storage already exists at: %s (re-run with --force to apply schema)\n", path)
		return nil
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized healthtrack storage at: %s\n", path)
	return nil
}
