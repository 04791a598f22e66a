package backups

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/backup"
	"github.com/mindfulmauschen/healthtrack/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}
	for _, b := range backups {
		fmt.Printf("%s  %8d bytes  %s\n", b.Timestamp.Format("2006-01-02 15:04"), b.Size, b.Path)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Backup file to restore."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		if err := cli.ConfirmOrAbort("Replace the current database with this backup?"); err != nil {
			return err
		}
	}

	// The open handle must go before the file is swapped out underneath it.
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.RestoreBackup(c.Path); err != nil {
		return err
	}
	fmt.Println("Backup restored. A safety copy of the previous database was kept.")
	return nil
}

type ExportCmd struct {
	Dest string `arg:"" help:"Destination file for the exported database."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.Export(c.Dest); err != nil {
		return err
	}
	fmt.Printf("Database exported to %s\n", c.Dest)
	return nil
}

type ImportCmd struct {
	Src string `arg:"" help:"Database file to import."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		if err := cli.ConfirmOrAbort("Replace the current database with this file?"); err != nil {
			return err
		}
	}

	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.Import(c.Src); err != nil {
		return err
	}
	fmt.Println("Database imported. A safety copy of the previous database was kept.")
	return nil
}
