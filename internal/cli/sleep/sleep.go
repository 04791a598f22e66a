package sleep

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

type SleepAddCmd struct {
	Bedtime string `arg:"" help:"Bedtime clock time (HH:MM)."`
	Wakeup  string `arg:"" help:"Wakeup clock time (HH:MM)."`
	Night   string `short:"d" help:"Night date (YYYY-MM-DD), defaults to today."`
}

func (c *SleepAddCmd) Run(ctx *cli.Context) error {
	night, err := cli.ResolveDate(c.Night)
	if err != nil {
		return err
	}

	id, err := ctx.Store.AddSleepEntry(night, c.Bedtime, c.Wakeup)
	if err != nil {
		return err
	}

	entry := models.SleepEntry{Night: night, Bedtime: c.Bedtime, Wakeup: c.Wakeup}
	d, err := entry.Duration()
	if err != nil {
		return err
	}
	fmt.Printf("Added sleep entry #%d: %s to %s on %s (%.1f h)\n",
		id, c.Bedtime, c.Wakeup, night, d.Hours())
	return nil
}

type SleepListCmd struct {
	From string `help:"Range start (YYYY-MM-DD), defaults to today."`
	To   string `help:"Range end (YYYY-MM-DD), defaults to today."`
}

func (c *SleepListCmd) Run(ctx *cli.Context) error {
	start, err := cli.ResolveDate(c.From)
	if err != nil {
		return err
	}
	end, err := cli.ResolveDate(c.To)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.GetSleepEntriesRange(start, end)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No sleep entries found.")
		return nil
	}

	for _, e := range entries {
		d, err := e.Duration()
		if err != nil {
			return err
		}
		fmt.Printf("#%-4d %-10s %s - %s  %4.1f h\n", e.ID, e.Night, e.Bedtime, e.Wakeup, d.Hours())
	}
	return nil
}

type SleepDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *SleepDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteSleepEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted sleep entry #%d\n", c.ID)
	return nil
}
