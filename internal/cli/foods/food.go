package foods

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
)

type FoodAddCmd struct {
	Name     string `arg:"" help:"Food name."`
	Calories int    `arg:"" help:"Calorie count."`
	Date     string `short:"d" help:"Entry date (YYYY-MM-DD), defaults to today."`
}

func (c *FoodAddCmd) Validate() error {
	if c.Calories < 0 {
		return fmt.Errorf("calories must be non-negative")
	}
	return nil
}

func (c *FoodAddCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	id, err := ctx.Store.AddFood(c.Name, c.Calories, date)
	if err != nil {
		return err
	}

	fmt.Printf("Added food entry #%d: %s (%d kcal) on %s\n", id, c.Name, c.Calories, date)
	return nil
}

type FoodListCmd struct {
	Date string `short:"d" help:"Entry date (YYYY-MM-DD), defaults to today."`
	From string `help:"Range start (YYYY-MM-DD). Use with --to."`
	To   string `help:"Range end (YYYY-MM-DD). Use with --from."`
}

func (c *FoodListCmd) Validate() error {
	if (c.From == "") != (c.To == "") {
		return fmt.Errorf("--from and --to must be used together")
	}
	return nil
}

func (c *FoodListCmd) Run(ctx *cli.Context) error {
	start, end := c.From, c.To
	if start == "" {
		date, err := cli.ResolveDate(c.Date)
		if err != nil {
			return err
		}
		start, end = date, date
	}

	entries, err := ctx.Store.GetFoodEntriesRange(start, end)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No food entries found.")
		return nil
	}

	total := 0
	for _, e := range entries {
		fmt.Printf("#%-4d %-10s %-30s %5d kcal\n", e.ID, e.Date, e.Name, e.Calories)
		total += e.Calories
	}
	fmt.Printf("Total: %d kcal\n", total)
	return nil
}

type FoodEditCmd struct {
	ID       int64  `arg:"" help:"Entry id to edit."`
	Name     string `arg:"" help:"New food name."`
	Calories int    `arg:"" help:"New calorie count."`
}

func (c *FoodEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.UpdateFoodEntry(c.ID, c.Name, c.Calories); err != nil {
		return err
	}
	fmt.Printf("Updated food entry #%d\n", c.ID)
	return nil
}

type FoodDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *FoodDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteFoodEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted food entry #%d\n", c.ID)
	return nil
}
