package exercises

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/met"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

type ExerciseAddCmd struct {
	Activity string `arg:"" help:"Activity name."`
	Calories int    `arg:"" help:"Calories burned."`
	Date     string `short:"d" help:"Entry date (YYYY-MM-DD), defaults to today."`
}

func (c *ExerciseAddCmd) Validate() error {
	if c.Calories < 0 {
		return fmt.Errorf("calories must be non-negative")
	}
	return nil
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	id, err := ctx.Store.AddExercise(c.Activity, c.Calories, date)
	if err != nil {
		return err
	}

	fmt.Printf("Added exercise entry #%d: %s (%d kcal) on %s\n", id, c.Activity, c.Calories, date)
	return nil
}

type ExerciseListCmd struct {
	Date string `short:"d" help:"Entry date (YYYY-MM-DD), defaults to today."`
	From string `help:"Range start (YYYY-MM-DD). Use with --to."`
	To   string `help:"Range end (YYYY-MM-DD). Use with --from."`
}

func (c *ExerciseListCmd) Validate() error {
	if (c.From == "") != (c.To == "") {
		return fmt.Errorf("--from and --to must be used together")
	}
	return nil
}

func (c *ExerciseListCmd) Run(ctx *cli.Context) error {
	start, end := c.From, c.To
	if start == "" {
		date, err := cli.ResolveDate(c.Date)
		if err != nil {
			return err
		}
		start, end = date, date
	}

	entries, err := ctx.Store.GetExerciseEntriesRange(start, end)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No exercise entries found.")
		return nil
	}

	total := 0
	for _, e := range entries {
		fmt.Printf("#%-4d %-10s %-30s %5d kcal\n", e.ID, e.Date, e.Activity, e.Calories)
		total += e.Calories
	}
	fmt.Printf("Total burned: %d kcal\n", total)
	return nil
}

type ExerciseEditCmd struct {
	ID       int64  `arg:"" help:"Entry id to edit."`
	Activity string `arg:"" help:"New activity name."`
	Calories int    `arg:"" help:"New calories burned."`
}

func (c *ExerciseEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.UpdateExerciseEntry(c.ID, c.Activity, c.Calories); err != nil {
		return err
	}
	fmt.Printf("Updated exercise entry #%d\n", c.ID)
	return nil
}

type ExerciseDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *ExerciseDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteExerciseEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted exercise entry #%d\n", c.ID)
	return nil
}

// ExerciseEstimateCmd estimates calories burned from the MET activity table
// and the most recent recorded weight.
type ExerciseEstimateCmd struct {
	Activity string  `arg:"" help:"Activity to look up."`
	Minutes  float64 `arg:"" help:"Duration in minutes."`
	Limit    int     `short:"n" help:"Number of matching activities to show." default:"5"`
}

func (c *ExerciseEstimateCmd) Validate() error {
	if c.Minutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func (c *ExerciseEstimateCmd) Run(ctx *cli.Context) error {
	latest, err := ctx.Store.LatestWeightOnOrBefore(models.WeightCurrent, cli.Today())
	if err != nil {
		return fmt.Errorf("a recorded weight is needed for calorie estimates: %w", err)
	}

	matches, err := met.Search(c.Activity, c.Limit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Printf("No activities matching %q found.\n", c.Activity)
		return nil
	}

	fmt.Printf("Estimates for %.0f min at %.1f kg:\n", c.Minutes, latest.Weight)
	for _, a := range matches {
		kcal, err := met.Estimate(a.MET, latest.Weight, c.Minutes)
		if err != nil {
			continue
		}
		fmt.Printf("  %-60s MET %-4.1f  ~%d kcal\n", a.Description, a.MET, kcal)
	}
	return nil
}
