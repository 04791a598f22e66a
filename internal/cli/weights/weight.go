package weights

import (
	"context"
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/assistant"
	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

type WeightAddCmd struct {
	Weight float64 `arg:"" help:"Weight in kilograms."`
	Target bool    `short:"t" help:"Record a target weight instead of a measurement."`
	Date   string  `short:"d" help:"Entry date (YYYY-MM-DD), defaults to today."`
}

func (c *WeightAddCmd) Validate() error {
	if c.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return nil
}

func (c *WeightAddCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	kind := models.WeightCurrent
	if c.Target {
		kind = models.WeightTarget
	}

	id, err := ctx.Store.AddWeight(kind, c.Weight, date)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s weight #%d: %.1f kg on %s\n", kind, id, c.Weight, date)
	return nil
}

type WeightListCmd struct {
	Target bool `short:"t" help:"List target weights instead of measurements."`
}

func (c *WeightListCmd) Run(ctx *cli.Context) error {
	kind := models.WeightCurrent
	if c.Target {
		kind = models.WeightTarget
	}

	entries, err := ctx.Store.GetWeightEntries(kind)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No %s weight entries found.\n", kind)
		return nil
	}

	for _, e := range entries {
		fmt.Printf("#%-4d %-10s %6.1f kg\n", e.ID, e.Date, e.Weight)
	}
	return nil
}

type WeightEditCmd struct {
	ID     int64   `arg:"" help:"Entry id to edit."`
	Weight float64 `arg:"" help:"New weight in kilograms."`
	Date   string  `arg:"" help:"New entry date (YYYY-MM-DD)."`
}

func (c *WeightEditCmd) Validate() error {
	if c.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return nil
}

func (c *WeightEditCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.UpdateWeightEntry(c.ID, c.Weight, c.Date); err != nil {
		return err
	}
	fmt.Printf("Updated weight entry #%d\n", c.ID)
	return nil
}

type WeightDeleteCmd struct {
	ID int64 `arg:"" help:"Entry id to delete."`
}

func (c *WeightDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteWeightEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted weight entry #%d\n", c.ID)
	return nil
}

// GoalShowCmd prints the goal summary: latest weights, daily calorie goal
// and the timeframe for reaching the target.
type GoalShowCmd struct{}

func (c *GoalShowCmd) Run(ctx *cli.Context) error {
	today := cli.Today()

	if current, err := ctx.Store.LatestWeightOnOrBefore(models.WeightCurrent, today); err == nil {
		fmt.Printf("Current weight:     %.1f kg (%s)\n", current.Weight, current.Date)
	} else {
		fmt.Println("Current weight:     not recorded")
	}

	if target, err := ctx.Store.LatestWeightOnOrBefore(models.WeightTarget, today); err == nil {
		fmt.Printf("Target weight:      %.1f kg (%s)\n", target.Weight, target.Date)
	} else {
		fmt.Println("Target weight:      not set")
	}

	if goal, ok, err := ctx.Store.DailyCalorieGoal(); err != nil {
		return err
	} else if ok {
		fmt.Printf("Daily calorie goal: %.0f kcal\n", goal)
	} else {
		fmt.Println("Daily calorie goal: not set")
	}

	if months, ok, err := ctx.Store.Timeframe(); err != nil {
		return err
	} else if ok {
		fmt.Printf("Timeframe:          %g months\n", months)
	} else {
		fmt.Println("Timeframe:          not set")
	}
	return nil
}

type GoalSetCaloriesCmd struct {
	Calories float64 `arg:"" help:"Daily calorie goal."`
}

func (c *GoalSetCaloriesCmd) Validate() error {
	if c.Calories <= 0 {
		return fmt.Errorf("calorie goal must be positive")
	}
	return nil
}

func (c *GoalSetCaloriesCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.SetDailyCalorieGoal(c.Calories, cli.Today()); err != nil {
		return err
	}
	fmt.Printf("Daily calorie goal set to %.0f kcal\n", c.Calories)
	return nil
}

type GoalSetTimeframeCmd struct {
	Months float64 `arg:"" help:"Timeframe in months for reaching the target weight."`
}

func (c *GoalSetTimeframeCmd) Validate() error {
	if c.Months <= 0 {
		return fmt.Errorf("timeframe must be positive")
	}
	return nil
}

func (c *GoalSetTimeframeCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.SetTimeframe(c.Months, cli.Today()); err != nil {
		return err
	}
	fmt.Printf("Timeframe set to %g months\n", c.Months)
	return nil
}

// GoalCalculateCmd asks the assistant for a daily calorie goal derived from
// the profile flags plus the stored current weight, target weight and
// timeframe, then saves the result.
type GoalCalculateCmd struct {
	Age           int     `arg:"" help:"Age in years."`
	Gender        string  `arg:"" help:"Gender, e.g. male or female."`
	Height        float64 `arg:"" help:"Height in centimeters."`
	ActivityLevel string  `arg:"" help:"Activity level, e.g. sedentary, moderate, active."`
	DryRun        bool    `help:"Show the calculated goal without saving it."`
}

func (c *GoalCalculateCmd) Validate() error {
	if c.Age <= 0 {
		return fmt.Errorf("age must be positive")
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive")
	}
	return nil
}

func (c *GoalCalculateCmd) Run(ctx *cli.Context) error {
	today := cli.Today()

	current, err := ctx.Store.LatestWeightOnOrBefore(models.WeightCurrent, today)
	if err != nil {
		return fmt.Errorf("record a current weight before calculating a goal: %w", err)
	}
	target, err := ctx.Store.LatestWeightOnOrBefore(models.WeightTarget, today)
	if err != nil {
		return fmt.Errorf("set a target weight before calculating a goal: %w", err)
	}
	months, ok, err := ctx.Store.Timeframe()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("set a timeframe before calculating a goal")
	}

	client, err := ctx.AssistantClient()
	if err != nil {
		return err
	}

	goal, err := client.CalculateCalorieGoal(context.Background(), assistant.Profile{
		Age:             c.Age,
		Gender:          c.Gender,
		HeightCM:        c.Height,
		ActivityLevel:   c.ActivityLevel,
		CurrentWeightKG: current.Weight,
		TargetWeightKG:  target.Weight,
		TimeframeMonths: months,
	})
	if err != nil {
		return err
	}

	if c.DryRun {
		fmt.Printf("Suggested daily calorie goal: %.0f kcal (not saved)\n", goal)
		return nil
	}

	if err := ctx.Store.SetDailyCalorieGoal(goal, today); err != nil {
		return err
	}
	fmt.Printf("Daily calorie goal set to %.0f kcal\n", goal)
	return nil
}
