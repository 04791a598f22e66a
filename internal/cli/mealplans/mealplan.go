package mealplans

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/assistant"
	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/constants"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

func resolveWeek(week string) string {
	if week == "" {
		return models.WeekOf(time.Now())
	}
	return week
}

type PlanSetCmd struct {
	Day     string `arg:"" help:"Weekday, e.g. Monday."`
	Slot    string `arg:"" help:"Meal slot: breakfast, lunch, dinner or snacks."`
	Content string `arg:"" help:"Cell content."`
	Week    string `short:"w" help:"Week identifier (e.g. 2024-W03), defaults to the current week."`
}

func (c *PlanSetCmd) Run(ctx *cli.Context) error {
	cell := models.MealPlanCell{
		Week:    resolveWeek(c.Week),
		Day:     c.Day,
		Slot:    strings.ToLower(c.Slot),
		Content: c.Content,
	}
	if err := ctx.Store.UpsertMealPlanCell(cell); err != nil {
		return err
	}
	fmt.Printf("Saved %s %s for week %s\n", cell.Day, cell.Slot, cell.Week)
	return nil
}

type PlanShowCmd struct {
	Week string `short:"w" help:"Week identifier, defaults to the current week."`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	week := resolveWeek(c.Week)

	cells, err := ctx.Store.GetMealPlanWeek(week)
	if err != nil {
		return err
	}
	if len(cells) == 0 {
		fmt.Printf("No meal plan for week %s.\n", week)
		return nil
	}

	byKey := make(map[string]string, len(cells))
	for _, cell := range cells {
		byKey[cell.Day+"/"+cell.Slot] = cell.Content
	}

	fmt.Printf("Meal plan for week %s:\n", week)
	for _, day := range constants.Weekdays {
		printed := false
		for _, slot := range constants.MealSlots {
			content, ok := byKey[day+"/"+slot]
			if !ok || content == "" {
				continue
			}
			if !printed {
				fmt.Printf("%s:\n", day)
				printed = true
			}
			fmt.Printf("  %-10s %s\n", slot, content)
		}
	}
	return nil
}

type PlanClearCmd struct {
	Week string `short:"w" help:"Week identifier, defaults to the current week."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PlanClearCmd) Run(ctx *cli.Context) error {
	week := resolveWeek(c.Week)
	if !c.Yes {
		if err := cli.ConfirmOrAbort(fmt.Sprintf("Clear the meal plan for week %s?", week)); err != nil {
			return err
		}
	}
	if err := ctx.Store.ClearMealPlanWeek(week); err != nil {
		return err
	}
	fmt.Printf("Cleared meal plan for week %s\n", week)
	return nil
}

// PlanSuggestCmd asks the assistant for a one-day meal plan matching the
// given criteria, optionally built from what the pantry currently holds.
type PlanSuggestCmd struct {
	Healthy    bool `help:"Prefer healthy meals."`
	Cheap      bool `help:"Prefer cheap meals."`
	Vegetarian bool `help:"Vegetarian meals only."`
	Vegan      bool `help:"Vegan meals only."`
	Quick      bool `help:"Prefer quick meals."`
	Pantry     bool `help:"Build the plan from current pantry items."`
	Day        string `short:"d" help:"Fill this weekday of the current plan with the suggestion."`
	Week       string `short:"w" help:"Week identifier when saving, defaults to the current week."`
}

func (c *PlanSuggestCmd) Validate() error {
	if c.Vegan && c.Vegetarian {
		return fmt.Errorf("pick either --vegan or --vegetarian, not both")
	}
	return nil
}

func (c *PlanSuggestCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !settings.MealPlanAIEnabled {
		return fmt.Errorf("meal plan suggestions are disabled in settings")
	}

	opts := assistant.MealPlanOptions{
		Healthy:    c.Healthy,
		Cheap:      c.Cheap,
		Vegetarian: c.Vegetarian,
		Vegan:      c.Vegan,
		Quick:      c.Quick,
	}

	if c.Pantry {
		items, err := ctx.Store.GetPantryItems()
		if err != nil {
			return err
		}
		for _, item := range items {
			opts.PantryItems = append(opts.PantryItems, item.Item)
		}
	}

	// An existing cell for the target day becomes the starting point the
	// assistant may revise.
	if c.Day != "" {
		if cell, err := ctx.Store.GetMealPlanCell(resolveWeek(c.Week), c.Day, "breakfast"); err == nil {
			opts.CurrentPlan = cell.Content
		}
	}

	client, err := ctx.AssistantClient()
	if err != nil {
		return err
	}

	plan, err := client.SuggestMealPlan(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Println(plan)

	if c.Day == "" {
		return nil
	}

	// A suggested day plan lands in the breakfast cell so nothing typed by
	// hand in other slots is overwritten.
	cell := models.MealPlanCell{
		Week:    resolveWeek(c.Week),
		Day:     c.Day,
		Slot:    "breakfast",
		Content: plan,
	}
	if err := ctx.Store.UpsertMealPlanCell(cell); err != nil {
		return err
	}
	fmt.Printf("\nSaved suggestion to %s of week %s\n", cell.Day, cell.Week)
	return nil
}
