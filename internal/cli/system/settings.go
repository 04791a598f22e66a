package system

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("food-ai:       %v\n", settings.FoodAIEnabled)
	fmt.Printf("exercise-ai:   %v\n", settings.ExerciseAIEnabled)
	fmt.Printf("meal-plan-ai:  %v\n", settings.MealPlanAIEnabled)
	fmt.Printf("notifications: %v\n", settings.NotificationsEnabled)
	fmt.Printf("silent:        %v\n", settings.SilentNotifications)
	return nil
}

type SettingsSetCmd struct {
	Name  string `arg:"" help:"Setting name: food-ai, exercise-ai, meal-plan-ai, notifications or silent."`
	Value bool   `arg:"" help:"New value (true or false)."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	switch c.Name {
	case "food-ai":
		settings.FoodAIEnabled = c.Value
	case "exercise-ai":
		settings.ExerciseAIEnabled = c.Value
	case "meal-plan-ai":
		settings.MealPlanAIEnabled = c.Value
	case "notifications":
		settings.NotificationsEnabled = c.Value
	case "silent":
		settings.SilentNotifications = c.Value
	default:
		return fmt.Errorf("unknown setting %q", c.Name)
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Printf("Set %s to %v\n", c.Name, c.Value)
	return nil
}
