package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/cli/assist"
	"github.com/mindfulmauschen/healthtrack/internal/cli/backups"
	"github.com/mindfulmauschen/healthtrack/internal/cli/exercises"
	"github.com/mindfulmauschen/healthtrack/internal/cli/foods"
	"github.com/mindfulmauschen/healthtrack/internal/cli/mealplans"
	"github.com/mindfulmauschen/healthtrack/internal/cli/pantry"
	"github.com/mindfulmauschen/healthtrack/internal/cli/progress"
	"github.com/mindfulmauschen/healthtrack/internal/cli/sleep"
	"github.com/mindfulmauschen/healthtrack/internal/cli/system"
	"github.com/mindfulmauschen/healthtrack/internal/cli/weights"
	"github.com/mindfulmauschen/healthtrack/internal/constants"
	"github.com/mindfulmauschen/healthtrack/internal/errors"
	"github.com/mindfulmauschen/healthtrack/internal/logger"
	"github.com/mindfulmauschen/healthtrack/internal/storage/sqlite"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/healthtrack/healthtrack.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd       `cmd:"" help:"Initialize healthtrack storage."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks on the installation."`
	Notify   system.NotifyCmd     `cmd:"" help:"Send the weekly weigh-in reminder if one is due."`
	Chat     assist.ChatCmd       `cmd:"" help:"Ask the health assistant a question."`
	Suggest  assist.SuggestCmd    `cmd:"" help:"Look up a calorie estimate for a food."`
	Progress progress.ShowCmd     `cmd:"" help:"Show calorie totals over a date range."`

	Food struct {
		Add    foods.FoodAddCmd    `cmd:"" help:"Log a food entry."`
		List   foods.FoodListCmd   `cmd:"" help:"List food entries."`
		Edit   foods.FoodEditCmd   `cmd:"" help:"Edit a food entry."`
		Delete foods.FoodDeleteCmd `cmd:"" help:"Delete a food entry."`
	} `cmd:"" help:"Track food intake."`

	Exercise struct {
		Add      exercises.ExerciseAddCmd      `cmd:"" help:"Log an exercise entry."`
		List     exercises.ExerciseListCmd     `cmd:"" help:"List exercise entries."`
		Edit     exercises.ExerciseEditCmd     `cmd:"" help:"Edit an exercise entry."`
		Delete   exercises.ExerciseDeleteCmd   `cmd:"" help:"Delete an exercise entry."`
		Estimate exercises.ExerciseEstimateCmd `cmd:"" help:"Estimate calories burned for an activity."`
	} `cmd:"" help:"Track exercise."`

	Weight struct {
		Add    weights.WeightAddCmd    `cmd:"" help:"Record a weight."`
		List   weights.WeightListCmd   `cmd:"" help:"List recorded weights."`
		Edit   weights.WeightEditCmd   `cmd:"" help:"Edit a weight entry."`
		Delete weights.WeightDeleteCmd `cmd:"" help:"Delete a weight entry."`
	} `cmd:"" help:"Track weight."`

	Goal struct {
		Show         weights.GoalShowCmd         `cmd:"" help:"Show the current goals."`
		SetCalories  weights.GoalSetCaloriesCmd  `cmd:"" help:"Set the daily calorie goal."`
		SetTimeframe weights.GoalSetTimeframeCmd `cmd:"" help:"Set the target timeframe in months."`
		Calculate    weights.GoalCalculateCmd    `cmd:"" help:"Calculate a calorie goal with the assistant."`
	} `cmd:"" help:"Manage weight and calorie goals."`

	Plan struct {
		Set     mealplans.PlanSetCmd     `cmd:"" help:"Set a meal-plan cell."`
		Show    mealplans.PlanShowCmd    `cmd:"" help:"Show a week's meal plan."`
		Clear   mealplans.PlanClearCmd   `cmd:"" help:"Clear a week's meal plan."`
		Suggest mealplans.PlanSuggestCmd `cmd:"" help:"Ask the assistant for a meal plan."`
	} `cmd:"" help:"Manage the weekly meal plan."`

	Pantry struct {
		Add    pantry.PantryAddCmd    `cmd:"" help:"Add a pantry item."`
		List   pantry.PantryListCmd   `cmd:"" help:"List pantry items."`
		Delete pantry.PantryDeleteCmd `cmd:"" help:"Delete pantry items."`
		Clear  pantry.PantryClearCmd  `cmd:"" help:"Clear the pantry."`
	} `cmd:"" help:"Manage the pantry."`

	Shopping struct {
		Add      pantry.ShoppingAddCmd      `cmd:"" help:"Add shopping list items."`
		List     pantry.ShoppingListCmd     `cmd:"" help:"Show the shopping list."`
		Delete   pantry.ShoppingDeleteCmd   `cmd:"" help:"Delete shopping list items."`
		Clear    pantry.ShoppingClearCmd    `cmd:"" help:"Clear the shopping list."`
		Generate pantry.ShoppingGenerateCmd `cmd:"" help:"Generate a shopping list from the meal plan."`
	} `cmd:"" help:"Manage the shopping list."`

	Sleep struct {
		Add    sleep.SleepAddCmd    `cmd:"" help:"Add a sleep diary entry."`
		List   sleep.SleepListCmd   `cmd:"" help:"List sleep diary entries."`
		Delete sleep.SleepDeleteCmd `cmd:"" help:"Delete a sleep diary entry."`
	} `cmd:"" help:"Track sleep."`

	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage database backups."`

	Export backups.ExportCmd `cmd:"" help:"Export the database to a file."`
	Import backups.ImportCmd `cmd:"" help:"Import a database file."`

	Key struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the OpenAI API key in the system keyring."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the stored OpenAI API key."`
		Status system.KeyStatusCmd `cmd:"" help:"Show keyring status."`
	} `cmd:"" help:"Manage the OpenAI API key."`

	Settings struct {
		Show system.SettingsShowCmd `cmd:"" help:"Show the current settings."`
		Set  system.SettingsSetCmd  `cmd:"" help:"Change a setting."`
	} `cmd:"" help:"Manage application settings."`
}

// commands that must run without an initialized database
func skipsLoad(command string) bool {
	switch command {
	case "init", "doctor", "import <src>", "key set", "key delete", "key status":
		return true
	}
	return false
}

func main() {
	// Optional .env for OPENAI_API_KEY / USDA_API_KEY during development
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal health tracker: calories, exercise, weight, meal plans and sleep"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{Store: store}

	if !skipsLoad(ctx.Command()) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		defer store.Close()
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
