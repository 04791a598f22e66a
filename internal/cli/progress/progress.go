package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// ShowCmd prints daily intake and exercise totals over a date range with a
// small text chart against the daily calorie goal.
type ShowCmd struct {
	From string `help:"Range start (YYYY-MM-DD), defaults to 7 days ago."`
	To   string `help:"Range end (YYYY-MM-DD), defaults to today."`
	All  bool   `help:"Chart everything from the first logged entry."`
	Net  bool   `help:"Chart intake minus exercise instead of raw intake."`
}

func (c *ShowCmd) Validate() error {
	if c.All && c.From != "" {
		return fmt.Errorf("--all and --from are mutually exclusive")
	}
	return nil
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	end, err := cli.ResolveDate(c.To)
	if err != nil {
		return err
	}
	start := c.From
	if c.All {
		earliest, err := ctx.Store.GetEarliestFoodDate()
		if err != nil {
			return fmt.Errorf("nothing logged yet: %w", err)
		}
		start = earliest
	}
	if start == "" {
		start = time.Now().AddDate(0, 0, -6).Format(constants.DateFormat)
	}

	totals, err := ctx.Store.CalorieTotalsRange(start, end)
	if err != nil {
		return err
	}

	goal, hasGoal, err := ctx.Store.DailyCalorieGoal()
	if err != nil {
		return err
	}

	max := 1
	for _, day := range totals {
		v := day.FoodCalories
		if c.Net {
			v -= day.ExerciseCalories
		}
		if v > max {
			max = v
		}
	}
	if hasGoal && int(goal) > max {
		max = int(goal)
	}

	const width = 40
	for _, day := range totals {
		v := day.FoodCalories
		if c.Net {
			v -= day.ExerciseCalories
		}
		bars := 0
		if v > 0 {
			bars = v * width / max
		}
		marker := " "
		if hasGoal && float64(v) > goal {
			marker = "!"
		}
		fmt.Printf("%s %5d %s %s\n", day.Date, v, marker, strings.Repeat("#", bars))
	}

	if hasGoal {
		fmt.Printf("\nDaily goal: %.0f kcal (days over goal marked with !)\n", goal)
	}
	return nil
}
