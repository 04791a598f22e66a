package assist

import (
	"context"
	"errors"
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/nutrition"
)

type ChatCmd struct {
	Prompt string `arg:"" help:"Question for the health assistant."`
}

func (c *ChatCmd) Run(ctx *cli.Context) error {
	client, err := ctx.AssistantClient()
	if err != nil {
		return err
	}

	reply, err := client.Chat(context.Background(), c.Prompt)
	if err != nil {
		return err
	}
	fmt.Println(reply)
	return nil
}

// SuggestCmd looks up a calorie estimate for a food, preferring foods the
// user has logged before and falling back to the USDA food database.
type SuggestCmd struct {
	Query string `arg:"" help:"Food to look up."`
	Limit int    `short:"n" help:"Number of suggestions to show." default:"5"`
}

func (c *SuggestCmd) Run(ctx *cli.Context) error {
	foods, err := ctx.Store.GetDistinctFoods()
	if err != nil {
		return err
	}

	suggestions, err := nutrition.Suggest(context.Background(), c.Query, foods, ctx.NutritionClient(), c.Limit)
	if err != nil {
		if errors.Is(err, nutrition.ErrNoMatch) {
			fmt.Printf("No calorie suggestion found for %q.\n", c.Query)
			return nil
		}
		return err
	}

	for _, s := range suggestions {
		fmt.Printf("%-30s %5d kcal  (%s)\n", s.Name, s.Calories, s.Source)
	}
	return nil
}
