package pantry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/cli"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

type PantryAddCmd struct {
	Item   string `arg:"" help:"Item name."`
	Weight int    `arg:"" optional:"" help:"Weight in grams." default:"0"`
}

func (c *PantryAddCmd) Validate() error {
	if c.Weight < 0 {
		return fmt.Errorf("weight must be non-negative")
	}
	return nil
}

func (c *PantryAddCmd) Run(ctx *cli.Context) error {
	id, err := ctx.Store.AddPantryItem(c.Item, c.Weight)
	if err != nil {
		return err
	}
	if c.Weight > 0 {
		fmt.Printf("Added pantry item #%d: %s (%dg)\n", id, c.Item, c.Weight)
	} else {
		fmt.Printf("Added pantry item #%d: %s\n", id, c.Item)
	}
	return nil
}

type PantryListCmd struct{}

func (c *PantryListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetPantryItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Pantry is empty.")
		return nil
	}
	for _, item := range items {
		if item.Weight > 0 {
			fmt.Printf("#%-4d %-30s %6dg\n", item.ID, item.Item, item.Weight)
		} else {
			fmt.Printf("#%-4d %s\n", item.ID, item.Item)
		}
	}
	return nil
}

type PantryDeleteCmd struct {
	IDs []int64 `arg:"" help:"Item ids to delete."`
}

func (c *PantryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeletePantryItems(c.IDs); err != nil {
		return err
	}
	fmt.Printf("Deleted %d pantry item(s)\n", len(c.IDs))
	return nil
}

type PantryClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PantryClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		if err := cli.ConfirmOrAbort("Clear the entire pantry?"); err != nil {
			return err
		}
	}
	if err := ctx.Store.ClearPantry(); err != nil {
		return err
	}
	fmt.Println("Pantry cleared")
	return nil
}

type ShoppingAddCmd struct {
	Items []string `arg:"" help:"Items to add."`
}

func (c *ShoppingAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.AddShoppingItems(c.Items); err != nil {
		return err
	}
	fmt.Printf("Added %d item(s) to the shopping list\n", len(c.Items))
	return nil
}

type ShoppingListCmd struct{}

func (c *ShoppingListCmd) Run(ctx *cli.Context) error {
	items, err := ctx.Store.GetShoppingItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Shopping list is empty.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("#%-4d %s\n", item.ID, item.Item)
	}
	return nil
}

type ShoppingDeleteCmd struct {
	IDs []int64 `arg:"" help:"Item ids to delete."`
}

func (c *ShoppingDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.DeleteShoppingItems(c.IDs); err != nil {
		return err
	}
	fmt.Printf("Deleted %d shopping item(s)\n", len(c.IDs))
	return nil
}

type ShoppingClearCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ShoppingClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		if err := cli.ConfirmOrAbort("Clear the shopping list?"); err != nil {
			return err
		}
	}
	if err := ctx.Store.ClearShoppingList(); err != nil {
		return err
	}
	fmt.Println("Shopping list cleared")
	return nil
}

// ShoppingGenerateCmd builds a shopping list from the current week's meal
// plan via the assistant, subtracting items already in the pantry.
type ShoppingGenerateCmd struct {
	Week string `short:"w" help:"Week identifier, defaults to the current week."`
}

func (c *ShoppingGenerateCmd) Run(ctx *cli.Context) error {
	week := c.Week
	if week == "" {
		week = models.WeekOf(time.Now())
	}

	cells, err := ctx.Store.GetMealPlanWeek(week)
	if err != nil {
		return err
	}

	var plans []string
	for _, cell := range cells {
		if strings.TrimSpace(cell.Content) != "" {
			plans = append(plans, cell.Content)
		}
	}
	if len(plans) == 0 {
		return fmt.Errorf("no meal plan found for week %s", week)
	}

	client, err := ctx.AssistantClient()
	if err != nil {
		return err
	}

	items, err := client.GenerateShoppingList(context.Background(), strings.Join(plans, "\n"))
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("Nothing to add, the pantry covers the plan.")
		return nil
	}

	// Items already stocked don't belong on the list.
	pantryItems, err := ctx.Store.GetPantryItems()
	if err != nil {
		return err
	}
	stocked := make(map[string]bool, len(pantryItems))
	for _, p := range pantryItems {
		stocked[strings.ToLower(strings.TrimSpace(p.Item))] = true
	}

	var needed []string
	for _, item := range items {
		if !stocked[strings.ToLower(strings.TrimSpace(item))] {
			needed = append(needed, item)
		}
	}
	if len(needed) == 0 {
		fmt.Println("Nothing to add, the pantry covers the plan.")
		return nil
	}

	if err := ctx.Store.AddShoppingItems(needed); err != nil {
		return err
	}
	fmt.Printf("Added %d item(s) to the shopping list:\n", len(needed))
	for _, item := range needed {
		fmt.Printf("  %s\n", item)
	}
	return nil
}
