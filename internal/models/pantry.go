package models

import (
	"fmt"
	"strings"
)

// PantryItem is one stocked item with its remaining weight in grams.
type PantryItem struct {
	ID     int64  `json:"id"`
	Item   string `json:"item"`
	Weight int    `json:"weight"` // grams
}

// ShoppingItem is one item on the shopping list.
type ShoppingItem struct {
	ID   int64  `json:"id"`
	Item string `json:"item"`
}

func (p PantryItem) Validate() error {
	if strings.TrimSpace(p.Item) == "" {
		return fmt.Errorf("%w: pantry item name must not be empty", ErrInvalid)
	}
	if p.Weight < 0 {
		return fmt.Errorf("%w: pantry item weight must be non-negative, got %d", ErrInvalid, p.Weight)
	}
	return nil
}

func (s ShoppingItem) Validate() error {
	if strings.TrimSpace(s.Item) == "" {
		return fmt.Errorf("%w: shopping item name must not be empty", ErrInvalid)
	}
	return nil
}
