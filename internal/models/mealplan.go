package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// MealPlanCell is one editable cell of the weekly meal-plan grid. The store
// keeps exactly one cell per (week, day, slot); saving an existing cell
// overwrites its content.
type MealPlanCell struct {
	ID      int64  `json:"id"`
	Week    string `json:"week"` // e.g. "2024-W03"
	Day     string `json:"day"`  // Monday..Sunday
	Slot    string `json:"slot"` // breakfast/lunch/dinner/snacks
	Content string `json:"content"`
}

// WeekOf returns the meal-plan week identifier for a point in time,
// using the ISO 8601 week number.
func WeekOf(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func validDay(day string) bool {
	for _, d := range constants.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func validSlot(slot string) bool {
	for _, s := range constants.MealSlots {
		if s == slot {
			return true
		}
	}
	return false
}

func (c MealPlanCell) Validate() error {
	if strings.TrimSpace(c.Week) == "" {
		return fmt.Errorf("%w: meal-plan week must not be empty", ErrInvalid)
	}
	if !validDay(c.Day) {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalid, c.Day)
	}
	if !validSlot(c.Slot) {
		return fmt.Errorf("%w: unknown meal slot %q", ErrInvalid, c.Slot)
	}
	return nil
}
