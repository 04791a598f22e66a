package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// ErrInvalid marks input rejected before any write reaches the store.
var ErrInvalid = errors.New("invalid input")

// FoodEntry is one logged food item on a calendar day.
type FoodEntry struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// ExerciseEntry is one logged activity on a calendar day.
type ExerciseEntry struct {
	ID       int64  `json:"id"`
	Activity string `json:"activity"`
	Calories int    `json:"calories"` // calories burned
	Date     string `json:"date"`     // YYYY-MM-DD
}

// FoodAverage pairs a distinct food name with its average logged calories.
// Used by the local suggestion feature.
type FoodAverage struct {
	Name     string
	Calories int
}

// DayTotals carries the two calorie series the progress view plots.
type DayTotals struct {
	Date             string
	FoodCalories     int
	ExerciseCalories int
}

// ValidateDate rejects anything that is not a real YYYY-MM-DD calendar date.
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalid, s)
	}
	return nil
}

// ValidateFields checks the name and calorie count without requiring a
// date, for updates that leave the entry on its original day.
func (e FoodEntry) ValidateFields() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: food name must not be empty", ErrInvalid)
	}
	if e.Calories < 0 {
		return fmt.Errorf("%w: calories must be non-negative, got %d", ErrInvalid, e.Calories)
	}
	return nil
}

func (e FoodEntry) Validate() error {
	if err := e.ValidateFields(); err != nil {
		return err
	}
	return ValidateDate(e.Date)
}

func (e ExerciseEntry) ValidateFields() error {
	if strings.TrimSpace(e.Activity) == "" {
		return fmt.Errorf("%w: activity name must not be empty", ErrInvalid)
	}
	if e.Calories < 0 {
		return fmt.Errorf("%w: calories burned must be non-negative, got %d", ErrInvalid, e.Calories)
	}
	return nil
}

func (e ExerciseEntry) Validate() error {
	if err := e.ValidateFields(); err != nil {
		return err
	}
	return ValidateDate(e.Date)
}
