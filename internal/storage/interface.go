package storage

import (
	"errors"

	"github.com/mindfulmauschen/healthtrack/internal/models"
)

// ErrNotFound is returned when an operation addresses a row that does not
// exist, such as deleting an unknown id. Callers treat it as a failed
// operation and report it, never a crash.
var ErrNotFound = errors.New("record not found")

// Store is the data-access contract the interface layer and CLI consume.
// Every mutation is a single committed transaction; every call is
// synchronous and reports success or a specific failure.
type Store interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Foods
	AddFood(name string, calories int, date string) (int64, error)
	GetFoodEntries(date string) ([]models.FoodEntry, error)
	GetFoodEntriesRange(start, end string) ([]models.FoodEntry, error)
	UpdateFoodEntry(id int64, name string, calories int) error
	DeleteFoodEntry(id int64) error
	GetDistinctFoods() ([]models.FoodAverage, error)
	GetMostCommonFoods(n int) ([]models.FoodAverage, error)
	GetEarliestFoodDate() (string, error)

	// Exercise
	AddExercise(activity string, calories int, date string) (int64, error)
	GetExerciseEntries(date string) ([]models.ExerciseEntry, error)
	GetExerciseEntriesRange(start, end string) ([]models.ExerciseEntry, error)
	UpdateExerciseEntry(id int64, activity string, calories int) error
	DeleteExerciseEntry(id int64) error

	// Weights and goals
	AddWeight(kind models.WeightKind, weight float64, date string) (int64, error)
	GetWeightEntries(kind models.WeightKind) ([]models.WeightEntry, error)
	LatestWeightOnOrBefore(kind models.WeightKind, date string) (models.WeightEntry, error)
	CurrentWeight() (models.WeightEntry, error)
	TargetWeight() (models.WeightEntry, error)
	UpdateWeightEntry(id int64, weight float64, date string) error
	DeleteWeightEntry(id int64) error
	SetDailyCalorieGoal(calories float64, date string) error
	DailyCalorieGoal() (float64, bool, error)
	SetTimeframe(months float64, date string) error
	Timeframe() (float64, bool, error)

	// Meal plan
	UpsertMealPlanCell(cell models.MealPlanCell) error
	GetMealPlanCell(week, day, slot string) (models.MealPlanCell, error)
	GetMealPlanWeek(week string) ([]models.MealPlanCell, error)
	ClearMealPlanWeek(week string) error

	// Pantry and shopping list
	AddPantryItem(item string, weight int) (int64, error)
	GetPantryItems() ([]models.PantryItem, error)
	DeletePantryItems(ids []int64) error
	ClearPantry() error
	AddShoppingItem(item string) (int64, error)
	AddShoppingItems(items []string) error
	GetShoppingItems() ([]models.ShoppingItem, error)
	DeleteShoppingItems(ids []int64) error
	ClearShoppingList() error

	// Sleep diary
	AddSleepEntry(night, bedtime, wakeup string) (int64, error)
	GetSleepEntriesRange(start, end string) ([]models.SleepEntry, error)
	DeleteSleepEntry(id int64) error

	// Aggregation
	CalorieTotalsRange(start, end string) ([]models.DayTotals, error)

	// Utils
	GetConfigPath() string
}
