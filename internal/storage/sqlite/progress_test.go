package sqlite

import (
	"errors"
	"testing"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func TestCalorieTotalsRange(t *testing.T) {
	t.Run("sums food and exercise separately", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddFood("Apple", 95, "2024-01-15"); err != nil {
			t.Fatalf("failed to seed food: %v", err)
		}
		if _, err := store.AddExercise("Run", 300, "2024-01-15"); err != nil {
			t.Fatalf("failed to seed exercise: %v", err)
		}

		totals, err := store.CalorieTotalsRange("2024-01-15", "2024-01-15")
		if err != nil {
			t.Fatalf("CalorieTotalsRange() returned unexpected error: %v", err)
		}
		if len(totals) != 1 {
			t.Fatalf("got %d rows, want 1", len(totals))
		}
		if totals[0].FoodCalories != 95 {
			t.Errorf("food total = %d, want 95", totals[0].FoodCalories)
		}
		if totals[0].ExerciseCalories != 300 {
			t.Errorf("exercise total = %d, want 300", totals[0].ExerciseCalories)
		}
	})

	t.Run("fills empty days with zeros", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddFood("Apple", 95, "2024-01-14"); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}
		if _, err := store.AddFood("Toast", 180, "2024-01-16"); err != nil {
			t.Fatalf("failed to seed: %v", err)
		}

		totals, err := store.CalorieTotalsRange("2024-01-14", "2024-01-16")
		if err != nil {
			t.Fatalf("CalorieTotalsRange() returned unexpected error: %v", err)
		}
		if len(totals) != 3 {
			t.Fatalf("got %d rows, want 3 (one per day)", len(totals))
		}
		if totals[1].Date != "2024-01-15" {
			t.Errorf("middle row date = %s, want 2024-01-15", totals[1].Date)
		}
		if totals[1].FoodCalories != 0 || totals[1].ExerciseCalories != 0 {
			t.Errorf("empty day totals = %+v, want zeros", totals[1])
		}
	})

	t.Run("sums multiple entries per day", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		for _, cal := range []int{95, 105, 350} {
			if _, err := store.AddFood("Food", cal, "2024-01-15"); err != nil {
				t.Fatalf("failed to seed: %v", err)
			}
		}

		totals, err := store.CalorieTotalsRange("2024-01-15", "2024-01-15")
		if err != nil {
			t.Fatalf("CalorieTotalsRange() returned unexpected error: %v", err)
		}
		if totals[0].FoodCalories != 550 {
			t.Errorf("food total = %d, want 550", totals[0].FoodCalories)
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		_, err := store.CalorieTotalsRange("2024-01-16", "2024-01-15")
		if !errors.Is(err, models.ErrInvalid) {
			t.Errorf("CalorieTotalsRange(inverted) error = %v, want ErrInvalid", err)
		}
	})
}

func TestSleepEntries(t *testing.T) {
	t.Run("add and read back in range", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddSleepEntry("2024-01-15", "23:30", "07:00"); err != nil {
			t.Fatalf("AddSleepEntry() returned unexpected error: %v", err)
		}
		if _, err := store.AddSleepEntry("2024-01-16", "22:45", "06:30"); err != nil {
			t.Fatalf("AddSleepEntry() returned unexpected error: %v", err)
		}

		entries, err := store.GetSleepEntriesRange("2024-01-15", "2024-01-16")
		if err != nil {
			t.Fatalf("GetSleepEntriesRange() returned unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %d sleep entries, want 2", len(entries))
		}
		if entries[0].Night != "2024-01-15" || entries[0].Bedtime != "23:30" {
			t.Errorf("got %+v, want night 2024-01-15 bedtime 23:30", entries[0])
		}
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if _, err := store.AddSleepEntry("2024-01-15", "11pm", "07:00"); !errors.Is(err, models.ErrInvalid) {
			t.Errorf("AddSleepEntry(bad bedtime) error = %v, want ErrInvalid", err)
		}
	})

	t.Run("delete of unknown id fails", func(t *testing.T) {
		store, cleanup := setupTestStore(t)
		defer cleanup()

		if err := store.DeleteSleepEntry(7); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteSleepEntry(unknown id) error = %v, want ErrNotFound", err)
		}
	})
}
