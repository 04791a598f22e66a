package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

// UpsertMealPlanCell saves a cell, overwriting any existing content for the
// same (week, day, slot).
func (s *Store) UpsertMealPlanCell(cell models.MealPlanCell) error {
	if err := cell.Validate(); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO meal_plan (week, day, slot, content) VALUES (?, ?, ?, ?)
		ON CONFLICT(week, day, slot) DO UPDATE SET content = excluded.content`,
		cell.Week, cell.Day, cell.Slot, cell.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to save meal-plan cell: %w", err)
	}
	return nil
}

func (s *Store) GetMealPlanCell(week, day, slot string) (models.MealPlanCell, error) {
	var c models.MealPlanCell
	err := s.db.QueryRow(`
		SELECT id, week, day, slot, content
		FROM meal_plan
		WHERE week = ? AND day = ? AND slot = ?`, week, day, slot).
		Scan(&c.ID, &c.Week, &c.Day, &c.Slot, &c.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return models.MealPlanCell{}, fmt.Errorf("%w: meal-plan cell %s/%s/%s", storage.ErrNotFound, week, day, slot)
	}
	if err != nil {
		return models.MealPlanCell{}, fmt.Errorf("failed to query meal-plan cell: %w", err)
	}
	return c, nil
}

func (s *Store) GetMealPlanWeek(week string) ([]models.MealPlanCell, error) {
	rows, err := s.db.Query(`
		SELECT id, week, day, slot, content
		FROM meal_plan
		WHERE week = ?
		ORDER BY id`, week)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal plan: %w", err)
	}
	defer rows.Close()

	var cells []models.MealPlanCell
	for rows.Next() {
		var c models.MealPlanCell
		if err := rows.Scan(&c.ID, &c.Week, &c.Day, &c.Slot, &c.Content); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, rows.Err()
}

// ClearMealPlanWeek removes every cell of a week. Clearing a week with no
// cells is not an error.
func (s *Store) ClearMealPlanWeek(week string) error {
	_, err := s.db.Exec("DELETE FROM meal_plan WHERE week = ?", week)
	if err != nil {
		return fmt.Errorf("failed to clear meal-plan week: %w", err)
	}
	return nil
}
