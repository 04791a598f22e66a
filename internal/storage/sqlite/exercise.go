package sqlite

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func (s *Store) AddExercise(activity string, calories int, date string) (int64, error) {
	entry := models.ExerciseEntry{Activity: activity, Calories: calories, Date: date}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO exercise (activity, calories, entry_date) VALUES (?, ?, ?)",
		activity, calories, date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add exercise entry: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetExerciseEntries(date string) ([]models.ExerciseEntry, error) {
	return s.GetExerciseEntriesRange(date, date)
}

func (s *Store) GetExerciseEntriesRange(start, end string) ([]models.ExerciseEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, activity, calories, entry_date
		FROM exercise
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date, id`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query exercise entries: %w", err)
	}
	defer rows.Close()

	var entries []models.ExerciseEntry
	for rows.Next() {
		var e models.ExerciseEntry
		if err := rows.Scan(&e.ID, &e.Activity, &e.Calories, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateExerciseEntry(id int64, activity string, calories int) error {
	entry := models.ExerciseEntry{Activity: activity, Calories: calories}
	if err := entry.ValidateFields(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE exercise SET activity = ?, calories = ? WHERE id = ?",
		activity, calories, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update exercise entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: exercise entry %d", storage.ErrNotFound, id)
	}
	return nil
}

func (s *Store) DeleteExerciseEntry(id int64) error {
	res, err := s.db.Exec("DELETE FROM exercise WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: exercise entry %d", storage.ErrNotFound, id)
	}
	return nil
}
