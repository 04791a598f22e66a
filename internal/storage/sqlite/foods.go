package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func (s *Store) AddFood(name string, calories int, date string) (int64, error) {
	entry := models.FoodEntry{Name: name, Calories: calories, Date: date}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO foods (name, calories, entry_date) VALUES (?, ?, ?)",
		name, calories, date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add food entry: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetFoodEntries(date string) ([]models.FoodEntry, error) {
	return s.GetFoodEntriesRange(date, date)
}

func (s *Store) GetFoodEntriesRange(start, end string) ([]models.FoodEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, calories, entry_date
		FROM foods
		WHERE entry_date >= ? AND entry_date <= ?
		ORDER BY entry_date, id`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query food entries: %w", err)
	}
	defer rows.Close()

	var entries []models.FoodEntry
	for rows.Next() {
		var e models.FoodEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Calories, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpdateFoodEntry(id int64, name string, calories int) error {
	entry := models.FoodEntry{Name: name, Calories: calories}
	if err := entry.ValidateFields(); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE foods SET name = ?, calories = ? WHERE id = ?",
		name, calories, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update food entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: food entry %d", storage.ErrNotFound, id)
	}
	return nil
}

func (s *Store) DeleteFoodEntry(id int64) error {
	res, err := s.db.Exec("DELETE FROM foods WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete food entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: food entry %d", storage.ErrNotFound, id)
	}
	return nil
}

// GetDistinctFoods returns every food name ever logged with its rounded
// average calorie count, for local suggestion matching.
func (s *Store) GetDistinctFoods() ([]models.FoodAverage, error) {
	rows, err := s.db.Query(`
		SELECT name, CAST(ROUND(AVG(calories)) AS INTEGER)
		FROM foods
		GROUP BY name
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct foods: %w", err)
	}
	defer rows.Close()

	var foods []models.FoodAverage
	for rows.Next() {
		var f models.FoodAverage
		if err := rows.Scan(&f.Name, &f.Calories); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// GetMostCommonFoods returns the n most frequently logged foods with their
// rounded average calorie counts.
func (s *Store) GetMostCommonFoods(n int) ([]models.FoodAverage, error) {
	rows, err := s.db.Query(`
		SELECT name, CAST(ROUND(AVG(calories)) AS INTEGER)
		FROM foods
		GROUP BY name
		ORDER BY COUNT(*) DESC, name
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query common foods: %w", err)
	}
	defer rows.Close()

	var foods []models.FoodAverage
	for rows.Next() {
		var f models.FoodAverage
		if err := rows.Scan(&f.Name, &f.Calories); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// GetEarliestFoodDate returns the date of the oldest food entry, or
// storage.ErrNotFound when nothing has been logged yet.
func (s *Store) GetEarliestFoodDate() (string, error) {
	var date sql.NullString
	if err := s.db.QueryRow("SELECT MIN(entry_date) FROM foods").Scan(&date); err != nil {
		return "", fmt.Errorf("failed to query earliest food date: %w", err)
	}
	if !date.Valid {
		return "", fmt.Errorf("%w: no food entries", storage.ErrNotFound)
	}
	return date.String, nil
}
