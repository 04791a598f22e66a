package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func (s *Store) AddWeight(kind models.WeightKind, weight float64, date string) (int64, error) {
	entry := models.WeightEntry{Kind: kind, Weight: weight, Date: date}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO weights (kind, weight, entry_date) VALUES (?, ?, ?)",
		string(kind), weight, date,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add weight entry: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetWeightEntries(kind models.WeightKind) ([]models.WeightEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown weight kind %q", models.ErrInvalid, kind)
	}

	rows, err := s.db.Query(`
		SELECT id, kind, weight, entry_date
		FROM weights
		WHERE kind = ?
		ORDER BY entry_date, id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query weight entries: %w", err)
	}
	defer rows.Close()

	var entries []models.WeightEntry
	for rows.Next() {
		var e models.WeightEntry
		if err := rows.Scan(&e.ID, &e.Kind, &e.Weight, &e.Date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// LatestWeightOnOrBefore returns the most recent entry of the given kind
// dated on or before date. Same-date entries resolve to the last one
// inserted.
func (s *Store) LatestWeightOnOrBefore(kind models.WeightKind, date string) (models.WeightEntry, error) {
	if !kind.Valid() {
		return models.WeightEntry{}, fmt.Errorf("%w: unknown weight kind %q", models.ErrInvalid, kind)
	}

	var e models.WeightEntry
	err := s.db.QueryRow(`
		SELECT id, kind, weight, entry_date
		FROM weights
		WHERE kind = ? AND entry_date <= ?
		ORDER BY entry_date DESC, id DESC
		LIMIT 1`, string(kind), date).Scan(&e.ID, &e.Kind, &e.Weight, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WeightEntry{}, fmt.Errorf("%w: no %s weight on or before %s", storage.ErrNotFound, kind, date)
	}
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("failed to query weight entry: %w", err)
	}
	return e, nil
}

// CurrentWeight returns the most recent measured weight regardless of date.
func (s *Store) CurrentWeight() (models.WeightEntry, error) {
	return s.latestWeight(models.WeightCurrent)
}

// TargetWeight returns the most recent target weight regardless of date.
func (s *Store) TargetWeight() (models.WeightEntry, error) {
	return s.latestWeight(models.WeightTarget)
}

func (s *Store) latestWeight(kind models.WeightKind) (models.WeightEntry, error) {
	var e models.WeightEntry
	err := s.db.QueryRow(`
		SELECT id, kind, weight, entry_date
		FROM weights
		WHERE kind = ?
		ORDER BY entry_date DESC, id DESC
		LIMIT 1`, string(kind)).Scan(&e.ID, &e.Kind, &e.Weight, &e.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WeightEntry{}, fmt.Errorf("%w: no %s weight recorded", storage.ErrNotFound, kind)
	}
	if err != nil {
		return models.WeightEntry{}, fmt.Errorf("failed to query weight entry: %w", err)
	}
	return e, nil
}

func (s *Store) UpdateWeightEntry(id int64, weight float64, date string) error {
	if weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g", models.ErrInvalid, weight)
	}
	if err := models.ValidateDate(date); err != nil {
		return err
	}

	res, err := s.db.Exec(
		"UPDATE weights SET weight = ?, entry_date = ? WHERE id = ?",
		weight, date, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update weight entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: weight entry %d", storage.ErrNotFound, id)
	}
	return nil
}

func (s *Store) DeleteWeightEntry(id int64) error {
	res, err := s.db.Exec("DELETE FROM weights WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete weight entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: weight entry %d", storage.ErrNotFound, id)
	}
	return nil
}

const (
	goalKeyDailyCalories = "daily_calorie_goal"
	goalKeyTimeframe     = "timeframe_months"
)

func (s *Store) SetDailyCalorieGoal(calories float64, date string) error {
	if calories <= 0 {
		return fmt.Errorf("%w: daily calorie goal must be positive, got %g", models.ErrInvalid, calories)
	}
	return s.setGoal(goalKeyDailyCalories, calories, date)
}

func (s *Store) DailyCalorieGoal() (float64, bool, error) {
	return s.goal(goalKeyDailyCalories)
}

func (s *Store) SetTimeframe(months float64, date string) error {
	if months <= 0 {
		return fmt.Errorf("%w: timeframe must be positive, got %g", models.ErrInvalid, months)
	}
	return s.setGoal(goalKeyTimeframe, months, date)
}

func (s *Store) Timeframe() (float64, bool, error) {
	return s.goal(goalKeyTimeframe)
}

func (s *Store) setGoal(key string, value float64, date string) error {
	if err := models.ValidateDate(date); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO goals (key, value, updated_date) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_date = excluded.updated_date`,
		key, value, date,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal %s: %w", key, err)
	}
	return nil
}

func (s *Store) goal(key string) (float64, bool, error) {
	var value float64
	err := s.db.QueryRow("SELECT value FROM goals WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read goal %s: %w", key, err)
	}
	return value, true, nil
}
