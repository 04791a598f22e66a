package sqlite

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

func (s *Store) AddSleepEntry(night, bedtime, wakeup string) (int64, error) {
	entry := models.SleepEntry{Night: night, Bedtime: bedtime, Wakeup: wakeup}
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.Exec(
		"INSERT INTO sleep_entries (night, bedtime, wakeup) VALUES (?, ?, ?)",
		night, bedtime, wakeup,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add sleep entry: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) GetSleepEntriesRange(start, end string) ([]models.SleepEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, night, bedtime, wakeup
		FROM sleep_entries
		WHERE night >= ? AND night <= ?
		ORDER BY night, id`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query sleep entries: %w", err)
	}
	defer rows.Close()

	var entries []models.SleepEntry
	for rows.Next() {
		var e models.SleepEntry
		if err := rows.Scan(&e.ID, &e.Night, &e.Bedtime, &e.Wakeup); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteSleepEntry(id int64) error {
	res, err := s.db.Exec("DELETE FROM sleep_entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sleep entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: sleep entry %d", storage.ErrNotFound, id)
	}
	return nil
}
