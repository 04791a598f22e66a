package sqlite

import (
	"fmt"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

// CalorieTotalsRange returns one totals row per calendar day in the
// inclusive range, in chronological order. Days with no entries carry
// zeros so the progress graph has a continuous x axis.
func (s *Store) CalorieTotalsRange(start, end string) ([]models.DayTotals, error) {
	startDay, err := time.Parse(constants.DateFormat, start)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", models.ErrInvalid, start)
	}
	endDay, err := time.Parse(constants.DateFormat, end)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", models.ErrInvalid, end)
	}
	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: range end %s precedes start %s", models.ErrInvalid, end, start)
	}

	food, err := s.totalsByDay("foods", start, end)
	if err != nil {
		return nil, err
	}
	exercise, err := s.totalsByDay("exercise", start, end)
	if err != nil {
		return nil, err
	}

	var totals []models.DayTotals
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		date := d.Format(constants.DateFormat)
		totals = append(totals, models.DayTotals{
			Date:             date,
			FoodCalories:     food[date],
			ExerciseCalories: exercise[date],
		})
	}
	return totals, nil
}

func (s *Store) totalsByDay(table, start, end string) (map[string]int, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
		SELECT entry_date, SUM(calories)
		FROM %s
		WHERE entry_date >= ? AND entry_date <= ?
		GROUP BY entry_date`, table), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", table, err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var date string
		var sum int
		if err := rows.Scan(&date, &sum); err != nil {
			return nil, err
		}
		totals[date] = sum
	}
	return totals, rows.Err()
}
