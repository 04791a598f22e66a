package models

import (
	"fmt"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// SleepEntry is one night in the sleep diary. Bedtime and wakeup are clock
// times; a bedtime after midnight still belongs to the named night.
type SleepEntry struct {
	ID      int64  `json:"id"`
	Night   string `json:"night"`   // YYYY-MM-DD of the evening
	Bedtime string `json:"bedtime"` // HH:MM
	Wakeup  string `json:"wakeup"`  // HH:MM
}

// Duration returns the slept duration, treating a wakeup at or before the
// bedtime as crossing midnight.
func (e SleepEntry) Duration() (time.Duration, error) {
	bed, err := time.Parse(constants.TimeFormat, e.Bedtime)
	if err != nil {
		return 0, fmt.Errorf("%w: bedtime must be HH:MM, got %q", ErrInvalid, e.Bedtime)
	}
	wake, err := time.Parse(constants.TimeFormat, e.Wakeup)
	if err != nil {
		return 0, fmt.Errorf("%w: wakeup must be HH:MM, got %q", ErrInvalid, e.Wakeup)
	}
	d := wake.Sub(bed)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return d, nil
}

func (e SleepEntry) Validate() error {
	if err := ValidateDate(e.Night); err != nil {
		return err
	}
	_, err := e.Duration()
	return err
}
