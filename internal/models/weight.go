package models

import "fmt"

// WeightKind distinguishes the two weight series the goals view tracks.
type WeightKind string

const (
	WeightCurrent WeightKind = "current"
	WeightTarget  WeightKind = "target"
)

// WeightEntry is one weight measurement or target revision. Historical
// entries are retained for graphing; "most recent" lookups order by date
// with ties broken by insertion order (last inserted wins).
type WeightEntry struct {
	ID     int64      `json:"id"`
	Kind   WeightKind `json:"kind"`
	Weight float64    `json:"weight"` // kilograms
	Date   string     `json:"date"`   // YYYY-MM-DD
}

// Goals holds the derived goal values shown on the goals tab.
type Goals struct {
	DailyCalorieGoal *float64
	TimeframeMonths  *float64
	UpdatedDate      string
}

func (k WeightKind) Valid() bool {
	return k == WeightCurrent || k == WeightTarget
}

func (e WeightEntry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: weight kind must be %q or %q, got %q",
			ErrInvalid, WeightCurrent, WeightTarget, e.Kind)
	}
	if e.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive, got %g", ErrInvalid, e.Weight)
	}
	return ValidateDate(e.Date)
}
