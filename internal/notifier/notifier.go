package notifier

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// sendFunc is swappable in tests so no real notification fires.
var sendFunc = beeep.Notify

// Notifier delivers desktop notifications. Silent mode suppresses delivery
// while still reporting what would have been sent.
type Notifier struct {
	Silent bool
}

func New(silent bool) *Notifier {
	return &Notifier{Silent: silent}
}

// Notify shows a desktop notification unless silent mode is on.
func (n *Notifier) Notify(title, message string) error {
	if n.Silent {
		return nil
	}
	if err := sendFunc(title, message, ""); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

// WeighInDue reports whether the weekly weigh-in reminder should fire: the
// last recorded weight predates the Monday of the current week, or no weight
// has been recorded at all.
func WeighInDue(lastWeighIn string, now time.Time) (bool, error) {
	monday := startOfWeek(now)

	if lastWeighIn == "" {
		return true, nil
	}

	last, err := time.Parse(constants.DateFormat, lastWeighIn)
	if err != nil {
		return false, fmt.Errorf("invalid weigh-in date %q: %w", lastWeighIn, err)
	}

	return last.Before(monday), nil
}

// startOfWeek returns midnight on the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
