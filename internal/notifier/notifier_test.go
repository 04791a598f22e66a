package notifier

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeighInDue(t *testing.T) {
	// 2024-01-17 is a Wednesday; that week's Monday is 2024-01-15
	now := date("2024-01-17")

	t.Run("no weigh-in yet is due", func(t *testing.T) {
		due, err := WeighInDue("", now)
		if err != nil {
			t.Fatalf("WeighInDue() returned unexpected error: %v", err)
		}
		if !due {
			t.Error("WeighInDue(none) = false, want true")
		}
	})

	t.Run("weigh-in from last week is due", func(t *testing.T) {
		due, err := WeighInDue("2024-01-12", now)
		if err != nil {
			t.Fatalf("WeighInDue() returned unexpected error: %v", err)
		}
		if !due {
			t.Error("WeighInDue(last Friday) = false, want true")
		}
	})

	t.Run("weigh-in this week is not due", func(t *testing.T) {
		for _, d := range []string{"2024-01-15", "2024-01-16", "2024-01-17"} {
			due, err := WeighInDue(d, now)
			if err != nil {
				t.Fatalf("WeighInDue(%s) returned unexpected error: %v", d, err)
			}
			if due {
				t.Errorf("WeighInDue(%s) = true, want false", d)
			}
		}
	})

	t.Run("Sunday counts into the running week", func(t *testing.T) {
		// 2024-01-21 is the Sunday of the week starting 2024-01-15
		sunday := date("2024-01-21")
		due, err := WeighInDue("2024-01-15", sunday)
		if err != nil {
			t.Fatalf("WeighInDue() returned unexpected error: %v", err)
		}
		if due {
			t.Error("WeighInDue(Monday, checked on Sunday) = true, want false")
		}
	})

	t.Run("malformed date fails", func(t *testing.T) {
		if _, err := WeighInDue("17/01/2024", now); err == nil {
			t.Error("WeighInDue(bad date) = nil, want error")
		}
	})
}

func TestNotify(t *testing.T) {
	t.Run("silent mode sends nothing", func(t *testing.T) {
		sent := 0
		orig := sendFunc
		sendFunc = func(title, message string, icon any) error {
			sent++
			return nil
		}
		defer func() { sendFunc = orig }()

		n := New(true)
		if err := n.Notify("Weigh-in", "Time to record your weight"); err != nil {
			t.Fatalf("Notify() returned unexpected error: %v", err)
		}
		if sent != 0 {
			t.Errorf("silent notifier sent %d notifications, want 0", sent)
		}
	})

	t.Run("delivers when not silent", func(t *testing.T) {
		var gotTitle, gotMessage string
		orig := sendFunc
		sendFunc = func(title, message string, icon any) error {
			gotTitle, gotMessage = title, message
			return nil
		}
		defer func() { sendFunc = orig }()

		n := New(false)
		if err := n.Notify("Weigh-in", "Time to record your weight"); err != nil {
			t.Fatalf("Notify() returned unexpected error: %v", err)
		}
		if gotTitle != "Weigh-in" || gotMessage != "Time to record your weight" {
			t.Errorf("sent %q/%q, want the given title and message", gotTitle, gotMessage)
		}
	})
}
