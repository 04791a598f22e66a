package met

import (
	"strings"
	"testing"
)

func TestActivities(t *testing.T) {
	all, err := Activities()
	if err != nil {
		t.Fatalf("Activities() returned unexpected error: %v", err)
	}
	if len(all) == 0 {
		t.Fatal("Activities() returned an empty table")
	}
	for _, a := range all {
		if a.Description == "" {
			t.Errorf("activity %s has an empty description", a.Code)
		}
		if a.MET <= 0 {
			t.Errorf("activity %q has non-positive MET %g", a.Description, a.MET)
		}
	}
}

func TestSearch(t *testing.T) {
	t.Run("substring match on description", func(t *testing.T) {
		got, err := Search("swimming", 10)
		if err != nil {
			t.Fatalf("Search() returned unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("Search(swimming) returned nothing")
		}
		for _, a := range got {
			text := strings.ToLower(a.Description + " " + a.Category)
			if !strings.Contains(text, "swimming") && !strings.Contains(text, "water") {
				t.Errorf("Search(swimming) returned unrelated activity %q", a.Description)
			}
		}
	})

	t.Run("prefix matches rank first", func(t *testing.T) {
		got, err := Search("running", 10)
		if err != nil {
			t.Fatalf("Search() returned unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Fatal("Search(running) returned nothing")
		}
		if !strings.HasPrefix(strings.ToLower(got[0].Description), "running") {
			t.Errorf("first result %q does not start with the query", got[0].Description)
		}
	})

	t.Run("respects the limit", func(t *testing.T) {
		got, err := Search("ing", 3)
		if err != nil {
			t.Fatalf("Search() returned unexpected error: %v", err)
		}
		if len(got) > 3 {
			t.Errorf("got %d results, want at most 3", len(got))
		}
	})

	t.Run("blank query returns nothing", func(t *testing.T) {
		got, err := Search("  ", 10)
		if err != nil {
			t.Fatalf("Search() returned unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Search(blank) returned %d results, want 0", len(got))
		}
	})
}

func TestEstimate(t *testing.T) {
	t.Run("standard formula", func(t *testing.T) {
		// 8 MET for 30 minutes at 70 kg: 8 * 70 * 0.5 = 280
		got, err := Estimate(8.0, 70, 30)
		if err != nil {
			t.Fatalf("Estimate() returned unexpected error: %v", err)
		}
		if got != 280 {
			t.Errorf("Estimate(8, 70, 30) = %d, want 280", got)
		}
	})

	t.Run("rounds to nearest calorie", func(t *testing.T) {
		// 3.5 * 82.5 * (45/60) = 216.5625
		got, err := Estimate(3.5, 82.5, 45)
		if err != nil {
			t.Fatalf("Estimate() returned unexpected error: %v", err)
		}
		if got != 217 {
			t.Errorf("Estimate(3.5, 82.5, 45) = %d, want 217", got)
		}
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		if _, err := Estimate(0, 70, 30); err == nil {
			t.Error("Estimate(0 MET) = nil, want error")
		}
		if _, err := Estimate(8, 0, 30); err == nil {
			t.Error("Estimate(0 weight) = nil, want error")
		}
		if _, err := Estimate(8, 70, 0); err == nil {
			t.Error("Estimate(0 minutes) = nil, want error")
		}
	})
}
