package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

func TestToday(t *testing.T) {
	got := Today()
	want := time.Now().Format(constants.DateFormat)
	if got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}

func TestResolveDate(t *testing.T) {
	t.Run("blank defaults to today", func(t *testing.T) {
		got, err := ResolveDate("")
		if err != nil {
			t.Fatalf("ResolveDate() returned unexpected error: %v", err)
		}
		if got != Today() {
			t.Errorf("ResolveDate(\"\") = %q, want today", got)
		}
	})

	t.Run("valid date passes through", func(t *testing.T) {
		got, err := ResolveDate("2024-01-15")
		if err != nil {
			t.Fatalf("ResolveDate() returned unexpected error: %v", err)
		}
		if got != "2024-01-15" {
			t.Errorf("ResolveDate() = %q, want 2024-01-15", got)
		}
	})

	t.Run("malformed date fails", func(t *testing.T) {
		if _, err := ResolveDate("15/01/2024"); err == nil {
			t.Error("ResolveDate(bad date) = nil, want error")
		}
	})

	t.Run("impossible date fails", func(t *testing.T) {
		_, err := ResolveDate("2024-02-31")
		if err == nil {
			t.Error("ResolveDate(2024-02-31) = nil, want error")
		}
		if err != nil && !strings.Contains(err.Error(), "YYYY-MM-DD") {
			t.Errorf("error %q does not mention the expected format", err)
		}
	})
}
