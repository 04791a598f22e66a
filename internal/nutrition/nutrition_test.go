package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mindfulmauschen/healthtrack/internal/models"
)

// fakeFDC emulates the two-step search-then-detail flow of the food API.
func fakeFDC(t *testing.T, foods map[string]int, energies map[int]float64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/foods/search", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query    string `json:"query"`
			PageSize int    `json:"pageSize"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		resp := map[string]any{"foods": []any{}}
		if id, ok := foods[req.Query]; ok {
			resp["foods"] = []map[string]any{{"fdcId": id}}
		}
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/food/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/food/%d", &id); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		nutrients := []map[string]any{
			{"nutrientName": "Protein", "unitName": "G", "value": 0.3},
		}
		if kcal, ok := energies[id]; ok {
			// Detail responses nest nutrient metadata and use "amount"
			nutrients = append(nutrients, map[string]any{
				"nutrient": map[string]any{"name": "Energy", "unitName": "kcal"},
				"amount":   kcal,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{"foodNutrients": nutrients})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSuggestCalories(t *testing.T) {
	server := fakeFDC(t,
		map[string]int{"apple": 171688},
		map[int]float64{171688: 94.6},
	)
	client := NewClientWithBaseURL("test-key", server.URL)

	t.Run("returns rounded kcal for a match", func(t *testing.T) {
		calories, err := client.SuggestCalories(context.Background(), "apple")
		if err != nil {
			t.Fatalf("SuggestCalories() returned unexpected error: %v", err)
		}
		if calories != 95 {
			t.Errorf("calories = %d, want 95", calories)
		}
	})

	t.Run("no search result fails with ErrNoMatch", func(t *testing.T) {
		_, err := client.SuggestCalories(context.Background(), "xyzzy")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("SuggestCalories(unknown) error = %v, want ErrNoMatch", err)
		}
	})

	t.Run("rejects empty query", func(t *testing.T) {
		if _, err := client.SuggestCalories(context.Background(), "  "); err == nil {
			t.Error("SuggestCalories(blank) = nil, want error")
		}
	})

	t.Run("missing energy nutrient fails with ErrNoMatch", func(t *testing.T) {
		noEnergy := fakeFDC(t, map[string]int{"water": 1}, nil)
		c := NewClientWithBaseURL("test-key", noEnergy.URL)
		_, err := c.SuggestCalories(context.Background(), "water")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("SuggestCalories(no energy) error = %v, want ErrNoMatch", err)
		}
	})
}

func TestSuggestLocal(t *testing.T) {
	foods := []models.FoodAverage{
		{Name: "Apple", Calories: 95},
		{Name: "Apple pie", Calories: 320},
		{Name: "Banana", Calories: 105},
	}

	t.Run("ranks fuzzy matches", func(t *testing.T) {
		got := SuggestLocal("appl", foods, 10)
		if len(got) != 2 {
			t.Fatalf("got %d suggestions, want 2", len(got))
		}
		if got[0].Name != "Apple" {
			t.Errorf("best match = %s, want Apple", got[0].Name)
		}
		if got[0].Source != "Local" {
			t.Errorf("source = %s, want Local", got[0].Source)
		}
	})

	t.Run("caps at n", func(t *testing.T) {
		got := SuggestLocal("a", foods, 1)
		if len(got) != 1 {
			t.Errorf("got %d suggestions, want 1", len(got))
		}
	})

	t.Run("no match returns nothing", func(t *testing.T) {
		if got := SuggestLocal("zzz", foods, 10); len(got) != 0 {
			t.Errorf("got %v, want no suggestions", got)
		}
	})
}

func TestSuggest(t *testing.T) {
	server := fakeFDC(t,
		map[string]int{"dragonfruit": 2},
		map[int]float64{2: 60},
	)
	client := NewClientWithBaseURL("test-key", server.URL)

	foods := []models.FoodAverage{{Name: "Apple", Calories: 95}}

	t.Run("prefers local matches", func(t *testing.T) {
		got, err := Suggest(context.Background(), "apple", foods, client, 5)
		if err != nil {
			t.Fatalf("Suggest() returned unexpected error: %v", err)
		}
		if len(got) == 0 || got[0].Source != "Local" {
			t.Errorf("got %v, want a local suggestion", got)
		}
	})

	t.Run("falls back to the food API", func(t *testing.T) {
		got, err := Suggest(context.Background(), "dragonfruit", foods, client, 5)
		if err != nil {
			t.Fatalf("Suggest() returned unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Source != "USDA" || got[0].Calories != 60 {
			t.Errorf("got %v, want one USDA suggestion with 60 kcal", got)
		}
	})

	t.Run("no match anywhere fails", func(t *testing.T) {
		_, err := Suggest(context.Background(), "xyzzy", foods, client, 5)
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("Suggest(no match) error = %v, want ErrNoMatch", err)
		}
	})

	t.Run("nil client skips the fallback", func(t *testing.T) {
		_, err := Suggest(context.Background(), "dragonfruit", foods, nil, 5)
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("Suggest(nil client) error = %v, want ErrNoMatch", err)
		}
	})
}
