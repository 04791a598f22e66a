package nutrition

import (
	"context"
	"errors"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mindfulmauschen/healthtrack/internal/models"
)

// Suggestion is one calorie estimate offered to the user, tagged with where
// it came from.
type Suggestion struct {
	Name     string
	Calories int
	Source   string // "Local" or "USDA"
}

// SuggestLocal fuzzy-matches a query against previously logged foods and
// returns up to n suggestions with their average calories, best match first.
func SuggestLocal(query string, foods []models.FoodAverage, n int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" || len(foods) == 0 || n <= 0 {
		return nil
	}

	names := make([]string, len(foods))
	for i, f := range foods {
		names[i] = f.Name
	}

	matches := fuzzy.Find(query, names)
	if len(matches) > n {
		matches = matches[:n]
	}

	suggestions := make([]Suggestion, 0, len(matches))
	for _, m := range matches {
		f := foods[m.Index]
		suggestions = append(suggestions, Suggestion{
			Name:     f.Name,
			Calories: f.Calories,
			Source:   "Local",
		})
	}
	return suggestions
}

// Suggest returns local matches when any exist, otherwise falls back to a
// single USDA lookup. A nil client skips the fallback.
func Suggest(ctx context.Context, query string, foods []models.FoodAverage, usda *Client, n int) ([]Suggestion, error) {
	if local := SuggestLocal(query, foods, n); len(local) > 0 {
		return local, nil
	}

	if usda == nil {
		return nil, ErrNoMatch
	}

	calories, err := usda.SuggestCalories(ctx, query)
	if err != nil {
		if errors.Is(err, ErrNoMatch) {
			return nil, ErrNoMatch
		}
		return nil, err
	}

	return []Suggestion{{
		Name:     strings.TrimSpace(query),
		Calories: calories,
		Source:   "USDA",
	}}, nil
}
