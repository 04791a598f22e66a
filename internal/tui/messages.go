package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindfulmauschen/healthtrack/internal/assistant"
	"github.com/mindfulmauschen/healthtrack/internal/nutrition"
)

// assistantResultMsg is one completed assistant request, delivered off the
// worker's result channel. The ID is matched against the pending request so
// stale replies are dropped.
type assistantResultMsg assistant.Result

// suggestionsMsg carries calorie suggestions for a food lookup.
type suggestionsMsg struct {
	query       string
	suggestions []nutrition.Suggestion
	err         error
}

// awaitAssistant blocks on the worker's result channel until the next reply
// arrives. Exactly one of these commands is in flight per pending request.
func awaitAssistant(w *assistant.Worker) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-w.Results()
		if !ok {
			return nil
		}
		return assistantResultMsg(res)
	}
}

// lookupCalories resolves a calorie suggestion for a food name, preferring
// previously logged foods and falling back to the food database.
func (m Model) lookupCalories(query string, limit int) tea.Cmd {
	store, client := m.store, m.nutrition
	return func() tea.Msg {
		foods, err := store.GetDistinctFoods()
		if err != nil {
			return suggestionsMsg{query: query, err: err}
		}
		suggestions, err := nutrition.Suggest(context.Background(), query, foods, client, limit)
		return suggestionsMsg{query: query, suggestions: suggestions, err: err}
	}
}
