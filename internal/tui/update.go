package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mindfulmauschen/healthtrack/internal/assistant"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case assistantResultMsg:
		return m.handleAssistantResult(msg)

	case suggestionsMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("no suggestion for %q", msg.query)
			return m, nil
		}
		var parts []string
		for _, s := range msg.suggestions {
			parts = append(parts, fmt.Sprintf("%s %d kcal (%s)", s.Name, s.Calories, s.Source))
		}
		m.statusMsg = "Suggestions: " + strings.Join(parts, ", ")
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateEditing:
			return m.updateEditing(msg)
		case StateConfirmDelete:
			return m.updateConfirmDelete(msg)
		case StateChat:
			return m.updateChat(msg)
		default:
			return m.updateTab(msg)
		}
	}

	return m, nil
}

func (m Model) handleAssistantResult(msg assistantResultMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.pendingID {
		// A reply for a request the user already moved on from
		return m, nil
	}
	m.waiting = false

	switch m.pendingKind {
	case "chat":
		if msg.Err != nil {
			m.chatHistory = append(m.chatHistory, chatLine{text: fmt.Sprintf("error: %v", msg.Err)})
		} else {
			m.chatHistory = append(m.chatHistory, chatLine{text: msg.Response})
		}

	case "mealplan":
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("meal plan suggestion failed: %v", msg.Err)
		} else {
			m.planSuggestion = msg.Response
		}

	case "shopping":
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("shopping list generation failed: %v", msg.Err)
			break
		}
		items := assistant.SplitList(msg.Response)
		stocked := make(map[string]bool, len(m.pantryItems))
		for _, p := range m.pantryItems {
			stocked[strings.ToLower(strings.TrimSpace(p.Item))] = true
		}
		var needed []string
		for _, item := range items {
			if !stocked[strings.ToLower(strings.TrimSpace(item))] {
				needed = append(needed, item)
			}
		}
		if len(needed) == 0 {
			m.statusMsg = "Pantry already covers the meal plan"
			break
		}
		if err := m.store.AddShoppingItems(needed); err != nil {
			m.statusMsg = fmt.Sprintf("failed to save shopping list: %v", err)
			break
		}
		m.refreshPantry()
		m.statusMsg = fmt.Sprintf("Added %d item(s) to the shopping list", len(needed))
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.commitForm()
		m.state = m.previousState
		m.form = nil
	} else if m.form.State == huh.StateAborted {
		m.state = m.previousState
		m.form = nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteSelected()
		m.state = m.previousState
	case "n", "N", "esc", "q":
		m.state = m.previousState
	}
	return m, nil
}

func (m *Model) deleteSelected() {
	var err error
	switch m.previousState {
	case StateFood:
		err = m.store.DeleteFoodEntry(m.deleteTarget)
		m.refreshFoods()
		m.refreshProgress()
	case StateExercise:
		err = m.store.DeleteExerciseEntry(m.deleteTarget)
		m.refreshExercises()
		m.refreshProgress()
	case StateGoals:
		err = m.store.DeleteWeightEntry(m.deleteTarget)
		m.refreshWeights()
	case StateSleep:
		err = m.store.DeleteSleepEntry(m.deleteTarget)
		m.refreshSleep()
	}
	if err != nil {
		m.statusMsg = fmt.Sprintf("delete failed: %v", err)
	}
	if m.cursor > m.cursorMax() {
		m.cursor = max(0, m.cursorMax())
	}
}

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "tab":
		return m.nextTab(1)
	case "shift+tab":
		return m.nextTab(-1)
	case "enter":
		prompt := strings.TrimSpace(m.chatInput.Value())
		if prompt == "" || m.waiting {
			return m, nil
		}
		if m.worker == nil {
			m.chatHistory = append(m.chatHistory, chatLine{text: "No OpenAI API key configured. Use 'healthtrack key set'."})
			return m, nil
		}
		m.chatHistory = append(m.chatHistory, chatLine{fromUser: true, text: prompt})
		m.chatInput.Reset()
		m.pendingID = m.worker.Submit(prompt)
		m.pendingKind = "chat"
		m.waiting = true
		return m, awaitAssistant(m.worker)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Tab):
		return m.nextTab(1)

	case key.Matches(msg, m.keys.ShiftTab):
		return m.nextTab(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.cursorMax() {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Refresh):
		m.refreshAll()
		m.statusMsg = ""

	case key.Matches(msg, m.keys.Add):
		return m.openAddForm()

	case key.Matches(msg, m.keys.Delete):
		return m.openConfirmDelete()

	case key.Matches(msg, m.keys.Suggest):
		return m.runSuggestion()

	case key.Matches(msg, m.keys.Enter):
		if m.state == StateSettings {
			m.toggleSetting()
		}
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.worker != nil {
		m.worker.Stop()
	}
	return m, tea.Quit
}

func (m Model) nextTab(dir int) (tea.Model, tea.Cmd) {
	m.state = SessionState((int(m.state) + dir + tabCount) % tabCount)
	m.cursor = 0
	m.statusMsg = ""
	if m.state == StateChat {
		m.chatInput.Focus()
	} else {
		m.chatInput.Blur()
	}
	return m, nil
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFood:
		m.entryForm = &EntryFormModel{}
		m.form = newEntryForm("Food", m.entryForm)
	case StateExercise:
		m.entryForm = &EntryFormModel{}
		m.form = newEntryForm("Activity", m.entryForm)
	case StateGoals:
		m.weightForm = &WeightFormModel{}
		m.form = newWeightForm(m.weightForm)
	case StateSleep:
		m.sleepForm = &SleepFormModel{}
		m.form = newSleepForm(m.sleepForm)
	default:
		return m, nil
	}

	m.previousState = m.state
	m.state = StateEditing
	return m, m.form.Init()
}

func (m Model) openConfirmDelete() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFood:
		if m.cursor < len(m.foods) {
			m.deleteTarget = m.foods[m.cursor].ID
		} else {
			return m, nil
		}
	case StateExercise:
		if m.cursor < len(m.exercises) {
			m.deleteTarget = m.exercises[m.cursor].ID
		} else {
			return m, nil
		}
	case StateGoals:
		if m.cursor < len(m.weights) {
			m.deleteTarget = m.weights[m.cursor].ID
		} else {
			return m, nil
		}
	case StateSleep:
		if m.cursor < len(m.sleepEntries) {
			m.deleteTarget = m.sleepEntries[m.cursor].ID
		} else {
			return m, nil
		}
	default:
		return m, nil
	}

	m.previousState = m.state
	m.state = StateConfirmDelete
	return m, nil
}

func (m Model) runSuggestion() (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFood:
		if m.cursor >= len(m.foods) {
			return m, nil
		}
		return m, m.lookupCalories(m.foods[m.cursor].Name, 3)

	case StateMealPlan:
		if m.worker == nil {
			m.statusMsg = "No OpenAI API key configured. Use 'healthtrack key set'."
			return m, nil
		}
		if !m.settings.MealPlanAIEnabled {
			m.statusMsg = "Meal plan suggestions are disabled in settings"
			return m, nil
		}
		var pantry []string
		for _, item := range m.pantryItems {
			pantry = append(pantry, item.Item)
		}
		prompt := assistant.BuildMealPlanPrompt(assistant.MealPlanOptions{
			Healthy:     true,
			PantryItems: pantry,
		})
		m.pendingID = m.worker.Submit(prompt)
		m.pendingKind = "mealplan"
		m.waiting = true
		return m, awaitAssistant(m.worker)

	case StatePantry:
		if m.worker == nil {
			m.statusMsg = "No OpenAI API key configured. Use 'healthtrack key set'."
			return m, nil
		}
		var plans []string
		for _, content := range m.planCells {
			if strings.TrimSpace(content) != "" {
				plans = append(plans, content)
			}
		}
		if len(plans) == 0 {
			m.statusMsg = "No meal plan to generate a shopping list from"
			return m, nil
		}
		m.pendingID = m.worker.Submit(assistant.BuildShoppingListPrompt(strings.Join(plans, "\n")))
		m.pendingKind = "shopping"
		m.waiting = true
		return m, awaitAssistant(m.worker)
	}

	return m, nil
}

func (m *Model) toggleSetting() {
	switch m.cursor {
	case 0:
		m.settings.FoodAIEnabled = !m.settings.FoodAIEnabled
	case 1:
		m.settings.ExerciseAIEnabled = !m.settings.ExerciseAIEnabled
	case 2:
		m.settings.MealPlanAIEnabled = !m.settings.MealPlanAIEnabled
	case 3:
		m.settings.NotificationsEnabled = !m.settings.NotificationsEnabled
	case 4:
		m.settings.SilentNotifications = !m.settings.SilentNotifications
	}
	if err := m.store.SaveSettings(m.settings); err != nil {
		m.statusMsg = fmt.Sprintf("failed to save settings: %v", err)
		m.refreshSettings()
	}
}
