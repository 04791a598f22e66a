package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateFood:
		content = m.viewFood()
	case StateExercise:
		content = m.viewExercise()
	case StateProgress:
		content = m.viewProgress()
	case StateGoals:
		content = m.viewGoals()
	case StateMealPlan:
		content = m.viewMealPlan()
	case StatePantry:
		content = m.viewPantry()
	case StateSleep:
		content = m.viewSleep()
	case StateChat:
		content = m.viewChat()
	case StateSettings:
		content = m.viewSettings()
	case StateEditing:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, dimStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		state := m.state
		if state == StateEditing || state == StateConfirmDelete {
			state = m.previousState
		}
		if state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Today " + m.today))
	b.WriteString("\n\n")

	intake := 0
	for _, e := range m.foods {
		intake += e.Calories
	}
	burned := 0
	for _, e := range m.exercises {
		burned += e.Calories
	}

	line := fmt.Sprintf("Intake: %d kcal    Burned: %d kcal    Net: %d kcal", intake, burned, intake-burned)
	if m.hasGoal && float64(intake) > m.calorieGoal {
		line += overGoalStyle.Render(fmt.Sprintf("    over goal (%.0f)", m.calorieGoal))
	} else if m.hasGoal {
		line += dimStyle.Render(fmt.Sprintf("    goal %.0f", m.calorieGoal))
	}
	b.WriteString(line)
	b.WriteString("\n\n")

	if len(m.weights) > 0 {
		latest := m.weights[len(m.weights)-1]
		b.WriteString(fmt.Sprintf("Latest weight: %.1f kg (%s)\n", latest.Weight, latest.Date))
	} else {
		b.WriteString(dimStyle.Render("No weight recorded yet\n"))
	}

	if len(m.sleepEntries) > 0 {
		last := m.sleepEntries[len(m.sleepEntries)-1]
		if d, err := last.Duration(); err == nil {
			b.WriteString(fmt.Sprintf("Last night's sleep: %.1f h (%s)\n", d.Hours(), last.Night))
		}
	}

	if len(m.commonFoods) > 0 {
		b.WriteString("\n" + dimStyle.Render("Most logged foods:") + "\n")
		for _, f := range m.commonFoods {
			b.WriteString(fmt.Sprintf("  %-30s ~%d kcal\n", f.Name, f.Calories))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewFood() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Food " + m.today))
	b.WriteString("\n\n")

	if len(m.foods) == 0 {
		b.WriteString(dimStyle.Render("No entries. Press 'a' to add one."))
	}

	total := 0
	for i, e := range m.foods {
		row := fmt.Sprintf("%-30s %5d kcal", e.Name, e.Calories)
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row + "\n")
		total += e.Calories
	}
	if len(m.foods) > 0 {
		b.WriteString(fmt.Sprintf("\nTotal: %d kcal", total))
		if m.hasGoal {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" / goal %.0f", m.calorieGoal)))
		}
	}

	return docStyle.Render(b.String())
}

func (m Model) viewExercise() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Exercise " + m.today))
	b.WriteString("\n\n")

	if len(m.exercises) == 0 {
		b.WriteString(dimStyle.Render("No entries. Press 'a' to add one."))
	}

	total := 0
	for i, e := range m.exercises {
		row := fmt.Sprintf("%-30s %5d kcal", e.Activity, e.Calories)
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row + "\n")
		total += e.Calories
	}
	if len(m.exercises) > 0 {
		b.WriteString(fmt.Sprintf("\nTotal burned: %d kcal", total))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewProgress() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Last 14 days"))
	b.WriteString("\n\n")

	maxVal := 1
	for _, day := range m.totals {
		if day.FoodCalories > maxVal {
			maxVal = day.FoodCalories
		}
	}
	if m.hasGoal && int(m.calorieGoal) > maxVal {
		maxVal = int(m.calorieGoal)
	}

	const width = 30
	for _, day := range m.totals {
		bars := day.FoodCalories * width / maxVal
		bar := strings.Repeat("█", bars)
		if m.hasGoal && float64(day.FoodCalories) > m.calorieGoal {
			bar = overGoalStyle.Render(bar)
		}
		b.WriteString(fmt.Sprintf("%s %5d %s\n", day.Date, day.FoodCalories, bar))
	}

	if m.hasGoal {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\nDaily goal: %.0f kcal", m.calorieGoal)))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewGoals() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Weight history"))
	b.WriteString("\n\n")

	if len(m.weights) == 0 {
		b.WriteString(dimStyle.Render("No weights recorded. Press 'a' to add one.\n"))
	}
	for i, e := range m.weights {
		row := fmt.Sprintf("%-10s %6.1f kg", e.Date, e.Weight)
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	b.WriteString("\n")
	if len(m.targetWeights) > 0 {
		target := m.targetWeights[len(m.targetWeights)-1]
		b.WriteString(fmt.Sprintf("Target: %.1f kg (%s)\n", target.Weight, target.Date))
	} else {
		b.WriteString(dimStyle.Render("No target weight set\n"))
	}
	if m.hasGoal {
		b.WriteString(fmt.Sprintf("Daily calorie goal: %.0f kcal\n", m.calorieGoal))
	} else {
		b.WriteString(dimStyle.Render("No daily calorie goal set\n"))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewMealPlan() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Meal plan " + m.planWeek))
	b.WriteString("\n\n")

	empty := true
	for _, day := range constants.Weekdays {
		printed := false
		for _, slot := range constants.MealSlots {
			content := m.planCells[day+"/"+slot]
			if content == "" {
				continue
			}
			if !printed {
				b.WriteString(day + ":\n")
				printed = true
				empty = false
			}
			b.WriteString(fmt.Sprintf("  %-10s %s\n", slot, content))
		}
	}
	if empty {
		b.WriteString(dimStyle.Render("No meal plan this week. Press 's' for a suggestion.\n"))
	}

	if m.waiting && m.pendingKind == "mealplan" {
		b.WriteString(dimStyle.Render("\nAsking the assistant..."))
	}
	if m.planSuggestion != "" {
		b.WriteString("\n" + titleStyle.Render("Suggestion") + "\n")
		b.WriteString(m.planSuggestion + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewPantry() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pantry"))
	b.WriteString("\n\n")

	if len(m.pantryItems) == 0 {
		b.WriteString(dimStyle.Render("Pantry is empty.\n"))
	}
	for _, item := range m.pantryItems {
		if item.Weight > 0 {
			b.WriteString(fmt.Sprintf("%-30s %6dg\n", item.Item, item.Weight))
		} else {
			b.WriteString(item.Item + "\n")
		}
	}

	b.WriteString("\n" + titleStyle.Render("Shopping list") + "\n\n")
	if len(m.shoppingItems) == 0 {
		b.WriteString(dimStyle.Render("Shopping list is empty. Press 's' to generate one.\n"))
	}
	for _, item := range m.shoppingItems {
		b.WriteString(item.Item + "\n")
	}

	if m.waiting && m.pendingKind == "shopping" {
		b.WriteString(dimStyle.Render("\nAsking the assistant..."))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewSleep() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sleep diary"))
	b.WriteString("\n\n")

	if len(m.sleepEntries) == 0 {
		b.WriteString(dimStyle.Render("No entries. Press 'a' to add one."))
	}

	for i, e := range m.sleepEntries {
		hours := ""
		if d, err := e.Duration(); err == nil {
			hours = fmt.Sprintf("%4.1f h", d.Hours())
		}
		row := fmt.Sprintf("%-10s %s - %s  %s", e.Night, e.Bedtime, e.Wakeup, hours)
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Health assistant"))
	b.WriteString("\n\n")

	for _, line := range m.chatHistory {
		if line.fromUser {
			b.WriteString(selectedRowStyle.Render("you") + " " + line.text + "\n")
		} else {
			b.WriteString(line.text + "\n")
		}
		b.WriteString("\n")
	}

	if m.waiting && m.pendingKind == "chat" {
		b.WriteString(dimStyle.Render("Thinking...\n\n"))
	}

	b.WriteString(m.chatInput.View())
	return docStyle.Render(b.String())
}

func (m Model) viewSettings() string {
	rows := []struct {
		name  string
		value bool
	}{
		{"Food AI suggestions", m.settings.FoodAIEnabled},
		{"Exercise AI suggestions", m.settings.ExerciseAIEnabled},
		{"Meal plan AI suggestions", m.settings.MealPlanAIEnabled},
		{"Notifications", m.settings.NotificationsEnabled},
		{"Silent notifications", m.settings.SilentNotifications},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")
	for i, row := range rows {
		mark := "off"
		if row.value {
			mark = "on"
		}
		line := fmt.Sprintf("%-28s [%s]", row.name, mark)
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(dimStyle.Render("\nenter toggles the selected setting"))

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
