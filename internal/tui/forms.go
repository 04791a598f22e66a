package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
	"github.com/mindfulmauschen/healthtrack/internal/models"
)

func validateCalories(s string) error {
	_, err := parseCalories(s)
	return err
}

func validateWeightInput(s string) error {
	_, err := parseWeight(s)
	return err
}

func validateDateInput(s string) error {
	if s == "" {
		return nil // blank means today
	}
	return models.ValidateDate(s)
}

func validateClock(s string) error {
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("must be HH:MM")
	}
	return nil
}

func newEntryForm(nameTitle string, data *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(nameTitle).
				Value(&data.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("must not be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Calories").
				Value(&data.Calories).
				Validate(validateCalories),
			huh.NewInput().
				Title("Date (blank for today)").
				Value(&data.Date).
				Validate(validateDateInput),
		),
	)
}

func newWeightForm(data *WeightFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Value(&data.Weight).
				Validate(validateWeightInput),
			huh.NewConfirm().
				Title("Target weight?").
				Value(&data.Target),
			huh.NewInput().
				Title("Date (blank for today)").
				Value(&data.Date).
				Validate(validateDateInput),
		),
	)
}

func newSleepForm(data *SleepFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Night (blank for today)").
				Value(&data.Night).
				Validate(validateDateInput),
			huh.NewInput().
				Title("Bedtime (HH:MM)").
				Value(&data.Bedtime).
				Validate(validateClock),
			huh.NewInput().
				Title("Wakeup (HH:MM)").
				Value(&data.Wakeup).
				Validate(validateClock),
		),
	)
}

// commitForm writes the completed form's entry to the store. The previous
// state decides which entity the form belonged to.
func (m *Model) commitForm() {
	switch m.previousState {
	case StateFood:
		calories, _ := parseCalories(m.entryForm.Calories)
		date := m.entryForm.Date
		if date == "" {
			date = m.today
		}
		if _, err := m.store.AddFood(m.entryForm.Name, calories, date); err != nil {
			m.statusMsg = fmt.Sprintf("failed to add food: %v", err)
			return
		}
		m.refreshFoods()
		m.refreshProgress()

	case StateExercise:
		calories, _ := parseCalories(m.entryForm.Calories)
		date := m.entryForm.Date
		if date == "" {
			date = m.today
		}
		if _, err := m.store.AddExercise(m.entryForm.Name, calories, date); err != nil {
			m.statusMsg = fmt.Sprintf("failed to add exercise: %v", err)
			return
		}
		m.refreshExercises()
		m.refreshProgress()

	case StateGoals:
		weight, _ := strconv.ParseFloat(m.weightForm.Weight, 64)
		kind := models.WeightCurrent
		if m.weightForm.Target {
			kind = models.WeightTarget
		}
		date := m.weightForm.Date
		if date == "" {
			date = m.today
		}
		if _, err := m.store.AddWeight(kind, weight, date); err != nil {
			m.statusMsg = fmt.Sprintf("failed to add weight: %v", err)
			return
		}
		m.refreshWeights()

	case StateSleep:
		night := m.sleepForm.Night
		if night == "" {
			night = m.today
		}
		if _, err := m.store.AddSleepEntry(night, m.sleepForm.Bedtime, m.sleepForm.Wakeup); err != nil {
			m.statusMsg = fmt.Sprintf("failed to add sleep entry: %v", err)
			return
		}
		m.refreshSleep()
	}
}
