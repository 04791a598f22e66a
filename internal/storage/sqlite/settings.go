package sqlite

import (
	"fmt"

	"github.com/mindfulmauschen/healthtrack/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "food_ai_enabled":
			settings.FoodAIEnabled = value == "true"
		case "exercise_ai_enabled":
			settings.ExerciseAIEnabled = value == "true"
		case "meal_plan_ai_enabled":
			settings.MealPlanAIEnabled = value == "true"
		case "notifications_enabled":
			settings.NotificationsEnabled = value == "true"
		case "silent_notifications":
			settings.SilentNotifications = value == "true"
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, rows.Err()
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := []struct {
		key   string
		value bool
	}{
		{"food_ai_enabled", settings.FoodAIEnabled},
		{"exercise_ai_enabled", settings.ExerciseAIEnabled},
		{"meal_plan_ai_enabled", settings.MealPlanAIEnabled},
		{"notifications_enabled", settings.NotificationsEnabled},
		{"silent_notifications", settings.SilentNotifications},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p.key, fmt.Sprintf("%v", p.value)); err != nil {
			return err
		}
	}

	return tx.Commit()
}
