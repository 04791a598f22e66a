package models

// Settings are the user-tunable application preferences, persisted in the
// store's key/value settings table.
type Settings struct {
	FoodAIEnabled        bool `json:"food_ai_enabled"`
	ExerciseAIEnabled    bool `json:"exercise_ai_enabled"`
	MealPlanAIEnabled    bool `json:"meal_plan_ai_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled"`
	SilentNotifications  bool `json:"silent_notifications"`
}
