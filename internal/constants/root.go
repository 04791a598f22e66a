package constants

import "time"

const (
	AppName            = "healthtrack"
	DefaultKeyringUser = "openai-api-key"
	DefaultConfigPath  = "~/.config/healthtrack/healthtrack.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock format used by the sleep diary (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "healthtrack-"
	BackupFileSuffix = ".db"

	// AssistantTimeout bounds a single AI request; the worker reports
	// failure to the caller once it elapses.
	AssistantTimeout = 30 * time.Second

	// NutritionTimeout bounds a USDA FoodData Central round trip.
	NutritionTimeout = 10 * time.Second

	// DefaultChatModel is the chat completion model used by the assistant.
	DefaultChatModel = "gpt-4o-mini"
)

// Weekdays lists the meal-plan columns in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MealSlots lists the meal-plan rows in display order.
var MealSlots = []string{"breakfast", "lunch", "dinner", "snacks"}
