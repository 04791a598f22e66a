package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mindfulmauschen/healthtrack/internal/assistant"
	"github.com/mindfulmauschen/healthtrack/internal/backup"
	"github.com/mindfulmauschen/healthtrack/internal/constants"
	"github.com/mindfulmauschen/healthtrack/internal/keyring"
	"github.com/mindfulmauschen/healthtrack/internal/logger"
	"github.com/mindfulmauschen/healthtrack/internal/models"
	"github.com/mindfulmauschen/healthtrack/internal/nutrition"
	"github.com/mindfulmauschen/healthtrack/internal/storage"
)

// Context carries the shared dependencies into every command's Run.
type Context struct {
	Store storage.Store
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// AssistantClient builds an OpenAI client from the stored API key, falling
// back to the OPENAI_API_KEY environment variable.
func (c *Context) AssistantClient() (*assistant.Client, error) {
	key, err := keyring.GetAPIKey()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Keyring lookup failed", "error", err)
		}
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return nil, errors.New("no OpenAI API key configured. Use 'healthtrack key set' or set OPENAI_API_KEY")
	}
	return assistant.NewClient(assistant.DefaultConfig(key))
}

// NutritionClient builds a USDA food-database client when an API key is
// configured, or nil when the feature is unavailable.
func (c *Context) NutritionClient() *nutrition.Client {
	key := os.Getenv("USDA_API_KEY")
	if key == "" {
		return nil
	}
	return nutrition.NewClient(key)
}

// Today returns the current date in storage format.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ResolveDate defaults a blank date flag to today and validates the rest.
func ResolveDate(s string) (string, error) {
	if s == "" {
		return Today(), nil
	}
	if err := models.ValidateDate(s); err != nil {
		return "", err
	}
	return s, nil
}

// ConfirmOrAbort asks for a y/N confirmation on stdin.
func ConfirmOrAbort(prompt string) error {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	fmt.Scanln(&answer)
	if answer != "y" && answer != "Y" {
		return errors.New("aborted")
	}
	return nil
}
