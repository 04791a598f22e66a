package assistant

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// systemPrompt frames every completion request.
const systemPrompt = "You are a health assistant. Provide practical advice and meal suggestions. Be friendly and informative."

// Config holds configuration for the assistant client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overridable for tests
	Timeout time.Duration
}

// DefaultConfig returns the standard client configuration for an API key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		Model:   constants.DefaultChatModel,
		Timeout: constants.AssistantTimeout,
	}
}

// Client wraps the OpenAI API for the app's advice features. Requests are
// single attempts bounded by a timeout; a failed call surfaces to the user
// rather than being retried, since every request is user-triggered.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = constants.DefaultChatModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = constants.AssistantTimeout
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Chat sends a single user prompt and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt must not be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("assistant returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// SuggestMealPlan asks for a day's meal plan honoring the selected options.
func (c *Client) SuggestMealPlan(ctx context.Context, opts MealPlanOptions) (string, error) {
	return c.Chat(ctx, BuildMealPlanPrompt(opts))
}

// GenerateShoppingList asks for an itemized ingredient list covering the
// given meal plans and returns it split into one item per line.
func (c *Client) GenerateShoppingList(ctx context.Context, mealPlans string) ([]string, error) {
	if strings.TrimSpace(mealPlans) == "" {
		return nil, fmt.Errorf("no meal plans to generate a shopping list from")
	}

	reply, err := c.Chat(ctx, BuildShoppingListPrompt(mealPlans))
	if err != nil {
		return nil, err
	}
	return SplitList(reply), nil
}

// SplitList turns a bulleted or line-separated reply into individual items.
func SplitList(reply string) []string {
	var items []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}

// CalculateCalorieGoal asks for a daily calorie goal for the given profile.
// The reply must be a bare number; anything else is an error.
func (c *Client) CalculateCalorieGoal(ctx context.Context, p Profile) (float64, error) {
	reply, err := c.Chat(ctx, BuildCalorieGoalPrompt(p))
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
	if err != nil {
		return 0, fmt.Errorf("assistant reply %q is not a calorie value", reply)
	}
	if value <= 0 {
		return 0, fmt.Errorf("assistant returned a non-positive calorie goal: %g", value)
	}
	return value, nil
}
