package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/mindfulmauschen/healthtrack/internal/constants"
)

// DefaultBaseURL is the USDA FoodData Central API root.
const DefaultBaseURL = "https://api.nal.usda.gov/fdc/v1"

// ErrNoMatch is returned when the food database has no result for a query.
var ErrNoMatch = errors.New("no matching food found")

// Client looks up calorie estimates from the USDA FoodData Central API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: constants.NutritionTimeout},
	}
}

// NewClientWithBaseURL is used by tests to point at a fake server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

type searchResponse struct {
	Foods []struct {
		FdcID int `json:"fdcId"`
	} `json:"foods"`
}

type foodNutrient struct {
	NutrientName string   `json:"nutrientName"`
	UnitName     string   `json:"unitName"`
	Value        *float64 `json:"value"`
	Amount       *float64 `json:"amount"`
	Nutrient     *struct {
		Name     string `json:"name"`
		UnitName string `json:"unitName"`
	} `json:"nutrient"`
}

type foodResponse struct {
	FoodNutrients []foodNutrient `json:"foodNutrients"`
}

// SuggestCalories searches for a food by name and returns its energy value
// in kcal. The flow is a search for the best match followed by a detail
// lookup for its nutrients.
func (c *Client) SuggestCalories(ctx context.Context, query string) (int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, fmt.Errorf("food query must not be empty")
	}

	fdcID, err := c.search(ctx, query)
	if err != nil {
		return 0, err
	}

	return c.energyKcal(ctx, fdcID)
}

func (c *Client) search(ctx context.Context, query string) (int, error) {
	payload, err := json.Marshal(map[string]any{
		"query":    query,
		"pageSize": 1,
	})
	if err != nil {
		return 0, err
	}

	endpoint := fmt.Sprintf("%s/foods/search?api_key=%s", c.baseURL, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("food search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("food search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode food search response: %w", err)
	}
	if len(result.Foods) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}

	return result.Foods[0].FdcID, nil
}

func (c *Client) energyKcal(ctx context.Context, fdcID int) (int, error) {
	endpoint := fmt.Sprintf("%s/food/%d?api_key=%s", c.baseURL, fdcID, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("food detail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("food detail returned status %d", resp.StatusCode)
	}

	var food foodResponse
	if err := json.NewDecoder(resp.Body).Decode(&food); err != nil {
		return 0, fmt.Errorf("failed to decode food detail response: %w", err)
	}

	for _, n := range food.FoodNutrients {
		name := n.NutrientName
		unit := n.UnitName
		// Detail responses nest the nutrient metadata
		if name == "" && n.Nutrient != nil {
			name = n.Nutrient.Name
		}
		if unit == "" && n.Nutrient != nil {
			unit = n.Nutrient.UnitName
		}

		if !strings.EqualFold(name, "Energy") || !strings.EqualFold(unit, "KCAL") {
			continue
		}

		value := n.Value
		if value == nil {
			value = n.Amount
		}
		if value == nil {
			continue
		}
		return int(math.Round(*value)), nil
	}

	return 0, fmt.Errorf("%w: food %d has no energy value in kcal", ErrNoMatch, fdcID)
}
