package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// fakeOpenAI serves chat completions that always reply with the given
// content, recording the last user prompt it received.
func fakeOpenAI(t *testing.T, reply string) (*httptest.Server, *string) {
	t.Helper()
	var lastPrompt string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, m := range req.Messages {
			if m.Role == "user" {
				lastPrompt = m.Content
			}
		}

		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": time.Now().Unix(),
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": reply,
					},
					"finish_reason": "stop",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, &lastPrompt
}

func testClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewClient() returned unexpected error: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		if _, err := NewClient(Config{}); err == nil {
			t.Error("NewClient(no key) = nil, want error")
		}
	})
}

func TestChat(t *testing.T) {
	t.Run("returns the assistant reply", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "Eat more vegetables.")
		client := testClient(t, server)

		reply, err := client.Chat(context.Background(), "What should I eat?")
		if err != nil {
			t.Fatalf("Chat() returned unexpected error: %v", err)
		}
		if reply != "Eat more vegetables." {
			t.Errorf("Chat() = %q, want the fake reply", reply)
		}
	})

	t.Run("rejects an empty prompt", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "unused")
		client := testClient(t, server)

		if _, err := client.Chat(context.Background(), "  "); err == nil {
			t.Error("Chat(blank) = nil, want error")
		}
	})

	t.Run("surfaces server errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
		}))
		defer server.Close()
		client := testClient(t, server)

		if _, err := client.Chat(context.Background(), "hello"); err == nil {
			t.Error("Chat() = nil, want error from failing server")
		}
	})
}

func TestCalculateCalorieGoal(t *testing.T) {
	profile := Profile{
		Age: 30, Gender: "male", HeightCM: 180, ActivityLevel: "moderate",
		CurrentWeightKG: 85, TargetWeightKG: 78, TimeframeMonths: 6,
	}

	t.Run("parses a numeric reply", func(t *testing.T) {
		server, lastPrompt := fakeOpenAI(t, "1850")
		client := testClient(t, server)

		goal, err := client.CalculateCalorieGoal(context.Background(), profile)
		if err != nil {
			t.Fatalf("CalculateCalorieGoal() returned unexpected error: %v", err)
		}
		if goal != 1850 {
			t.Errorf("goal = %g, want 1850", goal)
		}
		if !strings.Contains(*lastPrompt, "30 year old male") {
			t.Errorf("prompt %q missing profile data", *lastPrompt)
		}
	})

	t.Run("rejects a non-numeric reply", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "around 1850 kcal should do")
		client := testClient(t, server)

		if _, err := client.CalculateCalorieGoal(context.Background(), profile); err == nil {
			t.Error("CalculateCalorieGoal(prose reply) = nil, want error")
		}
	})
}

func TestGenerateShoppingList(t *testing.T) {
	t.Run("splits the reply into items", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "- Rice\n- Lentils\n\n- Olive oil")
		client := testClient(t, server)

		items, err := client.GenerateShoppingList(context.Background(), "Monday: dal with rice")
		if err != nil {
			t.Fatalf("GenerateShoppingList() returned unexpected error: %v", err)
		}
		want := []string{"Rice", "Lentils", "Olive oil"}
		if len(items) != len(want) {
			t.Fatalf("got %d items %v, want %d", len(items), items, len(want))
		}
		for i := range want {
			if items[i] != want[i] {
				t.Errorf("item %d = %q, want %q", i, items[i], want[i])
			}
		}
	})

	t.Run("rejects empty meal plans", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "unused")
		client := testClient(t, server)

		if _, err := client.GenerateShoppingList(context.Background(), " "); err == nil {
			t.Error("GenerateShoppingList(blank) = nil, want error")
		}
	})
}

func TestBuildMealPlanPrompt(t *testing.T) {
	t.Run("includes selected criteria", func(t *testing.T) {
		prompt := BuildMealPlanPrompt(MealPlanOptions{Healthy: true, Cheap: true})
		if !strings.Contains(prompt, "healthy, cheap") {
			t.Errorf("prompt %q missing criteria phrase", prompt)
		}
	})

	t.Run("includes pantry items", func(t *testing.T) {
		prompt := BuildMealPlanPrompt(MealPlanOptions{PantryItems: []string{"Rice", "Lentils"}})
		if !strings.Contains(prompt, "Rice, Lentils") {
			t.Errorf("prompt %q missing pantry items", prompt)
		}
	})

	t.Run("includes the current plan when present", func(t *testing.T) {
		prompt := BuildMealPlanPrompt(MealPlanOptions{CurrentPlan: "Oats for breakfast"})
		if !strings.Contains(prompt, "Oats for breakfast") {
			t.Errorf("prompt %q missing current plan", prompt)
		}
		bare := BuildMealPlanPrompt(MealPlanOptions{})
		if strings.Contains(bare, "current meal plan") {
			t.Errorf("bare prompt %q mentions a current plan", bare)
		}
	})
}

func TestWorker(t *testing.T) {
	t.Run("delivers results tagged with the request id", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "hello back")
		client := testClient(t, server)

		worker := NewWorker(client)
		defer worker.Stop()

		id := worker.Submit("hello")

		select {
		case result := <-worker.Results():
			if result.ID != id {
				t.Errorf("result id = %v, want %v", result.ID, id)
			}
			if result.Err != nil {
				t.Errorf("result error = %v, want nil", result.Err)
			}
			if result.Response != "hello back" {
				t.Errorf("result response = %q, want %q", result.Response, "hello back")
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for worker result")
		}
	})

	t.Run("processes queued requests in order", func(t *testing.T) {
		server, _ := fakeOpenAI(t, "ok")
		client := testClient(t, server)

		worker := NewWorker(client)
		defer worker.Stop()

		first := worker.Submit("one")
		second := worker.Submit("two")

		for _, want := range []struct {
			id interface{ String() string }
		}{{first}, {second}} {
			select {
			case result := <-worker.Results():
				if result.ID.String() != want.id.String() {
					t.Errorf("result id = %v, want %v", result.ID, want.id)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("timed out waiting for worker result")
			}
		}
	})
}
