package ai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CartwiseCo/grocery-service/config"
	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/settings"
)

type staticCategories struct{}

func (staticCategories) Categories(ctx context.Context) []catalog.Category {
	return catalog.DefaultCategories
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.AIConfig{
		APIKey:  "test-key",
		Model:   "gemini-test",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}
	return NewGeminiClient(cfg, slog.Default(), staticCategories{}, settings.StaticProvider{Enabled: true, Key: "test-key"})
}

func geminiTextResponse(text string) string {
	resp := `{"candidates":[{"content":{"parts":[{"text":` + jsonString(text) + `}]}}]}`
	return resp
}

func jsonString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func TestCategorizeItem(t *testing.T) {
	t.Run("parses JSON wrapped in prose", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			w.Write([]byte(geminiTextResponse("Here you go:\n```json\n{\"name\": \"milk\", \"categoryId\": \"dairy\", \"unit\": \"l\", \"quantity\": 3}\n```")))
		})

		item, err := client.CategorizeItem(context.Background(), "milk x3")
		require.NoError(t, err)
		assert.Equal(t, "milk", item.Name)
		assert.Equal(t, "dairy", item.CategoryID)
		assert.Equal(t, "l", item.Unit)
		assert.InDelta(t, 3.0, item.Quantity, 1e-9)
	})

	t.Run("tab indented payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiTextResponse("{\n\t\"name\": \"milk\",\n\t\"categoryId\": \"dairy\",\n\t\"unit\": \"l\",\n\t\"quantity\": 2\n}")))
		})

		item, err := client.CategorizeItem(context.Background(), "milk x2")
		require.NoError(t, err)
		assert.Equal(t, "dairy", item.CategoryID)
		assert.InDelta(t, 2.0, item.Quantity, 1e-9)
	})

	t.Run("missing fields are an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiTextResponse(`{"name": "milk"}`)))
		})

		_, err := client.CategorizeItem(context.Background(), "milk")
		assert.Error(t, err)
	})

	t.Run("no JSON in response is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiTextResponse("I cannot categorize that item.")))
		})

		_, err := client.CategorizeItem(context.Background(), "milk")
		assert.Error(t, err)
	})

	t.Run("http error is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})

		_, err := client.CategorizeItem(context.Background(), "milk")
		assert.Error(t, err)
	})

	t.Run("missing quantity defaults to one", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiTextResponse(`{"name": "milk", "categoryId": "dairy", "unit": "l"}`)))
		})

		item, err := client.CategorizeItem(context.Background(), "milk")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, item.Quantity, 1e-9)
	})
}

func TestCategorizeItems(t *testing.T) {
	t.Run("batch keyed by lowercased original", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiTextResponse(`[
				{"original": "Tuna x2", "name": "tuna", "categoryId": "canned", "unit": "unit", "quantity": 2},
				{"original": "bananas", "name": "bananas", "categoryId": "fruits", "unit": "kg", "quantity": 1}
			]`)))
		})

		results, err := client.CategorizeItems(context.Background(), []string{"Tuna x2", "bananas"})
		require.NoError(t, err)
		require.Len(t, results, 2)

		tuna, ok := results["tuna x2"]
		require.True(t, ok)
		assert.Equal(t, "canned", tuna.CategoryID)
		assert.InDelta(t, 2.0, tuna.Quantity, 1e-9)
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(geminiTextResponse(`[
				{"original": "milk", "name": "milk", "categoryId": "dairy", "unit": "l", "quantity": 1},
				{"original": "mystery", "name": "mystery"}
			]`)))
		})

		results, err := client.CategorizeItems(context.Background(), []string{"milk", "mystery"})
		require.NoError(t, err)
		assert.Len(t, results, 1)
		_, ok := results["milk"]
		assert.True(t, ok)
	})
}

func TestExtractJSONSpan(t *testing.T) {
	payload, err := extractJSONSpan("prefix {\"a\": 1} suffix", '{', '}')
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, payload)

	payload, err = extractJSONSpan("```json\n[1, 2]\n```", '[', ']')
	require.NoError(t, err)
	assert.Equal(t, `[1, 2]`, payload)

	_, err = extractJSONSpan("no json here", '{', '}')
	assert.Error(t, err)
}

func TestBuildCategorizationPrompt(t *testing.T) {
	prompt := buildCategorizationPrompt(catalog.DefaultCategories)

	for _, c := range catalog.DefaultCategories {
		assert.Contains(t, prompt, "- "+c.ID+":")
	}
	for _, id := range catalog.AllUnitIDs() {
		assert.Contains(t, prompt, "- "+id+":")
	}
}
