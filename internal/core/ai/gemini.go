// Package ai implements the external categorization oracle as a Gemini REST
// client. Responses are untrusted text: the JSON payload is cut out of the
// raw model output and validated field by field before anything is returned.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/CartwiseCo/grocery-service/config"
	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/categorizer"
)

var tracer = otel.Tracer("ai-service")

// CategoryProvider yields the current merged category list for prompt
// building. Satisfied by catalog.Registry.
type CategoryProvider interface {
	Categories(ctx context.Context) []catalog.Category
}

// KeySource resolves the API key at call time so key rotation takes effect
// without a restart. Satisfied by settings.Provider.
type KeySource interface {
	APIKey(ctx context.Context) string
}

// GeminiClient calls the Gemini generateContent endpoint. It implements
// categorizer.Oracle.
type GeminiClient struct {
	config     config.AIConfig
	httpClient *http.Client
	logger     *slog.Logger
	categories CategoryProvider
	keys       KeySource
}

func NewGeminiClient(cfg config.AIConfig, logger *slog.Logger, categories CategoryProvider, keys KeySource) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-3-flash-preview"
	}

	return &GeminiClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger:     logger,
		categories: categories,
		keys:       keys,
	}
}

// generateContent request/response structures.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

// Wire shapes of the categorization payloads the model is asked to emit.
type singleResult struct {
	Name       string   `json:"name"`
	CategoryID string   `json:"categoryId"`
	Unit       string   `json:"unit"`
	Quantity   *float64 `json:"quantity"`
}

type batchResult struct {
	Original string `json:"original"`
	singleResult
}

// CategorizeItem asks the oracle to parse and categorize one raw item name.
func (c *GeminiClient) CategorizeItem(ctx context.Context, itemName string) (categorizer.OracleItem, error) {
	ctx, span := tracer.Start(ctx, "ai.CategorizeItem")
	defer span.End()

	systemPrompt := buildCategorizationPrompt(c.categories.Categories(ctx))
	userPrompt := fmt.Sprintf("Parse and categorize this grocery item: %q", itemName)

	text, err := c.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return categorizer.OracleItem{}, err
	}

	payload, err := extractJSONSpan(text, '{', '}')
	if err != nil {
		return categorizer.OracleItem{}, fmt.Errorf("no JSON object in oracle response: %w", err)
	}

	var parsed singleResult
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return categorizer.OracleItem{}, fmt.Errorf("failed to parse oracle response: %w", err)
	}

	return toOracleItem(parsed, itemName)
}

// CategorizeItems coalesces a batch into one oracle call. The result map is
// keyed by the lowercased original input. Entries the oracle omitted or
// returned malformed are simply absent.
func (c *GeminiClient) CategorizeItems(ctx context.Context, itemNames []string) (map[string]categorizer.OracleItem, error) {
	ctx, span := tracer.Start(ctx, "ai.CategorizeItems")
	defer span.End()

	systemPrompt := buildCategorizationPrompt(c.categories.Categories(ctx))

	text, err := c.generate(ctx, systemPrompt, buildBatchPrompt(itemNames))
	if err != nil {
		return nil, err
	}

	payload, err := extractJSONSpan(text, '[', ']')
	if err != nil {
		return nil, fmt.Errorf("no JSON array in oracle response: %w", err)
	}

	var parsed []batchResult
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse oracle batch response: %w", err)
	}

	results := make(map[string]categorizer.OracleItem, len(parsed))
	for _, entry := range parsed {
		original := entry.Original
		if original == "" {
			original = entry.Name
		}
		item, err := toOracleItem(entry.singleResult, original)
		if err != nil {
			c.logger.Warn("Skipping malformed oracle batch entry", "error", err)
			continue
		}
		results[strings.ToLower(original)] = item
	}

	c.logger.Debug("Oracle batch categorization completed",
		"requested", len(itemNames), "returned", len(results))
	return results, nil
}

// generate performs one generateContent call and returns the concatenated
// text parts of the first candidate.
func (c *GeminiClient) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	apiKey := c.keys.APIKey(ctx)
	if apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: systemPrompt}, {Text: userPrompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.config.BaseURL, c.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("oracle request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read oracle response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("oracle returned status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode oracle response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("oracle returned no candidates")
	}

	var text strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}
	return text.String(), nil
}

// toOracleItem checks field presence and fills defaults. Registry and unit
// validation happen in the orchestrator against the registry current at
// acceptance time.
func toOracleItem(r singleResult, fallbackName string) (categorizer.OracleItem, error) {
	if r.CategoryID == "" {
		return categorizer.OracleItem{}, fmt.Errorf("missing categoryId")
	}
	if r.Unit == "" {
		return categorizer.OracleItem{}, fmt.Errorf("missing unit")
	}

	name := r.Name
	if name == "" {
		name = fallbackName
	}
	quantity := 1.0
	if r.Quantity != nil && *r.Quantity > 0 {
		quantity = *r.Quantity
	}

	return categorizer.OracleItem{
		Name:       name,
		CategoryID: r.CategoryID,
		Unit:       r.Unit,
		Quantity:   quantity,
	}, nil
}

// extractJSONSpan cuts the substring from the first open delimiter to the
// last close delimiter. Models wrap JSON in prose and code fences; this
// recovers the payload without trusting the surrounding text.
func extractJSONSpan(text string, openDelim, closeDelim byte) (string, error) {
	start := strings.IndexByte(text, openDelim)
	end := strings.LastIndexByte(text, closeDelim)
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("delimiters %q %q not found", openDelim, closeDelim)
	}
	return text[start : end+1], nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
