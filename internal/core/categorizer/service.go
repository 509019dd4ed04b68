package categorizer

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"

	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/parser"
	"github.com/CartwiseCo/grocery-service/internal/core/settings"
	"github.com/CartwiseCo/grocery-service/pkg/telemetry"
)

var tracer = otel.Tracer("categorizer-service")

// Oracle result confidence is fixed. The oracle does not report calibrated
// scores, so a single value above the substring-match tier is used.
const oracleConfidence = 0.9

// ItemResult is the full categorization outcome handed to callers.
// ParsedName is the item name after quantity and unit text is stripped.
type ItemResult struct {
	CategoryID string  `json:"categoryId"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"` // "ai" or "keyword"
	ParsedName string  `json:"parsedName"`
}

// OracleItem is one categorization produced by the external oracle, already
// parsed from its raw response but not yet validated against the registry.
type OracleItem struct {
	Name       string
	CategoryID string
	Unit       string
	Quantity   float64
}

// Oracle is the external AI categorization backend. Batch results are keyed
// by the lowercased original item name.
type Oracle interface {
	CategorizeItem(ctx context.Context, itemName string) (OracleItem, error)
	CategorizeItems(ctx context.Context, itemNames []string) (map[string]OracleItem, error)
}

// Status reports whether categorization currently runs through the oracle.
type Status struct {
	AIAvailable bool   `json:"aiAvailable"`
	AIEnabled   bool   `json:"aiEnabled"`
	Method      string `json:"method"` // "ai" or "keyword"
}

// Service orchestrates the categorization paths. The keyword path always
// succeeds; the oracle is strictly optional and every oracle failure is
// logged and downgraded to the keyword result, never surfaced to callers.
type Service struct {
	registry *catalog.Registry
	settings settings.Provider
	oracle   Oracle
	logger   *slog.Logger
}

func NewService(registry *catalog.Registry, provider settings.Provider, oracle Oracle, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		settings: provider,
		oracle:   oracle,
		logger:   logger,
	}
}

// CategorizeSync runs the keyword-only path: extract quantity and unit, then
// match the cleaned name. Explicit quantity and unit from the text override
// whatever the matcher resolves. Never fails.
func (s *Service) CategorizeSync(ctx context.Context, itemName string) ItemResult {
	ctx, span := tracer.Start(ctx, "categorizer.CategorizeSync")
	defer span.End()

	parsed := parser.ExtractQuantity(itemName)
	keyword := ByKeyword(parsed.Name, s.registry.Categories(ctx))

	result := ItemResult{
		CategoryID: keyword.CategoryID,
		Unit:       keyword.Unit,
		Quantity:   keyword.Quantity,
		Confidence: keyword.Confidence,
		Source:     "keyword",
		ParsedName: parsed.Name,
	}
	if parsed.Unit != "" {
		result.Unit = parsed.Unit
	}
	if parsed.Quantity != nil {
		result.Quantity = *parsed.Quantity
	}
	return result
}

// Categorize prefers the oracle when it is enabled and a key is configured,
// passing the raw item name so the oracle performs its own extraction. Any
// oracle failure or invalid response falls back to the sync path.
func (s *Service) Categorize(ctx context.Context, itemName string) ItemResult {
	ctx, span := tracer.Start(ctx, "categorizer.Categorize")
	defer span.End()

	if s.oracleReady(ctx) {
		recordOracleCall(ctx, "single")
		oracleResult, err := s.oracle.CategorizeItem(ctx, itemName)
		if err != nil {
			s.logger.Warn("Oracle categorization failed, falling back to keyword", "error", err)
		} else if result, ok := s.acceptOracleItem(ctx, oracleResult); ok {
			return result
		}
		recordOracleFallback(ctx)
	}

	return s.CategorizeSync(ctx, itemName)
}

// CategorizeBatch categorizes every item with the keyword path first, then
// issues at most one oracle call covering the items whose keyword confidence
// is below 0.8. Valid oracle entries overwrite the keyword results; oracle
// failure leaves them untouched. The result map is keyed by the lowercased
// raw input string.
func (s *Service) CategorizeBatch(ctx context.Context, itemNames []string) map[string]ItemResult {
	ctx, span := tracer.Start(ctx, "categorizer.CategorizeBatch")
	defer span.End()

	results := make(map[string]ItemResult, len(itemNames))
	for _, name := range itemNames {
		results[strings.ToLower(name)] = s.CategorizeSync(ctx, name)
	}

	if !s.oracleReady(ctx) {
		return results
	}

	var lowConfidence []string
	for _, name := range itemNames {
		if r, ok := results[strings.ToLower(name)]; ok && r.Confidence < 0.8 {
			lowConfidence = append(lowConfidence, name)
		}
	}
	if len(lowConfidence) == 0 {
		return results
	}

	recordOracleCall(ctx, "batch")
	oracleResults, err := s.oracle.CategorizeItems(ctx, lowConfidence)
	if err != nil {
		s.logger.Warn("Oracle batch categorization failed, keeping keyword results",
			"error", err, "items", len(lowConfidence))
		recordOracleFallback(ctx)
		return results
	}

	for key, item := range oracleResults {
		if result, ok := s.acceptOracleItem(ctx, item); ok {
			results[strings.ToLower(key)] = result
		}
	}
	return results
}

// Recategorize forces a fresh categorization, via the oracle when preferred.
func (s *Service) Recategorize(ctx context.Context, itemName string, preferAI bool) ItemResult {
	if preferAI {
		return s.Categorize(ctx, itemName)
	}
	return s.CategorizeSync(ctx, itemName)
}

// Status reports the currently active categorization method.
func (s *Service) Status(ctx context.Context) Status {
	ctx, span := tracer.Start(ctx, "categorizer.Status")
	defer span.End()

	enabled := s.settings.AIEnabled(ctx)
	available := s.oracle != nil && s.settings.HasAPIKey(ctx)

	method := "keyword"
	if enabled && available {
		method = "ai"
	}
	return Status{
		AIAvailable: available,
		AIEnabled:   enabled,
		Method:      method,
	}
}

func recordOracleCall(ctx context.Context, callType string) {
	if telemetry.OracleCallsTotal != nil {
		telemetry.OracleCallsTotal.Add(ctx, 1,
			api.WithAttributes(attribute.String("type", callType)))
	}
}

func recordOracleFallback(ctx context.Context) {
	if telemetry.OracleFallbacksTotal != nil {
		telemetry.OracleFallbacksTotal.Add(ctx, 1)
	}
}

func (s *Service) oracleReady(ctx context.Context) bool {
	return s.oracle != nil && s.settings.AIEnabled(ctx) && s.settings.HasAPIKey(ctx)
}

// acceptOracleItem validates an oracle result against the current registry
// and the fixed unit set. Invalid results are discarded like any other
// oracle failure.
func (s *Service) acceptOracleItem(ctx context.Context, item OracleItem) (ItemResult, bool) {
	if item.Name == "" {
		s.logger.Warn("Oracle result missing parsed name, discarding")
		return ItemResult{}, false
	}
	if _, ok := s.registry.ByID(ctx, item.CategoryID); !ok {
		s.logger.Warn("Oracle returned unknown category, discarding", "category_id", item.CategoryID)
		return ItemResult{}, false
	}
	if !catalog.ValidUnit(item.Unit) {
		s.logger.Warn("Oracle returned unknown unit, discarding", "unit", item.Unit)
		return ItemResult{}, false
	}

	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return ItemResult{
		CategoryID: item.CategoryID,
		Unit:       item.Unit,
		Quantity:   quantity,
		Confidence: oracleConfidence,
		Source:     "ai",
		ParsedName: item.Name,
	}, true
}
