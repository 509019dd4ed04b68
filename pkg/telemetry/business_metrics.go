package telemetry

import (
	"log/slog"

	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Business metrics for application-level monitoring
var (
	// Categorization pipeline metrics
	CategorizationsTotal   api.Int64Counter
	OracleCallsTotal       api.Int64Counter
	OracleFallbacksTotal   api.Int64Counter
	BatchItemsTotal        api.Int64Counter
	ItemsParsedTotal       api.Int64Counter
	SuggestionQueriesTotal api.Int64Counter

	// Catalog metrics
	CustomCategoryOperations api.Int64Counter

	// Error tracking
	ApplicationErrorsTotal api.Int64Counter
	DatabaseErrorsTotal    api.Int64Counter
)

// InitBusinessMetrics initializes all business-level metrics
func InitBusinessMetrics(provider *metric.MeterProvider) error {
	meter := provider.Meter("business")

	var err error

	CategorizationsTotal, err = meter.Int64Counter("categorization.items.total",
		api.WithDescription("Total items categorized by source (ai, keyword)"))
	if err != nil {
		return err
	}

	OracleCallsTotal, err = meter.Int64Counter("categorization.oracle.calls.total",
		api.WithDescription("Total external oracle calls by type (single, batch)"))
	if err != nil {
		return err
	}

	OracleFallbacksTotal, err = meter.Int64Counter("categorization.oracle.fallbacks.total",
		api.WithDescription("Total oracle failures downgraded to the keyword path"))
	if err != nil {
		return err
	}

	BatchItemsTotal, err = meter.Int64Counter("categorization.batch.items.total",
		api.WithDescription("Total items processed through the batch path"))
	if err != nil {
		return err
	}

	ItemsParsedTotal, err = meter.Int64Counter("parser.items.total",
		api.WithDescription("Total item strings produced by the splitter"))
	if err != nil {
		return err
	}

	SuggestionQueriesTotal, err = meter.Int64Counter("categorization.suggestions.total",
		api.WithDescription("Total category suggestion queries"))
	if err != nil {
		return err
	}

	CustomCategoryOperations, err = meter.Int64Counter("catalog.category.operations.total",
		api.WithDescription("Total custom category operations by type (create, update, delete)"))
	if err != nil {
		return err
	}

	ApplicationErrorsTotal, err = meter.Int64Counter("application.errors.total",
		api.WithDescription("Total application errors by component and type"))
	if err != nil {
		return err
	}

	DatabaseErrorsTotal, err = meter.Int64Counter("database.errors.total",
		api.WithDescription("Total database errors by operation and type"))
	if err != nil {
		return err
	}

	slog.Info("Business metrics initialized successfully")
	return nil
}
