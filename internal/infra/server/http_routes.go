package server

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogfiber "github.com/samber/slog-fiber"
	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"

	"github.com/CartwiseCo/grocery-service/config"
	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/categorizer"
	"github.com/CartwiseCo/grocery-service/internal/core/parser"
	"github.com/CartwiseCo/grocery-service/pkg/telemetry"
)

func initGlobalMiddlewares(app *fiber.App, cfg *config.Config) {
	app.Use(
		compress.New(compress.Config{
			Level: compress.LevelDefault,
		}),

		slogfiber.NewWithFilters(slog.Default(), slogfiber.IgnorePath("/health")),

		cors.New(cors.Config{
			AllowOrigins: "*", // TODO - add allowed origins
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
			AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		}),

		favicon.New(),
		limiter.New(limiter.Config{
			Max:               cfg.RateLimitMax,
			Expiration:        time.Duration(cfg.RateLimitWindow) * time.Second,
			LimiterMiddleware: limiter.SlidingWindow{},
		}),
	)

	app.Use(otelfiber.Middleware())
}

type categorizeRequest struct {
	Text string `json:"text"`
}

type categorizedItem struct {
	Input string `json:"input"`
	categorizer.ItemResult
}

type createCategoryRequest struct {
	ID              string   `json:"id"`
	NameEn          string   `json:"nameEn"`
	NameHe          string   `json:"nameHe"`
	Color           string   `json:"color"`
	Icon            string   `json:"icon"`
	KeywordsEn      []string `json:"keywordsEn"`
	KeywordsHe      []string `json:"keywordsHe"`
	DefaultUnit     string   `json:"defaultUnit"`
	DefaultQuantity float64  `json:"defaultQuantity"`
}

func registerHttpRoutes(app *fiber.App, registry *catalog.Registry, store *catalog.Store, svc *categorizer.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "timestamp": time.Now().Unix()})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	apiRoutes := app.Group("/v1")

	// Full pipeline: split the raw text block, categorize every item through
	// the oracle-preferred batch path, return results in input order.
	apiRoutes.Post("/categorize", withMetrics(func(c *fiber.Ctx) error {
		var req categorizeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		items := parser.SplitItems(req.Text)
		if telemetry.ItemsParsedTotal != nil {
			telemetry.ItemsParsedTotal.Add(c.UserContext(), int64(len(items)))
		}
		if len(items) == 0 {
			return c.JSON(fiber.Map{"items": []categorizedItem{}})
		}

		results := svc.CategorizeBatch(c.UserContext(), items)
		if telemetry.BatchItemsTotal != nil {
			telemetry.BatchItemsTotal.Add(c.UserContext(), int64(len(items)))
		}

		ordered := make([]categorizedItem, 0, len(items))
		for _, item := range items {
			result := results[strings.ToLower(item)]
			recordCategorization(c, result.Source)
			ordered = append(ordered, categorizedItem{Input: item, ItemResult: result})
		}
		return c.JSON(fiber.Map{"items": ordered})
	}))

	// Keyword-only variant for callers that need deterministic results
	// without an oracle round trip.
	apiRoutes.Post("/categorize/sync", withMetrics(func(c *fiber.Ctx) error {
		var req categorizeRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		items := parser.SplitItems(req.Text)
		ordered := make([]categorizedItem, 0, len(items))
		for _, item := range items {
			result := svc.CategorizeSync(c.UserContext(), item)
			recordCategorization(c, result.Source)
			ordered = append(ordered, categorizedItem{Input: item, ItemResult: result})
		}
		return c.JSON(fiber.Map{"items": ordered})
	}))

	apiRoutes.Get("/suggestions", withMetrics(func(c *fiber.Ctx) error {
		query := c.Query("q")
		if strings.TrimSpace(query) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing query parameter q"})
		}
		limit := c.QueryInt("limit", 3)

		if telemetry.SuggestionQueriesTotal != nil {
			telemetry.SuggestionQueriesTotal.Add(c.UserContext(), 1)
		}

		suggestions := categorizer.Suggestions(query, registry.Categories(c.UserContext()), limit)
		if suggestions == nil {
			suggestions = []categorizer.Suggestion{}
		}
		return c.JSON(fiber.Map{"suggestions": suggestions})
	}))

	apiRoutes.Get("/categories", withMetrics(func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"categories": registry.Categories(c.UserContext()),
			"colors":     catalog.AvailableCategoryColors,
		})
	}))

	apiRoutes.Post("/categories", withMetrics(func(c *fiber.Ctx) error {
		var req createCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}
		if req.NameEn == "" && req.NameHe == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "category name is required"})
		}
		if req.ID == "" {
			req.ID = uuid.New().String()
		}

		created, err := store.CreateCategory(c.UserContext(), catalog.CustomCategory{
			ID:              req.ID,
			NameEn:          req.NameEn,
			NameHe:          req.NameHe,
			Color:           req.Color,
			Icon:            req.Icon,
			KeywordsEn:      req.KeywordsEn,
			KeywordsHe:      req.KeywordsHe,
			DefaultUnit:     req.DefaultUnit,
			DefaultQuantity: req.DefaultQuantity,
		})
		if err != nil {
			if telemetry.DatabaseErrorsTotal != nil {
				telemetry.DatabaseErrorsTotal.Add(c.UserContext(), 1,
					api.WithAttributes(attribute.String("operation", "create_category")))
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		if telemetry.CustomCategoryOperations != nil {
			telemetry.CustomCategoryOperations.Add(c.UserContext(), 1,
				api.WithAttributes(attribute.String("operation", "create")))
		}
		return c.Status(fiber.StatusCreated).JSON(created.Category())
	}))

	apiRoutes.Put("/categories/:id", withMetrics(func(c *fiber.Ctx) error {
		var req createCategoryRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		updated, err := store.UpdateCategory(c.UserContext(), catalog.CustomCategory{
			ID:              c.Params("id"),
			NameEn:          req.NameEn,
			NameHe:          req.NameHe,
			Color:           req.Color,
			Icon:            req.Icon,
			KeywordsEn:      req.KeywordsEn,
			KeywordsHe:      req.KeywordsHe,
			DefaultUnit:     req.DefaultUnit,
			DefaultQuantity: req.DefaultQuantity,
		})
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		if telemetry.CustomCategoryOperations != nil {
			telemetry.CustomCategoryOperations.Add(c.UserContext(), 1,
				api.WithAttributes(attribute.String("operation", "update")))
		}
		return c.JSON(updated.Category())
	}))

	apiRoutes.Delete("/categories/:id", withMetrics(func(c *fiber.Ctx) error {
		id := c.Params("id")
		if err := store.DeleteCategory(c.UserContext(), id); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}

		if telemetry.CustomCategoryOperations != nil {
			telemetry.CustomCategoryOperations.Add(c.UserContext(), 1,
				api.WithAttributes(attribute.String("operation", "delete")))
		}
		return c.SendStatus(fiber.StatusNoContent)
	}))

	apiRoutes.Get("/status", withMetrics(func(c *fiber.Ctx) error {
		return c.JSON(svc.Status(c.UserContext()))
	}))
}

func recordCategorization(c *fiber.Ctx, source string) {
	if telemetry.CategorizationsTotal != nil {
		telemetry.CategorizationsTotal.Add(c.UserContext(), 1,
			api.WithAttributes(attribute.String("source", source)))
	}
}

func withMetrics(handler fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := handler(c)

		durationMs := float64(time.Since(start).Milliseconds())

		if err != nil && telemetry.ApplicationErrorsTotal != nil {
			telemetry.ApplicationErrorsTotal.Add(c.UserContext(), 1,
				api.WithAttributes(
					attribute.String("method", c.Method()),
					attribute.String("path", c.Route().Path),
				))
		}

		if httpRequestsCounter != nil {
			httpRequestsCounter.Add(c.UserContext(), 1,
				api.WithAttributes(
					attribute.String("method", c.Method()),
					attribute.String("path", c.Route().Path),
					attribute.Int("status_code", c.Response().StatusCode()),
				),
			)
		}

		if httpRequestHistogram != nil {
			httpRequestHistogram.Record(c.UserContext(), durationMs,
				api.WithAttributes(
					attribute.String("method", c.Method()),
					attribute.String("path", c.Route().Path),
					attribute.Int("status_code", c.Response().StatusCode()),
				),
			)
		}

		return err
	}
}
