package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
	"google.golang.org/grpc"

	"github.com/CartwiseCo/grocery-service/config"
	"github.com/CartwiseCo/grocery-service/internal/core/ai"
	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/categorizer"
	"github.com/CartwiseCo/grocery-service/internal/core/settings"
	"github.com/CartwiseCo/grocery-service/internal/infra/postgres"
	"github.com/CartwiseCo/grocery-service/pkg/telemetry"
)

type Server struct {
	cfg            *config.Config
	app            *fiber.App
	db             postgres.DB
	redisClient    *redis.Client
	registry       *catalog.Registry
	store          *catalog.Store
	categorizer    *categorizer.Service
	traceProvider  *sdktrace.TracerProvider
	metricProvider *metric.MeterProvider
	loggerProvider interface{ Shutdown(context.Context) error }
	ctx            context.Context
	cancel         context.CancelFunc
	wg             sync.WaitGroup
}

var (
	httpRequestsCounter  api.Int64Counter
	httpRequestHistogram api.Float64Histogram
)

func New(ctx context.Context, cfg *config.Config, dbConn *pgxpool.Pool) *Server {
	traceExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
	if err != nil {
		slog.Error("failed to initialize jaeger exporter", slog.String("error", err.Error()))
		return nil
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.OtlpEndpoint),
		otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithDialOption(grpc.WithUserAgent("grocery-service")),
	)
	if err != nil {
		slog.Error("failed to initialize otlp exporter", slog.String("error", err.Error()))
		return nil
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(
			resource.NewWithAttributes(
				semconv.SchemaURL,
				semconv.ServiceNameKey.String("grocery-service"),
			)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	provider := metric.NewMeterProvider(metric.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String("grocery-service"),
	)), metric.WithReader(metric.NewPeriodicReader(metricExporter, metric.WithInterval(15*time.Second))))

	otel.SetMeterProvider(provider)

	if err := telemetry.InitBusinessMetrics(provider); err != nil {
		slog.Error("failed to initialize telemetry", slog.String("error", err.Error()))
		return nil
	}

	meter := provider.Meter("http")
	httpRequestsCounter, _ = meter.Int64Counter("http_requests_total",
		api.WithDescription("Total number of HTTP requests."))
	httpRequestHistogram, _ = meter.Float64Histogram("http_request_duration_ms",
		api.WithDescription("Duration of HTTP requests in milliseconds."))

	instrumentedConn, err := telemetry.NewInstrumentedPool(provider, dbConn)
	if err != nil {
		slog.Error("failed to create instrumented pool", slog.String("error", err.Error()))
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Username: cfg.RedisUser,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDb,
	})

	settingsProvider := settings.NewRedisProvider(redisClient, cfg.GeminiAPIKey, slog.Default())

	store := catalog.NewStore(instrumentedConn, slog.Default())
	registry := catalog.NewRegistry(store, slog.Default())

	oracle := ai.NewGeminiClient(cfg.GetAIConfig(), slog.Default(), registry, settingsProvider)
	categorizerService := categorizer.NewService(registry, settingsProvider, oracle, slog.Default())

	app := fiber.New(cfg.Fiber())

	serverCtx, cancel := context.WithCancel(ctx)

	return &Server{
		cfg:            cfg,
		app:            app,
		db:             instrumentedConn,
		redisClient:    redisClient,
		registry:       registry,
		store:          store,
		categorizer:    categorizerService,
		traceProvider:  tp,
		metricProvider: provider,
		ctx:            serverCtx,
		cancel:         cancel,
	}
}

// SetLoggerProvider attaches the OTLP log provider so it is flushed on
// shutdown.
func (s *Server) SetLoggerProvider(lp interface{ Shutdown(context.Context) error }) {
	s.loggerProvider = lp
}

func (s *Server) Start() {
	initGlobalMiddlewares(s.app, s.cfg)
	registerHttpRoutes(s.app, s.registry, s.store, s.categorizer)

	slog.Info("Starting HTTP server", slog.String("address", s.cfg.ServerAddress))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.app.Listen(s.cfg.ServerAddress); err != nil {
			slog.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()
}

func (s *Server) Shutdown() {
	slog.Info("Shutting down server")

	s.cancel()

	if err := s.app.Shutdown(); err != nil {
		slog.Error("Error shutting down HTTP server", slog.String("error", err.Error()))
	}

	s.wg.Wait()

	if err := s.traceProvider.Shutdown(context.Background()); err != nil {
		slog.Error("Error shutting down trace provider", slog.String("error", err.Error()))
	}

	if err := s.metricProvider.Shutdown(context.Background()); err != nil {
		slog.Error("Error shutting down metric provider", slog.String("error", err.Error()))
	}

	if s.loggerProvider != nil {
		if err := s.loggerProvider.Shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down log provider", slog.String("error", err.Error()))
		}
	}

	if err := s.redisClient.Close(); err != nil {
		slog.Error("Error closing redis client", slog.String("error", err.Error()))
	}

	s.db.Close()

	slog.Info("Server shut down successfully")
}
