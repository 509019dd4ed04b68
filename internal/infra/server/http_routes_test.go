package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/CartwiseCo/grocery-service/pkg/telemetry"
)

func counterValue(t *testing.T, reader *metric.ManualReader, name string) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestWithMetricsRecordsHandlerErrors(t *testing.T) {
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	require.NoError(t, telemetry.InitBusinessMetrics(provider))

	app := fiber.New()
	app.Get("/boom", withMetrics(func(c *fiber.Ctx) error {
		return errors.New("boom")
	}))
	app.Get("/ok", withMetrics(func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.EqualValues(t, 0, counterValue(t, reader, "application.errors.total"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.EqualValues(t, 1, counterValue(t, reader, "application.errors.total"))
}
