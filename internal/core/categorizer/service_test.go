package categorizer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/settings"
)

type stubOracle struct {
	item      OracleItem
	batch     map[string]OracleItem
	err       error
	calls     int
	lastBatch []string
}

func (s *stubOracle) CategorizeItem(ctx context.Context, itemName string) (OracleItem, error) {
	s.calls++
	return s.item, s.err
}

func (s *stubOracle) CategorizeItems(ctx context.Context, itemNames []string) (map[string]OracleItem, error) {
	s.calls++
	s.lastBatch = itemNames
	return s.batch, s.err
}

func newTestService(oracle Oracle, enabled bool) *Service {
	registry := catalog.NewRegistry(nil, slog.Default())
	provider := settings.StaticProvider{Enabled: enabled, Key: "test-key"}
	return NewService(registry, provider, oracle, slog.Default())
}

func TestCategorizeSync(t *testing.T) {
	svc := newTestService(nil, false)
	ctx := context.Background()

	t.Run("end to end hebrew", func(t *testing.T) {
		got := svc.CategorizeSync(ctx, "חלב 2 ליטר")
		assert.Equal(t, "dairy", got.CategoryID)
		assert.Equal(t, catalog.UnitLiter, got.Unit)
		assert.InDelta(t, 2.0, got.Quantity, 1e-9)
		assert.Equal(t, "keyword", got.Source)
		assert.Equal(t, "חלב", got.ParsedName)
	})

	t.Run("explicit quantity overrides defaults", func(t *testing.T) {
		got := svc.CategorizeSync(ctx, "milk x3")
		assert.Equal(t, "dairy", got.CategoryID)
		assert.InDelta(t, 3.0, got.Quantity, 1e-9)
		assert.Equal(t, catalog.UnitLiter, got.Unit)
		assert.Equal(t, "milk", got.ParsedName)
	})

	t.Run("explicit unit overrides defaults", func(t *testing.T) {
		got := svc.CategorizeSync(ctx, "apples 2kg")
		assert.Equal(t, "fruits", got.CategoryID)
		assert.Equal(t, catalog.UnitKg, got.Unit)
		assert.InDelta(t, 2.0, got.Quantity, 1e-9)
	})

	t.Run("unknown item falls to other", func(t *testing.T) {
		got := svc.CategorizeSync(ctx, "xyzzy plugh")
		assert.Equal(t, catalog.OtherCategoryID, got.CategoryID)
		assert.InDelta(t, 0.0, got.Confidence, 1e-9)
	})
}

func TestCategorizeFallsBackOnOracleError(t *testing.T) {
	oracle := &stubOracle{err: errors.New("oracle down")}
	svc := newTestService(oracle, true)
	ctx := context.Background()

	got := svc.Categorize(ctx, "milk")
	want := svc.CategorizeSync(ctx, "milk")

	assert.Equal(t, want, got)
	assert.Equal(t, "keyword", got.Source)
	assert.Equal(t, 1, oracle.calls)
}

func TestCategorizeRejectsInvalidOracleResults(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown category", func(t *testing.T) {
		oracle := &stubOracle{item: OracleItem{Name: "milk", CategoryID: "nonexistent", Unit: catalog.UnitLiter, Quantity: 1}}
		svc := newTestService(oracle, true)

		got := svc.Categorize(ctx, "milk")
		assert.Equal(t, "keyword", got.Source)
		assert.Equal(t, "dairy", got.CategoryID)
	})

	t.Run("unknown unit", func(t *testing.T) {
		oracle := &stubOracle{item: OracleItem{Name: "milk", CategoryID: "dairy", Unit: "gallon", Quantity: 1}}
		svc := newTestService(oracle, true)

		got := svc.Categorize(ctx, "milk")
		assert.Equal(t, "keyword", got.Source)
	})
}

func TestCategorizeAcceptsValidOracleResult(t *testing.T) {
	oracle := &stubOracle{item: OracleItem{Name: "oat milk", CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 2}}
	svc := newTestService(oracle, true)

	got := svc.Categorize(context.Background(), "oat milk x2")
	assert.Equal(t, "ai", got.Source)
	assert.Equal(t, "beverages", got.CategoryID)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.InDelta(t, 2.0, got.Quantity, 1e-9)
	assert.Equal(t, "oat milk", got.ParsedName)
}

func TestCategorizeSkipsOracleWhenDisabled(t *testing.T) {
	oracle := &stubOracle{item: OracleItem{Name: "milk", CategoryID: "dairy", Unit: catalog.UnitLiter, Quantity: 1}}
	svc := newTestService(oracle, false)

	got := svc.Categorize(context.Background(), "milk")
	assert.Equal(t, "keyword", got.Source)
	assert.Equal(t, 0, oracle.calls)
}

func TestCategorizeBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("oracle consulted only for low confidence items", func(t *testing.T) {
		oracle := &stubOracle{batch: map[string]OracleItem{}}
		svc := newTestService(oracle, true)

		results := svc.CategorizeBatch(ctx, []string{"milk", "xyzzy plugh"})
		require.Len(t, results, 2)

		require.Equal(t, 1, oracle.calls)
		assert.Equal(t, []string{"xyzzy plugh"}, oracle.lastBatch)
		assert.Equal(t, "dairy", results["milk"].CategoryID)
	})

	t.Run("valid oracle entries overwrite keyword results", func(t *testing.T) {
		oracle := &stubOracle{batch: map[string]OracleItem{
			"xyzzy plugh": {Name: "xyzzy plugh", CategoryID: "snacks", Unit: catalog.UnitPackage, Quantity: 1},
		}}
		svc := newTestService(oracle, true)

		results := svc.CategorizeBatch(ctx, []string{"milk", "xyzzy plugh"})

		assert.Equal(t, "keyword", results["milk"].Source)
		assert.Equal(t, "ai", results["xyzzy plugh"].Source)
		assert.Equal(t, "snacks", results["xyzzy plugh"].CategoryID)
		assert.InDelta(t, 0.9, results["xyzzy plugh"].Confidence, 1e-9)
	})

	t.Run("oracle failure keeps keyword results", func(t *testing.T) {
		oracle := &stubOracle{err: errors.New("oracle down")}
		svc := newTestService(oracle, true)

		results := svc.CategorizeBatch(ctx, []string{"milk", "xyzzy plugh"})
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Equal(t, "keyword", r.Source)
		}
	})

	t.Run("no oracle call when all confident", func(t *testing.T) {
		oracle := &stubOracle{}
		svc := newTestService(oracle, true)

		svc.CategorizeBatch(ctx, []string{"milk", "tuna"})
		assert.Equal(t, 0, oracle.calls)
	})

	t.Run("results keyed by lowercased input", func(t *testing.T) {
		svc := newTestService(nil, false)

		results := svc.CategorizeBatch(ctx, []string{"Milk"})
		_, ok := results["milk"]
		assert.True(t, ok)
	})
}

func TestStatus(t *testing.T) {
	t.Run("ai active", func(t *testing.T) {
		svc := newTestService(&stubOracle{}, true)
		status := svc.Status(context.Background())
		assert.True(t, status.AIEnabled)
		assert.True(t, status.AIAvailable)
		assert.Equal(t, "ai", status.Method)
	})

	t.Run("ai disabled", func(t *testing.T) {
		svc := newTestService(&stubOracle{}, false)
		status := svc.Status(context.Background())
		assert.False(t, status.AIEnabled)
		assert.Equal(t, "keyword", status.Method)
	})

	t.Run("no key means unavailable", func(t *testing.T) {
		registry := catalog.NewRegistry(nil, slog.Default())
		svc := NewService(registry, settings.StaticProvider{Enabled: true}, &stubOracle{}, slog.Default())
		status := svc.Status(context.Background())
		assert.False(t, status.AIAvailable)
		assert.Equal(t, "keyword", status.Method)
	})
}

func TestRecategorize(t *testing.T) {
	oracle := &stubOracle{item: OracleItem{Name: "milk", CategoryID: "dairy", Unit: catalog.UnitLiter, Quantity: 1}}
	svc := newTestService(oracle, true)
	ctx := context.Background()

	got := svc.Recategorize(ctx, "milk", true)
	assert.Equal(t, "ai", got.Source)

	got = svc.Recategorize(ctx, "milk", false)
	assert.Equal(t, "keyword", got.Source)
}

func TestBatchKeysAreLowercased(t *testing.T) {
	svc := newTestService(nil, false)
	results := svc.CategorizeBatch(context.Background(), []string{"TUNA", "Milk"})

	for key := range results {
		assert.Equal(t, strings.ToLower(key), key)
	}
}
