package catalog

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitTableIntegrity(t *testing.T) {
	require.Len(t, Units, 8)

	for _, id := range AllUnitIDs() {
		unit, ok := Units[id]
		require.True(t, ok, "unit %q missing", id)
		assert.Equal(t, id, unit.ID)
		assert.NotEmpty(t, unit.Name.En)
		assert.NotEmpty(t, unit.Name.He)
		assert.Greater(t, unit.Step, 0.0)
		assert.Greater(t, unit.MinValue, 0.0)
	}

	assert.True(t, ValidUnit(UnitKg))
	assert.False(t, ValidUnit("gallon"))
	assert.False(t, ValidUnit(""))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "x3", FormatQuantity(3, UnitPiece, LangEN))
	assert.Equal(t, "2 kg", FormatQuantity(2, UnitKg, LangEN))
	assert.Equal(t, "1.5 L", FormatQuantity(1.5, UnitLiter, LangEN))
	assert.Equal(t, `2 ק"ג`, FormatQuantity(2, UnitKg, LangHE))
	// Unknown unit falls back to the piece format.
	assert.Equal(t, "x2", FormatQuantity(2, "bogus", LangEN))
}

func TestBilingualTextFallback(t *testing.T) {
	b := BilingualText{En: "Milk"}
	assert.Equal(t, "Milk", b.Get(LangHE))

	b = BilingualText{En: "Milk", He: "חלב"}
	assert.Equal(t, "חלב", b.Get(LangHE))
	assert.Equal(t, "Milk", b.Get(LangEN))
}

func TestLookupItemDefault(t *testing.T) {
	t.Run("english", func(t *testing.T) {
		def, ok := LookupItemDefault("milk")
		require.True(t, ok)
		assert.Equal(t, UnitLiter, def.Unit)
		assert.InDelta(t, 1.0, def.Quantity, 1e-9)
	})

	t.Run("hebrew", func(t *testing.T) {
		def, ok := LookupItemDefault("חלב")
		require.True(t, ok)
		assert.Equal(t, UnitLiter, def.Unit)
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		def, ok := LookupItemDefault("  MILK ")
		require.True(t, ok)
		assert.Equal(t, UnitLiter, def.Unit)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, ok := LookupItemDefault("xyzzy plugh")
		assert.False(t, ok)
	})
}

func TestDefaultCategoriesIntegrity(t *testing.T) {
	require.Len(t, DefaultCategories, 13)

	seen := make(map[string]bool)
	for _, c := range DefaultCategories {
		assert.False(t, seen[c.ID], "duplicate category id %q", c.ID)
		seen[c.ID] = true
		assert.True(t, c.IsDefault)
		assert.True(t, ValidUnit(c.DefaultUnit), "category %q default unit", c.ID)
		assert.Greater(t, c.DefaultQuantity, 0.0)
	}

	assert.Equal(t, OtherCategoryID, DefaultCategories[len(DefaultCategories)-1].ID)
}

type stubSource struct {
	categories []CustomCategory
	err        error
}

func (s stubSource) ListCategories(ctx context.Context) ([]CustomCategory, error) {
	return s.categories, s.err
}

func TestRegistryMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults only with nil source", func(t *testing.T) {
		registry := NewRegistry(nil, slog.Default())
		cats := registry.Categories(ctx)
		assert.Len(t, cats, len(DefaultCategories))
		assert.Equal(t, OtherCategoryID, cats[len(cats)-1].ID)
	})

	t.Run("custom categories before other", func(t *testing.T) {
		source := stubSource{categories: []CustomCategory{
			{ID: "pet-supplies", NameEn: "Pet Supplies", DefaultUnit: UnitPackage, DefaultQuantity: 1},
		}}
		registry := NewRegistry(source, slog.Default())

		cats := registry.Categories(ctx)
		require.Len(t, cats, len(DefaultCategories)+1)
		assert.Equal(t, OtherCategoryID, cats[len(cats)-1].ID)
		assert.Equal(t, "pet-supplies", cats[len(cats)-2].ID)
	})

	t.Run("custom id colliding with default is skipped", func(t *testing.T) {
		source := stubSource{categories: []CustomCategory{
			{ID: "dairy", NameEn: "Shadow Dairy"},
		}}
		registry := NewRegistry(source, slog.Default())

		cats := registry.Categories(ctx)
		assert.Len(t, cats, len(DefaultCategories))
		dairy, ok := registry.ByID(ctx, "dairy")
		require.True(t, ok)
		assert.True(t, dairy.IsDefault)
	})

	t.Run("source error degrades to defaults", func(t *testing.T) {
		source := stubSource{err: errors.New("db down")}
		registry := NewRegistry(source, slog.Default())

		cats := registry.Categories(ctx)
		assert.Len(t, cats, len(DefaultCategories))
	})
}

func TestRegistryByID(t *testing.T) {
	registry := NewRegistry(nil, slog.Default())
	ctx := context.Background()

	c, ok := registry.ByID(ctx, "fruits")
	require.True(t, ok)
	assert.Equal(t, "fruits", c.ID)

	_, ok = registry.ByID(ctx, "nonexistent")
	assert.False(t, ok)
}

func TestCategoryKeywordsFallback(t *testing.T) {
	c := Category{KeywordsEn: []string{"milk"}}
	assert.Equal(t, []string{"milk"}, c.Keywords(LangHE))

	c.KeywordsHe = []string{"חלב"}
	assert.Equal(t, []string{"חלב"}, c.Keywords(LangHE))
	assert.Equal(t, []string{"milk"}, c.Keywords(LangEN))
}
