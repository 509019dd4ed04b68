package categorizer

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
)

func defaultCats(t *testing.T) []catalog.Category {
	t.Helper()
	registry := catalog.NewRegistry(nil, slog.Default())
	return registry.Categories(context.Background())
}

func TestByKeywordCompoundOverrides(t *testing.T) {
	cats := defaultCats(t)

	tests := []struct {
		input      string
		category   string
		confidence float64
	}{
		{"tuna", "canned", 1.0},
		{"טונה", "canned", 1.0},
		{"orange juice", "beverages", 1.0},
		{"apple juice", "beverages", 1.0},
		{"מיץ תפוזים", "beverages", 1.0},
		{"almond milk", "beverages", 1.0},
		{"sugar", "baking", 1.0},
		{"סוכר", "baking", 1.0},
		{"flour", "baking", 1.0},
		{"ketchup", "canned", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ByKeyword(tt.input, cats)
			assert.Equal(t, tt.category, got.CategoryID)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestByKeywordOverrideSubstring(t *testing.T) {
	cats := defaultCats(t)

	// "fresh orange juice" is not an exact override key but contains one.
	got := ByKeyword("fresh orange juice", cats)
	assert.Equal(t, "beverages", got.CategoryID)
	assert.InDelta(t, 0.95, got.Confidence, 1e-9)

	// Overrides beat ingredient keywords even when the ingredient matches a
	// category exactly.
	got = ByKeyword("canned pineapple", cats)
	assert.Equal(t, "canned", got.CategoryID)
}

func TestByKeywordExactMatch(t *testing.T) {
	cats := defaultCats(t)

	got := ByKeyword("milk", cats)
	assert.Equal(t, "dairy", got.CategoryID)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
	assert.Equal(t, catalog.UnitLiter, got.Unit)
	assert.InDelta(t, 1.0, got.Quantity, 1e-9)

	got = ByKeyword("חלב", cats)
	assert.Equal(t, "dairy", got.CategoryID)
	assert.Equal(t, catalog.UnitLiter, got.Unit)

	// Normalization applies before comparison.
	got = ByKeyword("  MILK  ", cats)
	assert.Equal(t, "dairy", got.CategoryID)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
}

func TestByKeywordSubstringMatch(t *testing.T) {
	cats := defaultCats(t)

	got := ByKeyword("fresh strawberries", cats)
	assert.Equal(t, "fruits", got.CategoryID)
	assert.InDelta(t, 0.8, got.Confidence, 1e-9)
}

func TestByKeywordWordLevelMatch(t *testing.T) {
	cats := defaultCats(t)

	// "chedda" is not a keyword but is contained in "cheddar".
	got := ByKeyword("chedda sandwich", cats)
	assert.Equal(t, "dairy", got.CategoryID)
	assert.InDelta(t, 0.6, got.Confidence, 1e-9)
}

func TestByKeywordNoMatch(t *testing.T) {
	cats := defaultCats(t)

	got := ByKeyword("xyzzy plugh", cats)
	assert.Equal(t, catalog.OtherCategoryID, got.CategoryID)
	assert.InDelta(t, 0.0, got.Confidence, 1e-9)
	assert.Equal(t, catalog.UnitPiece, got.Unit)
}

func TestByKeywordConfidenceMonotonicity(t *testing.T) {
	cats := defaultCats(t)

	exact := ByKeyword("milk", cats).Confidence
	substring := ByKeyword("fresh strawberries", cats).Confidence
	wordLevel := ByKeyword("chedda sandwich", cats).Confidence
	none := ByKeyword("xyzzy plugh", cats).Confidence

	assert.GreaterOrEqual(t, exact, substring)
	assert.GreaterOrEqual(t, substring, wordLevel)
	assert.GreaterOrEqual(t, wordLevel, none)
}

func TestByKeywordCustomCategory(t *testing.T) {
	cats := defaultCats(t)
	custom := catalog.Category{
		ID:              "pet-supplies",
		Name:            catalog.BilingualText{En: "Pet Supplies", He: "ציוד לחיות"},
		KeywordsEn:      []string{"dog food", "cat litter"},
		KeywordsHe:      []string{"אוכל לכלב"},
		DefaultUnit:     catalog.UnitPackage,
		DefaultQuantity: 1,
	}
	// Keep "other" last, the way the registry merges.
	cats = append(cats[:len(cats)-1], custom, cats[len(cats)-1])

	got := ByKeyword("dog food", cats)
	assert.Equal(t, "pet-supplies", got.CategoryID)
	assert.InDelta(t, 1.0, got.Confidence, 1e-9)
	assert.Equal(t, catalog.UnitPackage, got.Unit)
}

func TestSuggestions(t *testing.T) {
	cats := defaultCats(t)

	suggestions := Suggestions("apple", cats, 3)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "fruits", suggestions[0].CategoryID)
	assert.InDelta(t, 1.0, suggestions[0].Score, 1e-9)
	assert.LessOrEqual(t, len(suggestions), 3)

	// Scores are sorted descending.
	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(t, suggestions[i-1].Score, suggestions[i].Score)
	}

	// "other" never appears as a suggestion.
	for _, s := range suggestions {
		assert.NotEqual(t, catalog.OtherCategoryID, s.CategoryID)
	}

	assert.Empty(t, Suggestions("xyzzy plugh", cats, 3))
}

func TestMatches(t *testing.T) {
	cats := defaultCats(t)

	assert.True(t, Matches("tuna", "canned", cats))
	assert.False(t, Matches("tuna", "meat", cats))
	assert.True(t, Matches("milk", "dairy", cats))
	assert.False(t, Matches("xyzzy plugh", catalog.OtherCategoryID, cats))
}
