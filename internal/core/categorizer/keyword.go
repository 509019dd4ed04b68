package categorizer

import (
	"sort"
	"strings"

	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
	"github.com/CartwiseCo/grocery-service/internal/core/parser"
)

// Result is a single categorization outcome. Confidence encodes match
// strength: 1.0 exact keyword or override, 0.95 override substring,
// 0.8 substring keyword, 0.6 word-level partial, 0.0 no match.
type Result struct {
	CategoryID string  `json:"categoryId"`
	Confidence float64 `json:"confidence"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
}

// Suggestion is one scored candidate category for an item name.
type Suggestion struct {
	CategoryID string  `json:"categoryId"`
	Score      float64 `json:"score"`
}

// Minimum rune length for the substring-override rule and for word-level
// matching. Shorter tokens collide too easily.
const (
	minOverrideSubstringLen = 4
	minMatchWordLen         = 3
)

// overrideTerms is the override table's keys in deterministic order. Longer
// terms first so the most specific compound wins the substring check.
var overrideTerms = func() []string {
	terms := make([]string, 0, len(compoundOverrides))
	for term := range compoundOverrides {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		li, lj := len([]rune(terms[i])), len([]rune(terms[j]))
		if li != lj {
			return li > lj
		}
		return terms[i] < terms[j]
	})
	return terms
}()

// ByKeyword categorizes a cleaned item name against the given merged
// category registry. Rules run in strict priority order and the first hit
// wins: override exact, override substring, exact keyword, substring
// keyword, word-level partial, then the "other" fallback.
func ByKeyword(itemName string, categories []catalog.Category) Result {
	normalized := parser.Normalize(itemName)
	language := parser.DetectLanguage(itemName)

	if override, ok := compoundOverrides[normalized]; ok {
		return Result{
			CategoryID: override.CategoryID,
			Confidence: 1.0,
			Unit:       override.Unit,
			Quantity:   override.Quantity,
		}
	}

	for _, term := range overrideTerms {
		if len([]rune(term)) < minOverrideSubstringLen {
			continue
		}
		if strings.Contains(normalized, parser.Normalize(term)) {
			override := compoundOverrides[term]
			return Result{
				CategoryID: override.CategoryID,
				Confidence: 0.95,
				Unit:       override.Unit,
				Quantity:   override.Quantity,
			}
		}
	}

	for _, category := range categories {
		for _, keyword := range category.Keywords(language) {
			if normalized == parser.Normalize(keyword) {
				return resolveResult(itemName, category, 1.0)
			}
		}
	}

	for _, category := range categories {
		for _, keyword := range category.Keywords(language) {
			nk := parser.Normalize(keyword)
			if strings.Contains(normalized, nk) || strings.Contains(nk, normalized) {
				return resolveResult(itemName, category, 0.8)
			}
		}
	}

	words := strings.Fields(normalized)
	for _, category := range categories {
		for _, word := range words {
			if len([]rune(word)) < minMatchWordLen {
				continue
			}
			for _, keyword := range category.Keywords(language) {
				nk := parser.Normalize(keyword)
				if word == nk || strings.Contains(nk, word) {
					return resolveResult(itemName, category, 0.6)
				}
			}
		}
	}

	other, ok := catalog.FindCategory(categories, catalog.OtherCategoryID)
	if !ok && len(categories) > 0 {
		other = categories[len(categories)-1]
	}
	return resolveResult(itemName, other, 0)
}

// resolveResult fills unit and quantity from the item-specific defaults
// table first, then the category's own defaults.
func resolveResult(itemName string, category catalog.Category, confidence float64) Result {
	unit := category.DefaultUnit
	quantity := category.DefaultQuantity
	if def, ok := catalog.LookupItemDefault(itemName); ok {
		unit = def.Unit
		quantity = def.Quantity
	}
	return Result{
		CategoryID: category.ID,
		Confidence: confidence,
		Unit:       unit,
		Quantity:   quantity,
	}
}

// Suggestions scores every category (except "other") against the item name
// and returns the top matches by score, at most limit entries. Unlike
// ByKeyword this does not short-circuit; it is meant for "did you mean"
// style pickers.
func Suggestions(itemName string, categories []catalog.Category, limit int) []Suggestion {
	if limit <= 0 {
		limit = 3
	}

	normalized := parser.Normalize(itemName)
	language := parser.DetectLanguage(itemName)
	words := strings.Fields(normalized)

	var scored []Suggestion
	for _, category := range categories {
		if category.ID == catalog.OtherCategoryID {
			continue
		}

		maxScore := 0.0
		for _, keyword := range category.Keywords(language) {
			nk := parser.Normalize(keyword)

			score := 0.0
			switch {
			case normalized == nk:
				score = 1.0
			case strings.Contains(normalized, nk):
				score = 0.8
			case strings.Contains(nk, normalized):
				score = 0.7
			default:
				for _, word := range words {
					if len([]rune(word)) >= minMatchWordLen && strings.Contains(nk, word) {
						score = 0.5
						break
					}
				}
			}
			if score > maxScore {
				maxScore = score
			}
		}

		if maxScore > 0 {
			scored = append(scored, Suggestion{CategoryID: category.ID, Score: maxScore})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Matches reports whether the item categorizes into the given category with
// meaningful confidence.
func Matches(itemName, categoryID string, categories []catalog.Category) bool {
	result := ByKeyword(itemName, categories)
	return result.CategoryID == categoryID && result.Confidence > 0.5
}
