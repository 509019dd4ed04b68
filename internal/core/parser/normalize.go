// Package parser turns free-text grocery input into individual item strings
// with any embedded quantity and unit extracted. All functions are pure and
// re-entrant.
package parser

import (
	"regexp"
	"strings"

	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	hebrewRange    = regexp.MustCompile(`[\x{0590}-\x{05FF}]`)
)

// Normalize lowercases, trims, and collapses internal whitespace runs to
// single spaces. Applied identically to item names and keywords before any
// comparison.
func Normalize(text string) string {
	return whitespaceRuns.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// ContainsHebrew reports whether text has any Hebrew-range character.
func ContainsHebrew(text string) bool {
	return hebrewRange.MatchString(text)
}

// DetectLanguage returns Hebrew when any Hebrew character is present,
// English otherwise.
func DetectLanguage(text string) catalog.Language {
	if ContainsHebrew(text) {
		return catalog.LangHE
	}
	return catalog.LangEN
}
