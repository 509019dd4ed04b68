package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedItem is the result of extracting quantity and unit text from one
// item string. Quantity and Unit are set only when explicitly present in
// the input; callers fall back to category or item defaults otherwise.
type ParsedItem struct {
	Name     string
	Quantity *float64
	Unit     string
}

// Bounds accepted for a bare trailing number, e.g. "milk 3". Numbers outside
// this range are more likely model numbers or codes than quantities.
const (
	minTrailingQuantity = 1
	maxTrailingQuantity = 999
)

var (
	xPatternEnd   = regexp.MustCompile(`^(.+?)\s*[xX×]\s*(\d+(?:\.\d+)?)\s*$`)
	xPatternStart = regexp.MustCompile(`^\s*[xX×]\s*(\d+(?:\.\d+)?)\s+(.+)$`)
	// גרם precedes גר so the longer token wins the alternation.
	unitEnd     = regexp.MustCompile(`(?i)^(.+?)\s+(\d+(?:\.\d+)?)\s*(kg|g|l|ml|ק"ג|קילו|גרם|גר|ליטר|מ"ל)\s*$`)
	unitStart   = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(kg|g|l|ml|ק"ג|קילו|גרם|גר|ליטר|מ"ל)\s+(.+)$`)
	numberStart = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.+)$`)
	numberEnd   = regexp.MustCompile(`^(.+?)\s+(\d+(?:\.\d+)?)\s*$`)

	hasLetter = regexp.MustCompile(`[a-zA-Z\x{0590}-\x{05FF}]`)
)

// unitTokens maps recognized quantity-suffix tokens to canonical unit ids.
var unitTokens = map[string]string{
	"kg":   "kg",
	`ק"ג`:  "kg",
	"קילו": "kg",
	"g":    "g",
	"גרם":  "g",
	"גר":   "g",
	"l":    "l",
	"ליטר": "l",
	"ml":   "ml",
	`מ"ל`:  "ml",
}

// ExtractQuantity pulls an embedded quantity (and optionally a unit) out of
// one item string. Patterns are tried in fixed priority order; the first
// match wins. Supports "milk x3", "x3 milk", "apples 2kg", "2kg apples",
// "3 milk", "milk 3" and the Hebrew equivalents.
func ExtractQuantity(input string) ParsedItem {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ParsedItem{}
	}

	if m := xPatternEnd.FindStringSubmatch(trimmed); m != nil {
		return ParsedItem{Name: strings.TrimSpace(m[1]), Quantity: parseNumber(m[2])}
	}

	if m := xPatternStart.FindStringSubmatch(trimmed); m != nil {
		return ParsedItem{Name: strings.TrimSpace(m[2]), Quantity: parseNumber(m[1])}
	}

	if m := unitEnd.FindStringSubmatch(trimmed); m != nil {
		return ParsedItem{
			Name:     strings.TrimSpace(m[1]),
			Quantity: parseNumber(m[2]),
			Unit:     normalizeUnitToken(m[3]),
		}
	}

	if m := unitStart.FindStringSubmatch(trimmed); m != nil {
		return ParsedItem{
			Name:     strings.TrimSpace(m[3]),
			Quantity: parseNumber(m[1]),
			Unit:     normalizeUnitToken(m[2]),
		}
	}

	// Bare leading number. "2% milk" stays intact, and the remainder must
	// contain at least one letter to count as a name.
	if m := numberStart.FindStringSubmatch(trimmed); m != nil && !strings.HasPrefix(m[2], "%") {
		name := strings.TrimSpace(m[2])
		if hasLetter.MatchString(name) {
			return ParsedItem{Name: name, Quantity: parseNumber(m[1])}
		}
	}

	// Bare trailing number, bounded so codes and model numbers pass through.
	if m := numberEnd.FindStringSubmatch(trimmed); m != nil {
		name := strings.TrimSpace(m[1])
		qty := parseNumber(m[2])
		if hasLetter.MatchString(name) && qty != nil &&
			*qty >= minTrailingQuantity && *qty <= maxTrailingQuantity {
			return ParsedItem{Name: name, Quantity: qty}
		}
	}

	return ParsedItem{Name: trimmed}
}

func parseNumber(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func normalizeUnitToken(token string) string {
	lower := strings.ToLower(token)
	if unit, ok := unitTokens[lower]; ok {
		return unit
	}
	return lower
}
