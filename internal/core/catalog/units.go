package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Language selects which side of the bilingual tables is used.
type Language string

const (
	LangEN Language = "en"
	LangHE Language = "he"
)

// The eight fixed measurement units. These identifiers appear on the wire
// (oracle responses, HTTP payloads) and are validated against this set.
const (
	UnitPiece   = "unit"
	UnitKg      = "kg"
	UnitGram    = "g"
	UnitLiter   = "l"
	UnitMl      = "ml"
	UnitPackage = "package"
	UnitDozen   = "dozen"
	UnitBunch   = "bunch"
)

// BilingualText holds a display string in both supported languages.
type BilingualText struct {
	En string `json:"en"`
	He string `json:"he"`
}

// Get returns the text for the given language, falling back to English.
func (b BilingualText) Get(lang Language) string {
	if lang == LangHE && b.He != "" {
		return b.He
	}
	return b.En
}

// Unit describes a measurement unit: display names, the granularity the UI
// steps quantities by, and the smallest quantity it allows.
type Unit struct {
	ID        string        `json:"id"`
	Name      BilingualText `json:"name"`
	ShortName BilingualText `json:"shortName"`
	Step      float64       `json:"step"`
	MinValue  float64       `json:"minValue"`
}

// Units is the static unit registry, defined once at startup.
var Units = map[string]Unit{
	UnitPiece: {
		ID:        UnitPiece,
		Name:      BilingualText{En: "Units", He: "יחידות"},
		ShortName: BilingualText{En: "x", He: "x"},
		Step:      1,
		MinValue:  1,
	},
	UnitKg: {
		ID:        UnitKg,
		Name:      BilingualText{En: "Kilograms", He: "קילוגרם"},
		ShortName: BilingualText{En: "kg", He: "ק\"ג"},
		Step:      0.5,
		MinValue:  0.5,
	},
	UnitGram: {
		ID:        UnitGram,
		Name:      BilingualText{En: "Grams", He: "גרם"},
		ShortName: BilingualText{En: "g", He: "גר'"},
		Step:      100,
		MinValue:  100,
	},
	UnitLiter: {
		ID:        UnitLiter,
		Name:      BilingualText{En: "Liters", He: "ליטר"},
		ShortName: BilingualText{En: "L", He: "ל'"},
		Step:      0.5,
		MinValue:  0.5,
	},
	UnitMl: {
		ID:        UnitMl,
		Name:      BilingualText{En: "Milliliters", He: "מיליליטר"},
		ShortName: BilingualText{En: "ml", He: "מ\"ל"},
		Step:      100,
		MinValue:  100,
	},
	UnitPackage: {
		ID:        UnitPackage,
		Name:      BilingualText{En: "Package", He: "אריזה"},
		ShortName: BilingualText{En: "pkg", He: "אר'"},
		Step:      1,
		MinValue:  1,
	},
	UnitDozen: {
		ID:        UnitDozen,
		Name:      BilingualText{En: "Dozen", He: "תריסר"},
		ShortName: BilingualText{En: "dz", He: "תר'"},
		Step:      1,
		MinValue:  1,
	},
	UnitBunch: {
		ID:        UnitBunch,
		Name:      BilingualText{En: "Bunch", He: "צרור"},
		ShortName: BilingualText{En: "bunch", He: "צרור"},
		Step:      1,
		MinValue:  1,
	},
}

// ValidUnit reports whether id names one of the fixed units.
func ValidUnit(id string) bool {
	_, ok := Units[id]
	return ok
}

// AllUnitIDs returns the unit identifiers in a stable order.
func AllUnitIDs() []string {
	return []string{UnitPiece, UnitKg, UnitGram, UnitLiter, UnitMl, UnitPackage, UnitDozen, UnitBunch}
}

// FormatQuantity renders a quantity with its unit short name for display,
// e.g. "x3", "2 kg", "1.5 L".
func FormatQuantity(quantity float64, unitID string, lang Language) string {
	unit, ok := Units[unitID]
	if !ok {
		unit = Units[UnitPiece]
	}

	formatted := strconv.FormatFloat(quantity, 'f', -1, 64)
	if strings.Contains(formatted, ".") {
		formatted = strconv.FormatFloat(quantity, 'f', 1, 64)
		formatted = strings.TrimSuffix(formatted, ".0")
	}

	if unit.ID == UnitPiece {
		return "x" + formatted
	}
	return fmt.Sprintf("%s %s", formatted, unit.ShortName.Get(lang))
}
