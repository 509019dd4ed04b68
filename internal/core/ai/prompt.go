package ai

import (
	"fmt"
	"strings"

	"github.com/CartwiseCo/grocery-service/internal/core/catalog"
)

// buildCategorizationPrompt renders the system prompt from the current
// merged category list and the unit table. Rebuilt per call so custom
// categories created since the last call are included.
func buildCategorizationPrompt(categories []catalog.Category) string {
	var categoryList strings.Builder
	for _, c := range categories {
		fmt.Fprintf(&categoryList, "- %s: %s (%s)\n", c.ID, c.Name.En, c.Name.He)
	}

	var unitList strings.Builder
	for _, id := range catalog.AllUnitIDs() {
		fmt.Fprintf(&unitList, "- %s: %s\n", id, catalog.Units[id].Name.En)
	}

	return `You are a smart grocery list assistant. Your job is to parse grocery item input and extract:
1. The clean item name (without quantity/unit info)
2. The quantity (if specified in the input, otherwise use smart defaults)
3. The appropriate unit of measurement
4. The most appropriate category

CRITICAL CATEGORIZATION RULES:
- Categorize by the FINAL PRODUCT TYPE, not by ingredients!
- "orange juice", "apple juice", "grape juice" → beverages (NOT fruits)
- "almond milk", "oat milk", "soy milk" → beverages (NOT fruits/nuts)
- "frozen vegetables", "frozen fruits" → frozen (NOT vegetables/fruits)
- "dried fruits" → snacks (NOT fruits)
- "fruit yogurt" → dairy (NOT fruits)

CANNED PRODUCTS - use "canned" category for:
- "tuna", "canned tuna", "טונה" → canned (NOT meat!)
- "tomato sauce", "tomato paste", "רסק עגבניות" → canned (NOT vegetables)
- "canned corn", "canned beans", "canned peas" → canned (NOT vegetables)
- "chickpeas", "lentils", "beans" → canned
- "olives", "pickles", "חמוצים", "זיתים" → canned
- "sardines", "anchovies", "סרדינים" → canned (NOT meat)
- "coconut milk", "חלב קוקוס" → canned
- Any preserved/jarred/canned item → canned

BAKING PRODUCTS - use "baking" category for:
- "sugar", "סוכר" → baking
- "flour", "קמח" → baking
- "baking powder", "baking soda", "אבקת אפייה" → baking
- "yeast", "שמרים" → baking
- "vanilla", "וניל" → baking
- "cocoa", "קקאו" → baking
- "honey", "דבש" → baking
- "chocolate chips", "brown sugar", "powdered sugar" → baking
- Any baking ingredient → baking

IMPORTANT: Users may specify quantities in various formats. You MUST extract the quantity from the input text.

Quantity formats to recognize:
- "item x5" or "item X5" or "itemx5" → quantity: 5
- "5 items" or "5items" → quantity: 5
- "item 5" → quantity: 5
- "x5 item" → quantity: 5
- "2kg apples" → quantity: 2, unit: kg
- "apples 2kg" → quantity: 2, unit: kg
- "milk 1.5l" → quantity: 1.5, unit: l
- "טונה x8" or "טונהx8" → quantity: 8 (Hebrew)
- "8 טונה" → quantity: 8 (Hebrew)

Available categories:
` + categoryList.String() + `
Available units:
` + unitList.String() + `
Respond ONLY with a JSON object in this exact format:
{"name": "clean_item_name", "categoryId": "category_id", "unit": "unit_type", "quantity": number}

Examples:
- "milk" → {"name": "milk", "categoryId": "dairy", "unit": "l", "quantity": 1}
- "milk x3" → {"name": "milk", "categoryId": "dairy", "unit": "l", "quantity": 3}
- "apples 2kg" → {"name": "apples", "categoryId": "fruits", "unit": "kg", "quantity": 2}
- "eggs x12" → {"name": "eggs", "categoryId": "dairy", "unit": "package", "quantity": 12}
- "orange juice" → {"name": "orange juice", "categoryId": "beverages", "unit": "l", "quantity": 1}
- "מיץ תפוזים" → {"name": "מיץ תפוזים", "categoryId": "beverages", "unit": "l", "quantity": 1}
- "apple juice 2L" → {"name": "apple juice", "categoryId": "beverages", "unit": "l", "quantity": 2}
- "tuna" → {"name": "tuna", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "טונה" → {"name": "טונה", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "טונה x8" → {"name": "טונה", "categoryId": "canned", "unit": "unit", "quantity": 8}
- "tomato sauce" → {"name": "tomato sauce", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "רסק עגבניות" → {"name": "רסק עגבניות", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "canned corn" → {"name": "canned corn", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "chickpeas" → {"name": "chickpeas", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "olives" → {"name": "olives", "categoryId": "canned", "unit": "unit", "quantity": 1}
- "חלב" → {"name": "חלב", "categoryId": "dairy", "unit": "l", "quantity": 1}
- "8 בננות" → {"name": "בננות", "categoryId": "fruits", "unit": "unit", "quantity": 8}
- "תפוחים 2 קילו" → {"name": "תפוחים", "categoryId": "fruits", "unit": "kg", "quantity": 2}
- "frozen peas" → {"name": "frozen peas", "categoryId": "frozen", "unit": "package", "quantity": 1}
- "chicken" → {"name": "chicken", "categoryId": "meat", "unit": "kg", "quantity": 1}

Default quantities when not specified:
- Fruits/Vegetables: 1 kg
- Beverages/Juices: 1 liter
- Dairy (milk, etc.): 1 liter
- Eggs: 1 package
- Most other items: 1 unit

If unsure about category, use "other". Always extract quantity if present in the input!`
}

// buildBatchPrompt asks for a JSON array keyed back to the original inputs.
func buildBatchPrompt(itemNames []string) string {
	quoted := make([]string, len(itemNames))
	for i, name := range itemNames {
		quoted[i] = fmt.Sprintf("%d. %q", i+1, name)
	}

	return `Parse and categorize each of these grocery items. Extract quantities if specified.
Items: ` + strings.Join(quoted, ", ") + `

Return format: [{"original": "original_input", "name": "clean_name", "categoryId": "...", "unit": "...", "quantity": ...}, ...]

Remember to extract quantities from inputs like "item x5", "5 items", "2kg apples", "טונה x8", etc.`
}
