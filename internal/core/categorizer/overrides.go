package categorizer

import "github.com/CartwiseCo/grocery-service/internal/core/catalog"

// compoundOverride maps an ambiguous or compound term straight to a category,
// bypassing ingredient-based keyword matching. "apple juice" contains "apple"
// but belongs with beverages, and "tuna" is sold canned, not at the butcher.
type compoundOverride struct {
	CategoryID string
	Unit       string
	Quantity   float64
}

var compoundOverrides = map[string]compoundOverride{
	// Juices go with beverages, not the fruit they were pressed from.
	"juice":           {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"orange juice":    {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"apple juice":     {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"grape juice":     {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"cranberry juice": {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"tomato juice":    {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"carrot juice":    {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"מיץ":             {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"מיץ תפוזים":      {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"מיץ תפוחים":      {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"מיץ ענבים":       {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"מיץ גזר":         {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},

	// Plant milks are beverages, not dairy.
	"almond milk":     {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"oat milk":        {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"soy milk":        {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"חלב שקדים":       {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"חלב שיבולת שועל": {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},
	"חלב סויה":        {CategoryID: "beverages", Unit: catalog.UnitLiter, Quantity: 1},

	// Preserved goods go with canned, whatever the ingredient.
	"tuna":             {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned":           {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned tuna":      {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned corn":      {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned beans":     {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned tomatoes":  {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned peas":      {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"canned chickpeas": {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"tomato sauce":     {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"tomato paste":     {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"coconut milk":     {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"sardines":         {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"olives":           {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"pickles":          {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"chickpeas":        {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"beans":            {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"lentils":          {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"טונה":             {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"שימורים":          {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"תירס":             {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"תירס משומר":       {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"טונה בשימורים":    {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"רסק עגבניות":      {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"רוטב עגבניות":     {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"חלב קוקוס":        {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"סרדינים":          {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"זיתים":            {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"חמוצים":           {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"חומוס":            {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"שעועית":           {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"עדשים":            {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"ketchup":          {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},
	"קטשופ":            {CategoryID: "canned", Unit: catalog.UnitPiece, Quantity: 1},

	// Anything marked frozen belongs with frozen goods.
	"frozen": {CategoryID: "frozen", Unit: catalog.UnitPackage, Quantity: 1},
	"קפוא":   {CategoryID: "frozen", Unit: catalog.UnitPackage, Quantity: 1},
	"קפואים": {CategoryID: "frozen", Unit: catalog.UnitPackage, Quantity: 1},
	"קפואה":  {CategoryID: "frozen", Unit: catalog.UnitPackage, Quantity: 1},

	// Dried fruits are snacks, not produce.
	"dried fruit":  {CategoryID: "snacks", Unit: catalog.UnitPackage, Quantity: 1},
	"dried fruits": {CategoryID: "snacks", Unit: catalog.UnitPackage, Quantity: 1},
	"פירות יבשים":  {CategoryID: "snacks", Unit: catalog.UnitPackage, Quantity: 1},

	// Baking staples.
	"sugar":         {CategoryID: "baking", Unit: catalog.UnitKg, Quantity: 1},
	"flour":         {CategoryID: "baking", Unit: catalog.UnitKg, Quantity: 1},
	"baking powder": {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"baking soda":   {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"yeast":         {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"vanilla":       {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"cocoa":         {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"honey":         {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"סוכר":          {CategoryID: "baking", Unit: catalog.UnitKg, Quantity: 1},
	"קמח":           {CategoryID: "baking", Unit: catalog.UnitKg, Quantity: 1},
	"אבקת אפייה":    {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"שמרים":         {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"וניל":          {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"קקאו":          {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
	"דבש":           {CategoryID: "baking", Unit: catalog.UnitPiece, Quantity: 1},
}
