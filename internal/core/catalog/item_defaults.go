package catalog

import "strings"

// ItemDefault gives the preferred unit and default quantity for a specific
// grocery noun, overriding the category-level defaults.
type ItemDefault struct {
	Unit     string
	Quantity float64
}

// itemDefaultsEn is keyed by lowercased English item names.
var itemDefaultsEn = map[string]ItemDefault{
	// Fruits - by weight (kg)
	"apple":        {Unit: UnitKg, Quantity: 1},
	"apples":       {Unit: UnitKg, Quantity: 1},
	"banana":       {Unit: UnitKg, Quantity: 1},
	"bananas":      {Unit: UnitKg, Quantity: 1},
	"orange":       {Unit: UnitKg, Quantity: 1},
	"oranges":      {Unit: UnitKg, Quantity: 1},
	"grape":        {Unit: UnitKg, Quantity: 1},
	"grapes":       {Unit: UnitKg, Quantity: 1},
	"mango":        {Unit: UnitKg, Quantity: 1},
	"mangoes":      {Unit: UnitKg, Quantity: 1},
	"peach":        {Unit: UnitKg, Quantity: 1},
	"peaches":      {Unit: UnitKg, Quantity: 1},
	"pear":         {Unit: UnitKg, Quantity: 1},
	"pears":        {Unit: UnitKg, Quantity: 1},
	"plum":         {Unit: UnitKg, Quantity: 1},
	"plums":        {Unit: UnitKg, Quantity: 1},
	"strawberry":   {Unit: UnitKg, Quantity: 0.5},
	"strawberries": {Unit: UnitKg, Quantity: 0.5},
	"cherry":       {Unit: UnitKg, Quantity: 0.5},
	"cherries":     {Unit: UnitKg, Quantity: 0.5},
	"watermelon":   {Unit: UnitPiece, Quantity: 1},
	"melon":        {Unit: UnitPiece, Quantity: 1},
	"pineapple":    {Unit: UnitPiece, Quantity: 1},
	"coconut":      {Unit: UnitPiece, Quantity: 1},

	// Fruits - by unit
	"avocado":     {Unit: UnitPiece, Quantity: 2},
	"avocados":    {Unit: UnitPiece, Quantity: 2},
	"lemon":       {Unit: UnitPiece, Quantity: 3},
	"lemons":      {Unit: UnitPiece, Quantity: 3},
	"lime":        {Unit: UnitPiece, Quantity: 3},
	"limes":       {Unit: UnitPiece, Quantity: 3},
	"kiwi":        {Unit: UnitPiece, Quantity: 4},
	"pomegranate": {Unit: UnitPiece, Quantity: 2},

	// Vegetables - by weight (kg)
	"tomato":      {Unit: UnitKg, Quantity: 1},
	"tomatoes":    {Unit: UnitKg, Quantity: 1},
	"potato":      {Unit: UnitKg, Quantity: 1},
	"potatoes":    {Unit: UnitKg, Quantity: 1},
	"carrot":      {Unit: UnitKg, Quantity: 1},
	"carrots":     {Unit: UnitKg, Quantity: 1},
	"cucumber":    {Unit: UnitKg, Quantity: 1},
	"cucumbers":   {Unit: UnitKg, Quantity: 1},
	"onion":       {Unit: UnitKg, Quantity: 1},
	"onions":      {Unit: UnitKg, Quantity: 1},
	"pepper":      {Unit: UnitKg, Quantity: 1},
	"peppers":     {Unit: UnitKg, Quantity: 1},
	"zucchini":    {Unit: UnitKg, Quantity: 1},
	"eggplant":    {Unit: UnitKg, Quantity: 1},
	"spinach":     {Unit: UnitKg, Quantity: 0.5},
	"lettuce":     {Unit: UnitPiece, Quantity: 1},
	"cabbage":     {Unit: UnitPiece, Quantity: 1},
	"broccoli":    {Unit: UnitPiece, Quantity: 1},
	"cauliflower": {Unit: UnitPiece, Quantity: 1},
	"mushroom":    {Unit: UnitKg, Quantity: 0.5},
	"mushrooms":   {Unit: UnitKg, Quantity: 0.5},

	// Vegetables - by unit
	"garlic": {Unit: UnitPiece, Quantity: 2},
	"ginger": {Unit: UnitPiece, Quantity: 1},
	"corn":   {Unit: UnitPiece, Quantity: 3},

	// Vegetables - by bunch
	"parsley":      {Unit: UnitBunch, Quantity: 1},
	"cilantro":     {Unit: UnitBunch, Quantity: 1},
	"coriander":    {Unit: UnitBunch, Quantity: 1},
	"dill":         {Unit: UnitBunch, Quantity: 1},
	"mint":         {Unit: UnitBunch, Quantity: 1},
	"basil":        {Unit: UnitBunch, Quantity: 1},
	"green onion":  {Unit: UnitBunch, Quantity: 1},
	"green onions": {Unit: UnitBunch, Quantity: 1},
	"scallion":     {Unit: UnitBunch, Quantity: 1},
	"scallions":    {Unit: UnitBunch, Quantity: 1},
	"celery":       {Unit: UnitBunch, Quantity: 1},

	// Dairy - by unit/package
	"milk":           {Unit: UnitLiter, Quantity: 1},
	"cheese":         {Unit: UnitPackage, Quantity: 1},
	"yogurt":         {Unit: UnitPiece, Quantity: 4},
	"butter":         {Unit: UnitPackage, Quantity: 1},
	"cream":          {Unit: UnitPiece, Quantity: 1},
	"sour cream":     {Unit: UnitPiece, Quantity: 1},
	"cottage cheese": {Unit: UnitPiece, Quantity: 1},
	"cream cheese":   {Unit: UnitPackage, Quantity: 1},

	// Eggs
	"eggs": {Unit: UnitPackage, Quantity: 1},
	"egg":  {Unit: UnitPackage, Quantity: 1},

	// Meat - by weight
	"chicken":        {Unit: UnitKg, Quantity: 1},
	"beef":           {Unit: UnitKg, Quantity: 0.5},
	"pork":           {Unit: UnitKg, Quantity: 0.5},
	"lamb":           {Unit: UnitKg, Quantity: 0.5},
	"turkey":         {Unit: UnitKg, Quantity: 1},
	"fish":           {Unit: UnitKg, Quantity: 0.5},
	"salmon":         {Unit: UnitKg, Quantity: 0.5},
	"tuna":           {Unit: UnitPiece, Quantity: 2},
	"ground beef":    {Unit: UnitKg, Quantity: 0.5},
	"ground chicken": {Unit: UnitKg, Quantity: 0.5},
	"steak":          {Unit: UnitKg, Quantity: 0.5},
	"sausage":        {Unit: UnitPackage, Quantity: 1},
	"sausages":       {Unit: UnitPackage, Quantity: 1},
	"bacon":          {Unit: UnitPackage, Quantity: 1},
	"deli meat":      {Unit: UnitGram, Quantity: 200},

	// Bakery - by unit
	"bread":      {Unit: UnitPiece, Quantity: 1},
	"bagel":      {Unit: UnitPiece, Quantity: 4},
	"bagels":     {Unit: UnitPiece, Quantity: 4},
	"croissant":  {Unit: UnitPiece, Quantity: 4},
	"croissants": {Unit: UnitPiece, Quantity: 4},
	"muffin":     {Unit: UnitPiece, Quantity: 4},
	"muffins":    {Unit: UnitPiece, Quantity: 4},
	"roll":       {Unit: UnitPiece, Quantity: 6},
	"rolls":      {Unit: UnitPiece, Quantity: 6},
	"baguette":   {Unit: UnitPiece, Quantity: 1},
	"pita":       {Unit: UnitPackage, Quantity: 1},
	"tortilla":   {Unit: UnitPackage, Quantity: 1},
	"tortillas":  {Unit: UnitPackage, Quantity: 1},
	"cake":       {Unit: UnitPiece, Quantity: 1},
	"pie":        {Unit: UnitPiece, Quantity: 1},

	// Frozen - by package
	"ice cream":         {Unit: UnitPiece, Quantity: 1},
	"frozen pizza":      {Unit: UnitPiece, Quantity: 1},
	"frozen vegetables": {Unit: UnitPackage, Quantity: 1},
	"frozen fruit":      {Unit: UnitPackage, Quantity: 1},
	"frozen fish":       {Unit: UnitPackage, Quantity: 1},

	// Beverages - by volume
	"juice":         {Unit: UnitLiter, Quantity: 1},
	"soda":          {Unit: UnitLiter, Quantity: 1.5},
	"water":         {Unit: UnitLiter, Quantity: 1.5},
	"mineral water": {Unit: UnitLiter, Quantity: 1.5},
	"coffee":        {Unit: UnitPackage, Quantity: 1},
	"tea":           {Unit: UnitPackage, Quantity: 1},
	"wine":          {Unit: UnitPiece, Quantity: 1},
	"beer":          {Unit: UnitPiece, Quantity: 6},

	// Pantry - by package
	"pasta":         {Unit: UnitPackage, Quantity: 1},
	"rice":          {Unit: UnitPackage, Quantity: 1},
	"cereal":        {Unit: UnitPackage, Quantity: 1},
	"oatmeal":       {Unit: UnitPackage, Quantity: 1},
	"flour":         {Unit: UnitKg, Quantity: 1},
	"sugar":         {Unit: UnitKg, Quantity: 1},
	"salt":          {Unit: UnitPackage, Quantity: 1},
	"oil":           {Unit: UnitLiter, Quantity: 1},
	"olive oil":     {Unit: UnitLiter, Quantity: 1},
	"vinegar":       {Unit: UnitPiece, Quantity: 1},
	"soy sauce":     {Unit: UnitPiece, Quantity: 1},
	"ketchup":       {Unit: UnitPiece, Quantity: 1},
	"mayonnaise":    {Unit: UnitPiece, Quantity: 1},
	"mustard":       {Unit: UnitPiece, Quantity: 1},
	"honey":         {Unit: UnitPiece, Quantity: 1},
	"jam":           {Unit: UnitPiece, Quantity: 1},
	"peanut butter": {Unit: UnitPiece, Quantity: 1},
	"nutella":       {Unit: UnitPiece, Quantity: 1},

	// Snacks - by package
	"chips":       {Unit: UnitPackage, Quantity: 1},
	"cookies":     {Unit: UnitPackage, Quantity: 1},
	"crackers":    {Unit: UnitPackage, Quantity: 1},
	"nuts":        {Unit: UnitPackage, Quantity: 1},
	"chocolate":   {Unit: UnitPiece, Quantity: 1},
	"candy":       {Unit: UnitPackage, Quantity: 1},
	"popcorn":     {Unit: UnitPackage, Quantity: 1},
	"granola":     {Unit: UnitPackage, Quantity: 1},
	"protein bar": {Unit: UnitPackage, Quantity: 1},

	// Household - by unit
	"toilet paper":      {Unit: UnitPackage, Quantity: 1},
	"paper towels":      {Unit: UnitPackage, Quantity: 1},
	"tissues":           {Unit: UnitPackage, Quantity: 1},
	"detergent":         {Unit: UnitPiece, Quantity: 1},
	"dish soap":         {Unit: UnitPiece, Quantity: 1},
	"laundry detergent": {Unit: UnitPiece, Quantity: 1},
	"fabric softener":   {Unit: UnitPiece, Quantity: 1},
	"bleach":            {Unit: UnitPiece, Quantity: 1},
	"sponge":            {Unit: UnitPackage, Quantity: 1},
	"sponges":           {Unit: UnitPackage, Quantity: 1},
	"trash bags":        {Unit: UnitPackage, Quantity: 1},
	"aluminum foil":     {Unit: UnitPiece, Quantity: 1},
	"plastic wrap":      {Unit: UnitPiece, Quantity: 1},
	"zip bags":          {Unit: UnitPackage, Quantity: 1},

	// Personal Care - by unit
	"shampoo":      {Unit: UnitPiece, Quantity: 1},
	"conditioner":  {Unit: UnitPiece, Quantity: 1},
	"body wash":    {Unit: UnitPiece, Quantity: 1},
	"soap":         {Unit: UnitPiece, Quantity: 1},
	"toothpaste":   {Unit: UnitPiece, Quantity: 1},
	"toothbrush":   {Unit: UnitPiece, Quantity: 1},
	"deodorant":    {Unit: UnitPiece, Quantity: 1},
	"lotion":       {Unit: UnitPiece, Quantity: 1},
	"sunscreen":    {Unit: UnitPiece, Quantity: 1},
	"razor blades": {Unit: UnitPackage, Quantity: 1},
	"cotton pads":  {Unit: UnitPackage, Quantity: 1},
}

// itemDefaultsHe is keyed by Hebrew item names.
var itemDefaultsHe = map[string]ItemDefault{
	// Fruits - by weight
	"תפוח":    {Unit: UnitKg, Quantity: 1},
	"תפוחים":  {Unit: UnitKg, Quantity: 1},
	"בננה":    {Unit: UnitKg, Quantity: 1},
	"בננות":   {Unit: UnitKg, Quantity: 1},
	"תפוז":    {Unit: UnitKg, Quantity: 1},
	"תפוזים":  {Unit: UnitKg, Quantity: 1},
	"ענבים":   {Unit: UnitKg, Quantity: 1},
	"מנגו":    {Unit: UnitKg, Quantity: 1},
	"אפרסק":   {Unit: UnitKg, Quantity: 1},
	"אפרסקים": {Unit: UnitKg, Quantity: 1},
	"אגס":     {Unit: UnitKg, Quantity: 1},
	"שזיף":    {Unit: UnitKg, Quantity: 1},
	"תות":     {Unit: UnitKg, Quantity: 0.5},
	"תותים":   {Unit: UnitKg, Quantity: 0.5},
	"דובדבן":  {Unit: UnitKg, Quantity: 0.5},
	"אבטיח":   {Unit: UnitPiece, Quantity: 1},
	"מלון":    {Unit: UnitPiece, Quantity: 1},
	"אננס":    {Unit: UnitPiece, Quantity: 1},

	// Fruits - by unit
	"אבוקדו":  {Unit: UnitPiece, Quantity: 2},
	"לימון":   {Unit: UnitPiece, Quantity: 3},
	"לימונים": {Unit: UnitPiece, Quantity: 3},
	"ליים":    {Unit: UnitPiece, Quantity: 3},
	"קיווי":   {Unit: UnitPiece, Quantity: 4},
	"רימון":   {Unit: UnitPiece, Quantity: 2},

	// Vegetables - by weight
	"עגבניה":    {Unit: UnitKg, Quantity: 1},
	"עגבניות":   {Unit: UnitKg, Quantity: 1},
	"תפוחאדמה":  {Unit: UnitKg, Quantity: 1},
	"תפוח אדמה": {Unit: UnitKg, Quantity: 1},
	"גזר":       {Unit: UnitKg, Quantity: 1},
	"מלפפון":    {Unit: UnitKg, Quantity: 1},
	"מלפפונים":  {Unit: UnitKg, Quantity: 1},
	"בצל":       {Unit: UnitKg, Quantity: 1},
	"פלפל":      {Unit: UnitKg, Quantity: 1},
	"קישוא":     {Unit: UnitKg, Quantity: 1},
	"חציל":      {Unit: UnitKg, Quantity: 1},
	"תרד":       {Unit: UnitKg, Quantity: 0.5},
	"חסה":       {Unit: UnitPiece, Quantity: 1},
	"כרוב":      {Unit: UnitPiece, Quantity: 1},
	"ברוקולי":   {Unit: UnitPiece, Quantity: 1},
	"כרובית":    {Unit: UnitPiece, Quantity: 1},
	"פטריות":    {Unit: UnitKg, Quantity: 0.5},

	// Vegetables - by unit
	"שום":      {Unit: UnitPiece, Quantity: 2},
	"ג'ינג'ר": {Unit: UnitPiece, Quantity: 1},
	"תירס":     {Unit: UnitPiece, Quantity: 3},

	// Vegetables - by bunch
	"פטרוזיליה": {Unit: UnitBunch, Quantity: 1},
	"כוסברה":    {Unit: UnitBunch, Quantity: 1},
	"שמיר":      {Unit: UnitBunch, Quantity: 1},
	"נענע":      {Unit: UnitBunch, Quantity: 1},
	"בזיליקום":  {Unit: UnitBunch, Quantity: 1},
	"בצל ירוק":  {Unit: UnitBunch, Quantity: 1},
	"סלרי":      {Unit: UnitBunch, Quantity: 1},

	// Dairy
	"חלב":    {Unit: UnitLiter, Quantity: 1},
	"גבינה":  {Unit: UnitPackage, Quantity: 1},
	"יוגורט": {Unit: UnitPiece, Quantity: 4},
	"חמאה":   {Unit: UnitPackage, Quantity: 1},
	"שמנת":   {Unit: UnitPiece, Quantity: 1},
	"קוטג":   {Unit: UnitPiece, Quantity: 1},
	"קוטג'":  {Unit: UnitPiece, Quantity: 1},
	"לבנה":   {Unit: UnitPiece, Quantity: 1},

	// Eggs
	"ביצים": {Unit: UnitPackage, Quantity: 1},
	"ביצה":  {Unit: UnitPackage, Quantity: 1},

	// Meat
	"עוף":       {Unit: UnitKg, Quantity: 1},
	"בקר":       {Unit: UnitKg, Quantity: 0.5},
	"כבש":       {Unit: UnitKg, Quantity: 0.5},
	"הודו":      {Unit: UnitKg, Quantity: 1},
	"דג":        {Unit: UnitKg, Quantity: 0.5},
	"סלמון":     {Unit: UnitKg, Quantity: 0.5},
	"טונה":      {Unit: UnitPiece, Quantity: 2},
	"בשר טחון":  {Unit: UnitKg, Quantity: 0.5},
	"סטייק":     {Unit: UnitKg, Quantity: 0.5},
	"נקניקיות":  {Unit: UnitPackage, Quantity: 1},

	// Bakery
	"לחם":     {Unit: UnitPiece, Quantity: 1},
	"בייגל":   {Unit: UnitPiece, Quantity: 4},
	"קרואסון": {Unit: UnitPiece, Quantity: 4},
	"מאפין":   {Unit: UnitPiece, Quantity: 4},
	"לחמניה":  {Unit: UnitPiece, Quantity: 6},
	"לחמניות": {Unit: UnitPiece, Quantity: 6},
	"באגט":    {Unit: UnitPiece, Quantity: 1},
	"פיתה":    {Unit: UnitPackage, Quantity: 1},
	"טורטייה": {Unit: UnitPackage, Quantity: 1},
	"עוגה":    {Unit: UnitPiece, Quantity: 1},

	// Beverages
	"מיץ": {Unit: UnitLiter, Quantity: 1},
	"מים": {Unit: UnitLiter, Quantity: 1.5},
	"קפה": {Unit: UnitPackage, Quantity: 1},
	"תה":  {Unit: UnitPackage, Quantity: 1},
	"יין": {Unit: UnitPiece, Quantity: 1},
	"בירה": {Unit: UnitPiece, Quantity: 6},

	// Pantry
	"פסטה":      {Unit: UnitPackage, Quantity: 1},
	"אורז":      {Unit: UnitPackage, Quantity: 1},
	"קורנפלקס":  {Unit: UnitPackage, Quantity: 1},
	"שיבולת":    {Unit: UnitPackage, Quantity: 1},
	"קמח":       {Unit: UnitKg, Quantity: 1},
	"סוכר":      {Unit: UnitKg, Quantity: 1},
	"מלח":       {Unit: UnitPackage, Quantity: 1},
	"שמן":       {Unit: UnitLiter, Quantity: 1},
	"שמן זית":   {Unit: UnitLiter, Quantity: 1},
	"חומץ":      {Unit: UnitPiece, Quantity: 1},
	"קטשופ":     {Unit: UnitPiece, Quantity: 1},
	"מיונז":     {Unit: UnitPiece, Quantity: 1},
	"חרדל":      {Unit: UnitPiece, Quantity: 1},
	"דבש":       {Unit: UnitPiece, Quantity: 1},
	"ריבה":      {Unit: UnitPiece, Quantity: 1},

	// Snacks
	"צ'יפס":   {Unit: UnitPackage, Quantity: 1},
	"עוגיות":   {Unit: UnitPackage, Quantity: 1},
	"קרקרים":   {Unit: UnitPackage, Quantity: 1},
	"אגוזים":   {Unit: UnitPackage, Quantity: 1},
	"שוקולד":   {Unit: UnitPiece, Quantity: 1},
	"סוכריות":  {Unit: UnitPackage, Quantity: 1},
	"פופקורן":  {Unit: UnitPackage, Quantity: 1},

	// Household
	"נייר טואלט":  {Unit: UnitPackage, Quantity: 1},
	"מגבות נייר":  {Unit: UnitPackage, Quantity: 1},
	"טישו":        {Unit: UnitPackage, Quantity: 1},
	"סבון כלים":   {Unit: UnitPiece, Quantity: 1},
	"אבקת כביסה":  {Unit: UnitPiece, Quantity: 1},
	"מרכך":        {Unit: UnitPiece, Quantity: 1},
	"אקונומיקה":   {Unit: UnitPiece, Quantity: 1},
	"ספוג":        {Unit: UnitPackage, Quantity: 1},
	"שקיות אשפה":  {Unit: UnitPackage, Quantity: 1},
	"נייר כסף":    {Unit: UnitPiece, Quantity: 1},
	"ניילון נצמד": {Unit: UnitPiece, Quantity: 1},

	// Personal Care
	"שמפו":          {Unit: UnitPiece, Quantity: 1},
	"מרכך שיער":     {Unit: UnitPiece, Quantity: 1},
	"סבון גוף":      {Unit: UnitPiece, Quantity: 1},
	"סבון":          {Unit: UnitPiece, Quantity: 1},
	"משחת שיניים":   {Unit: UnitPiece, Quantity: 1},
	"מברשת שיניים":  {Unit: UnitPiece, Quantity: 1},
	"דאודורנט":      {Unit: UnitPiece, Quantity: 1},
	"קרם":           {Unit: UnitPiece, Quantity: 1},
	"קרם הגנה":      {Unit: UnitPiece, Quantity: 1},
}

// LookupItemDefault returns the per-item unit/quantity default for a name,
// trying the English table first and then the Hebrew one. The second return
// value is false when the item has no specific entry.
func LookupItemDefault(itemName string) (ItemDefault, bool) {
	key := strings.ToLower(strings.TrimSpace(itemName))

	if def, ok := itemDefaultsEn[key]; ok {
		return def, true
	}
	if def, ok := itemDefaultsHe[key]; ok {
		return def, true
	}
	return ItemDefault{}, false
}
