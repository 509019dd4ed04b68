package catalog

// OtherCategoryID is the catch-all category every registry must contain.
const OtherCategoryID = "other"

// Category groups grocery items. Built-in categories carry the keyword lists
// the matcher runs against; user-created ones are merged in by the Registry.
type Category struct {
	ID              string        `json:"id"`
	Name            BilingualText `json:"name"`
	Color           string        `json:"color"`
	Icon            string        `json:"icon,omitempty"`
	IsDefault       bool          `json:"isDefault"`
	KeywordsEn      []string      `json:"keywordsEn"`
	KeywordsHe      []string      `json:"keywordsHe"`
	DefaultUnit     string        `json:"defaultUnit"`
	DefaultQuantity float64       `json:"defaultQuantity"`
}

// Keywords returns the keyword list for the detected language, falling back
// to English when the Hebrew list is empty.
func (c Category) Keywords(lang Language) []string {
	if lang == LangHE && len(c.KeywordsHe) > 0 {
		return c.KeywordsHe
	}
	return c.KeywordsEn
}

// DefaultCategories are the built-in categories, in matching-priority order.
// "other" is the catch-all and stays last even after custom categories are
// merged in.
var DefaultCategories = []Category{
	{
		ID:        "fruits",
		Name:      BilingualText{En: "Fruits", He: "פירות"},
		Color:     "emerald",
		Icon:      "Apple",
		IsDefault: true,
		KeywordsEn: []string{
			"apple", "apples", "banana", "bananas", "orange", "oranges", "grape", "grapes",
			"mango", "mangoes", "peach", "peaches", "pear", "pears", "plum", "plums",
			"strawberry", "strawberries", "cherry", "cherries", "watermelon", "melon",
			"pineapple", "coconut", "avocado", "avocados", "lemon", "lemons", "lime", "limes",
			"kiwi", "pomegranate", "blueberry", "blueberries", "raspberry", "raspberries",
			"blackberry", "blackberries", "papaya", "passion fruit", "dragon fruit",
			"grapefruit", "tangerine", "clementine", "nectarine", "apricot", "fig", "date",
		},
		KeywordsHe: []string{
			"תפוח", "תפוחים", "בננה", "בננות", "תפוז", "תפוזים", "ענבים", "מנגו",
			"אפרסק", "אפרסקים", "אגס", "שזיף", "תות", "תותים", "דובדבן", "אבטיח",
			"מלון", "אננס", "קוקוס", "אבוקדו", "לימון", "לימונים", "ליים", "קיווי",
			"רימון", "אוכמניות", "פטל", "פפאיה", "פסיפלורה", "אשכולית", "קלמנטינה",
			"נקטרינה", "משמש", "תאנה", "תמר",
		},
		DefaultUnit:     UnitKg,
		DefaultQuantity: 1,
	},
	{
		ID:        "vegetables",
		Name:      BilingualText{En: "Vegetables", He: "ירקות"},
		Color:     "lime",
		Icon:      "Carrot",
		IsDefault: true,
		KeywordsEn: []string{
			"tomato", "tomatoes", "potato", "potatoes", "carrot", "carrots", "cucumber",
			"cucumbers", "onion", "onions", "pepper", "peppers", "zucchini", "eggplant",
			"spinach", "lettuce", "cabbage", "broccoli", "cauliflower", "mushroom",
			"mushrooms", "garlic", "ginger", "corn", "parsley", "cilantro", "coriander",
			"dill", "mint", "basil", "green onion", "green onions", "scallion", "scallions",
			"celery", "asparagus", "artichoke", "beet", "beets", "radish", "turnip",
			"sweet potato", "pumpkin", "squash", "kale", "arugula", "chard", "leek",
			"fennel", "okra", "peas", "green beans", "bean sprouts",
		},
		KeywordsHe: []string{
			"עגבניה", "עגבניות", "תפוח אדמה", "תפוחי אדמה", "גזר", "מלפפון", "מלפפונים",
			"בצל", "פלפל", "קישוא", "חציל", "תרד", "חסה", "כרוב", "ברוקולי", "כרובית",
			"פטריות", "שום", "ג'ינג'ר", "תירס", "פטרוזיליה", "כוסברה", "שמיר", "נענע",
			"בזיליקום", "בצל ירוק", "סלרי", "אספרגוס", "ארטישוק", "סלק", "צנון",
			"בטטה", "דלעת", "קייל", "רוקט", "מנגולד", "כרישה", "שומר", "במיה",
			"אפונה", "שעועית ירוקה", "נבטים",
		},
		DefaultUnit:     UnitKg,
		DefaultQuantity: 1,
	},
	{
		ID:        "dairy",
		Name:      BilingualText{En: "Dairy", He: "מוצרי חלב"},
		Color:     "sky",
		Icon:      "Milk",
		IsDefault: true,
		KeywordsEn: []string{
			"milk", "cheese", "yogurt", "butter", "cream", "sour cream", "cottage cheese",
			"cream cheese", "mozzarella", "cheddar", "parmesan", "feta", "brie", "gouda",
			"ricotta", "mascarpone", "whipped cream", "half and half", "eggs", "egg",
		},
		KeywordsHe: []string{
			"חלב", "גבינה", "יוגורט", "חמאה", "שמנת", "שמנת חמוצה", "קוטג", "קוטג'",
			"גבינת שמנת", "מוצרלה", "צ'דר", "פרמזן", "פטה", "ברי", "גאודה", "ריקוטה",
			"מסקרפונה", "קצפת", "ביצים", "ביצה", "לבנה", "גבינה צהובה", "גבינה לבנה",
		},
		DefaultUnit:     UnitPiece,
		DefaultQuantity: 1,
	},
	{
		ID:        "meat",
		Name:      BilingualText{En: "Meat", He: "בשר"},
		Color:     "rose",
		Icon:      "Beef",
		IsDefault: true,
		KeywordsEn: []string{
			"chicken", "beef", "pork", "lamb", "turkey", "fish", "salmon",
			"ground beef", "ground chicken", "ground turkey", "steak", "sausage",
			"sausages", "bacon", "ham", "deli meat", "hot dog", "hot dogs", "meatballs",
			"ribs", "wings", "drumsticks", "thighs", "breast", "fillet", "shrimp",
			"prawns", "crab", "lobster", "scallops", "mussels", "clams", "oysters",
			"cod", "tilapia", "trout", "halibut", "fresh fish",
		},
		KeywordsHe: []string{
			"עוף", "בקר", "כבש", "הודו", "דג", "סלמון", "בשר טחון", "סטייק",
			"נקניקיות", "נקניק", "שניצל", "כנפיים", "שוקיים", "חזה", "פילה", "שרימפס",
			"סרטנים", "לובסטר", "צדפות", "קלמרי", "דג בורי", "דג טרי",
			"דג אמנון", "קבב", "המבורגר", "קציצות",
		},
		DefaultUnit:     UnitKg,
		DefaultQuantity: 0.5,
	},
	{
		ID:        "bakery",
		Name:      BilingualText{En: "Bakery", He: "מאפים"},
		Color:     "amber",
		Icon:      "Croissant",
		IsDefault: true,
		KeywordsEn: []string{
			"bread", "bagel", "bagels", "croissant", "croissants", "muffin", "muffins",
			"roll", "rolls", "baguette", "pita", "tortilla", "tortillas", "cake", "pie",
			"donut", "donuts", "pastry", "pastries", "danish", "scone", "biscuit",
			"cornbread", "focaccia", "ciabatta", "sourdough", "rye bread", "whole wheat",
			"brioche", "challah", "naan", "flatbread", "crackers", "breadsticks",
		},
		KeywordsHe: []string{
			"לחם", "בייגל", "קרואסון", "מאפין", "לחמניה", "לחמניות", "באגט", "פיתה",
			"טורטייה", "עוגה", "פאי", "סופגניה", "מאפה", "דניש", "סקון", "ביסקוויט",
			"פוקאצ'ה", "צ'באטה", "לחם שאור", "לחם שיפון", "לחם מלא", "בריוש", "חלה",
			"נאן", "לחם שטוח", "קרקרים", "מקלות לחם", "בורקס", "רוגלך", "שטרודל",
		},
		DefaultUnit:     UnitPiece,
		DefaultQuantity: 1,
	},
	{
		ID:        "frozen",
		Name:      BilingualText{En: "Frozen", He: "קפואים"},
		Color:     "cyan",
		Icon:      "Snowflake",
		IsDefault: true,
		KeywordsEn: []string{
			"ice cream", "frozen pizza", "frozen vegetables", "frozen fruit", "frozen fish",
			"frozen chicken", "frozen dinner", "frozen meal", "frozen yogurt", "popsicle",
			"ice", "sorbet", "gelato", "frozen waffles", "frozen pancakes", "frozen fries",
			"frozen peas", "frozen corn", "frozen berries", "frozen shrimp",
		},
		KeywordsHe: []string{
			"גלידה", "פיצה קפואה", "ירקות קפואים", "פירות קפואים", "דג קפוא", "עוף קפוא",
			"ארוחה קפואה", "יוגורט קפוא", "ארטיק", "קרח", "סורבה", "ג'לטו", "וופל קפוא",
			"פנקייק קפוא", "צ'יפס קפוא", "אפונה קפואה", "תירס קפוא", "פירות יער קפואים",
		},
		DefaultUnit:     UnitPackage,
		DefaultQuantity: 1,
	},
	{
		ID:        "beverages",
		Name:      BilingualText{En: "Beverages", He: "משקאות"},
		Color:     "violet",
		Icon:      "Coffee",
		IsDefault: true,
		KeywordsEn: []string{
			"juice", "soda", "water", "mineral water", "sparkling water", "coffee", "tea",
			"wine", "beer", "energy drink", "sports drink", "lemonade", "iced tea",
			"smoothie", "milkshake", "hot chocolate", "espresso", "cappuccino", "latte",
			"coconut water", "almond milk", "oat milk", "soy milk", "kombucha",
		},
		KeywordsHe: []string{
			"מיץ", "סודה", "מים", "מים מינרליים", "מים מוגזים", "קפה", "תה", "יין",
			"בירה", "משקה אנרגיה", "לימונדה", "תה קר", "סמוזי", "מילקשייק", "שוקו חם",
			"אספרסו", "קפוצ'ינו", "לאטה", "מי קוקוס", "חלב שקדים", "חלב שיבולת שועל",
			"חלב סויה", "קומבוצ'ה",
		},
		DefaultUnit:     UnitLiter,
		DefaultQuantity: 1,
	},
	{
		ID:        "snacks",
		Name:      BilingualText{En: "Snacks", He: "חטיפים"},
		Color:     "orange",
		Icon:      "Cookie",
		IsDefault: true,
		KeywordsEn: []string{
			"chips", "cookies", "crackers", "nuts", "chocolate", "candy", "popcorn",
			"granola", "protein bar", "energy bar", "pretzels", "trail mix", "dried fruit",
			"gummy", "gummies", "licorice", "jerky", "rice cakes", "peanuts", "almonds",
			"cashews", "pistachios", "walnuts", "sunflower seeds", "pumpkin seeds",
		},
		KeywordsHe: []string{
			"צ'יפס", "עוגיות", "קרקרים", "אגוזים", "שוקולד", "סוכריות", "פופקורן",
			"גרנולה", "חטיף חלבון", "בייגלה", "פירות יבשים", "סוכריות גומי", "בשר מיובש",
			"פריכיות", "בוטנים", "שקדים", "קשיו", "פיסטוק", "אגוזי מלך", "גרעיני חמניה",
			"גרעיני דלעת", "במבה", "ביסלי", "קליק",
		},
		DefaultUnit:     UnitPackage,
		DefaultQuantity: 1,
	},
	{
		ID:        "household",
		Name:      BilingualText{En: "Household", He: "מוצרי בית"},
		Color:     "slate",
		Icon:      "Home",
		IsDefault: true,
		KeywordsEn: []string{
			"toilet paper", "paper towels", "tissues", "detergent", "dish soap",
			"laundry detergent", "fabric softener", "bleach", "sponge", "sponges",
			"trash bags", "aluminum foil", "plastic wrap", "zip bags", "cleaning spray",
			"glass cleaner", "floor cleaner", "disinfectant", "air freshener", "candles",
			"light bulbs", "batteries", "matches", "garbage bags", "sandwich bags",
		},
		KeywordsHe: []string{
			"נייר טואלט", "מגבות נייר", "טישו", "סבון כלים", "אבקת כביסה", "מרכך כביסה",
			"אקונומיקה", "ספוג", "שקיות אשפה", "נייר כסף", "ניילון נצמד", "שקיות זיפלוק",
			"תרסיס ניקוי", "מנקה חלונות", "מנקה רצפות", "חומר חיטוי", "מפיץ ריח",
			"נרות", "נורות", "סוללות", "גפרורים", "שקיות כריכים",
		},
		DefaultUnit:     UnitPiece,
		DefaultQuantity: 1,
	},
	{
		ID:        "personal",
		Name:      BilingualText{En: "Personal Care", He: "טיפוח אישי"},
		Color:     "pink",
		Icon:      "Heart",
		IsDefault: true,
		KeywordsEn: []string{
			"shampoo", "conditioner", "body wash", "soap", "toothpaste", "toothbrush",
			"deodorant", "lotion", "sunscreen", "razor blades", "cotton pads", "q-tips",
			"floss", "mouthwash", "hand sanitizer", "face wash", "moisturizer", "lip balm",
			"makeup", "mascara", "foundation", "nail polish", "perfume", "cologne",
			"hair gel", "hair spray", "body lotion", "hand cream", "shaving cream",
		},
		KeywordsHe: []string{
			"שמפו", "מרכך שיער", "סבון גוף", "סבון", "משחת שיניים", "מברשת שיניים",
			"דאודורנט", "קרם", "קרם הגנה", "סכיני גילוח", "פדים", "מקלוני אוזניים",
			"חוט דנטלי", "מי פה", "ג'ל חיטוי", "סבון פנים", "קרם לחות", "שפתון",
			"איפור", "מסקרה", "פאונדיישן", "לק", "בושם", "ג'ל לשיער", "ספריי לשיער",
			"קרם גוף", "קרם ידיים", "קצף גילוח",
		},
		DefaultUnit:     UnitPiece,
		DefaultQuantity: 1,
	},
	{
		ID:        "baking",
		Name:      BilingualText{En: "Baking", He: "אפייה"},
		Color:     "amber",
		Icon:      "CakeSlice",
		IsDefault: true,
		KeywordsEn: []string{
			"sugar", "flour", "baking powder", "baking soda", "yeast", "vanilla", "vanilla extract",
			"cocoa", "cocoa powder", "chocolate chips", "brown sugar", "powdered sugar", "icing sugar",
			"cornstarch", "corn starch", "honey", "maple syrup", "molasses", "food coloring",
			"sprinkles", "frosting", "icing", "cake mix", "brownie mix", "muffin mix",
			"almond flour", "coconut flour", "bread flour", "all purpose flour", "self rising flour",
			"gelatin", "pectin", "cream of tartar", "salt", "cinnamon", "nutmeg", "ginger",
			"baking chocolate", "white chocolate", "dark chocolate", "milk chocolate",
			"condensed milk", "evaporated milk", "coconut cream", "shortening", "lard",
			"pie crust", "puff pastry", "phyllo dough", "fondant", "marzipan",
		},
		KeywordsHe: []string{
			"סוכר", "קמח", "אבקת אפייה", "סודה לשתייה", "שמרים", "וניל", "תמצית וניל",
			"קקאו", "אבקת קקאו", "שוקולד צ'יפס", "סוכר חום", "אבקת סוכר", "סוכר דק",
			"עמילן", "עמילן תירס", "דבש", "סילאן", "מייפל", "צבע מאכל",
			"סוכריות לקישוט", "ציפוי", "תערובת עוגה", "תערובת בראוניז", "תערובת מאפינס",
			"קמח שקדים", "קמח קוקוס", "קמח לחם", "קמח רב תכליתי", "קמח תופח",
			"ג'לטין", "פקטין", "מלח", "קינמון", "אגוז מוסקט", "ג'ינג'ר",
			"שוקולד לאפייה", "שוקולד לבן", "שוקולד מריר", "שוקולד חלב",
			"חלב מרוכז", "חלב מאודה", "קרם קוקוס", "שומן צמחי", "מרגרינה",
			"בצק פריך", "בצק עלים", "בצק פילו", "פונדנט", "מרציפן",
		},
		DefaultUnit:     UnitPackage,
		DefaultQuantity: 1,
	},
	{
		ID:        "canned",
		Name:      BilingualText{En: "Canned", He: "שימורים"},
		Color:     "yellow",
		Icon:      "Package",
		IsDefault: true,
		KeywordsEn: []string{
			"canned", "tuna", "canned tuna", "canned beans", "canned corn", "canned tomatoes",
			"canned peas", "canned chickpeas", "canned olives", "canned mushrooms",
			"canned fruit", "canned peaches", "canned pineapple", "sardines", "anchovies",
			"tomato paste", "tomato sauce", "coconut milk", "condensed milk", "evaporated milk",
			"canned soup", "canned vegetables", "pickles", "olives", "capers", "artichoke hearts",
			"baked beans", "refried beans", "black beans", "kidney beans", "chickpeas", "lentils",
		},
		KeywordsHe: []string{
			"שימורים", "טונה", "טונה בשימורים", "תירס", "תירס משומר", "עגבניות משומרות",
			"אפונה משומרת", "חומוס משומר", "זיתים", "פטריות משומרות", "פירות משומרים",
			"אפרסקים משומרים", "אננס משומר", "סרדינים", "אנשובי", "רסק עגבניות",
			"רוטב עגבניות", "חלב קוקוס", "חלב מרוכז", "מרק משומר", "ירקות משומרים",
			"מלפפון חמוץ", "חמוצים", "צלפים", "לבבות ארטישוק", "שעועית", "עדשים",
		},
		DefaultUnit:     UnitPiece,
		DefaultQuantity: 1,
	},
	{
		ID:              OtherCategoryID,
		Name:            BilingualText{En: "Other", He: "אחר"},
		Color:           "gray",
		Icon:            "Package",
		IsDefault:       true,
		KeywordsEn:      []string{},
		KeywordsHe:      []string{},
		DefaultUnit:     UnitPiece,
		DefaultQuantity: 1,
	},
}

// CategoryColor describes a color choice offered for custom categories.
type CategoryColor struct {
	ID   string        `json:"id"`
	Name BilingualText `json:"name"`
}

// AvailableCategoryColors lists the color tokens a custom category may use.
var AvailableCategoryColors = []CategoryColor{
	{ID: "emerald", Name: BilingualText{En: "Green", He: "ירוק"}},
	{ID: "lime", Name: BilingualText{En: "Lime", He: "ליים"}},
	{ID: "sky", Name: BilingualText{En: "Blue", He: "כחול"}},
	{ID: "rose", Name: BilingualText{En: "Rose", He: "ורוד"}},
	{ID: "amber", Name: BilingualText{En: "Amber", He: "ענבר"}},
	{ID: "cyan", Name: BilingualText{En: "Cyan", He: "טורקיז"}},
	{ID: "violet", Name: BilingualText{En: "Purple", He: "סגול"}},
	{ID: "orange", Name: BilingualText{En: "Orange", He: "כתום"}},
	{ID: "slate", Name: BilingualText{En: "Gray", He: "אפור"}},
	{ID: "pink", Name: BilingualText{En: "Pink", He: "ורוד בהיר"}},
	{ID: "red", Name: BilingualText{En: "Red", He: "אדום"}},
	{ID: "indigo", Name: BilingualText{En: "Indigo", He: "אינדיגו"}},
}

// FindCategory returns the category with the given id from a merged list.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
