// Package dish guesses the ingredient list of a Filipino home-cooked dish
// from its name and free-text notes, using fixed keyword tables. It backs the
// recipe suggestion fallback and the dishtool CSV commands.
package dish

import (
	"sort"
	"strings"
)

// proteinKeywords maps lowercase keywords, including Filipino synonyms, to
// their canonical ingredient name.
var proteinKeywords = map[string]string{
	"pork":    "Pork",
	"baboy":   "Pork",
	"liempo":  "Pork",
	"chicken": "Chicken",
	"manok":   "Chicken",
	"beef":    "Beef",
	"baka":    "Beef",
	"fish":    "Fish",
	"isda":    "Fish",
	"bangus":  "Milkfish",
	"tilapia": "Tilapia",
	"shrimp":  "Shrimp",
	"hipon":   "Shrimp",
	"squid":   "Squid",
	"pusit":   "Squid",
	"egg":     "Egg",
	"itlog":   "Egg",
	"tofu":    "Tofu",
	"tokwa":   "Tofu",
}

var vegetableKeywords = map[string]string{
	"kangkong":  "Water Spinach",
	"sitaw":     "String Beans",
	"talong":    "Eggplant",
	"eggplant":  "Eggplant",
	"okra":      "Okra",
	"kalabasa":  "Squash",
	"squash":    "Squash",
	"pechay":    "Bok Choy",
	"cabbage":   "Cabbage",
	"repolyo":   "Cabbage",
	"carrot":    "Carrot",
	"potato":    "Potato",
	"patatas":   "Potato",
	"ampalaya":  "Bitter Gourd",
	"malunggay": "Moringa Leaves",
	"onion":     "Onion",
	"sibuyas":   "Onion",
	"tomato":    "Tomato",
	"kamatis":   "Tomato",
}

// dishRules are applied in order against the dish name; each match appends
// the implied ingredients.
var dishRules = []struct {
	keyword string
	implies []string
}{
	{"adobo", []string{"Soy Sauce", "Vinegar", "Garlic", "Bay Leaves", "Peppercorn"}},
	{"sinigang", []string{"Tamarind Broth", "Tomato", "Onion", "Water Spinach"}},
	{"tinola", []string{"Ginger", "Green Papaya", "Chili Leaves"}},
	{"kare-kare", []string{"Peanut Sauce", "Banana Heart", "Eggplant", "String Beans"}},
	{"kare kare", []string{"Peanut Sauce", "Banana Heart", "Eggplant", "String Beans"}},
	{"menudo", []string{"Tomato Sauce", "Potato", "Carrot"}},
	{"afritada", []string{"Tomato Sauce", "Potato", "Carrot", "Bell Pepper"}},
	{"caldereta", []string{"Tomato Sauce", "Liver Spread", "Potato", "Bell Pepper"}},
	{"bicol express", []string{"Coconut Milk", "Chili", "Shrimp Paste"}},
	{"ginataan", []string{"Coconut Milk"}},
	{"sisig", []string{"Calamansi", "Onion", "Chili"}},
	{"lumpia", []string{"Spring Roll Wrapper", "Garlic", "Onion"}},
	{"pancit", []string{"Noodles", "Soy Sauce", "Garlic", "Cabbage", "Carrot"}},
	{"nilaga", []string{"Potato", "Cabbage", "Peppercorn"}},
	{"fried rice", []string{"Rice", "Garlic", "Egg"}},
	{"sinangag", []string{"Rice", "Garlic"}},
}

const fallbackIngredients = "Rice, Vegetables"

// InferIngredients scans the dish name and notes for known protein and
// vegetable keywords, then applies the dish-name rules, returning a
// deduplicated, alphabetically sorted ingredient list. When nothing matches it
// falls back to a generic "Rice, Vegetables".
func InferIngredients(name string, notes string) []string {
	haystack := strings.ToLower(name + " " + notes)

	found := map[string]bool{}

	for keyword, canonical := range proteinKeywords {
		if strings.Contains(haystack, keyword) {
			found[canonical] = true
		}
	}
	for keyword, canonical := range vegetableKeywords {
		if strings.Contains(haystack, keyword) {
			found[canonical] = true
		}
	}

	lowerName := strings.ToLower(name)
	for _, rule := range dishRules {
		if strings.Contains(lowerName, rule.keyword) {
			for _, implied := range rule.implies {
				found[implied] = true
			}
		}
	}

	if len(found) == 0 {
		return strings.Split(fallbackIngredients, ", ")
	}

	result := make([]string, 0, len(found))
	for ingredient := range found {
		result = append(result, ingredient)
	}
	sort.Strings(result)
	return result
}
