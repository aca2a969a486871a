// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package pairing holds the static food and sake compatibility matrix: per-dish
// and per-cuisine acceptable ranges of sake-degree, acidity and alcohol, the
// two recommended style classes, and the affinity scores derived from them.
//
// All tables are read-only. Lookups of unknown identifiers return false and
// are an expected outcome for free-form input.
package pairing

// Dish identifiers known to the matrix.
const (
	DishSashimiSushi    = "sashimi_sushi"
	DishNimono          = "nimono"
	DishYakimono        = "yakimono"
	DishAgemono         = "agemono"
	DishTenshin         = "tenshin"
	DishStrongTaste     = "strong_taste"
	DishLightTaste      = "light_taste"
	DishChineseFried    = "chinese_fried"
	DishCarpaccioOyster = "carpaccio_oyster"
	DishMeat            = "meat_dish"
	DishFish            = "fish_dish"
	DishGibier          = "gibier"
)

var dishRules = []Rule{
	{
		ID: DishSashimiSushi, Name: "刺身/寿司", Cuisine: CuisineJapanese,
		SakeDegree: Range{0, 5}, Acidity: Range{0, 2}, Alcohol: Range{10, 16},
		Classes: [2]TypeClass{ClassA, ClassB}, MatchBonus: 2.5,
	},
	{
		ID: DishNimono, Name: "煮物", Cuisine: CuisineJapanese,
		SakeDegree: Range{-3, 5}, Acidity: Range{0, 1}, Alcohol: Range{10, 16},
		Classes: [2]TypeClass{ClassB, ClassC}, MatchBonus: 2.0,
	},
	{
		ID: DishYakimono, Name: "焼き物", Cuisine: CuisineJapanese,
		SakeDegree: Range{0, 15}, Acidity: Range{1, 2}, Alcohol: Range{15, 20},
		Classes: [2]TypeClass{ClassB, ClassC}, MatchBonus: 2.0,
	},
	{
		ID: DishAgemono, Name: "揚げ物", Cuisine: CuisineJapanese,
		SakeDegree: Range{0, 15}, Acidity: Range{1, 2}, Alcohol: Range{10, 18},
		Classes: [2]TypeClass{ClassA, ClassB}, MatchBonus: 2.0,
	},
	{
		ID: DishTenshin, Name: "天津（甘酢系）", Cuisine: CuisineChinese,
		SakeDegree: Range{-5, 5}, Acidity: Range{0, 2}, Alcohol: Range{10, 15},
		Classes: [2]TypeClass{ClassB, ClassB}, MatchBonus: 1.5,
	},
	{
		ID: DishStrongTaste, Name: "濃い味（四川・麻婆など）", Cuisine: CuisineChinese,
		SakeDegree: Range{-5, 5}, Acidity: Range{0, 3}, Alcohol: Range{10, 18},
		Classes: [2]TypeClass{ClassC, ClassD}, MatchBonus: 1.5,
	},
	{
		ID: DishLightTaste, Name: "薄味（蒸し物・炒め物）", Cuisine: CuisineChinese,
		SakeDegree: Range{0, 10}, Acidity: Range{0, 1}, Alcohol: Range{10, 15},
		Classes: [2]TypeClass{ClassB, ClassB}, MatchBonus: 1.5,
	},
	{
		ID: DishChineseFried, Name: "中華揚げ物", Cuisine: CuisineChinese,
		SakeDegree: Range{2, 15}, Acidity: Range{0, 1}, Alcohol: Range{10, 16},
		Classes: [2]TypeClass{ClassB, ClassC}, MatchBonus: 1.5,
	},
	{
		ID: DishCarpaccioOyster, Name: "カルパッチョ/生牡蠣", Cuisine: CuisineWestern,
		SakeDegree: Range{2, 15}, Acidity: Range{1, 3}, Alcohol: Range{12, 18},
		Classes: [2]TypeClass{ClassA, ClassB}, MatchBonus: 2.3,
	},
	{
		ID: DishMeat, Name: "肉料理", Cuisine: CuisineWestern,
		SakeDegree: Range{0, 18}, Acidity: Range{0, 2}, Alcohol: Range{12, 16},
		Classes: [2]TypeClass{ClassB, ClassC}, MatchBonus: 1.8,
	},
	{
		ID: DishFish, Name: "魚料理", Cuisine: CuisineWestern,
		SakeDegree: Range{2, 18}, Acidity: Range{0, 2}, Alcohol: Range{15, 16},
		Classes: [2]TypeClass{ClassA, ClassB}, MatchBonus: 1.8,
	},
	{
		ID: DishGibier, Name: "ジビエ", Cuisine: CuisineWestern,
		SakeDegree: Range{-2, 5}, Acidity: Range{1, 3}, Alcohol: Range{15, 18},
		Classes: [2]TypeClass{ClassC, ClassD}, MatchBonus: 1.8,
	},
}

var cuisineRules = []Rule{
	{
		ID: string(CuisineJapanese), Name: "和食", Cuisine: CuisineJapanese,
		SakeDegree: Range{-1, 10}, Acidity: Range{0.5, 1.75}, Alcohol: Range{12.5, 17.5},
		Classes: [2]TypeClass{ClassA, ClassB}, MatchBonus: 2.0,
	},
	{
		ID: string(CuisineChinese), Name: "中華料理", Cuisine: CuisineChinese,
		SakeDegree: Range{-2, 8.75}, Acidity: Range{0, 1.75}, Alcohol: Range{10, 16},
		Classes: [2]TypeClass{ClassB, ClassC}, MatchBonus: 1.5,
	},
	{
		ID: string(CuisineWestern), Name: "洋食", Cuisine: CuisineWestern,
		SakeDegree: Range{0.5, 14}, Acidity: Range{0.5, 2.5}, Alcohol: Range{13.5, 17},
		Classes: [2]TypeClass{ClassA, ClassB}, MatchBonus: 1.8,
	},
}

var dishIndex = func() map[string]int {
	idx := make(map[string]int, len(dishRules))
	for i, r := range dishRules {
		idx[r.ID] = i
	}
	return idx
}()

// LookupDish returns the rule for a specific dish.
func LookupDish(id string) (Rule, bool) {
	i, ok := dishIndex[id]
	if !ok {
		return Rule{}, false
	}
	return dishRules[i], true
}

// LookupCuisine returns the cuisine-level rule. CuisineVarious and
// CuisineNone have no rule.
func LookupCuisine(c Cuisine) (Rule, bool) {
	for _, r := range cuisineRules {
		if r.Cuisine == c {
			return r, true
		}
	}
	return Rule{}, false
}

// Resolve picks the rule that governs a selection: the dish rule when the
// dish is known, otherwise the cuisine rule.
func Resolve(c Cuisine, dish string) (Rule, bool) {
	if c == CuisineVarious {
		return Rule{}, false
	}
	if dish != "" {
		if r, ok := LookupDish(dish); ok {
			return r, true
		}
	}
	return LookupCuisine(c)
}

// Dishes returns the dish rules of a cuisine in matrix order.
func Dishes(c Cuisine) []Rule {
	var out []Rule
	for _, r := range dishRules {
		if r.Cuisine == c {
			out = append(out, r)
		}
	}
	return out
}

// AllDishes returns a copy of the whole dish table.
func AllDishes() []Rule {
	out := make([]Rule, len(dishRules))
	copy(out, dishRules)
	return out
}

// DishName returns the display name of a dish, or the id itself when unknown.
func DishName(id string) string {
	if r, ok := LookupDish(id); ok {
		return r.Name
	}
	return id
}

// CuisineName returns the Japanese genre name.
func CuisineName(c Cuisine) string {
	switch c {
	case CuisineJapanese:
		return "和食"
	case CuisineChinese:
		return "中華料理"
	case CuisineWestern:
		return "洋食"
	case CuisineVarious:
		return "色々な料理"
	default:
		return ""
	}
}

// CuisineDescription returns the one-line pitch shown with the results.
func CuisineDescription(c Cuisine) string {
	switch c {
	case CuisineJapanese:
		return "和食との相性を重視した日本酒をお勧めします。"
	case CuisineChinese:
		return "中華料理との相性を重視した日本酒をお勧めします。"
	case CuisineWestern:
		return "洋食との相性を重視した日本酒をお勧めします。"
	case CuisineVarious:
		return "様々な料理との相性を考慮した汎用性の高い日本酒をお勧めします。"
	default:
		return ""
	}
}
