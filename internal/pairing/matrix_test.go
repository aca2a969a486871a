// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package pairing

import (
	"math"
	"testing"
)

func TestLookupDish(t *testing.T) {
	t.Parallel()

	r, ok := LookupDish(DishSashimiSushi)
	if !ok {
		t.Fatal("sashimi_sushi should be in the matrix")
	}
	if r.SakeDegree != (Range{0, 5}) || r.Acidity != (Range{0, 2}) || r.Alcohol != (Range{10, 16}) {
		t.Errorf("unexpected ranges: %+v", r)
	}
	if r.Classes != [2]TypeClass{ClassA, ClassB} || r.MatchBonus != 2.5 {
		t.Errorf("unexpected classes/bonus: %v %v", r.Classes, r.MatchBonus)
	}

	if _, ok := LookupDish("unknown_dish_xyz"); ok {
		t.Error("unknown dish should not be found")
	}
}

func TestLookupCuisine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cuisine Cuisine
		found   bool
		bonus   float64
	}{
		{CuisineJapanese, true, 2.0},
		{CuisineChinese, true, 1.5},
		{CuisineWestern, true, 1.8},
		{CuisineVarious, false, 0},
		{CuisineNone, false, 0},
	}
	for _, tt := range tests {
		r, ok := LookupCuisine(tt.cuisine)
		if ok != tt.found {
			t.Errorf("LookupCuisine(%q) found = %v, want %v", tt.cuisine, ok, tt.found)
			continue
		}
		if ok && r.MatchBonus != tt.bonus {
			t.Errorf("LookupCuisine(%q) bonus = %v, want %v", tt.cuisine, r.MatchBonus, tt.bonus)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cuisine Cuisine
		dish    string
		wantID  string
		found   bool
	}{
		{"dish wins", CuisineJapanese, DishNimono, DishNimono, true},
		{"cuisine only", CuisineWestern, "", "western", true},
		{"unknown dish falls back to cuisine", CuisineChinese, "unknown_dish_xyz", "chinese", true},
		{"various ignores dish", CuisineVarious, DishNimono, "", false},
		{"nothing", CuisineNone, "", "", false},
		{"unknown dish and no cuisine", CuisineNone, "unknown_dish_xyz", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, ok := Resolve(tt.cuisine, tt.dish)
			if ok != tt.found || r.ID != tt.wantID {
				t.Errorf("Resolve() = %q, %v; want %q, %v", r.ID, ok, tt.wantID, tt.found)
			}
		})
	}
}

func TestDishes(t *testing.T) {
	t.Parallel()

	want := map[Cuisine][]string{
		CuisineJapanese: {DishSashimiSushi, DishNimono, DishYakimono, DishAgemono},
		CuisineChinese:  {DishTenshin, DishStrongTaste, DishLightTaste, DishChineseFried},
		CuisineWestern:  {DishCarpaccioOyster, DishMeat, DishFish, DishGibier},
		CuisineVarious:  nil,
	}
	for c, ids := range want {
		got := Dishes(c)
		if len(got) != len(ids) {
			t.Errorf("Dishes(%q) len = %d, want %d", c, len(got), len(ids))
			continue
		}
		for i := range ids {
			if got[i].ID != ids[i] {
				t.Errorf("Dishes(%q)[%d] = %q, want %q", c, i, got[i].ID, ids[i])
			}
		}
	}
	if n := len(AllDishes()); n != 12 {
		t.Errorf("AllDishes() len = %d, want 12", n)
	}
}

func TestDishName(t *testing.T) {
	t.Parallel()

	if got := DishName(DishNimono); got != "煮物" {
		t.Errorf("DishName(nimono) = %q", got)
	}
	if got := DishName("tacos"); got != "tacos" {
		t.Errorf("DishName(tacos) = %q, want id echoed", got)
	}
}

func TestTypeClass_StyleIsExhaustive(t *testing.T) {
	t.Parallel()

	seen := make(map[Style]bool)
	for _, c := range TypeClasses {
		s := c.Style()
		if s == "" {
			t.Errorf("%v has empty style", c)
		}
		if seen[s] {
			t.Errorf("%v maps to duplicate style %q", c, s)
		}
		seen[s] = true
		if s.Class() != c {
			t.Errorf("%q.Class() = %v, want %v", s, s.Class(), c)
		}
		parsed, err := ParseTypeClass(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseTypeClass(%q) = %v, %v", c.String(), parsed, err)
		}
	}
}

func TestTypeClass_InvalidPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Style() on zero TypeClass should panic")
		}
	}()
	_ = TypeClass(0).Style()
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	if _, err := ParseTypeClass("E"); err == nil {
		t.Error("ParseTypeClass(E) should fail")
	}
	if _, err := ParseStyle("普通"); err == nil {
		t.Error("ParseStyle(普通) should fail")
	}
	if _, err := ParseCuisine("french"); err == nil {
		t.Error("ParseCuisine(french) should fail")
	}
	if c, err := ParseCuisine(""); err != nil || c != CuisineNone {
		t.Errorf("ParseCuisine(\"\") = %q, %v", c, err)
	}
}

func TestRule_Admits(t *testing.T) {
	t.Parallel()

	r, _ := LookupDish(DishSashimiSushi)
	tests := []struct {
		name                      string
		degree, acidity, alcohol  float64
		style                     Style
		want                      bool
	}{
		{"ranges only", 3, 1.2, 15, StyleRich, true},
		{"style only", 12, 2.5, 19, StyleAromatic, true},
		{"both", 3, 1.2, 15, StyleLight, true},
		{"neither", 12, 1.2, 15, StyleRich, false},
		{"unclassified and out of range", 12, 1.2, 15, "", false},
		{"inclusive bounds", 5, 2, 16, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Admits(tt.degree, tt.acidity, tt.alcohol, tt.style); got != tt.want {
				t.Errorf("Admits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRule_Styles(t *testing.T) {
	t.Parallel()

	tenshin, _ := LookupDish(DishTenshin)
	if got := tenshin.Styles(); len(got) != 1 || got[0] != StyleLight {
		t.Errorf("tenshin styles = %v, want [爽酒]", got)
	}
	gibier, _ := LookupDish(DishGibier)
	if got := gibier.Styles(); len(got) != 2 || got[0] != StyleRich || got[1] != StyleAged {
		t.Errorf("gibier styles = %v", got)
	}
}

func TestRange_Distance(t *testing.T) {
	t.Parallel()

	r := Range{0, 5}
	tests := []struct {
		x, want float64
	}{
		{2, 0}, {0, 0}, {5, 0}, {-3, 3}, {9, 4},
	}
	for _, tt := range tests {
		if got := r.Distance(tt.x); got != tt.want {
			t.Errorf("Distance(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestDishAffinity(t *testing.T) {
	t.Parallel()

	r, _ := LookupDish(DishSashimiSushi)

	// Everything in range: (4+3+3)/3 * 2.5.
	if got, want := DishAffinity(r, 3, 1.2, 15), 10.0/3*2.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("in-range affinity = %v, want %v", got, want)
	}

	// Degree 9 is 4 past the max: 4 - 4/2 = 2. Alcohol 18 is 2 past: 3 - 1 = 2.
	if got, want := DishAffinity(r, 9, 1.2, 18), (2.0+3+2)/3*2.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("partial affinity = %v, want %v", got, want)
	}

	// Far away from every band earns nothing.
	if got := DishAffinity(r, 40, 9, 40); got != 0 {
		t.Errorf("far affinity = %v, want 0", got)
	}
}

func TestCuisineAffinity(t *testing.T) {
	t.Parallel()

	r, _ := LookupCuisine(CuisineJapanese)
	if got, want := CuisineAffinity(r, 3, 1.3, 15), 7.0/3*2.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("in-range affinity = %v, want %v", got, want)
	}
	// Acidity 2.25 is 0.5 above 1.75: 2 - 0.5 = 1.5.
	if got, want := CuisineAffinity(r, 3, 2.25, 15), (3+1.5+2)/3*2.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("partial affinity = %v, want %v", got, want)
	}
	if got := Affinity(r, 3, 1.3, 15); math.Abs(got-7.0/3*2.0) > 1e-9 {
		t.Errorf("Affinity() on cuisine rule = %v", got)
	}
	d, _ := LookupDish(DishNimono)
	if !IsDishRule(d) || IsDishRule(r) {
		t.Error("IsDishRule misclassified a rule")
	}
}

func TestCuisineDescription(t *testing.T) {
	t.Parallel()

	for _, c := range Cuisines {
		if CuisineDescription(c) == "" || CuisineName(c) == "" {
			t.Errorf("cuisine %q is missing a name or description", c)
		}
	}
	if CuisineDescription("french") != "" {
		t.Error("unknown cuisine should have no description")
	}
}
