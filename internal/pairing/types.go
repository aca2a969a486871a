// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package pairing

import (
	"fmt"
	"math"
)

// TypeClass is the letter code used by the compatibility matrix for the
// four broad sake styles. The zero value is invalid.
type TypeClass uint8

const (
	// ClassA is the aromatic style (kunshu).
	ClassA TypeClass = iota + 1
	// ClassB is the light, crisp style (soushu).
	ClassB
	// ClassC is the rich style (junshu).
	ClassC
	// ClassD is the aged style (jukushu).
	ClassD
)

// TypeClasses lists every valid class.
var TypeClasses = [...]TypeClass{ClassA, ClassB, ClassC, ClassD}

// ParseTypeClass accepts the matrix letters A-D.
func ParseTypeClass(s string) (TypeClass, error) {
	switch s {
	case "A":
		return ClassA, nil
	case "B":
		return ClassB, nil
	case "C":
		return ClassC, nil
	case "D":
		return ClassD, nil
	default:
		return 0, fmt.Errorf("unknown type class %q", s)
	}
}

// String returns the matrix letter.
func (c TypeClass) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	case ClassD:
		return "D"
	default:
		return fmt.Sprintf("TypeClass(%d)", uint8(c))
	}
}

// Style maps the letter to its style. Every valid class has a style; an
// invalid class can only come from bypassing ParseTypeClass and panics.
func (c TypeClass) Style() Style {
	switch c {
	case ClassA:
		return StyleAromatic
	case ClassB:
		return StyleLight
	case ClassC:
		return StyleRich
	case ClassD:
		return StyleAged
	default:
		panic(fmt.Sprintf("pairing: invalid type class %d", uint8(c)))
	}
}

// Style is the four-type sake taxonomy label as printed on labels and menus.
type Style string

const (
	// StyleAromatic is 薫酒: fragrant, ginjo-like.
	StyleAromatic Style = "薫酒"
	// StyleLight is 爽酒: light and crisp.
	StyleLight Style = "爽酒"
	// StyleRich is 醇酒: full-bodied, umami forward.
	StyleRich Style = "醇酒"
	// StyleAged is 熟酒: matured.
	StyleAged Style = "熟酒"
)

// ParseStyle validates a taxonomy label.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleAromatic, StyleLight, StyleRich, StyleAged:
		return Style(s), nil
	default:
		return "", fmt.Errorf("unknown sake style %q", s)
	}
}

// Class returns the matrix letter for the style.
func (s Style) Class() TypeClass {
	switch s {
	case StyleAromatic:
		return ClassA
	case StyleLight:
		return ClassB
	case StyleRich:
		return ClassC
	case StyleAged:
		return ClassD
	default:
		return 0
	}
}

// English returns a short English name, used in logs and metrics labels.
func (s Style) English() string {
	switch s {
	case StyleAromatic:
		return "aromatic"
	case StyleLight:
		return "light"
	case StyleRich:
		return "rich"
	case StyleAged:
		return "aged"
	default:
		return "unclassified"
	}
}

// Cuisine is the top-level food genre chosen in the first quiz question.
type Cuisine string

const (
	// CuisineNone means no genre was chosen.
	CuisineNone Cuisine = ""
	// CuisineJapanese is washoku.
	CuisineJapanese Cuisine = "japanese"
	// CuisineChinese is chuka.
	CuisineChinese Cuisine = "chinese"
	// CuisineWestern is yoshoku.
	CuisineWestern Cuisine = "western"
	// CuisineVarious means the user wants a general-purpose sake.
	CuisineVarious Cuisine = "various"
)

// Cuisines lists the selectable genres in quiz order.
var Cuisines = [...]Cuisine{CuisineJapanese, CuisineChinese, CuisineWestern, CuisineVarious}

// ParseCuisine validates a genre identifier. The empty string is accepted
// and means no genre.
func ParseCuisine(s string) (Cuisine, error) {
	switch Cuisine(s) {
	case CuisineNone, CuisineJapanese, CuisineChinese, CuisineWestern, CuisineVarious:
		return Cuisine(s), nil
	default:
		return "", fmt.Errorf("unknown cuisine %q", s)
	}
}

// Restrictive reports whether the genre carries a compatibility rule.
func (c Cuisine) Restrictive() bool {
	switch c {
	case CuisineJapanese, CuisineChinese, CuisineWestern:
		return true
	default:
		return false
	}
}

// Range is an inclusive numeric band.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether x lies in [Min, Max].
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// Distance is zero inside the band and the gap to the nearer bound outside it.
func (r Range) Distance(x float64) float64 {
	if r.Contains(x) {
		return 0
	}
	return math.Min(math.Abs(x-r.Min), math.Abs(x-r.Max))
}

// Rule is one row of the compatibility matrix, either for a specific dish
// or for a whole cuisine.
type Rule struct {
	// ID is the dish identifier, or the cuisine identifier for cuisine rules.
	ID string `json:"id"`
	// Name is the Japanese display name.
	Name    string  `json:"name"`
	Cuisine Cuisine `json:"cuisine"`

	SakeDegree Range `json:"sake_degree"`
	Acidity    Range `json:"acidity"`
	Alcohol    Range `json:"alcohol"`

	// Classes holds the two recommended type classes. They may be equal.
	Classes [2]TypeClass `json:"-"`

	// MatchBonus scales the affinity score for this rule.
	MatchBonus float64 `json:"match_bonus"`
}

// Styles returns the distinct recommended styles in matrix order.
func (r Rule) Styles() []Style {
	styles := []Style{r.Classes[0].Style()}
	if r.Classes[1] != r.Classes[0] {
		styles = append(styles, r.Classes[1].Style())
	}
	return styles
}

// HasStyle reports whether s is one of the rule's recommended styles.
func (r Rule) HasStyle(s Style) bool {
	if s == "" {
		return false
	}
	return r.Classes[0].Style() == s || r.Classes[1].Style() == s
}

// InRange reports whether all three measurements fall inside the rule's bands.
func (r Rule) InRange(sakeDegree, acidity, alcohol float64) bool {
	return r.SakeDegree.Contains(sakeDegree) &&
		r.Acidity.Contains(acidity) &&
		r.Alcohol.Contains(alcohol)
}

// Admits is the candidate filter predicate: numeric fit or a style match.
func (r Rule) Admits(sakeDegree, acidity, alcohol float64, style Style) bool {
	return r.InRange(sakeDegree, acidity, alcohol) || r.HasStyle(style)
}
