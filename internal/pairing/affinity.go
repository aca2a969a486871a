// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package pairing

import "math"

// affinityShape gives full credit per factor and how fast partial credit
// decays with distance outside the band.
type affinityShape struct {
	degreeCredit, degreeDecay   float64
	acidityCredit, acidityDecay float64
	alcoholCredit, alcoholDecay float64
}

var (
	dishShape    = affinityShape{4, 2, 3, 1, 3, 2}
	cuisineShape = affinityShape{3, 2, 2, 1, 2, 2}
)

func (s affinityShape) score(r Rule, sakeDegree, acidity, alcohol float64) float64 {
	total := partial(r.SakeDegree, sakeDegree, s.degreeCredit, s.degreeDecay) +
		partial(r.Acidity, acidity, s.acidityCredit, s.acidityDecay) +
		partial(r.Alcohol, alcohol, s.alcoholCredit, s.alcoholDecay)
	return total / 3 * r.MatchBonus
}

func partial(r Range, x, credit, decay float64) float64 {
	if r.Contains(x) {
		return credit
	}
	return math.Max(0, credit-r.Distance(x)/decay)
}

// DishAffinity scores how well a sake suits a specific dish, between 0 and
// 10/3 times the rule's MatchBonus. Measurements close to a band still earn
// partial credit.
func DishAffinity(r Rule, sakeDegree, acidity, alcohol float64) float64 {
	return dishShape.score(r, sakeDegree, acidity, alcohol)
}

// CuisineAffinity is the coarser genre-level variant of DishAffinity.
func CuisineAffinity(r Rule, sakeDegree, acidity, alcohol float64) float64 {
	return cuisineShape.score(r, sakeDegree, acidity, alcohol)
}

// Affinity dispatches on the kind of rule: dish rules use the dish shape,
// cuisine rules the cuisine shape.
func Affinity(r Rule, sakeDegree, acidity, alcohol float64) float64 {
	if _, isDish := dishIndex[r.ID]; isDish {
		return DishAffinity(r, sakeDegree, acidity, alcohol)
	}
	return CuisineAffinity(r, sakeDegree, acidity, alcohol)
}

// IsDishRule reports whether r came from the dish table.
func IsDishRule(r Rule) bool {
	_, ok := dishIndex[r.ID]
	return ok
}
