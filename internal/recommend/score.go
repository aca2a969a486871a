// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package recommend

import (
	"math"

	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

// Matrix-fit credits.
const (
	styleMatchBonus  = 10.0
	styleMissPenalty = -5.0
	degreeInRange    = 3.0
	acidityInRange   = 2.0
	alcoholInRange   = 1.0
	closenessCeiling = 10.0
)

// MatrixScore rewards a style match and each measurement inside the rule's
// ranges. It is zero when no rule applies.
func MatrixScore(e *catalog.Entry, sel Selection) float64 {
	if !sel.Active() {
		return 0
	}
	r := sel.Rule

	score := styleMissPenalty
	if r.HasStyle(e.Style) {
		score = styleMatchBonus
	}
	if r.SakeDegree.Contains(e.EffectiveSakeDegree()) {
		score += degreeInRange
	}
	if r.Acidity.Contains(e.EffectiveAcidity()) {
		score += acidityInRange
	}
	if r.Alcohol.Contains(e.Alcohol) {
		score += alcoholInRange
	}
	return score
}

// PreferenceScore is the weighted closeness of candidate to target. Each
// axis earns max(0, 10 - gap).
func PreferenceScore(candidate, target taste.Vector, w AxisWeights) float64 {
	var total float64
	for _, a := range taste.Axes {
		closeness := math.Max(0, closenessCeiling-candidate.Distance(target, a))
		total += closeness * w.Get(a)
	}
	return total
}

// MaxPreferenceScore is the score of a candidate identical to the target.
func MaxPreferenceScore(w AxisWeights) float64 {
	return closenessCeiling * w.Sum()
}

// AffinityScore is the dish or cuisine affinity of e, or zero without a rule.
func AffinityScore(e *catalog.Entry, sel Selection) float64 {
	switch sel.Kind {
	case RuleDish:
		return pairing.DishAffinity(sel.Rule, e.EffectiveSakeDegree(), e.EffectiveAcidity(), e.Alcohol)
	case RuleCuisine:
		return pairing.CuisineAffinity(sel.Rule, e.EffectiveSakeDegree(), e.EffectiveAcidity(), e.Alcohol)
	default:
		return 0
	}
}

// score computes every layer for one entry.
func (c *Config) score(e *catalog.Entry, target taste.Vector, sel Selection) (float64, Breakdown) {
	b := Breakdown{
		Matrix:     MatrixScore(e, sel),
		Preference: PreferenceScore(e.Taste, target, c.Preference.For(target)),
		Affinity:   AffinityScore(e, sel),
	}
	total := b.Matrix*c.Weights.Matrix +
		b.Preference*c.Weights.Preference +
		b.Affinity*c.Weights.Affinity
	return total, b
}
