// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package recommend

import (
	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/diagnosis"
	"github.com/tomtom215/sakefinder/internal/pairing"
)

// Selection is the compatibility rule chosen for a diagnosis result.
type Selection struct {
	Rule pairing.Rule
	Kind RuleKind
}

// Active reports whether a rule restricts the catalog.
func (s Selection) Active() bool {
	return s.Kind != RuleNone
}

// Select picks the dish rule when the dish is known, else the cuisine rule,
// else nothing. "various" and unknown identifiers select nothing.
func Select(res diagnosis.Result) Selection {
	r, ok := pairing.Resolve(res.Cuisine, res.Dish)
	if !ok {
		return Selection{Kind: RuleNone}
	}
	if pairing.IsDishRule(r) {
		return Selection{Rule: r, Kind: RuleDish}
	}
	return Selection{Rule: r, Kind: RuleCuisine}
}

// FilterResult lists admitted catalog positions in catalog order.
type FilterResult struct {
	Indices  []int
	FellBack bool
}

// Filter admits entries whose measurements all sit inside the rule's ranges
// or whose style is one of the rule's two classes. Without a rule every
// entry is admitted. If a rule admits nothing the whole catalog is returned
// and FellBack is set.
func Filter(c *catalog.Catalog, sel Selection) FilterResult {
	all := func() []int {
		idx := make([]int, c.Len())
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	if !sel.Active() {
		return FilterResult{Indices: all()}
	}

	idx := make([]int, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		e := c.At(i)
		if sel.Rule.Admits(e.EffectiveSakeDegree(), e.EffectiveAcidity(), e.Alcohol, e.Style) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return FilterResult{Indices: all(), FellBack: true}
	}
	return FilterResult{Indices: idx}
}
