// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package recommend

import (
	"github.com/tomtom215/sakefinder/internal/catalog"
	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

// tasteReason maps a target value to a reason, checked high then low.
type tasteReason struct {
	axis          taste.Axis
	high, low     string
	middle        string
	lowThreshold  float64
	highThreshold float64
}

var tasteReasons = []tasteReason{
	{taste.Sweetness, "甘口がお好みにぴったり", "辛口がお好みにぴったり", "バランスの良い甘辛度", 4, 7},
	{taste.Richness, "濃醇でコクのある味わい", "淡麗ですっきりした味わい", "程よいコクと飲みやすさ", 4, 7},
	{taste.Aroma, "華やかで豊かな香り", "控えめで上品な香り", "バランスの良い香り", 4, 7},
	// acidity has no low band
	{taste.Acidity, "爽やかな酸味", "", "まろやかな味わい", 0, 7},
}

var tagReasons = []struct{ tag, reason string }{
	{"初心者向け", "日本酒初心者にもおすすめ"},
	{"コスパ良", "コストパフォーマンス抜群"},
	{"人気", "多くの人に愛される定番品"},
}

func (t tasteReason) text(target float64) string {
	switch {
	case target >= t.highThreshold:
		return t.high
	case t.low != "" && target <= t.lowThreshold:
		return t.low
	default:
		return t.middle
	}
}

// Reasons explains why e suits target, in fixed priority order: taste
// axes, dish or cuisine affinity, then catalog tags. It never pads and never
// returns more than cfg.Max entries.
func Reasons(e *catalog.Entry, target taste.Vector, sel Selection, cfg ReasonConfig) []string {
	out := make([]string, 0, cfg.Max)
	add := func(s string) bool {
		if len(out) >= cfg.Max {
			return false
		}
		out = append(out, s)
		return true
	}

	for _, tr := range tasteReasons {
		if e.Taste.Distance(target, tr.axis) <= cfg.TasteGap {
			if !add(tr.text(target.Get(tr.axis))) {
				return out
			}
		}
	}

	switch sel.Kind {
	case RuleDish:
		if AffinityScore(e, sel) >= cfg.DishAffinity {
			if !add(sel.Rule.Name + "との相性抜群") {
				return out
			}
		}
	case RuleCuisine:
		if AffinityScore(e, sel) >= cfg.CuisineAffinity {
			if !add(pairing.CuisineName(sel.Rule.Cuisine) + "との相性が良い") {
				return out
			}
		}
	}

	for _, tr := range tagReasons {
		if e.HasTag(tr.tag) {
			if !add(tr.reason) {
				return out
			}
		}
	}
	return out
}
