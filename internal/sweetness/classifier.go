// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package sweetness judges how dry or sweet a sake tastes from its sake-degree
// and acidity. Acidity shifts perception: a high-acid sake reads drier than its
// sake-degree alone suggests, a low-acid one sweeter.
//
// Every function is pure and total. There is no error path.
package sweetness

import (
	"fmt"
	"strconv"
)

// Category is the coarse three-way judgment.
type Category string

const (
	// Dry is karakuchi.
	Dry Category = "dry"
	// Neutral is futsu.
	Neutral Category = "neutral"
	// Sweet is amakuchi.
	Sweet Category = "sweet"
)

// Japanese returns the label used in copy.
func (c Category) Japanese() string {
	switch c {
	case Dry:
		return "辛口"
	case Sweet:
		return "甘口"
	default:
		return "普通"
	}
}

// Judgment is the classifier output.
type Judgment struct {
	Level       string   `json:"level"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

type band struct {
	floor    float64
	judgment Judgment
}

// adjustedBands is walked top-down; the first floor the value reaches wins.
// The final band has no floor and catches everything else, NaN included.
var adjustedBands = []band{
	{8, Judgment{"超辛口", Dry, "酸度の高さで非常にキレのある辛口"}},
	{6, Judgment{"大辛口", Dry, "力強くドライな味わい"}},
	{3.5, Judgment{"辛口", Dry, "すっきりとした辛口"}},
	{1.5, Judgment{"やや辛口", Dry, "軽やかな辛口感"}},
	{-1.4, Judgment{"普通", Neutral, "バランスの良い味わい"}},
	{-3.4, Judgment{"やや甘口", Sweet, "ほのかな甘み"}},
	{-5.9, Judgment{"甘口", Sweet, "まろやかな甘口"}},
}

var adjustedFloor = Judgment{"大甘口", Sweet, "豊かで濃厚な甘み"}

// degreeBands is the plain sake-degree scale, without the acidity-only top band.
var degreeBands = []band{
	{6, Judgment{"大辛口", Dry, "非常にドライで切れ味鋭い"}},
	{3.5, Judgment{"辛口", Dry, "すっきりとした辛口"}},
	{1.5, Judgment{"やや辛口", Dry, "軽やかな辛口感"}},
	{-1.4, Judgment{"普通", Neutral, "バランスの良い味わい"}},
	{-3.4, Judgment{"やや甘口", Sweet, "ほのかな甘み"}},
	{-5.9, Judgment{"甘口", Sweet, "まろやかな甘口"}},
}

func judge(bands []band, floor Judgment, x float64) Judgment {
	for _, b := range bands {
		if x >= b.floor {
			return b.judgment
		}
	}
	return floor
}

// AcidityOffset is the sake-degree shift implied by an acidity reading.
func AcidityOffset(acidity float64) float64 {
	switch {
	case acidity >= 1.9:
		return 5
	case acidity >= 1.6:
		return 3
	case acidity >= 1.3:
		return 0
	case acidity >= 1.0:
		return -2
	default:
		return -3
	}
}

// EffectiveDegree is the sake-degree as perceived once acidity is accounted for.
func EffectiveDegree(sakeDegree, acidity float64) float64 {
	return sakeDegree + AcidityOffset(acidity)
}

// Classify judges a sake from its sake-degree and acidity.
func Classify(sakeDegree, acidity float64) Judgment {
	return judge(adjustedBands, adjustedFloor, EffectiveDegree(sakeDegree, acidity))
}

// ClassifyDegree judges from sake-degree alone.
func ClassifyDegree(sakeDegree float64) Judgment {
	return judge(degreeBands, adjustedFloor, sakeDegree)
}

// Analysis compares the plain and acidity-adjusted judgments.
type Analysis struct {
	Basic           Judgment `json:"basic"`
	Adjusted        Judgment `json:"adjusted"`
	EffectiveDegree float64  `json:"effective_degree"`
	AcidityEffect   string   `json:"acidity_effect"`
}

// Analyze returns both judgments plus a sentence describing the acidity effect.
func Analyze(sakeDegree, acidity float64) Analysis {
	offset := AcidityOffset(acidity)
	a := strconv.FormatFloat(acidity, 'f', -1, 64)

	var effect string
	switch {
	case offset > 0:
		effect = fmt.Sprintf("酸度%sにより辛口感が%g度分増加", a, offset)
	case offset < 0:
		effect = fmt.Sprintf("酸度%sにより甘口感が%g度分増加", a, -offset)
	default:
		effect = fmt.Sprintf("酸度%sによる影響は中程度", a)
	}

	return Analysis{
		Basic:           ClassifyDegree(sakeDegree),
		Adjusted:        Classify(sakeDegree, acidity),
		EffectiveDegree: sakeDegree + offset,
		AcidityEffect:   effect,
	}
}

// IsDry reports whether the adjusted judgment is dry.
func IsDry(sakeDegree, acidity float64) bool {
	return Classify(sakeDegree, acidity).Category == Dry
}

// IsNeutral reports whether the adjusted judgment is neutral.
func IsNeutral(sakeDegree, acidity float64) bool {
	return Classify(sakeDegree, acidity).Category == Neutral
}

// IsSweet reports whether the sake reads sweet. A nil acidity falls back to
// the plain sake-degree threshold.
func IsSweet(sakeDegree float64, acidity *float64) bool {
	if acidity == nil {
		return sakeDegree < -1.4
	}
	return Classify(sakeDegree, *acidity).Category == Sweet
}

// Pattern is a reference combination used in explanatory copy.
type Pattern struct {
	Name       string  `json:"name"`
	SakeDegree float64 `json:"sake_degree"`
	Acidity    float64 `json:"acidity"`
}

// TypicalPatterns are the four textbook tanrei/nojun x karakuchi/amakuchi combinations.
var TypicalPatterns = []Pattern{
	{"淡麗辛口", 5, 1.2},
	{"濃醇辛口", 4, 1.8},
	{"淡麗甘口", -4, 1.1},
	{"濃醇甘口", -2, 1.6},
}
