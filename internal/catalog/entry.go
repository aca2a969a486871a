// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package catalog

import (
	"fmt"
	"slices"

	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

// SakeClass is the legal production grade printed on the label.
type SakeClass string

const (
	ClassJunmai         SakeClass = "純米"
	ClassJunmaiGinjo    SakeClass = "純米吟醸"
	ClassJunmaiDaiginjo SakeClass = "純米大吟醸"
	ClassGinjo          SakeClass = "吟醸"
	ClassDaiginjo       SakeClass = "大吟醸"
	ClassHonjozo        SakeClass = "本醸造"
	ClassFutsushu       SakeClass = "普通酒"
	ClassJunmaiShu      SakeClass = "純米酒"
	ClassGinjoShu       SakeClass = "吟醸酒"
)

// SakeClasses lists every valid grade.
var SakeClasses = [...]SakeClass{
	ClassJunmai, ClassJunmaiGinjo, ClassJunmaiDaiginjo, ClassGinjo, ClassDaiginjo,
	ClassHonjozo, ClassFutsushu, ClassJunmaiShu, ClassGinjoShu,
}

// ParseSakeClass validates a grade label.
func ParseSakeClass(s string) (SakeClass, error) {
	for _, c := range SakeClasses {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown sake class %q", s)
}

// Description explains the grade to a beginner. 純米酒 and 吟醸酒 are the
// long forms of 純米 and 吟醸 and share their text.
func (c SakeClass) Description() string {
	switch c {
	case ClassJunmai, ClassJunmaiShu:
		return "米と米麹のみで造られた、米の旨味を感じられる日本酒"
	case ClassJunmaiGinjo:
		return "吟醸造りで香り高く、米の旨味も楽しめる上品な日本酒"
	case ClassJunmaiDaiginjo:
		return "最高級の製法で造られた、香り豊かで繊細な味わいの日本酒"
	case ClassGinjo, ClassGinjoShu:
		return "香り高く淡麗で、上品な味わいが特徴の日本酒"
	case ClassDaiginjo:
		return "最高級の吟醸酒。華やかな香りと洗練された味わい"
	case ClassHonjozo:
		return "飲み飽きしない、バランスの良いスタンダードな日本酒"
	case ClassFutsushu:
		return "日常的に楽しめる、親しみやすい日本酒"
	default:
		return ""
	}
}

// Entry is one immutable catalog record.
type Entry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brewery     string  `json:"brewery"`
	Price       int     `json:"price"`
	Alcohol     float64 `json:"alcohol"`
	RiceMilling float64 `json:"rice_milling"`

	Taste taste.Vector `json:"taste"`

	Class       SakeClass     `json:"class"`
	Prefecture  string        `json:"prefecture"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url,omitempty"`
	ECURL       string        `json:"ec_url"`
	Tags        []string      `json:"tags"`
	Style       pairing.Style `json:"style,omitempty"`

	// SakeDegree overrides the value derived from Taste.Sweetness.
	SakeDegree *float64 `json:"sake_degree,omitempty"`
	// RealAcidity overrides Taste.Acidity for matrix comparisons.
	RealAcidity *float64 `json:"real_acidity,omitempty"`
}

// EffectiveSakeDegree prefers the measured sake-degree and otherwise derives
// it from the sweetness score.
func (e *Entry) EffectiveSakeDegree() float64 {
	if e.SakeDegree != nil {
		return *e.SakeDegree
	}
	return taste.SakeDegree(e.Taste.Sweetness)
}

// EffectiveAcidity prefers the measured acidity and otherwise uses the
// catalog acidity value as stored.
func (e *Entry) EffectiveAcidity() float64 {
	if e.RealAcidity != nil {
		return *e.RealAcidity
	}
	return e.Taste.Acidity
}

// HasTag reports whether the entry carries tag.
func (e *Entry) HasTag(tag string) bool {
	return slices.Contains(e.Tags, tag)
}

// clone deep-copies the slices and pointers so callers cannot mutate the catalog.
func (e Entry) clone() Entry {
	e.Tags = slices.Clone(e.Tags)
	if e.SakeDegree != nil {
		v := *e.SakeDegree
		e.SakeDegree = &v
	}
	if e.RealAcidity != nil {
		v := *e.RealAcidity
		e.RealAcidity = &v
	}
	return e
}
