// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package taste defines the four-axis taste space shared by user preferences
// and product profiles, plus the fixed conversion between the 1-10 sweetness
// score and the industry sake-degree (nihonshu-do) scale.
package taste

import (
	"fmt"
	"math"
)

const (
	// Min is the lowest value any axis can hold.
	Min = 1.0
	// Max is the highest value any axis can hold.
	Max = 10.0
	// Midpoint is the neutral starting value for every axis.
	Midpoint = 5.0
)

// Axis identifies one dimension of the taste space.
type Axis int

const (
	// Sweetness runs from 1 (dry) to 10 (sweet).
	Sweetness Axis = iota
	// Richness runs from 1 (light, tanrei) to 10 (rich, nojun).
	Richness
	// Acidity runs from 1 (low) to 10 (high).
	Acidity
	// Aroma runs from 1 (subtle) to 10 (floral).
	Aroma
)

// Axes lists every axis in canonical order.
var Axes = [...]Axis{Sweetness, Richness, Acidity, Aroma}

// String returns the JSON name of the axis.
func (a Axis) String() string {
	switch a {
	case Sweetness:
		return "sweetness"
	case Richness:
		return "richness"
	case Acidity:
		return "acidity"
	case Aroma:
		return "aroma"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// ParseAxis maps a JSON axis name back to an Axis.
func ParseAxis(s string) (Axis, error) {
	for _, a := range Axes {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown taste axis %q", s)
}

// Vector is a point in the taste space. Values are clamped when written
// through New or Set; readers see stored values unchanged.
type Vector struct {
	Sweetness float64 `json:"sweetness" koanf:"sweetness"`
	Richness  float64 `json:"richness" koanf:"richness"`
	Acidity   float64 `json:"acidity" koanf:"acidity"`
	Aroma     float64 `json:"aroma" koanf:"aroma"`
}

// New builds a vector with every axis clamped to [Min, Max].
func New(sweetness, richness, acidity, aroma float64) Vector {
	return Vector{
		Sweetness: Clamp(sweetness),
		Richness:  Clamp(richness),
		Acidity:   Clamp(acidity),
		Aroma:     Clamp(aroma),
	}
}

// Neutral returns the vector with every axis at Midpoint.
func Neutral() Vector {
	return Vector{Sweetness: Midpoint, Richness: Midpoint, Acidity: Midpoint, Aroma: Midpoint}
}

// Get returns the value stored on axis a.
func (v Vector) Get(a Axis) float64 {
	switch a {
	case Sweetness:
		return v.Sweetness
	case Richness:
		return v.Richness
	case Acidity:
		return v.Acidity
	case Aroma:
		return v.Aroma
	default:
		return 0
	}
}

// Set stores a clamped value on axis a.
func (v *Vector) Set(a Axis, value float64) {
	v.setRaw(a, Clamp(value))
}

// Clamped returns a copy with every axis forced into [Min, Max].
func (v Vector) Clamped() Vector {
	return New(v.Sweetness, v.Richness, v.Acidity, v.Aroma)
}

// Distance returns |v[a] - other[a]| for a single axis.
func (v Vector) Distance(other Vector, a Axis) float64 {
	d := v.Get(a) - other.Get(a)
	if d < 0 {
		return -d
	}
	return d
}

func (v *Vector) setRaw(a Axis, value float64) {
	switch a {
	case Sweetness:
		v.Sweetness = value
	case Richness:
		v.Richness = value
	case Acidity:
		v.Acidity = value
	case Aroma:
		v.Aroma = value
	}
}

// Clamp forces x into [Min, Max]. NaN becomes Midpoint.
func Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return Midpoint
	}
	if x < Min {
		return Min
	}
	if x > Max {
		return Max
	}
	return x
}
