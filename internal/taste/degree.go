// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package taste

// degreePivot is the sweetness score that corresponds to sake-degree 0.
const degreePivot = 4.0

// degreeStep is the number of sake-degree units per sweetness point.
const degreeStep = 3.0

// SakeDegree converts a 1-10 sweetness score to a sake-degree.
// Higher sake-degree means drier: sweetness 1 maps to +9, sweetness 10 to -18.
func SakeDegree(sweetness float64) float64 {
	return (degreePivot - sweetness) * degreeStep
}

// SweetnessFromDegree is the exact inverse of SakeDegree. The result is not
// clamped; callers storing it in a Vector get clamping from Vector.Set.
func SweetnessFromDegree(sakeDegree float64) float64 {
	return degreePivot - sakeDegree/degreeStep
}
