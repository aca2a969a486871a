// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package taste

import (
	"math"
	"testing"
)

func TestNew_ClampsAtWriteTime(t *testing.T) {
	t.Parallel()

	v := New(-3, 0.5, 11, 10)
	want := Vector{Sweetness: 1, Richness: 1, Acidity: 10, Aroma: 10}
	if v != want {
		t.Errorf("New() = %+v, want %+v", v, want)
	}
}

func TestClamp_NaNAndInf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{math.NaN(), Midpoint},
		{math.Inf(1), Max},
		{math.Inf(-1), Min},
		{7.5, 7.5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVector_ReadDoesNotClamp(t *testing.T) {
	t.Parallel()

	// A literal bypasses the constructor, reads must return it verbatim.
	v := Vector{Sweetness: 12, Richness: -1, Acidity: 0.9, Aroma: 5}
	if got := v.Get(Sweetness); got != 12 {
		t.Errorf("Get(Sweetness) = %v, want 12", got)
	}
	if got := v.Get(Acidity); got != 0.9 {
		t.Errorf("Get(Acidity) = %v, want 0.9", got)
	}
	if got := v.Clamped(); got.Sweetness != 10 || got.Richness != 1 || got.Acidity != 1 {
		t.Errorf("Clamped() = %+v", got)
	}
}

func TestVector_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		axis  Axis
		value float64
		want  float64
	}{
		{"in range", Aroma, 7.5, 7.5},
		{"below min", Richness, -2, Min},
		{"above max", Sweetness, 14, Max},
		{"boundary", Acidity, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := Neutral()
			v.Set(tt.axis, tt.value)
			if got := v.Get(tt.axis); got != tt.want {
				t.Errorf("Set(%v, %v) stored %v, want %v", tt.axis, tt.value, got, tt.want)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	t.Parallel()

	a := New(3, 5, 5, 8)
	b := New(4.5, 5.5, 1.3, 7)
	if got := a.Distance(b, Sweetness); got != 1.5 {
		t.Errorf("Distance(Sweetness) = %v, want 1.5", got)
	}
	if got := b.Distance(a, Aroma); got != 1 {
		t.Errorf("Distance(Aroma) = %v, want 1", got)
	}
}

func TestParseAxis(t *testing.T) {
	t.Parallel()

	for _, a := range Axes {
		got, err := ParseAxis(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAxis(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAxis("umami"); err == nil {
		t.Error("ParseAxis(umami) should fail")
	}
}

func TestSakeDegree_RoundTrip(t *testing.T) {
	t.Parallel()

	for s := Min; s <= Max; s += 0.25 {
		got := SweetnessFromDegree(SakeDegree(s))
		if math.Abs(got-s) > 1e-9 {
			t.Errorf("round trip of %v gave %v", s, got)
		}
	}
}

func TestSakeDegree_KnownPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sweetness float64
		degree    float64
	}{
		{4, 0},
		{1, 9},
		{3.5, 1.5},
		{5, -3},
		{10, -18},
	}
	for _, tt := range tests {
		if got := SakeDegree(tt.sweetness); math.Abs(got-tt.degree) > 1e-9 {
			t.Errorf("SakeDegree(%v) = %v, want %v", tt.sweetness, got, tt.degree)
		}
		if got := SweetnessFromDegree(tt.degree); math.Abs(got-tt.sweetness) > 1e-9 {
			t.Errorf("SweetnessFromDegree(%v) = %v, want %v", tt.degree, got, tt.sweetness)
		}
	}
}
