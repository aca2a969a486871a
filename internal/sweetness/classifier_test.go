// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package sweetness

import (
	"math"
	"testing"
)

func TestClassify_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		degree   float64
		acidity  float64
		level    string
		category Category
	}{
		{"very dry with high acid", 10, 2.0, "超辛口", Dry},
		{"sweet with low acid", -2, 1.0, "甘口", Sweet},
		{"neutral mid acid", 0, 1.4, "普通", Neutral},
		{"slightly dry", 1.5, 1.3, "やや辛口", Dry},
		{"slightly sweet", 0, 1.1, "やや甘口", Sweet},
		{"very sweet", -6, 1.3, "大甘口", Sweet},
		{"acid pushes neutral to dry", 1, 1.6, "辛口", Dry},
		{"very low acid", 0, 0.5, "やや甘口", Sweet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tt.degree, tt.acidity)
			if got.Level != tt.level || got.Category != tt.category {
				t.Errorf("Classify(%v, %v) = %s/%s, want %s/%s",
					tt.degree, tt.acidity, got.Level, got.Category, tt.level, tt.category)
			}
			if got.Description == "" {
				t.Error("description should not be empty")
			}
		})
	}
}

func TestClassify_BandBoundaries(t *testing.T) {
	t.Parallel()

	// Mid acidity has no offset, so the degree is the effective value.
	tests := []struct {
		degree float64
		level  string
	}{
		{8, "超辛口"},
		{7.99, "大辛口"},
		{6, "大辛口"},
		{3.5, "辛口"},
		{1.5, "やや辛口"},
		{1.49, "普通"},
		{-1.4, "普通"},
		{-1.41, "やや甘口"},
		{-3.4, "やや甘口"},
		{-5.9, "甘口"},
		{-5.91, "大甘口"},
	}
	for _, tt := range tests {
		if got := Classify(tt.degree, 1.3).Level; got != tt.level {
			t.Errorf("Classify(%v, 1.3) = %s, want %s", tt.degree, got, tt.level)
		}
	}
}

func TestClassify_TotalAndDeterministic(t *testing.T) {
	t.Parallel()

	valid := map[Category]bool{Dry: true, Neutral: true, Sweet: true}
	for d := -20.0; d <= 20; d += 0.7 {
		for a := 0.0; a <= 3; a += 0.15 {
			first := Classify(d, a)
			if !valid[first.Category] {
				t.Fatalf("Classify(%v, %v) returned category %q", d, a, first.Category)
			}
			if again := Classify(d, a); again != first {
				t.Fatalf("Classify(%v, %v) not deterministic: %+v vs %+v", d, a, first, again)
			}
		}
	}

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if c := Classify(x, 1.3).Category; !valid[c] {
			t.Errorf("Classify(%v) returned category %q", x, c)
		}
	}
}

func TestAcidityOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		acidity, want float64
	}{
		{2.5, 5}, {1.9, 5}, {1.8, 3}, {1.6, 3}, {1.5, 0}, {1.3, 0}, {1.2, -2}, {1.0, -2}, {0.9, -3},
	}
	for _, tt := range tests {
		if got := AcidityOffset(tt.acidity); got != tt.want {
			t.Errorf("AcidityOffset(%v) = %v, want %v", tt.acidity, got, tt.want)
		}
	}
}

func TestClassifyDegree(t *testing.T) {
	t.Parallel()

	if got := ClassifyDegree(10).Level; got != "大辛口" {
		t.Errorf("ClassifyDegree(10) = %s, want 大辛口", got)
	}
	if got := ClassifyDegree(-7).Level; got != "大甘口" {
		t.Errorf("ClassifyDegree(-7) = %s, want 大甘口", got)
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	a := Analyze(3, 1.8)
	if a.Basic.Level != "やや辛口" {
		t.Errorf("basic = %s", a.Basic.Level)
	}
	if a.Adjusted.Level != "大辛口" || a.EffectiveDegree != 6 {
		t.Errorf("adjusted = %s (%v)", a.Adjusted.Level, a.EffectiveDegree)
	}
	if a.AcidityEffect != "酸度1.8により辛口感が3度分増加" {
		t.Errorf("effect = %q", a.AcidityEffect)
	}

	if got := Analyze(0, 1.1).AcidityEffect; got != "酸度1.1により甘口感が2度分増加" {
		t.Errorf("low acid effect = %q", got)
	}
	if got := Analyze(0, 1.4).AcidityEffect; got != "酸度1.4による影響は中程度" {
		t.Errorf("mid acid effect = %q", got)
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	if !IsDry(10, 2.0) {
		t.Error("IsDry(10, 2.0) should be true")
	}
	if !IsNeutral(0, 1.4) {
		t.Error("IsNeutral(0, 1.4) should be true")
	}
	low := 1.0
	if !IsSweet(-2, &low) {
		t.Error("IsSweet(-2, 1.0) should be true")
	}
	if IsSweet(-1, nil) || !IsSweet(-2, nil) {
		t.Error("IsSweet without acidity should use the -1.4 threshold")
	}
}

func TestTypicalPatterns(t *testing.T) {
	t.Parallel()

	want := map[string]Category{
		"淡麗辛口": Dry,
		"濃醇辛口": Dry,
		"淡麗甘口": Sweet,
		"濃醇甘口": Neutral,
	}
	for _, p := range TypicalPatterns {
		if got := Classify(p.SakeDegree, p.Acidity).Category; got != want[p.Name] {
			t.Errorf("%s classified %s, want %s", p.Name, got, want[p.Name])
		}
	}
}
