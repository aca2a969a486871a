// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/sakefinder/internal/taste"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights combine the three score layers.
	Weights ScoreWeights `json:"weights" koanf:"weights"`

	// Preference holds the per-axis closeness weights.
	Preference PreferenceConfig `json:"preference" koanf:"preference"`

	// Reasons controls match-reason generation.
	Reasons ReasonConfig `json:"reasons" koanf:"reasons"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`

	// Cache contains caching parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`
}

// ScoreWeights multiply each layer before they are summed.
type ScoreWeights struct {
	// Matrix is the weight of the compatibility-matrix fit.
	Matrix float64 `json:"matrix" koanf:"matrix"`

	// Preference is the weight of the taste-vector closeness.
	Preference float64 `json:"preference" koanf:"preference"`

	// Affinity is the weight of the dish or cuisine affinity bonus.
	Affinity float64 `json:"affinity" koanf:"affinity"`
}

// AxisWeights weight the closeness of each taste axis.
type AxisWeights struct {
	Sweetness float64 `json:"sweetness" koanf:"sweetness"`
	Richness  float64 `json:"richness" koanf:"richness"`
	Acidity   float64 `json:"acidity" koanf:"acidity"`
	Aroma     float64 `json:"aroma" koanf:"aroma"`
}

// Get returns the weight of one axis.
func (w AxisWeights) Get(a taste.Axis) float64 {
	switch a {
	case taste.Sweetness:
		return w.Sweetness
	case taste.Richness:
		return w.Richness
	case taste.Acidity:
		return w.Acidity
	case taste.Aroma:
		return w.Aroma
	default:
		return 0
	}
}

// Sum returns the total weight.
func (w AxisWeights) Sum() float64 {
	return w.Sweetness + w.Richness + w.Acidity + w.Aroma
}

// PreferenceConfig selects between the default and aroma-focused weights.
type PreferenceConfig struct {
	// Default applies to most targets.
	Default AxisWeights `json:"default" koanf:"default"`

	// Aromatic applies when the target aroma is at or above AromaThreshold.
	Aromatic AxisWeights `json:"aromatic" koanf:"aromatic"`

	// AromaThreshold switches to the Aromatic weights.
	AromaThreshold float64 `json:"aroma_threshold" koanf:"aroma_threshold"`
}

// For returns the weight set that applies to target.
func (p PreferenceConfig) For(target taste.Vector) AxisWeights {
	if target.Aroma >= p.AromaThreshold {
		return p.Aromatic
	}
	return p.Default
}

// ReasonConfig contains match-reason thresholds.
type ReasonConfig struct {
	// Max is the most reasons returned per item.
	Max int `json:"max" koanf:"max"`

	// TasteGap is the largest axis gap that still earns a taste reason.
	TasteGap float64 `json:"taste_gap" koanf:"taste_gap"`

	// DishAffinity is the dish affinity needed for a dish reason.
	DishAffinity float64 `json:"dish_affinity" koanf:"dish_affinity"`

	// CuisineAffinity is the cuisine affinity needed for a cuisine reason.
	CuisineAffinity float64 `json:"cuisine_affinity" koanf:"cuisine_affinity"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultCount is used when a request asks for zero or fewer items.
	DefaultCount int `json:"default_count" koanf:"default_count"`

	// MaxCount caps the items a single request can return.
	MaxCount int `json:"max_count" koanf:"max_count"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled turns the response cache on.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// TTL is how long a ranking is reused.
	TTL time.Duration `json:"ttl" koanf:"ttl"`

	// MaxEntries bounds the cache.
	MaxEntries int `json:"max_entries" koanf:"max_entries"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoreWeights{
			Matrix:     2.0,
			Preference: 1.0,
			Affinity:   0.25,
		},
		Preference: PreferenceConfig{
			Default:        AxisWeights{Sweetness: 0.4, Richness: 0.2, Acidity: 0.1, Aroma: 0.3},
			Aromatic:       AxisWeights{Sweetness: 0.35, Richness: 0.15, Acidity: 0.1, Aroma: 0.4},
			AromaThreshold: 7,
		},
		Reasons: ReasonConfig{
			Max:             3,
			TasteGap:        1.5,
			DishAffinity:    5.0,
			CuisineAffinity: 3.0,
		},
		Limits: LimitsConfig{
			DefaultCount: 3,
			MaxCount:     50,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTL:        10 * time.Minute,
			MaxEntries: 4096,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Matrix < 0 || c.Weights.Preference < 0 || c.Weights.Affinity < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	for name, w := range map[string]AxisWeights{"default": c.Preference.Default, "aromatic": c.Preference.Aromatic} {
		if w.Sweetness < 0 || w.Richness < 0 || w.Acidity < 0 || w.Aroma < 0 {
			return fmt.Errorf("preference.%s weights must be non-negative, got %+v", name, w)
		}
		if w.Sum() == 0 {
			return fmt.Errorf("preference.%s weights must not all be zero", name)
		}
	}
	if c.Preference.AromaThreshold < taste.Min || c.Preference.AromaThreshold > taste.Max {
		return fmt.Errorf("preference.aroma_threshold must be in [%v, %v], got %v",
			taste.Min, taste.Max, c.Preference.AromaThreshold)
	}

	if c.Reasons.Max < 0 {
		return fmt.Errorf("reasons.max must be non-negative, got %d", c.Reasons.Max)
	}
	if c.Reasons.TasteGap < 0 {
		return fmt.Errorf("reasons.taste_gap must be non-negative, got %v", c.Reasons.TasteGap)
	}

	if c.Limits.DefaultCount < 1 {
		return fmt.Errorf("limits.default_count must be positive, got %d", c.Limits.DefaultCount)
	}
	if c.Limits.MaxCount < c.Limits.DefaultCount {
		return fmt.Errorf("limits.max_count must be >= limits.default_count, got %d < %d",
			c.Limits.MaxCount, c.Limits.DefaultCount)
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
