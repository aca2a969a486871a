// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package diagnosis

import (
	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

// Answer is one recorded response.
type Answer struct {
	QuestionID string   `json:"question_id" validate:"required"`
	Options    []string `json:"options,omitempty" validate:"omitempty,dive,required"`
	Scale      *float64 `json:"scale,omitempty"`
}

// Result is the folded quiz outcome handed to the recommender.
type Result struct {
	Taste   taste.Vector    `json:"taste"`
	Cuisine pairing.Cuisine `json:"cuisine,omitempty" validate:"omitempty,cuisine"`
	Dish    string          `json:"dish,omitempty" validate:"omitempty,dish"`
}

// Fold folds answers with the default graph.
func Fold(answers []Answer) Result {
	return DefaultGraph().Fold(answers)
}

// Fold turns an answer path into a Result. Answers for unknown questions and
// unknown option ids contribute nothing. Validation belongs to Session; Fold
// is total so a stored path can always be re-read.
func (g *Graph) Fold(answers []Answer) Result {
	acc := [len(taste.Axes)]float64{taste.Midpoint, taste.Midpoint, taste.Midpoint, taste.Midpoint}
	var res Result

	for _, a := range answers {
		q, ok := g.Questions[a.QuestionID]
		if !ok {
			continue
		}

		if q.Kind == KindScale {
			if q.Scale != nil && a.Scale != nil {
				acc[q.Scale.Axis] = *a.Scale
			}
			continue
		}

		for _, id := range a.Options {
			o, ok := q.Option(id)
			if !ok {
				continue
			}
			acc[taste.Sweetness] += o.Weights.Sweetness
			acc[taste.Richness] += o.Weights.Richness
			acc[taste.Acidity] += o.Weights.Acidity
			acc[taste.Aroma] += o.Weights.Aroma

			switch q.Role {
			case RoleCuisine:
				res.Cuisine = pairing.Cuisine(id)
			case RoleDish:
				res.Dish = id
			}
		}
	}

	res.Taste = taste.New(acc[taste.Sweetness], acc[taste.Richness], acc[taste.Acidity], acc[taste.Aroma])
	return res
}
