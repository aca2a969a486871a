// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package diagnosis runs the preference quiz. Questions form an explicit
// graph: each answer selects the next question through an edge table, so
// conditional follow-ups (the dish question that only exists for a concrete
// cuisine) are data, not control flow.
//
// Answers are folded into a taste.Vector starting from the neutral midpoint.
// Scale questions set their axis; choice options add signed deltas. The sum
// is clamped once at the end.
package diagnosis

import (
	"fmt"

	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

// Kind is the answer shape a question expects.
type Kind string

const (
	// KindSingle accepts exactly one option.
	KindSingle Kind = "single"
	// KindMultiple accepts one or more distinct options.
	KindMultiple Kind = "multiple"
	// KindScale accepts a number within the question's bounds.
	KindScale Kind = "scale"
)

// Role marks questions whose answer is side information for the ranking.
type Role string

const (
	RoleNone    Role = ""
	RoleCuisine Role = "cuisine"
	RoleDish    Role = "dish"
)

// Weights are signed per-axis deltas applied when an option is chosen.
type Weights struct {
	Sweetness float64 `json:"sweetness"`
	Richness  float64 `json:"richness"`
	Acidity   float64 `json:"acidity"`
	Aroma     float64 `json:"aroma"`
}

// Option is one selectable answer.
type Option struct {
	ID      string  `json:"id"`
	Text    string  `json:"text"`
	Weights Weights `json:"weights"`
}

// Scale describes a numeric question.
type Scale struct {
	Axis     taste.Axis `json:"-"`
	AxisName string     `json:"axis"`
	Min      float64    `json:"min"`
	Max      float64    `json:"max"`
	MinLabel string     `json:"min_label"`
	MaxLabel string     `json:"max_label"`
}

// Question is a node in the quiz graph.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Kind    Kind     `json:"kind"`
	Role    Role     `json:"role,omitempty"`
	Options []Option `json:"options,omitempty"`
	Scale   *Scale   `json:"scale,omitempty"`
}

// Option returns the option with the given id.
func (q *Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

const (
	// End is the pseudo question id that terminates the quiz.
	End = "end"
	// Any matches every option of a question in the edge table.
	Any = "*"
)

// Edge selects the next question from a (question, option) pair.
type Edge struct {
	Question string
	Option   string
}

// Graph is the quiz definition.
type Graph struct {
	Start     string
	Questions map[string]Question
	Next      map[Edge]string
}

// Question looks up a node.
func (g *Graph) Question(id string) (Question, bool) {
	q, ok := g.Questions[id]
	return q, ok
}

// Step returns the question that follows answering questionID with option.
// An exact edge wins over a wildcard; no edge at all ends the quiz.
func (g *Graph) Step(questionID, option string) string {
	if next, ok := g.Next[Edge{questionID, option}]; ok {
		return next
	}
	if next, ok := g.Next[Edge{questionID, Any}]; ok {
		return next
	}
	return End
}

// Validate checks that every edge points at a known question, that options
// are unique and that scale questions have sane bounds.
func (g *Graph) Validate() error {
	if _, ok := g.Questions[g.Start]; !ok {
		return fmt.Errorf("start question %q is not defined", g.Start)
	}
	for e, to := range g.Next {
		if _, ok := g.Questions[e.Question]; !ok {
			return fmt.Errorf("edge from unknown question %q", e.Question)
		}
		if to != End {
			if _, ok := g.Questions[to]; !ok {
				return fmt.Errorf("edge %s/%s points at unknown question %q", e.Question, e.Option, to)
			}
		}
	}
	for id, q := range g.Questions {
		if q.ID != id {
			return fmt.Errorf("question %q registered under %q", q.ID, id)
		}
		switch q.Kind {
		case KindScale:
			if q.Scale == nil || q.Scale.Min >= q.Scale.Max {
				return fmt.Errorf("question %q has an invalid scale", id)
			}
		case KindSingle, KindMultiple:
			if len(q.Options) == 0 {
				return fmt.Errorf("question %q has no options", id)
			}
			seen := make(map[string]bool, len(q.Options))
			for _, o := range q.Options {
				if seen[o.ID] {
					return fmt.Errorf("question %q repeats option %q", id, o.ID)
				}
				seen[o.ID] = true
			}
		default:
			return fmt.Errorf("question %q has unknown kind %q", id, q.Kind)
		}
	}
	return nil
}

// remaining is the longest number of questions from id to End.
func (g *Graph) remaining(id string, depth int) int {
	if id == End || depth > len(g.Questions) {
		return 0
	}
	q, ok := g.Questions[id]
	if !ok {
		return 0
	}
	longest := g.remaining(g.Step(id, Any), depth+1)
	for _, o := range q.Options {
		if n := g.remaining(g.Step(id, o.ID), depth+1); n > longest {
			longest = n
		}
	}
	return 1 + longest
}

// Question ids of the default quiz.
const (
	QuestionCuisine   = "q1"
	QuestionSweetness = "q3"
	QuestionAroma     = "q4"
)

// DishQuestionID names the follow-up shown for a concrete cuisine.
func DishQuestionID(c pairing.Cuisine) string {
	return "q2_" + string(c)
}

// cuisineDeltas are the genre profiles expressed as offsets from the
// neutral midpoint (sweetness, richness, acidity, aroma).
var cuisineDeltas = map[pairing.Cuisine]Weights{
	pairing.CuisineJapanese: {0, 1, -1, 1},
	pairing.CuisineChinese:  {-1, 2, 0, 0},
	pairing.CuisineWestern:  {1, 0, 1, 2},
	pairing.CuisineVarious:  {0, 0, 0, 0},
}

// dishDeltas are the follow-up option weights.
var dishDeltas = map[string]Weights{
	pairing.DishSashimiSushi:    {0, 1, 2, 0},
	pairing.DishNimono:          {1, 1, 0, 1},
	pairing.DishYakimono:        {0, 2, 1, 1},
	pairing.DishAgemono:         {0, 2, 1, 1},
	pairing.DishTenshin:         {2, 1, 1, 1},
	pairing.DishStrongTaste:     {-1, 3, 2, 0},
	pairing.DishLightTaste:      {1, 0, 0, 1},
	pairing.DishChineseFried:    {0, 2, 1, 0},
	pairing.DishCarpaccioOyster: {1, -1, 2, 2},
	pairing.DishMeat:            {0, 2, 1, 1},
	pairing.DishFish:            {1, 0, 1, 2},
	pairing.DishGibier:          {1, 3, 2, 0},
}

// DefaultGraph builds the four-step quiz: cuisine, dish follow-up (skipped
// for "various"), sweet or dry, and the aroma scale.
func DefaultGraph() *Graph {
	g := &Graph{
		Start:     QuestionCuisine,
		Questions: make(map[string]Question),
		Next:      make(map[Edge]string),
	}

	cuisineQ := Question{
		ID:   QuestionCuisine,
		Text: "どのジャンルの料理と一緒に日本酒を楽しみたいですか？",
		Kind: KindSingle,
		Role: RoleCuisine,
	}
	for _, c := range pairing.Cuisines {
		text := pairing.CuisineName(c)
		if c == pairing.CuisineVarious {
			text = "色々な料理と合わせたい"
		}
		cuisineQ.Options = append(cuisineQ.Options, Option{
			ID: string(c), Text: text, Weights: cuisineDeltas[c],
		})

		if !c.Restrictive() {
			g.Next[Edge{QuestionCuisine, string(c)}] = QuestionSweetness
			continue
		}

		dishQ := Question{
			ID:   DishQuestionID(c),
			Text: pairing.CuisineName(c) + "の中で、特にどの料理と合わせたいですか？",
			Kind: KindSingle,
			Role: RoleDish,
		}
		for _, r := range pairing.Dishes(c) {
			dishQ.Options = append(dishQ.Options, Option{
				ID: r.ID, Text: r.Name, Weights: dishDeltas[r.ID],
			})
		}
		g.Questions[dishQ.ID] = dishQ
		g.Next[Edge{QuestionCuisine, string(c)}] = dishQ.ID
		g.Next[Edge{dishQ.ID, Any}] = QuestionSweetness
	}
	g.Questions[cuisineQ.ID] = cuisineQ

	g.Questions[QuestionSweetness] = Question{
		ID:   QuestionSweetness,
		Text: "甘口、辛口のどちらがお好みですか？",
		Kind: KindSingle,
		Options: []Option{
			{ID: "amakuchi", Text: "甘口", Weights: Weights{Sweetness: 2}},
			{ID: "karakuchi", Text: "辛口", Weights: Weights{Sweetness: -2}},
			{ID: "either", Text: "どちらでも良い"},
		},
	}
	g.Next[Edge{QuestionSweetness, Any}] = QuestionAroma

	g.Questions[QuestionAroma] = Question{
		ID:   QuestionAroma,
		Text: "香りの高いお酒が好みですか？",
		Kind: KindScale,
		Scale: &Scale{
			Axis:     taste.Aroma,
			AxisName: taste.Aroma.String(),
			Min:      taste.Min,
			Max:      taste.Max,
			MinLabel: "控えめが好き",
			MaxLabel: "華やかが好き",
		},
	}
	g.Next[Edge{QuestionAroma, Any}] = End

	return g
}
