// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package diagnosis

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
)

func choice(q string, opts ...string) Answer {
	return Answer{QuestionID: q, Options: opts}
}

func scale(q string, v float64) Answer {
	return Answer{QuestionID: q, Scale: &v}
}

func mustAnswer(t *testing.T, s *Session, answers ...Answer) {
	t.Helper()
	for _, a := range answers {
		if err := s.Answer(a); err != nil {
			t.Fatalf("Answer(%+v) error = %v", a, err)
		}
	}
}

func TestDefaultGraph_Validates(t *testing.T) {
	t.Parallel()

	g := DefaultGraph()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for _, c := range []pairing.Cuisine{pairing.CuisineJapanese, pairing.CuisineChinese, pairing.CuisineWestern} {
		q, ok := g.Question(DishQuestionID(c))
		if !ok {
			t.Fatalf("missing dish question for %s", c)
		}
		if len(q.Options) != 4 {
			t.Errorf("%s: %d dish options, want 4", c, len(q.Options))
		}
		for _, o := range q.Options {
			if _, ok := pairing.LookupDish(o.ID); !ok {
				t.Errorf("%s: option %q is not a matrix dish", c, o.ID)
			}
		}
	}
	if _, ok := g.Question(DishQuestionID(pairing.CuisineVarious)); ok {
		t.Error("various must not have a dish follow-up")
	}
}

func TestGraph_ValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(g *Graph)
	}{
		{"missing start", func(g *Graph) { g.Start = "nope" }},
		{"dangling edge", func(g *Graph) { g.Next[Edge{QuestionSweetness, Any}] = "q9" }},
		{"bad scale", func(g *Graph) {
			q := g.Questions[QuestionAroma]
			q.Scale = &Scale{Min: 5, Max: 5}
			g.Questions[QuestionAroma] = q
		}},
		{"duplicate option", func(g *Graph) {
			q := g.Questions[QuestionSweetness]
			q.Options = append(q.Options, q.Options[0])
			g.Questions[QuestionSweetness] = q
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := DefaultGraph()
			tt.mutate(g)
			if err := g.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestSession_FullPath(t *testing.T) {
	t.Parallel()

	s := NewSession(DefaultGraph())
	if p := s.Progress(); p.Answered != 0 || p.Total != 4 {
		t.Errorf("initial Progress() = %+v, want {0 4}", p)
	}

	mustAnswer(t, s, choice(QuestionCuisine, "japanese"))
	if q, _ := s.Current(); q.ID != "q2_japanese" {
		t.Fatalf("after japanese current = %s, want q2_japanese", q.ID)
	}
	mustAnswer(t, s,
		choice("q2_japanese", pairing.DishSashimiSushi),
		choice(QuestionSweetness, "karakuchi"),
		scale(QuestionAroma, 8),
	)

	if !s.Complete() {
		t.Fatal("session should be complete")
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should report no question once complete")
	}

	res, err := s.Result()
	if err != nil {
		t.Fatalf("Result() error = %v", err)
	}
	want := taste.Vector{Sweetness: 3, Richness: 7, Acidity: 6, Aroma: 8}
	if res.Taste != want {
		t.Errorf("Taste = %+v, want %+v", res.Taste, want)
	}
	if res.Cuisine != pairing.CuisineJapanese || res.Dish != pairing.DishSashimiSushi {
		t.Errorf("side info = %q/%q", res.Cuisine, res.Dish)
	}
	if p := s.Progress(); p.Answered != 4 || p.Total != 4 {
		t.Errorf("final Progress() = %+v", p)
	}
}

func TestSession_VariousSkipsDish(t *testing.T) {
	t.Parallel()

	s := NewSession(DefaultGraph())
	mustAnswer(t, s, choice(QuestionCuisine, "various"))

	q, _ := s.Current()
	if q.ID != QuestionSweetness {
		t.Fatalf("current = %s, want %s", q.ID, QuestionSweetness)
	}
	if p := s.Progress(); p.Total != 3 {
		t.Errorf("Total = %d, want 3 when the dish question is skipped", p.Total)
	}

	mustAnswer(t, s, choice(QuestionSweetness, "amakuchi"), scale(QuestionAroma, 3))
	res, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	if res.Taste != (taste.Vector{Sweetness: 7, Richness: 5, Acidity: 5, Aroma: 3}) {
		t.Errorf("Taste = %+v", res.Taste)
	}
	if res.Cuisine != pairing.CuisineVarious || res.Dish != "" {
		t.Errorf("side info = %q/%q", res.Cuisine, res.Dish)
	}
}

func TestSession_BackNeverDoubleCounts(t *testing.T) {
	t.Parallel()

	s := NewSession(DefaultGraph())
	mustAnswer(t, s,
		choice(QuestionCuisine, "japanese"),
		choice("q2_japanese", pairing.DishSashimiSushi),
		choice(QuestionSweetness, "karakuchi"),
	)

	for _, wantQ := range []string{QuestionSweetness, "q2_japanese", QuestionCuisine} {
		prev, err := s.Back()
		if err != nil {
			t.Fatalf("Back() error = %v", err)
		}
		if prev.QuestionID != wantQ {
			t.Errorf("Back() restored %s, want %s", prev.QuestionID, wantQ)
		}
		if q, _ := s.Current(); q.ID != wantQ {
			t.Errorf("current = %s, want %s", q.ID, wantQ)
		}
	}
	if _, err := s.Back(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Back() on empty path error = %v", err)
	}

	// Changing the cuisine discards the old dish branch.
	mustAnswer(t, s,
		choice(QuestionCuisine, "western"),
		choice("q2_western", pairing.DishMeat),
		choice(QuestionSweetness, "either"),
		scale(QuestionAroma, 5),
	)
	res, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	want := taste.Vector{Sweetness: 6, Richness: 7, Acidity: 7, Aroma: 5}
	if res.Taste != want {
		t.Errorf("Taste = %+v, want %+v", res.Taste, want)
	}
	if res.Dish != pairing.DishMeat || res.Cuisine != pairing.CuisineWestern {
		t.Errorf("side info = %q/%q", res.Cuisine, res.Dish)
	}
}

func TestSession_BackFromComplete(t *testing.T) {
	t.Parallel()

	s := NewSession(DefaultGraph())
	mustAnswer(t, s,
		choice(QuestionCuisine, "various"),
		choice(QuestionSweetness, "amakuchi"),
		scale(QuestionAroma, 9),
	)
	prev, err := s.Back()
	if err != nil {
		t.Fatal(err)
	}
	if prev.Scale == nil || *prev.Scale != 9 {
		t.Errorf("restored answer = %+v", prev)
	}
	if s.Complete() {
		t.Error("session should be open again")
	}
	if _, err := s.Result(); !errors.Is(err, ErrNotComplete) {
		t.Errorf("Result() error = %v, want ErrNotComplete", err)
	}
	mustAnswer(t, s, scale(QuestionAroma, 2))
	res, _ := s.Result()
	if res.Taste.Aroma != 2 || res.Taste.Sweetness != 7 {
		t.Errorf("Taste = %+v", res.Taste)
	}
}

func TestSession_AnswerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prefix  []Answer
		answer  Answer
		wantErr error
	}{
		{"unknown question", nil, choice("q99", "x"), ErrUnknownQuestion},
		{"out of order", nil, choice(QuestionSweetness, "amakuchi"), ErrUnexpectedQuestion},
		{"unknown option", nil, choice(QuestionCuisine, "french"), ErrInvalidOption},
		{"two options on single", nil, choice(QuestionCuisine, "japanese", "western"), ErrInvalidOption},
		{"no options", nil, choice(QuestionCuisine), ErrInvalidOption},
		{"dish from other cuisine", []Answer{choice(QuestionCuisine, "japanese")}, choice("q2_japanese", pairing.DishGibier), ErrInvalidOption},
		{"scale missing", []Answer{choice(QuestionCuisine, "various"), choice(QuestionSweetness, "either")}, Answer{QuestionID: QuestionAroma}, ErrScaleOutOfRange},
		{"scale high", []Answer{choice(QuestionCuisine, "various"), choice(QuestionSweetness, "either")}, scale(QuestionAroma, 11), ErrScaleOutOfRange},
		{"scale NaN", []Answer{choice(QuestionCuisine, "various"), choice(QuestionSweetness, "either")}, scale(QuestionAroma, math.NaN()), ErrScaleOutOfRange},
		{"after end", []Answer{choice(QuestionCuisine, "various"), choice(QuestionSweetness, "either"), scale(QuestionAroma, 5)}, scale(QuestionAroma, 5), ErrAlreadyComplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSession(DefaultGraph())
			mustAnswer(t, s, tt.prefix...)
			before := len(s.Answers())
			if err := s.Answer(tt.answer); !errors.Is(err, tt.wantErr) {
				t.Errorf("Answer() error = %v, want %v", err, tt.wantErr)
			}
			if len(s.Answers()) != before {
				t.Error("a rejected answer was recorded")
			}
		})
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	path := []Answer{
		choice(QuestionCuisine, "chinese"),
		choice("q2_chinese", pairing.DishStrongTaste),
	}
	s, err := Restore(DefaultGraph(), path)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if q, _ := s.Current(); q.ID != QuestionSweetness {
		t.Errorf("current = %s", q.ID)
	}

	if _, err := Restore(DefaultGraph(), []Answer{choice("q2_chinese", pairing.DishTenshin)}); !errors.Is(err, ErrUnexpectedQuestion) {
		t.Errorf("Restore() of an invalid path error = %v", err)
	}
}

func TestAnswersAreCopies(t *testing.T) {
	t.Parallel()

	s := NewSession(DefaultGraph())
	a := choice(QuestionCuisine, "japanese")
	mustAnswer(t, s, a)
	a.Options[0] = "western"
	got := s.Answers()
	got[0].Options[0] = "chinese"
	if s.Answers()[0].Options[0] != "japanese" {
		t.Error("session answers were mutated from outside")
	}
}

func TestFold_ClampsOnceAtEnd(t *testing.T) {
	t.Parallel()

	answers := []Answer{
		choice(QuestionSweetness, "karakuchi"),
		choice(QuestionSweetness, "karakuchi"),
		choice(QuestionSweetness, "karakuchi"),
		choice(QuestionSweetness, "amakuchi"),
		choice(QuestionSweetness, "amakuchi"),
		choice(QuestionSweetness, "amakuchi"),
	}
	if got := Fold(answers).Taste.Sweetness; got != 5 {
		t.Errorf("Sweetness = %v, want 5 (clamp only after folding)", got)
	}

	low := Fold([]Answer{
		choice(QuestionCuisine, "chinese"),
		choice("q2_chinese", pairing.DishStrongTaste),
		choice(QuestionSweetness, "karakuchi"),
		choice(QuestionSweetness, "karakuchi"),
	})
	if low.Taste.Sweetness != taste.Min {
		t.Errorf("Sweetness = %v, want clamped to %v", low.Taste.Sweetness, taste.Min)
	}
}

func TestFold_IgnoresUnknown(t *testing.T) {
	t.Parallel()

	res := Fold([]Answer{choice("q42", "x"), choice(QuestionCuisine, "martian")})
	if res.Taste != taste.Neutral() || res.Cuisine != "" {
		t.Errorf("Fold() = %+v, want neutral", res)
	}
}

func TestPreferenceDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    taste.Vector
		want string
	}{
		{taste.New(3, 3, 5, 8), "辛口で淡麗、華やかな香りのお酒がお好みです"},
		{taste.New(8, 8, 5, 2), "甘口で濃醇、控えめな香りのお酒がお好みです"},
		{taste.Neutral(), "中口でバランスの良い味わい、程よい香りのお酒がお好みです"},
	}
	for _, tt := range tests {
		if got := PreferenceDescription(tt.v); got != tt.want {
			t.Errorf("PreferenceDescription(%+v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
