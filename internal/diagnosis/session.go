// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package diagnosis

import (
	"fmt"
	"math"
	"slices"
)

// Progress reports how far through the quiz a session is. Total is the
// longest path still possible, so it can shrink when a branch is skipped.
type Progress struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// Session walks one user through the graph. It is not safe for concurrent
// use; the session store serializes access per id.
type Session struct {
	graph   *Graph
	answers []Answer
	current string
}

// NewSession starts at the graph's first question.
func NewSession(g *Graph) *Session {
	return &Session{graph: g, current: g.Start}
}

// Restore rebuilds a session by replaying answers, validating each one.
func Restore(g *Graph, answers []Answer) (*Session, error) {
	s := NewSession(g)
	for i, a := range answers {
		if err := s.Answer(a); err != nil {
			return nil, fmt.Errorf("replay answer %d: %w", i, err)
		}
	}
	return s, nil
}

// Current returns the question awaiting an answer, or false once complete.
func (s *Session) Current() (Question, bool) {
	if s.current == End {
		return Question{}, false
	}
	return s.graph.Question(s.current)
}

// Complete reports whether the last question has been answered.
func (s *Session) Complete() bool {
	return s.current == End
}

// Answers returns a copy of the answer path.
func (s *Session) Answers() []Answer {
	out := make([]Answer, len(s.answers))
	for i, a := range s.answers {
		out[i] = cloneAnswer(a)
	}
	return out
}

// Progress reports answered and expected question counts.
func (s *Session) Progress() Progress {
	return Progress{
		Answered: len(s.answers),
		Total:    len(s.answers) + s.graph.remaining(s.current, 0),
	}
}

// Answer records a for the current question and advances.
func (s *Session) Answer(a Answer) error {
	if s.Complete() {
		return ErrAlreadyComplete
	}
	q, ok := s.graph.Question(a.QuestionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, a.QuestionID)
	}
	if q.ID != s.current {
		return fmt.Errorf("%w: got %s, want %s", ErrUnexpectedQuestion, q.ID, s.current)
	}

	branch, err := check(&q, a)
	if err != nil {
		return err
	}

	s.answers = append(s.answers, cloneAnswer(a))
	s.current = s.graph.Step(q.ID, branch)
	return nil
}

// Back removes the most recent answer, makes its question current again and
// returns the removed answer so a client can pre-fill it.
func (s *Session) Back() (Answer, error) {
	if len(s.answers) == 0 {
		return Answer{}, ErrNothingToUndo
	}
	last := s.answers[len(s.answers)-1]
	s.answers = s.answers[:len(s.answers)-1]
	s.current = last.QuestionID
	return last, nil
}

// Result folds the current answer path. It is recomputed on every call.
func (s *Session) Result() (Result, error) {
	if !s.Complete() {
		return Result{}, ErrNotComplete
	}
	return s.graph.Fold(s.answers), nil
}

// check validates a against q and returns the option id used for branching.
func check(q *Question, a Answer) (string, error) {
	switch q.Kind {
	case KindScale:
		if a.Scale == nil {
			return "", fmt.Errorf("%w: %s needs a value", ErrScaleOutOfRange, q.ID)
		}
		v := *a.Scale
		if math.IsNaN(v) || v < q.Scale.Min || v > q.Scale.Max {
			return "", fmt.Errorf("%w: %v not in [%v, %v]", ErrScaleOutOfRange, v, q.Scale.Min, q.Scale.Max)
		}
		if len(a.Options) > 0 {
			return "", fmt.Errorf("%w: %s takes no options", ErrInvalidOption, q.ID)
		}
		return Any, nil

	case KindSingle:
		if len(a.Options) != 1 {
			return "", fmt.Errorf("%w: %s takes exactly one option, got %d", ErrInvalidOption, q.ID, len(a.Options))
		}

	case KindMultiple:
		if len(a.Options) == 0 {
			return "", fmt.Errorf("%w: %s needs at least one option", ErrInvalidOption, q.ID)
		}
	}

	seen := make(map[string]bool, len(a.Options))
	for _, id := range a.Options {
		if _, ok := q.Option(id); !ok {
			return "", fmt.Errorf("%w: %s has no option %q", ErrInvalidOption, q.ID, id)
		}
		if seen[id] {
			return "", fmt.Errorf("%w: %q repeated", ErrInvalidOption, id)
		}
		seen[id] = true
	}
	return a.Options[0], nil
}

func cloneAnswer(a Answer) Answer {
	a.Options = slices.Clone(a.Options)
	if a.Scale != nil {
		v := *a.Scale
		a.Scale = &v
	}
	return a
}
