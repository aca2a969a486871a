// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package diagnosis

import "errors"

var (
	// ErrUnknownQuestion means the question id is not in the graph.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrUnexpectedQuestion means the answer is for a question other than the current one.
	ErrUnexpectedQuestion = errors.New("answer does not match the current question")
	// ErrInvalidOption means an option id is unknown, repeated, or the count is wrong.
	ErrInvalidOption = errors.New("invalid option")
	// ErrScaleOutOfRange means a scale answer is missing or outside the question bounds.
	ErrScaleOutOfRange = errors.New("scale value out of range")
	// ErrNotComplete means a result was requested before the last question.
	ErrNotComplete = errors.New("diagnosis is not complete")
	// ErrAlreadyComplete means an answer arrived after the last question.
	ErrAlreadyComplete = errors.New("diagnosis is already complete")
	// ErrNothingToUndo means Back was called with no answers recorded.
	ErrNothingToUndo = errors.New("no answer to go back to")
)
