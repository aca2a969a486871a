// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package recommend ranks catalog entries against a diagnosis result.
//
// # Pipeline
//
//   - Select picks the compatibility rule: the dish rule when the dish is
//     known, else the cuisine rule, else none ("various" and unknown ids).
//   - Filter admits entries inside all three of the rule's ranges OR whose
//     style is one of the rule's two classes. An empty result falls back to
//     the whole catalog.
//   - Each survivor gets three scores: the matrix fit (style +10 or -5, then
//     +3/+2/+1 for sake-degree, acidity and alcohol in range), the weighted
//     taste closeness, and the dish or cuisine affinity.
//   - The weighted sum is sorted stably, so catalog order breaks ties.
//   - Reasons explains each pick in at most three short phrases.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Result: result,
//	    Count:  3,
//	})
//
// # Thread Safety
//
// The engine is safe for concurrent use. Scoring is pure over an immutable
// catalog snapshot; the response cache is an expiring LRU keyed by catalog
// version and request inputs, and Purge empties it after a reload.
package recommend
