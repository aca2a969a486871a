// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

// Package catalog loads the static list of sake products and serves it as an
// immutable snapshot. Records come from YAML (the embedded default or a file
// on disk) and may be expressed either as full profiles or as raw matrix rows
// carrying only sake-degree, acidity, alcohol and a type class.
package catalog

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned when an id is not in the catalog.
var ErrEntryNotFound = errors.New("sake not found")

// Catalog is an immutable, ordered set of entries. Order is the file order
// and is significant: it breaks ranking ties.
type Catalog struct {
	version string
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries, rejecting empty and duplicate ids.
func New(version string, entries []Entry) (*Catalog, error) {
	c := &Catalog{
		version: version,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", e.Name)
		}
		if _, dup := c.index[e.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", e.ID)
		}
		c.index[e.ID] = len(c.entries)
		c.entries = append(c.entries, e.clone())
	}
	return c, nil
}

// Version is the data version declared by the source file.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns copies of every entry in catalog order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// At returns a pointer to the i-th entry. The pointee must not be modified;
// it exists so hot paths can avoid copying.
func (c *Catalog) At(i int) *Entry {
	return &c.entries[i]
}

// Get returns a copy of the entry with the given id.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return c.entries[i].clone(), nil
}
