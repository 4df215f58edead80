// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"sync"

	"github.com/taibuivan/nolfolio/internal/catalog"
)

// # Location Synchronisation

// Location is the navigable address whose query string mirrors the filter.
type Location interface {
	// Query returns the current query string.
	Query() string

	// Replace overwrites the query string without adding a history entry.
	Replace(query string)
}

// Sync owns a [State] and keeps a [Location] equal to its encoding.
//
// The location is read once, in [NewSync]. After that the state is the
// source of truth and every mutation writes the canonical query back.
type Sync struct {
	mu       sync.Mutex
	location Location
	state    State
}

// NewSync derives the initial state from location.
func NewSync(location Location) *Sync {
	return &Sync{
		location: location,
		state:    Decode(location.Query()),
	}
}

// State returns a copy of the current state.
func (s *Sync) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Clone()
}

// Query returns the canonical encoding of the current state.
func (s *Sync) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Encode(s.state)
}

// Apply filters videos with the current state.
func (s *Sync) Apply(videos []catalog.Video) []catalog.Video {
	return Apply(videos, s.State())
}

// Add selects a value.
func (s *Sync) Add(facet Facet, value string) State {
	return s.update(func(state State) State { return state.Add(facet, value) })
}

// Remove deselects a value.
func (s *Sync) Remove(facet Facet, value string) State {
	return s.update(func(state State) State { return state.Remove(facet, value) })
}

// Toggle flips a value.
func (s *Sync) Toggle(facet Facet, value string) State {
	return s.update(func(state State) State { return state.Toggle(facet, value) })
}

// SetFeatured sets or clears the featured flag.
func (s *Sync) SetFeatured(featured *bool) State {
	return s.update(func(state State) State { return state.WithFeatured(featured) })
}

// Clear resets every facet.
func (s *Sync) Clear() State {
	return s.update(func(state State) State { return state.Clear() })
}

func (s *Sync) update(mutate func(State) State) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = mutate(s.state)
	s.location.Replace(Encode(s.state))

	return s.state.Clone()
}

// # In-memory Location

// MemoryLocation is a [Location] backed by a string. It records how many
// times the query was replaced.
type MemoryLocation struct {
	mu       sync.Mutex
	query    string
	replaces int
}

// NewMemoryLocation starts at query.
func NewMemoryLocation(query string) *MemoryLocation {
	return &MemoryLocation{query: query}
}

// Query implements [Location].
func (l *MemoryLocation) Query() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.query
}

// Replace implements [Location].
func (l *MemoryLocation) Replace(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = query
	l.replaces++
}

// Replaces returns how many writes happened.
func (l *MemoryLocation) Replaces() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.replaces
}
