// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package filter narrows the video catalog by facet selections and keeps the
selection mirrored in a URL query string.

Core Responsibility:

  - State: Multi-select facets (artist, location, year, tour, category) plus a tri-state featured flag.
  - Options: The distinct values a visitor can pick from.
  - Apply: AND across facets, OR within a facet.
  - Codec: Lossless state to query string round-trip, up to set equality.

Nothing in this package returns an error. Malformed input degrades to the
unconstrained state.
*/
package filter

import (
	"strconv"

	"github.com/taibuivan/nolfolio/pkg/pointer"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// # Facets

// Facet names one multi-select filter dimension. The value doubles as the query key.
type Facet string

const (
	FacetArtist   Facet = "artist"
	FacetLocation Facet = "location"
	FacetYear     Facet = "year"
	FacetTour     Facet = "tour"
	FacetCategory Facet = "category"
)

// keyFeatured is the query key of the tri-state featured flag.
const keyFeatured = "featured"

// Facets lists the facets in declaration order, which is also the encode order.
var Facets = []Facet{FacetArtist, FacetLocation, FacetYear, FacetTour, FacetCategory}

// ParseFacet returns the facet named s.
func ParseFacet(s string) (Facet, bool) {
	for _, facet := range Facets {
		if string(facet) == s {
			return facet, true
		}
	}
	return "", false
}

// # State

// State is a set of facet selections. Each slice holds unique values and an
// empty slice leaves that facet unconstrained. Featured is nil for "show all".
//
// State has value semantics: every helper returns a new State and never
// aliases the receiver's slices.
type State struct {
	Artists    []string `json:"artists"`
	Locations  []string `json:"locations"`
	Years      []int    `json:"years"`
	Tours      []string `json:"tours"`
	Categories []string `json:"categories"`
	Featured   *bool    `json:"featured"`
}

// Empty returns the unconstrained state with non-nil slices.
func Empty() State {
	return State{
		Artists:    []string{},
		Locations:  []string{},
		Years:      []int{},
		Tours:      []string{},
		Categories: []string{},
	}
}

// HasActive reports whether any facet constrains the result.
func (s State) HasActive() bool {
	return s.ActiveCount() > 0
}

// ActiveCount is the number of selected values, plus one when Featured is set.
func (s State) ActiveCount() int {
	count := len(s.Artists) + len(s.Locations) + len(s.Years) + len(s.Tours) + len(s.Categories)
	if s.Featured != nil {
		count++
	}
	return count
}

// Values returns the selected values of facet as strings, in selection order.
func (s State) Values(facet Facet) []string {
	switch facet {
	case FacetArtist:
		return s.Artists
	case FacetLocation:
		return s.Locations
	case FacetYear:
		return slice.Map(s.Years, strconv.Itoa)
	case FacetTour:
		return s.Tours
	case FacetCategory:
		return s.Categories
	}
	return nil
}

// # Mutation Helpers

// Add selects value in facet. Duplicates and unparsable years are ignored.
func (s State) Add(facet Facet, value string) State {
	next := s.Clone()

	if facet == FacetYear {
		year, err := strconv.Atoi(value)
		if err != nil || slice.Contains(next.Years, year) {
			return next
		}
		next.Years = append(next.Years, year)
		return next
	}

	if value == "" {
		return next
	}
	values := next.stringsFor(facet)
	if values == nil || slice.Contains(*values, value) {
		return next
	}
	*values = append(*values, value)

	return next
}

// Remove deselects value in facet.
func (s State) Remove(facet Facet, value string) State {
	next := s.Clone()

	if facet == FacetYear {
		if year, err := strconv.Atoi(value); err == nil {
			next.Years = slice.Without(next.Years, year)
		}
		return next
	}

	if values := next.stringsFor(facet); values != nil {
		*values = slice.Without(*values, value)
	}

	return next
}

// Toggle adds value when absent and removes it when present.
func (s State) Toggle(facet Facet, value string) State {
	if slice.Contains(s.Values(facet), value) {
		return s.Remove(facet, value)
	}
	return s.Add(facet, value)
}

// WithFeatured sets the featured flag; nil clears it.
func (s State) WithFeatured(featured *bool) State {
	next := s.Clone()
	next.Featured = pointer.Clone(featured)
	return next
}

// Clear returns the empty state.
func (s State) Clear() State {
	return Empty()
}

// Clone returns a deep copy with non-nil slices.
func (s State) Clone() State {
	return State{
		Artists:    append([]string{}, s.Artists...),
		Locations:  append([]string{}, s.Locations...),
		Years:      append([]int{}, s.Years...),
		Tours:      append([]string{}, s.Tours...),
		Categories: append([]string{}, s.Categories...),
		Featured:   pointer.Clone(s.Featured),
	}
}

func (s *State) stringsFor(facet Facet) *[]string {
	switch facet {
	case FacetArtist:
		return &s.Artists
	case FacetLocation:
		return &s.Locations
	case FacetTour:
		return &s.Tours
	case FacetCategory:
		return &s.Categories
	}
	return nil
}
