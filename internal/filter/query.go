// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/taibuivan/nolfolio/pkg/query"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// # Query Codec

// Encode serializes state as a query string without the leading "?".
//
// Keys follow facet declaration order, one pair per selected value, and
// values keep selection order. Repeated values collapse to one pair.
// featured is written last and only when set.
func Encode(state State) string {
	var builder strings.Builder

	write := func(key, value string) {
		if builder.Len() > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(value))
	}

	for _, facet := range Facets {
		for _, value := range slice.Unique(state.Values(facet)) {
			write(string(facet), value)
		}
	}

	if state.Featured != nil {
		write(keyFeatured, strconv.FormatBool(*state.Featured))
	}

	return builder.String()
}

// Decode parses a query string, with or without the leading "?".
//
// Unknown keys are ignored, non-numeric years are dropped, and featured
// decodes to nil unless it is exactly "true" or "false". Malformed pairs are
// skipped; Decode never fails.
func Decode(raw string) State {
	// ParseQuery keeps every well-formed pair even when it reports an error.
	values, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))

	return FromValues(values)
}

// FromValues builds a state from already parsed query values.
func FromValues(values url.Values) State {
	state := State{
		Artists:    slice.Unique(query.StringSlice(values[string(FacetArtist)])),
		Locations:  slice.Unique(query.StringSlice(values[string(FacetLocation)])),
		Years:      slice.Unique(query.IntSlice(values[string(FacetYear)])),
		Tours:      slice.Unique(query.StringSlice(values[string(FacetTour)])),
		Categories: slice.Unique(query.StringSlice(values[string(FacetCategory)])),
	}

	if featured, ok := values[keyFeatured]; ok && len(featured) > 0 {
		state.Featured = query.TriBool(featured[0])
	}

	return state
}
