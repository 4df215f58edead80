// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"sort"

	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// Options lists the distinct values present for each facet.
// Years are newest first; everything else sorts ascending.
type Options struct {
	Artists    []string `json:"artists"`
	Locations  []string `json:"locations"`
	Years      []int    `json:"years"`
	Tours      []string `json:"tours"`
	Categories []string `json:"categories"`
}

// GenerateOptions derives [Options] from videos. Empty fields are absent, not a value.
func GenerateOptions(videos []catalog.Video) Options {
	options := Options{
		Artists:    distinct(videos, func(v catalog.Video) string { return v.Artist }),
		Locations:  distinct(videos, func(v catalog.Video) string { return v.Location }),
		Tours:      distinct(videos, func(v catalog.Video) string { return v.Tour }),
		Categories: distinct(videos, func(v catalog.Video) string { return v.Category }),
	}

	years := slice.Filter(slice.Map(videos, func(v catalog.Video) int { return v.Year }),
		func(year int) bool { return year != 0 })
	options.Years = slice.Unique(years)
	sort.Sort(sort.Reverse(sort.IntSlice(options.Years)))

	return options
}

func distinct(videos []catalog.Video, field func(catalog.Video) string) []string {
	values := slice.Filter(slice.Map(videos, field), func(value string) bool { return value != "" })
	values = slice.Unique(values)
	sort.Strings(values)
	return values
}
