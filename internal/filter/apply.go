// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package filter

import (
	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// Apply returns the videos that satisfy every constrained facet, in input order.
//
// Within a facet any selected value matches. A video whose field is absent
// fails a constrained facet. Featured, when set, must equal the video's flag.
// The input is never modified.
func Apply(videos []catalog.Video, state State) []catalog.Video {
	return slice.Filter(videos, func(video catalog.Video) bool {
		return Matches(video, state)
	})
}

// Matches reports whether a single video passes state.
func Matches(video catalog.Video, state State) bool {
	if !matchString(state.Artists, video.Artist) ||
		!matchString(state.Locations, video.Location) ||
		!matchString(state.Tours, video.Tour) ||
		!matchString(state.Categories, video.Category) {
		return false
	}

	if len(state.Years) > 0 && (video.Year == 0 || !slice.Contains(state.Years, video.Year)) {
		return false
	}

	if state.Featured != nil && video.Featured != *state.Featured {
		return false
	}

	return true
}

func matchString(selected []string, value string) bool {
	if len(selected) == 0 {
		return true
	}
	return value != "" && slice.Contains(selected, value)
}
