// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import "math"

// # Size Tables

// Size is a card span in grid units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizePattern is a size with its relative frequency.
type SizePattern struct {
	Size
	Weight float64
}

// MessyPatterns favour medium cards so two fit side by side.
var MessyPatterns = []SizePattern{
	{Size{3, 3}, 4},
	{Size{3, 4}, 3},
	{Size{4, 3}, 3},
	{Size{2, 3}, 2},
	{Size{3, 2}, 2},
	{Size{4, 4}, 2},
	{Size{2, 4}, 1},
	{Size{4, 2}, 1},
	{Size{5, 3}, 1},
	{Size{3, 5}, 1},
}

// FeaturedSizes are drawn for featured videos in the messy grid.
var FeaturedSizes = []Size{{4, 4}, {5, 3}, {3, 5}, {4, 5}, {5, 4}}

// Wide masonry tables.
var (
	WideFeaturedSizes = []Size{{5, 4}, {4, 5}, {6, 3}}
	WidePairSizes     = []Size{{4, 3}, {3, 3}, {5, 2}, {3, 4}}
	WideSingleSizes   = []Size{{6, 3}, {4, 4}, {2, 5}, {5, 4}}
	WidePhotoSizes    = []Size{{2, 2}, {3, 2}, {2, 3}, {3, 3}, {4, 2}, {2, 4}}
)

// ExpandPool flattens patterns into a pool where each size appears ceil(weight) times.
// Non-positive weights contribute nothing.
func ExpandPool(patterns []SizePattern) []Size {
	var pool []Size
	for _, pattern := range patterns {
		count := int(math.Ceil(pattern.Weight))
		for range count {
			pool = append(pool, pattern.Size)
		}
	}
	return pool
}

func pick(rng Rand, sizes []Size) Size {
	return sizes[rng.IntN(len(sizes))]
}
