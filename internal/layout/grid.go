// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import (
	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// # Cards

// Card is the part of a record the grid generators look at.
type Card struct {
	ID          string
	Type        catalog.MediaType
	Featured    bool
	Orientation catalog.Orientation
}

// VideoCard describes a video.
func VideoCard(video catalog.Video) Card {
	return Card{ID: video.ID, Type: catalog.MediaTypeVideo, Featured: video.Featured, Orientation: video.Orientation}
}

// PhotoCard describes a photo.
func PhotoCard(photo catalog.Photo) Card {
	return Card{ID: photo.ID, Type: catalog.MediaTypeImage}
}

// SectionCards describes work-page items in order.
func SectionCards(items []catalog.SectionItem) []Card {
	return slice.Map(items, func(item catalog.SectionItem) Card {
		if item.Video != nil {
			return VideoCard(*item.Video)
		}
		if item.Photo != nil {
			return PhotoCard(*item.Photo)
		}
		return Card{}
	})
}

// Assignment is the layout of one card.
//
// Tilt is the cosmetic rotation of the card wrapper in degrees. Orientation is
// the content correction of the media element and is copied from the record.
type Assignment struct {
	ID          string              `json:"id"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Tilt        float64             `json:"tilt"`
	Orientation catalog.Orientation `json:"orientation"`
	ZIndex      int                 `json:"z_index"`
}

// # Messy Grid

// Messy lays out the work page. Featured videos draw from [FeaturedSizes];
// everything else draws from the expanded [MessyPatterns] pool. Videos stay
// upright and photos get a subtle tilt.
func Messy(cards []Card, rng Rand) []Assignment {
	pool := ExpandPool(MessyPatterns)
	assignments := make([]Assignment, 0, len(cards))

	for index, card := range cards {
		assignment := Assignment{ID: card.ID, Orientation: card.Orientation}

		if card.Type == catalog.MediaTypeVideo && card.Featured {
			size := pick(rng, FeaturedSizes)
			assignment.Width, assignment.Height = size.Width, size.Height
			assignment.ZIndex = 20 + index%10
			assignments = append(assignments, assignment)
			continue
		}

		size := pick(rng, pool)
		assignment.Width, assignment.Height = size.Width, size.Height

		if card.Type != catalog.MediaTypeVideo {
			assignment.Tilt = between(rng, -2, 2)
		}
		assignment.ZIndex = 1 + rng.IntN(15)

		assignments = append(assignments, assignment)
	}

	return assignments
}

// # Wide Masonry Grid

// WideLayout holds the two independent lists of the wide masonry grid.
type WideLayout struct {
	Videos []Assignment `json:"videos"`
	Photos []Assignment `json:"photos"`
}

// WideMasonry lays out videos in side-by-side pairs where possible, then photos.
//
// A featured video draws from [WideFeaturedSizes] and resets pairing. A video
// opens a pair when a next video exists and is not featured; the pair uses the
// next [WidePairSizes] entry and its second video reuses that size. Anything
// else takes the next [WideSingleSizes] entry. Both tables cycle.
func WideMasonry(videos []catalog.Video, photos []catalog.Photo, rng Rand) WideLayout {
	layout := WideLayout{
		Videos: make([]Assignment, 0, len(videos)),
		Photos: make([]Assignment, 0, len(photos)),
	}

	pairIndex, singleIndex := 0, 0
	secondInPair := false

	for index, video := range videos {
		assignment := Assignment{ID: video.ID, Orientation: video.Orientation}

		if video.Featured {
			size := pick(rng, WideFeaturedSizes)
			assignment.Width, assignment.Height = size.Width, size.Height
			assignment.Tilt = between(rng, -2, 2)
			assignment.ZIndex = 20 + index
			layout.Videos = append(layout.Videos, assignment)
			secondInPair = false
			continue
		}

		canPair := index < len(videos)-1 && !videos[index+1].Featured

		var size Size
		switch {
		case canPair && !secondInPair:
			size = WidePairSizes[pairIndex%len(WidePairSizes)]
			pairIndex++
			secondInPair = true
		case secondInPair:
			previous := layout.Videos[len(layout.Videos)-1]
			size = Size{Width: previous.Width, Height: previous.Height}
			secondInPair = false
		default:
			size = WideSingleSizes[singleIndex%len(WideSingleSizes)]
			singleIndex++
		}

		assignment.Width, assignment.Height = size.Width, size.Height
		assignment.Tilt = between(rng, -2, 2)
		assignment.ZIndex = 1 + index%5
		layout.Videos = append(layout.Videos, assignment)
	}

	for index, photo := range photos {
		size := pick(rng, WidePhotoSizes)
		layout.Photos = append(layout.Photos, Assignment{
			ID:     photo.ID,
			Width:  size.Width,
			Height: size.Height,
			Tilt:   between(rng, -2, 2),
			ZIndex: 1 + index%5,
		})
	}

	return layout
}
