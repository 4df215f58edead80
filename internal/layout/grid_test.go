// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/internal/layout"
)

func sizeOf(assignment layout.Assignment) layout.Size {
	return layout.Size{Width: assignment.Width, Height: assignment.Height}
}

/*
TestExpandPool repeats each size ceil(weight) times.
*/
func TestExpandPool(t *testing.T) {
	assert.Len(t, layout.ExpandPool(layout.MessyPatterns), 20)

	pool := layout.ExpandPool([]layout.SizePattern{
		{Size: layout.Size{Width: 1, Height: 1}, Weight: 1.5},
		{Size: layout.Size{Width: 2, Height: 2}, Weight: 0},
	})
	assert.Equal(t, []layout.Size{{Width: 1, Height: 1}, {Width: 1, Height: 1}}, pool)
}

/*
TestMessy covers the featured table, video uprightness and photo tilt.
*/
func TestMessy(t *testing.T) {
	cards := []layout.Card{
		{ID: "featured", Type: catalog.MediaTypeVideo, Featured: true, Orientation: catalog.Orientation270},
		{ID: "video", Type: catalog.MediaTypeVideo},
		{ID: "photo", Type: catalog.MediaTypeImage},
	}
	pool := layout.ExpandPool(layout.MessyPatterns)

	for seed := range uint64(50) {
		assignments := layout.Messy(cards, layout.NewRand(seed))
		require.Len(t, assignments, 3)

		featured := assignments[0]
		assert.Equal(t, "featured", featured.ID)
		assert.Contains(t, layout.FeaturedSizes, sizeOf(featured))
		assert.Equal(t, 20, featured.ZIndex)
		assert.Zero(t, featured.Tilt)
		assert.Equal(t, catalog.Orientation270, featured.Orientation)

		video := assignments[1]
		assert.Contains(t, pool, sizeOf(video))
		assert.Zero(t, video.Tilt)
		assert.GreaterOrEqual(t, video.ZIndex, 1)
		assert.LessOrEqual(t, video.ZIndex, 15)

		photo := assignments[2]
		assert.GreaterOrEqual(t, photo.Tilt, -2.0)
		assert.Less(t, photo.Tilt, 2.0)
	}
}

/*
TestMessy_FeaturedZIndexWraps uses 20 + index mod 10.
*/
func TestMessy_FeaturedZIndexWraps(t *testing.T) {
	cards := make([]layout.Card, 12)
	for i := range cards {
		cards[i] = layout.Card{Type: catalog.MediaTypeVideo, Featured: true}
	}

	assignments := layout.Messy(cards, layout.NewRand(1))
	assert.Equal(t, 29, assignments[9].ZIndex)
	assert.Equal(t, 21, assignments[11].ZIndex)
}

/*
TestMessy_Empty yields an empty layout.
*/
func TestMessy_Empty(t *testing.T) {
	assignments := layout.Messy(nil, layout.NewRand(1))
	assert.NotNil(t, assignments)
	assert.Empty(t, assignments)
}

/*
TestMessy_Deterministic repeats with the same seed.
*/
func TestMessy_Deterministic(t *testing.T) {
	cards := layout.SectionCards(catalog.Flatten(catalog.Sections(catalog.New("").Videos(), catalog.New("").Photos())))

	assert.Equal(t, layout.Messy(cards, layout.NewRand(99)), layout.Messy(cards, layout.NewRand(99)))
}

/*
TestWideMasonry_Pairing walks the pair, featured and single tables.
*/
func TestWideMasonry_Pairing(t *testing.T) {
	videos := []catalog.Video{
		{ID: "v0"},
		{ID: "v1", Orientation: catalog.Orientation270},
		{ID: "v2", Featured: true},
		{ID: "v3"},
		{ID: "v4"},
		{ID: "v5"},
	}

	wide := layout.WideMasonry(videos, nil, layout.NewRand(5))
	require.Len(t, wide.Videos, 6)

	assert.Equal(t, layout.WidePairSizes[0], sizeOf(wide.Videos[0]))
	assert.Equal(t, layout.WidePairSizes[0], sizeOf(wide.Videos[1]))
	assert.Contains(t, layout.WideFeaturedSizes, sizeOf(wide.Videos[2]))
	assert.Equal(t, layout.WidePairSizes[1], sizeOf(wide.Videos[3]))
	assert.Equal(t, layout.WidePairSizes[1], sizeOf(wide.Videos[4]))
	assert.Equal(t, layout.WideSingleSizes[0], sizeOf(wide.Videos[5]))

	assert.Equal(t, 22, wide.Videos[2].ZIndex)
	assert.Equal(t, 1, wide.Videos[5].ZIndex)
	assert.Equal(t, 2, wide.Videos[1].ZIndex)

	// Orientation stays on the record; tilt is still cosmetic.
	assert.Equal(t, catalog.Orientation270, wide.Videos[1].Orientation)
	for _, assignment := range wide.Videos {
		assert.GreaterOrEqual(t, assignment.Tilt, -2.0)
		assert.Less(t, assignment.Tilt, 2.0)
	}
}

/*
TestWideMasonry_SinglesCycle when no video can pair.
*/
func TestWideMasonry_SinglesCycle(t *testing.T) {
	videos := []catalog.Video{
		{ID: "a"}, {ID: "f1", Featured: true},
		{ID: "b"}, {ID: "f2", Featured: true},
		{ID: "c"}, {ID: "f3", Featured: true},
		{ID: "d"}, {ID: "f4", Featured: true},
		{ID: "e"},
	}

	wide := layout.WideMasonry(videos, nil, layout.NewRand(1))

	assert.Equal(t, layout.WideSingleSizes[0], sizeOf(wide.Videos[0]))
	assert.Equal(t, layout.WideSingleSizes[1], sizeOf(wide.Videos[2]))
	assert.Equal(t, layout.WideSingleSizes[2], sizeOf(wide.Videos[4]))
	assert.Equal(t, layout.WideSingleSizes[3], sizeOf(wide.Videos[6]))
	assert.Equal(t, layout.WideSingleSizes[0], sizeOf(wide.Videos[8]))
}

/*
TestWideMasonry_Photos draws from the photo table.
*/
func TestWideMasonry_Photos(t *testing.T) {
	photos := catalog.New("").Photos()
	wide := layout.WideMasonry(nil, photos, layout.NewRand(3))

	require.Len(t, wide.Photos, len(photos))
	assert.Empty(t, wide.Videos)
	for i, assignment := range wide.Photos {
		assert.Equal(t, photos[i].ID, assignment.ID)
		assert.Contains(t, layout.WidePhotoSizes, sizeOf(assignment))
		assert.Equal(t, 1+i%5, assignment.ZIndex)
	}
}

/*
TestCardTilt keeps an assigned tilt and otherwise draws within ±3°.
*/
func TestCardTilt(t *testing.T) {
	rng := layout.NewRand(8)

	assert.Equal(t, 1.25, layout.CardTilt(1.25, rng))
	for range 100 {
		tilt := layout.CardTilt(0, rng)
		assert.GreaterOrEqual(t, tilt, -3.0)
		assert.Less(t, tilt, 3.0)
	}
}

/*
TestSafeMargin grows with tilt and never drops below 15px.
*/
func TestSafeMargin(t *testing.T) {
	assert.Equal(t, 15.0, layout.SafeMargin(300, 200, 0))
	assert.Equal(t, 15.0, layout.SafeMargin(300, 200, 2))
	assert.InDelta(t, 24.528, layout.SafeMargin(300, 200, 10), 0.001)
	assert.Equal(t, layout.SafeMargin(300, 200, 10), layout.SafeMargin(300, 200, -10))
}
