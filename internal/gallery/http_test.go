// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/internal/gallery"
	"github.com/taibuivan/nolfolio/internal/platform/respond"
)

func newGalleryRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := gallery.NewService(catalog.New("https://cdn.example.com"), logger)
	return gallery.NewHandler(service).Routes()
}

func serve(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	newGalleryRouter().ServeHTTP(recorder, request)
	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Data
}

func videoIDs(videos []catalog.Video) []string {
	out := make([]string, 0, len(videos))
	for _, video := range videos {
		out = append(out, video.ID)
	}
	return out
}

/*
TestListVideos_Unfiltered orders the full list by artist.
*/
func TestListVideos_Unfiltered(t *testing.T) {
	list := decode[gallery.VideoList](t, serve(t, http.MethodGet, "/videos", ""))

	assert.Equal(t, 9, list.Total)
	assert.Equal(t, []string{
		"2hollis-lolla", "charlixcx-sweat", "charlixcx-guess",
		"osamason3", "osamason-psykotic2", "osamason-psykotic",
		"carti-like-weezy", "carti1", "hellp1",
	}, videoIDs(list.Videos))
	assert.Equal(t, []int{2025, 2024}, list.Options.Years)
	assert.Equal(t, []string{"CHICAGO"}, list.Options.Locations)
	assert.Zero(t, list.ActiveCount)
	assert.Empty(t, list.Query)
	assert.False(t, list.Empty)
	assert.Nil(t, list.ResetQuery)
	assert.Equal(t, "https://cdn.example.com/videos/2hollisLOLLA.mp4", list.Videos[0].VideoURL)
}

/*
TestListVideos_Filtered combines facets with AND and echoes the canonical query.
*/
func TestListVideos_Filtered(t *testing.T) {
	list := decode[gallery.VideoList](t, serve(t, http.MethodGet, "/videos?featured=true&year=2024&year=oops", ""))

	assert.Equal(t, []string{"charlixcx-sweat", "charlixcx-guess"}, videoIDs(list.Videos))
	assert.Equal(t, "year=2024&featured=true", list.Query)
	assert.Equal(t, 2, list.ActiveCount)
	assert.Equal(t, []int{2024}, list.State.Years)
}

/*
TestListVideos_NoResults signals the reset affordance.
*/
func TestListVideos_NoResults(t *testing.T) {
	recorder := serve(t, http.MethodGet, "/videos?artist=Nobody", "")
	list := decode[gallery.VideoList](t, recorder)

	assert.True(t, list.Empty)
	assert.NotNil(t, list.Videos)
	assert.Empty(t, list.Videos)
	require.NotNil(t, list.ResetQuery)
	assert.Empty(t, *list.ResetQuery)
	assert.Contains(t, recorder.Body.String(), `"reset_query":""`)
	assert.Contains(t, recorder.Body.String(), `"videos":[]`)
}

/*
TestGetVideo covers main list, lost files and unknown IDs.
*/
func TestGetVideo(t *testing.T) {
	video := decode[catalog.Video](t, serve(t, http.MethodGet, "/videos/carti-like-weezy", ""))
	assert.Equal(t, catalog.Orientation270, video.Orientation)

	lost := decode[catalog.Video](t, serve(t, http.MethodGet, "/videos/che", ""))
	assert.Equal(t, "Che", lost.Title)

	recorder := serve(t, http.MethodGet, "/videos/missing", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

/*
TestListLostFiles returns the lost files in catalog order.
*/
func TestListLostFiles(t *testing.T) {
	videos := decode[[]catalog.Video](t, serve(t, http.MethodGet, "/videos/lost", ""))

	require.Len(t, videos, 7)
	assert.Equal(t, "che", videos[0].ID)
}

/*
TestGetViewer opens inside the filtered list.
*/
func TestGetViewer(t *testing.T) {
	viewer := decode[catalog.Viewer](t, serve(t, http.MethodGet, "/videos/carti1/viewer?artist=Playboi+Carti&origin=10,20,300,200", ""))

	require.Len(t, viewer.Items, 2)
	assert.Equal(t, "carti1", viewer.Items[viewer.StartIndex].ID)
	assert.Equal(t, 1, viewer.StartIndex)
	require.NotNil(t, viewer.Origin)
	assert.Equal(t, catalog.Rect{X: 10, Y: 20, Width: 300, Height: 200}, *viewer.Origin)
}

/*
TestGetViewer_HiddenByFilter falls back to the whole list.
*/
func TestGetViewer_HiddenByFilter(t *testing.T) {
	viewer := decode[catalog.Viewer](t, serve(t, http.MethodGet, "/videos/hellp1/viewer?artist=Osamason&origin=bad", ""))

	assert.Len(t, viewer.Items, 9)
	assert.Equal(t, 8, viewer.StartIndex)
	assert.Nil(t, viewer.Origin)
}

/*
TestGetViewer_LostFile opens inside the lost files.
*/
func TestGetViewer_LostFile(t *testing.T) {
	viewer := decode[catalog.Viewer](t, serve(t, http.MethodGet, "/videos/hellp2/viewer", ""))

	assert.Len(t, viewer.Items, 7)
	assert.Equal(t, "hellp2", viewer.Items[viewer.StartIndex].ID)

	assert.Equal(t, http.StatusNotFound, serve(t, http.MethodGet, "/videos/missing/viewer", "").Code)
}

/*
TestListPhotos filters by artist and lists every artist.
*/
func TestListPhotos(t *testing.T) {
	page := decode[gallery.PhotoList](t, serve(t, http.MethodGet, "/photos?artist=Osamason", ""))

	require.Len(t, page.Photos, 3)
	assert.Equal(t, "photo-17", page.Photos[0].ID)
	assert.Equal(t, []string{"2hollis", "Frost Children", "Osamason", "The Hellp", "Yung Lean"}, page.Artists)

	all := decode[gallery.PhotoList](t, serve(t, http.MethodGet, "/photos", ""))
	assert.Len(t, all.Photos, 20)
}

/*
TestListSections groups the work page by client.
*/
func TestListSections(t *testing.T) {
	sections := decode[[]catalog.Section](t, serve(t, http.MethodGet, "/work", ""))

	titles := make([]string, 0, len(sections))
	items := 0
	for _, section := range sections {
		titles = append(titles, section.Title)
		items += len(section.Items)
	}

	assert.Equal(t, []string{
		"2HOLLIS", "CHARLI XCX", "FROST CHILDREN", "HELLP", "OSAMASON", "PLAYBOI CARTI", "THE HELLP", "YUNG LEAN",
	}, titles)
	assert.Equal(t, 29, items)
}

/*
TestApplyFilter mirrors each action into the returned query.
*/
func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		query  string
		active int
		total  int
	}{
		{
			name:   "toggle adds a year",
			body:   `{"query":"?artist=Osamason","action":{"op":"toggle","facet":"year","value":"2025"}}`,
			query:  "artist=Osamason&year=2025",
			active: 2,
			total:  3,
		},
		{
			name:   "toggle removes an artist",
			body:   `{"query":"artist=Osamason&artist=2hollis","action":{"op":"toggle","facet":"artist","value":"Osamason"}}`,
			query:  "artist=2hollis",
			active: 1,
			total:  1,
		},
		{
			name:   "add is idempotent",
			body:   `{"query":"tour=Sweat+Tour","action":{"op":"add","facet":"tour","value":"Sweat Tour"}}`,
			query:  "tour=Sweat+Tour",
			active: 1,
			total:  2,
		},
		{
			name:   "remove",
			body:   `{"query":"year=2024&year=2025","action":{"op":"remove","facet":"year","value":"2024"}}`,
			query:  "year=2025",
			active: 1,
			total:  7,
		},
		{
			name:   "featured on",
			body:   `{"query":"","action":{"op":"featured","value":"true"}}`,
			query:  "featured=true",
			active: 1,
			total:  6,
		},
		{
			name:   "featured cleared",
			body:   `{"query":"featured=false","action":{"op":"featured"}}`,
			query:  "",
			active: 0,
			total:  9,
		},
		{
			name:   "clear",
			body:   `{"query":"artist=Osamason&featured=true","action":{"op":"clear"}}`,
			query:  "",
			active: 0,
			total:  9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := decode[gallery.FilterResult](t, serve(t, http.MethodPost, "/videos/filter", tc.body))

			assert.Equal(t, tc.query, result.Query)
			assert.Equal(t, tc.active, result.ActiveCount)
			assert.Equal(t, tc.total, result.Total)
		})
	}
}

/*
TestApplyFilter_Rejects unknown ops, facets and malformed bodies.
*/
func TestApplyFilter_Rejects(t *testing.T) {
	bodies := []string{
		`{"query":"","action":{"op":"explode"}}`,
		`{"query":"","action":{"op":"add","facet":"genre","value":"x"}}`,
		`{"query":"","action":{"op":"featured","value":"yes"}}`,
		`{"query":"","action":{"op":"clear"},"extra":true}`,
		`not json`,
	}

	for _, body := range bodies {
		recorder := serve(t, http.MethodPost, "/videos/filter", body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, body)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR", body)
	}
}
