// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package gallery provides the HTTP interface for browsing the portfolio.

It exposes the video list with its facet filter, the lost files, the photo
page, the work page sections and the viewer hand-off.

# Routing Strategy

  - Reads (v1): Every endpoint is public and read-only over the static catalog.
  - Filter actions: POST /videos/filter mutates a query string and returns the new one.
    Nothing is stored server-side.

The handler translates between the web/JSON layer and the gallery [Service].
*/
package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/internal/filter"
	requestutil "github.com/taibuivan/nolfolio/internal/platform/request"
	"github.com/taibuivan/nolfolio/internal/platform/respond"
	"github.com/taibuivan/nolfolio/pkg/convert"
	"github.com/taibuivan/nolfolio/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for the gallery pages.
type Handler struct {
	service *Service
}

// NewHandler constructs a new gallery [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the gallery endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Videos
	router.Get("/videos", handler.listVideos)
	router.Post("/videos/filter", handler.applyFilter)
	router.Get("/videos/lost", handler.listLostFiles)
	router.Get("/videos/{id}", handler.getVideo)
	router.Get("/videos/{id}/viewer", handler.getViewer)

	// ## Photos and Work
	router.Get("/photos", handler.listPhotos)
	router.Get("/work", handler.listSections)

	return router
}

// # Video Endpoints

/*
GET /api/v1/videos.

Description: Lists the main videos narrowed by the facet filter, ordered by artist.

Request:
  - artist, location, tour, category: []string (OR within a facet)
  - year: []int
  - featured: "true" | "false"

Response:
  - 200: VideoList (empty: true plus reset_query when nothing matched)
*/
func (handler *Handler) listVideos(writer http.ResponseWriter, request *http.Request) {
	state := filter.FromValues(request.URL.Query())
	respond.OK(writer, handler.service.ListVideos(state))
}

/*
POST /api/v1/videos/filter.

Description: Applies one filter action to a query string.

Request:
  - query: string (current query, with or without "?")
  - action: Action {op, facet, value}

Response:
  - 200: FilterResult
  - 400: VALIDATION_ERROR (unknown op, facet or featured value)
*/
func (handler *Handler) applyFilter(writer http.ResponseWriter, request *http.Request) {
	var input struct {
		Query  string `json:"query"`
		Action Action `json:"action"`
	}
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.ApplyAction(input.Query, input.Action)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/videos/lost.

Response:
  - 200: []Video
*/
func (handler *Handler) listLostFiles(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.LostFiles())
}

/*
GET /api/v1/videos/{id}.

Response:
  - 200: Video
  - 404: NOT_FOUND
*/
func (handler *Handler) getVideo(writer http.ResponseWriter, request *http.Request) {
	video, err := handler.service.Video(requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, video)
}

/*
GET /api/v1/videos/{id}/viewer.

Description: Returns the ordered media list the viewer opens on, starting at id.

Request:
  - facet parameters as for GET /videos
  - origin: "x,y,width,height" of the clicked card, for the zoom animation

Response:
  - 200: Viewer
  - 404: NOT_FOUND
*/
func (handler *Handler) getViewer(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()

	viewer, err := handler.service.Viewer(requestutil.Param(request, "id"), filter.FromValues(params), parseOrigin(params.Get("origin")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, viewer)
}

// parseOrigin reads "x,y,width,height". Anything else means no origin.
func parseOrigin(raw string) *catalog.Rect {
	parts := query.CSV(raw)
	if len(parts) != 4 {
		return nil
	}
	return &catalog.Rect{
		X:      convert.ToFloat64D(parts[0], 0),
		Y:      convert.ToFloat64D(parts[1], 0),
		Width:  convert.ToFloat64D(parts[2], 0),
		Height: convert.ToFloat64D(parts[3], 0),
	}
}

// # Photo and Work Endpoints

/*
GET /api/v1/photos.

Request:
  - artist: string (optional, exact client name)

Response:
  - 200: PhotoList
*/
func (handler *Handler) listPhotos(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Photos(request.URL.Query().Get("artist")))
}

/*
GET /api/v1/work.

Response:
  - 200: []Section (EDITS first, then one per client)
*/
func (handler *Handler) listSections(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Work())
}
