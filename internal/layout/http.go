// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import (
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/internal/filter"
	"github.com/taibuivan/nolfolio/internal/platform/constants"
	"github.com/taibuivan/nolfolio/internal/platform/metrics"
	"github.com/taibuivan/nolfolio/internal/platform/respond"
	"github.com/taibuivan/nolfolio/pkg/convert"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

const (
	variantMessy = "messy"
	variantWide  = "wide"

	// defaultCellPx converts grid units to pixels for the card margin hint.
	defaultCellPx = 100.0

	defaultViewportWidth  = 1440.0
	defaultViewportHeight = 900.0
)

// # Handler Implementation

// Handler serves generated layouts.
type Handler struct {
	catalog       *catalog.Catalog
	slots         int
	clock         Clock
	originAllowed func(origin string) bool
}

// NewHandler builds the layout handler. originAllowed guards websocket upgrades;
// nil accepts every origin.
func NewHandler(cat *catalog.Catalog, slots int, originAllowed func(string) bool) *Handler {
	if slots <= 0 {
		slots = DefaultScatterSlots
	}
	return &Handler{catalog: cat, slots: slots, clock: SystemClock, originAllowed: originAllowed}
}

// WithClock swaps the timer source of live sessions.
func (handler *Handler) WithClock(clock Clock) *Handler {
	handler.clock = clock
	return handler
}

// Routes returns the layout endpoints. The live feed is exempt from the request timeout.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(timed chi.Router) {
		timed.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		timed.Get("/collage", handler.collage)
		timed.Get("/scatter", handler.scatter)
	})

	router.Get("/scatter/live", handler.live)

	return router
}

// # Collage

// CardLayout is an assignment plus the card's rendered tilt and margin.
type CardLayout struct {
	Assignment
	Type       catalog.MediaType `json:"type"`
	CardTilt   float64           `json:"card_tilt"`
	SafeMargin float64           `json:"safe_margin"`
}

// CollageResponse is the body of GET /collage.
type CollageResponse struct {
	Variant string       `json:"variant"`
	Seed    uint64       `json:"seed"`
	Query   string       `json:"query"`
	Cards   []CardLayout `json:"cards,omitempty"`
	Videos  []CardLayout `json:"videos,omitempty"`
	Photos  []CardLayout `json:"photos,omitempty"`
}

func (handler *Handler) collage(writer http.ResponseWriter, request *http.Request) {
	params := request.URL.Query()
	seed := seedFrom(params.Get("seed"))
	rng := NewRand(seed)
	cell := convert.ToFloat64D(params.Get("cell"), defaultCellPx)

	state := filter.FromValues(params)
	videos := catalog.SortByArtist(filter.Apply(handler.catalog.Videos(), state))
	photos := handler.catalog.Photos()

	response := CollageResponse{Seed: seed, Query: filter.Encode(state)}

	switch params.Get("variant") {
	case variantWide:
		response.Variant = variantWide
		wide := WideMasonry(videos, photos, rng)
		response.Videos = decorate(wide.Videos, catalog.MediaTypeVideo, cell, rng)
		response.Photos = decorate(wide.Photos, catalog.MediaTypeImage, cell, rng)
	default:
		response.Variant = variantMessy
		cards := SectionCards(catalog.Flatten(catalog.Sections(videos, photos)))
		assignments := Messy(cards, rng)
		response.Cards = make([]CardLayout, len(assignments))
		for i, assignment := range assignments {
			response.Cards[i] = decorateOne(assignment, cards[i].Type, cell, rng)
		}
	}

	metrics.LayoutsGenerated.WithLabelValues(response.Variant).Inc()
	respond.OK(writer, response)
}

func decorate(assignments []Assignment, kind catalog.MediaType, cell float64, rng Rand) []CardLayout {
	return slice.Map(assignments, func(assignment Assignment) CardLayout {
		return decorateOne(assignment, kind, cell, rng)
	})
}

func decorateOne(assignment Assignment, kind catalog.MediaType, cell float64, rng Rand) CardLayout {
	tilt := CardTilt(assignment.Tilt, rng)
	return CardLayout{
		Assignment: assignment,
		Type:       kind,
		CardTilt:   tilt,
		SafeMargin: SafeMargin(float64(assignment.Width)*cell, float64(assignment.Height)*cell, tilt),
	}
}

// # Scatter

// ScatterPhoto is a placement with the photo it currently shows.
type ScatterPhoto struct {
	Placement
	PhotoIndex int    `json:"photo_index"`
	PhotoID    string `json:"photo_id"`
	ImageURL   string `json:"image_url"`
}

// Scene is the body of GET /scatter and the first live message.
type Scene struct {
	Seed       uint64         `json:"seed"`
	Config     ScatterConfig  `json:"config"`
	Placements []ScatterPhoto `json:"placements"`
}

// NewScene places slots photos and picks their initial content.
func NewScene(photos []catalog.Photo, cfg ScatterConfig, slots int, seed uint64, rng Rand) Scene {
	if len(photos) == 0 {
		return Scene{Seed: seed, Config: cfg, Placements: []ScatterPhoto{}}
	}

	placements := Place(cfg, slots, rng)
	indices := PickInitial(len(photos), len(placements), rng)

	scene := Scene{Seed: seed, Config: cfg, Placements: make([]ScatterPhoto, len(placements))}
	for i, placement := range placements {
		photo := photos[indices[i]]
		scene.Placements[i] = ScatterPhoto{Placement: placement, PhotoIndex: indices[i], PhotoID: photo.ID, ImageURL: photo.ImageURL}
	}

	return scene
}

// Indices returns the photo index of every slot.
func (scene Scene) Indices() []int {
	return slice.Map(scene.Placements, func(p ScatterPhoto) int { return p.PhotoIndex })
}

func (handler *Handler) scene(request *http.Request) Scene {
	params := request.URL.Query()
	seed := seedFrom(params.Get("seed"))

	width := convert.ToFloat64D(params.Get("width"), defaultViewportWidth)
	height := convert.ToFloat64D(params.Get("height"), defaultViewportHeight)

	var nav *NavBounds
	if params.Has("nav_x") && params.Has("nav_y") && params.Has("nav_w") && params.Has("nav_h") {
		nav = &NavBounds{
			CenterX: convert.ToFloat64D(params.Get("nav_x"), width/2),
			CenterY: convert.ToFloat64D(params.Get("nav_y"), height/2),
			Width:   convert.ToFloat64D(params.Get("nav_w"), defaultNavWidth),
			Height:  convert.ToFloat64D(params.Get("nav_h"), defaultNavHeight),
		}
	}

	scene := NewScene(handler.catalog.Photos(), NewScatterConfig(width, height, nav), handler.slots, seed, NewRand(seed))

	metrics.LayoutsGenerated.WithLabelValues("scatter").Inc()
	for _, placement := range scene.Placements {
		if placement.Fallback {
			metrics.ScatterFallbacks.Inc()
		}
	}

	return scene
}

func (handler *Handler) scatter(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.scene(request))
}

// seedFrom parses a client seed, or draws one so the response can be replayed.
func seedFrom(raw string) uint64 {
	return convert.ToUint64D(raw, rand.Uint64())
}
