// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package gallery

import (
	"log/slog"

	"github.com/taibuivan/nolfolio/internal/catalog"
	"github.com/taibuivan/nolfolio/internal/filter"
	"github.com/taibuivan/nolfolio/internal/platform/apperr"
	"github.com/taibuivan/nolfolio/internal/platform/metrics"
	"github.com/taibuivan/nolfolio/internal/platform/validate"
	"github.com/taibuivan/nolfolio/pkg/pointer"
	"github.com/taibuivan/nolfolio/pkg/query"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// # Filter Actions

// Op names a filter mutation.
type Op string

const (
	OpAdd      Op = "add"
	OpRemove   Op = "remove"
	OpToggle   Op = "toggle"
	OpFeatured Op = "featured"
	OpClear    Op = "clear"
)

// Action is one filter mutation. Value is "true", "false" or "" for [OpFeatured].
type Action struct {
	Op    Op     `json:"op"`
	Facet string `json:"facet,omitempty"`
	Value string `json:"value,omitempty"`
}

// # Response Types

// VideoList is a filtered page of the catalog.
type VideoList struct {
	Videos      []catalog.Video `json:"videos"`
	Options     filter.Options  `json:"options"`
	State       filter.State    `json:"state"`
	Query       string          `json:"query"`
	ActiveCount int             `json:"active_count"`
	Total       int             `json:"total"`

	// Empty is set when the filter matched nothing. ResetQuery is then the
	// query that clears every facet.
	Empty      bool    `json:"empty"`
	ResetQuery *string `json:"reset_query,omitempty"`
}

// PhotoList is the photo page.
type PhotoList struct {
	Photos  []catalog.Photo `json:"photos"`
	Artists []string        `json:"artists"`
	Artist  string          `json:"artist,omitempty"`
}

// FilterResult is the outcome of one filter mutation.
type FilterResult struct {
	State       filter.State `json:"state"`
	Query       string       `json:"query"`
	ActiveCount int          `json:"active_count"`
	Total       int          `json:"total"`
}

// # Service Implementation

// Service answers gallery queries over an immutable [catalog.Catalog].
type Service struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewService constructs the gallery service.
func NewService(cat *catalog.Catalog, logger *slog.Logger) *Service {
	return &Service{catalog: cat, logger: logger}
}

// ListVideos filters the main list by state and orders it by artist.
// Options always describe the unfiltered catalog.
func (service *Service) ListVideos(state filter.State) VideoList {
	all := service.catalog.Videos()
	videos := catalog.SortByArtist(filter.Apply(all, state))

	metrics.CatalogFilterActive.Observe(float64(state.ActiveCount()))
	metrics.CatalogFilterResults.Observe(float64(len(videos)))

	list := VideoList{
		Videos:      videos,
		Options:     filter.GenerateOptions(all),
		State:       state.Clone(),
		Query:       filter.Encode(state),
		ActiveCount: state.ActiveCount(),
		Total:       len(videos),
	}

	if len(videos) == 0 {
		list.Empty = true
		list.ResetQuery = pointer.To(filter.Encode(filter.Empty()))
	}

	return list
}

// Video returns one video from the main list or the lost files.
func (service *Service) Video(id string) (catalog.Video, error) {
	return service.catalog.Video(id)
}

// LostFiles returns the lost files list.
func (service *Service) LostFiles() []catalog.Video {
	return service.catalog.LostFiles()
}

// Viewer builds the viewer hand-off for id.
//
// Lost files open inside the lost files list. Other videos open inside the
// filtered, artist-ordered list, or the whole list when the filter hides them.
func (service *Service) Viewer(id string, state filter.State, origin *catalog.Rect) (catalog.Viewer, error) {
	if _, err := service.catalog.Video(id); err != nil {
		return catalog.Viewer{}, err
	}

	isID := func(video catalog.Video) bool { return video.ID == id }

	lost := service.catalog.LostFiles()
	if len(slice.Filter(lost, isID)) > 0 {
		return catalog.NewViewer(catalog.VideosToMediaItems(lost), id, origin), nil
	}

	videos := catalog.SortByArtist(filter.Apply(service.catalog.Videos(), state))
	if len(slice.Filter(videos, isID)) == 0 {
		videos = catalog.SortByArtist(service.catalog.Videos())
	}

	return catalog.NewViewer(catalog.VideosToMediaItems(videos), id, origin), nil
}

// Photos returns the photo page, restricted to artist when non-empty.
func (service *Service) Photos(artist string) PhotoList {
	return PhotoList{
		Photos:  service.catalog.PhotosByArtist(artist),
		Artists: service.catalog.PhotoArtists(),
		Artist:  artist,
	}
}

// Work returns the work page sections.
func (service *Service) Work() []catalog.Section {
	return catalog.Sections(service.catalog.Videos(), service.catalog.Photos())
}

// ApplyAction runs action against the state encoded in raw.
//
// The state is mirrored through a [filter.MemoryLocation] so the returned
// query is exactly what a browser address bar would hold afterwards.
func (service *Service) ApplyAction(raw string, action Action) (FilterResult, error) {
	location := filter.NewMemoryLocation(raw)
	mirror := filter.NewSync(location)

	switch action.Op {
	case OpAdd, OpRemove, OpToggle:
		facet, ok := filter.ParseFacet(action.Facet)
		if !ok {
			return FilterResult{}, apperr.ValidationError("Unknown facet",
				apperr.FieldError{Field: "action.facet", Message: "Must be one of: artist, location, year, tour, category"})
		}
		switch action.Op {
		case OpAdd:
			mirror.Add(facet, action.Value)
		case OpRemove:
			mirror.Remove(facet, action.Value)
		default:
			mirror.Toggle(facet, action.Value)
		}
	case OpFeatured:
		if err := (&validate.Validator{}).OneOf("action.value", action.Value, "true", "false", "").Err(); err != nil {
			return FilterResult{}, err
		}
		mirror.SetFeatured(query.TriBool(action.Value))
	case OpClear:
		mirror.Clear()
	default:
		return FilterResult{}, apperr.ValidationError("Unknown filter action",
			apperr.FieldError{Field: "action.op", Message: "Must be one of: add, remove, toggle, featured, clear"})
	}

	state := mirror.State()
	service.logger.Debug("filter_action_applied",
		slog.String("op", string(action.Op)),
		slog.String("query", location.Query()),
	)

	return FilterResult{
		State:       state,
		Query:       location.Query(),
		ActiveCount: state.ActiveCount(),
		Total:       len(mirror.Apply(service.catalog.Videos())),
	}, nil
}
