// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"sort"
	"strings"

	"github.com/taibuivan/nolfolio/internal/platform/apperr"
	"github.com/taibuivan/nolfolio/pkg/slice"
)

// # Catalog

// Catalog is the immutable set of records served by the API.
//
// # Concurrency
//
// A Catalog is read-only after [New] and safe for concurrent use.
type Catalog struct {
	videos    []Video
	lostFiles []Video
	photos    []Photo
	byID      map[string]Video
}

// New builds the catalog, resolving video files against cdnBaseURL.
// An empty base serves files from the site's own /videos path.
func New(cdnBaseURL string) *Catalog {
	base := strings.TrimRight(cdnBaseURL, "/")

	return FromRecords(resolve(videoSeeds, base), resolve(lostFileSeeds, base), photoRecords)
}

// FromRecords builds a catalog from arbitrary records. Used by tests and tooling.
func FromRecords(videos, lostFiles []Video, photos []Photo) *Catalog {
	catalog := &Catalog{
		videos:    slice.Map(videos, Video.clone),
		lostFiles: slice.Map(lostFiles, Video.clone),
		photos:    slice.Map(photos, Photo.clone),
		byID:      make(map[string]Video, len(videos)+len(lostFiles)),
	}

	for _, video := range catalog.lostFiles {
		catalog.byID[video.ID] = video
	}
	for _, video := range catalog.videos {
		catalog.byID[video.ID] = video
	}

	return catalog
}

// VideoURL returns the public URL of a video file.
func VideoURL(base, file string) string {
	if base == "" {
		return "/videos/" + file
	}
	return base + "/videos/" + file
}

func resolve(seeds []videoSeed, base string) []Video {
	return slice.Map(seeds, func(seed videoSeed) Video {
		video := seed.Video
		video.VideoURL = VideoURL(base, seed.File)
		video.Thumbnail = video.VideoURL
		return video
	})
}

// # Accessors

// Videos returns the main video list in catalog order.
func (catalog *Catalog) Videos() []Video {
	return slice.Map(catalog.videos, Video.clone)
}

// LostFiles returns the clips shown on the lost files page.
func (catalog *Catalog) LostFiles() []Video {
	return slice.Map(catalog.lostFiles, Video.clone)
}

// Photos returns every photo in catalog order.
func (catalog *Catalog) Photos() []Photo {
	return slice.Map(catalog.photos, Photo.clone)
}

// Featured returns the featured videos in catalog order.
func (catalog *Catalog) Featured() []Video {
	return slice.Filter(catalog.Videos(), func(video Video) bool { return video.Featured })
}

// ByClient returns the videos whose client matches name, ignoring case.
func (catalog *Catalog) ByClient(name string) []Video {
	return slice.Filter(catalog.Videos(), func(video Video) bool {
		return video.Client != "" && strings.EqualFold(video.Client, name)
	})
}

// Video looks up a video (main list or lost files) by ID.
func (catalog *Catalog) Video(id string) (Video, error) {
	video, ok := catalog.byID[id]
	if !ok {
		return Video{}, apperr.NotFound("Video")
	}
	return video.clone(), nil
}

// PhotoArtists returns the distinct photo clients, sorted.
func (catalog *Catalog) PhotoArtists() []string {
	clients := slice.Filter(slice.Map(catalog.photos, func(photo Photo) string { return photo.Client }),
		func(client string) bool { return client != "" })
	artists := slice.Unique(clients)
	sort.Strings(artists)
	return artists
}

// PhotosByArtist returns photos sorted by client then ID, restricted to
// artist when it is non-empty.
func (catalog *Catalog) PhotosByArtist(artist string) []Photo {
	photos := catalog.Photos()
	if artist != "" {
		photos = slice.Filter(photos, func(photo Photo) bool { return photo.Client == artist })
	}

	sort.SliceStable(photos, func(i, j int) bool {
		a, b := clientOrUnknown(photos[i].Client), clientOrUnknown(photos[j].Client)
		if a != b {
			return a < b
		}
		return photos[i].ID < photos[j].ID
	})

	return photos
}

// # Ordering

// SortByArtist returns a copy of videos ordered by display artist, case-insensitively.
// Videos without an artist or client sort first; ties keep their input order.
func SortByArtist(videos []Video) []Video {
	sorted := slice.Map(videos, Video.clone)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].DisplayArtist()) < strings.ToLower(sorted[j].DisplayArtist())
	})
	return sorted
}

func clientOrUnknown(client string) string {
	if client == "" {
		return unknownClient
	}
	return client
}
