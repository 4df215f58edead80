// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/nolfolio/pkg/slice"

// # Viewer Hand-off

// MediaItem is the record shape consumed by the fullscreen viewer.
type MediaItem struct {
	ID   string    `json:"id"`
	Type MediaType `json:"type"`

	// Video only
	VideoURL    string      `json:"video_url,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Orientation Orientation `json:"orientation,omitempty"`

	// Image only
	ImageURL string `json:"image_url,omitempty"`

	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Song        string `json:"song,omitempty"`
	Tour        string `json:"tour,omitempty"`
	Client      string `json:"client,omitempty"`
	Date        string `json:"date,omitempty"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
}

// Rect is the on-screen origin of a zoom-in open animation.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Viewer is the ordered list handed to the viewer plus where to start.
type Viewer struct {
	Items      []MediaItem `json:"items"`
	StartIndex int         `json:"start_index"`
	Origin     *Rect       `json:"origin,omitempty"`
}

// VideoToMediaItem converts a video.
func VideoToMediaItem(video Video) MediaItem {
	return MediaItem{
		ID:          video.ID,
		Type:        MediaTypeVideo,
		VideoURL:    video.VideoURL,
		Thumbnail:   video.Thumbnail,
		Orientation: video.Orientation,
		Title:       video.Title,
		Artist:      video.Artist,
		Song:        video.Song,
		Tour:        video.Tour,
		Client:      video.Client,
		Date:        video.Date,
		Year:        video.Year,
		Description: video.Description,
	}
}

// PhotoToMediaItem converts a photo.
func PhotoToMediaItem(photo Photo) MediaItem {
	return MediaItem{
		ID:       photo.ID,
		Type:     MediaTypeImage,
		ImageURL: photo.ImageURL,
		Title:    photo.Title,
		Client:   photo.Client,
		Year:     photo.Year,
	}
}

// VideosToMediaItems converts videos, keeping order.
func VideosToMediaItems(videos []Video) []MediaItem {
	return slice.Map(videos, VideoToMediaItem)
}

// PhotosToMediaItems converts photos, keeping order.
func PhotosToMediaItems(photos []Photo) []MediaItem {
	return slice.Map(photos, PhotoToMediaItem)
}

// NewViewer builds the viewer payload starting at id. An unknown id starts at 0.
func NewViewer(items []MediaItem, id string, origin *Rect) Viewer {
	start := 0
	for i, item := range items {
		if item.ID == id {
			start = i
			break
		}
	}

	return Viewer{Items: items, StartIndex: start, Origin: origin}
}
