// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the media records of the portfolio and the static
catalog they are compiled into.

Core Responsibility:

  - Records: Video and Photo entities with their descriptive metadata.
  - Catalog: The immutable, process-wide list of records built once at startup.
  - Hand-off: Conversion of records into viewer items and work-page sections.

Records are literals created at build time. Nothing in this package mutates
them after [New] returns; every accessor hands out copies.
*/
package catalog

// # Domain Enums

// Orientation is the correction applied to the media element itself so that
// portrait-shot footage plays upright. It is unrelated to the cosmetic tilt
// applied to card containers by the layout engine.
type Orientation int

const (
	// Orientation0 plays the file as recorded.
	Orientation0 Orientation = 0

	// Orientation270 rotates the file 270 degrees clockwise.
	Orientation270 Orientation = 270
)

// IsValid reports whether o is a recognised [Orientation].
func (o Orientation) IsValid() bool {
	switch o {
	case Orientation0, Orientation270:
		return true
	}
	return false
}

// MediaType distinguishes viewer items.
type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
)

// # Domain Entities

// Video is a single clip in the catalog. Empty strings and a zero Year mean "absent".
type Video struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Thumbnail   string      `json:"thumbnail"`
	VideoURL    string      `json:"video_url"`
	Client      string      `json:"client,omitempty"`
	Artist      string      `json:"artist,omitempty"`
	Song        string      `json:"song,omitempty"`
	Tour        string      `json:"tour,omitempty"`
	Date        string      `json:"date,omitempty"`
	Year        int         `json:"year,omitempty"`
	Location    string      `json:"location,omitempty"`
	Category    string      `json:"category,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Featured    bool        `json:"featured"`
	Orientation Orientation `json:"orientation"`
	IsEdit      bool        `json:"is_edit,omitempty"`
}

// Photo is a still image in the catalog.
type Photo struct {
	ID       string   `json:"id"`
	Title    string   `json:"title,omitempty"`
	ImageURL string   `json:"image_url"`
	Client   string   `json:"client,omitempty"`
	Year     int      `json:"year,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	IsEdit   bool     `json:"is_edit,omitempty"`
}

// DisplayArtist returns the artist, falling back to the client.
func (v Video) DisplayArtist() string {
	if v.Artist != "" {
		return v.Artist
	}
	return v.Client
}

func (v Video) clone() Video {
	if v.Tags != nil {
		v.Tags = append([]string(nil), v.Tags...)
	}
	return v
}

func (p Photo) clone() Photo {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
