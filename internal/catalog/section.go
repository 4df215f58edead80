// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"sort"
	"strings"

	"github.com/taibuivan/nolfolio/pkg/pointer"
	"github.com/taibuivan/nolfolio/pkg/slug"
)

const (
	editsTitle    = "EDITS"
	unknownClient = "Unknown"
)

// SectionItem is one card of the work page.
type SectionItem struct {
	Type  MediaType `json:"type"`
	Video *Video    `json:"video,omitempty"`
	Photo *Photo    `json:"photo,omitempty"`
}

// ID returns the underlying record ID.
func (item SectionItem) ID() string {
	if item.Video != nil {
		return item.Video.ID
	}
	if item.Photo != nil {
		return item.Photo.ID
	}
	return ""
}

// Section groups the work page by client.
type Section struct {
	Title  string        `json:"title"`
	Anchor string        `json:"anchor"`
	IsEdit bool          `json:"is_edit,omitempty"`
	Items  []SectionItem `json:"items"`
}

// Sections groups videos then photos for the work page.
//
// Records flagged IsEdit go into a leading EDITS section. Everything else is
// grouped by client ("Unknown" when empty) with sections ordered by client name.
// Items keep their input order inside a section.
func Sections(videos []Video, photos []Photo) []Section {
	items := make([]SectionItem, 0, len(videos)+len(photos))
	for _, video := range videos {
		items = append(items, SectionItem{Type: MediaTypeVideo, Video: pointer.To(video.clone())})
	}
	for _, photo := range photos {
		items = append(items, SectionItem{Type: MediaTypeImage, Photo: pointer.To(photo.clone())})
	}

	var edits []SectionItem
	groups := make(map[string][]SectionItem)

	for _, item := range items {
		isEdit, client := item.attributes()
		if isEdit {
			edits = append(edits, item)
			continue
		}
		groups[client] = append(groups[client], item)
	}

	sections := make([]Section, 0, len(groups)+1)
	if len(edits) > 0 {
		sections = append(sections, Section{Title: editsTitle, Anchor: slug.From(editsTitle), IsEdit: true, Items: edits})
	}

	clients := make([]string, 0, len(groups))
	for client := range groups {
		clients = append(clients, client)
	}
	sort.Strings(clients)

	for _, client := range clients {
		sections = append(sections, Section{
			Title:  strings.ToUpper(client),
			Anchor: slug.From(client),
			Items:  groups[client],
		})
	}

	return sections
}

// Flatten returns the section items in display order.
func Flatten(sections []Section) []SectionItem {
	var items []SectionItem
	for _, section := range sections {
		items = append(items, section.Items...)
	}
	if items == nil {
		return []SectionItem{}
	}
	return items
}

func (item SectionItem) attributes() (isEdit bool, client string) {
	switch {
	case item.Video != nil:
		return item.Video.IsEdit, clientOrUnknown(item.Video.Client)
	case item.Photo != nil:
		return item.Photo.IsEdit, clientOrUnknown(item.Photo.Client)
	}
	return false, unknownClient
}
