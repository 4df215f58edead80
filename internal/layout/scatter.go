// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import "math"

// # Scatter Configuration

const (
	// DefaultScatterSlots is how many photos the scatter page shows at once.
	DefaultScatterSlots = 6

	defaultNavWidth  = 600.0
	defaultNavHeight = 400.0
	mobileBreakpoint = 768.0
	footerHeight     = 30.0
	footerClearance  = 120.0

	// maxPlacementAttempts bounds the random search per slot.
	maxPlacementAttempts = 500

	// maxPickAttempts bounds the search for an unused photo per slot.
	maxPickAttempts = 100
)

// NavBounds is the rectangle the scatter must keep clear, given by its center.
type NavBounds struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// ScatterConfig holds every distance the placement search uses, in pixels.
type ScatterConfig struct {
	Width                 float64 `json:"width"`
	Height                float64 `json:"height"`
	NavCenterX            float64 `json:"nav_center_x"`
	NavCenterY            float64 `json:"nav_center_y"`
	MinSize               float64 `json:"min_size"`
	MaxSize               float64 `json:"max_size"`
	MinPhotoDistance      float64 `json:"min_photo_distance"`
	MinDistanceFromCenter float64 `json:"min_distance_from_center"`
	EdgeMargin            float64 `json:"edge_margin"`
	FooterBuffer          float64 `json:"footer_buffer"`
	MaxAttempts           int     `json:"max_attempts"`
}

// NewScatterConfig derives the configuration for a viewport. A nil nav
// defaults to a 600×400 box centered in the viewport.
func NewScatterConfig(width, height float64, nav *NavBounds) ScatterConfig {
	bounds := NavBounds{CenterX: width / 2, CenterY: height / 2, Width: defaultNavWidth, Height: defaultNavHeight}
	if nav != nil {
		bounds = *nav
	}

	minSize, maxSize := 200.0, 320.0
	if width < mobileBreakpoint {
		minSize, maxSize = 140.0, 220.0
	}

	navRadius := math.Max(bounds.Width, bounds.Height) / 2

	return ScatterConfig{
		Width:                 width,
		Height:                height,
		NavCenterX:            bounds.CenterX,
		NavCenterY:            bounds.CenterY,
		MinSize:               minSize,
		MaxSize:               maxSize,
		MinPhotoDistance:      maxSize * 1.5,
		MinDistanceFromCenter: navRadius + maxSize*2.5,
		EdgeMargin:            maxSize * 0.15,
		FooterBuffer:          footerHeight + footerClearance,
		MaxAttempts:           maxPlacementAttempts,
	}
}

// # Placement

// Placement is one scatter slot. X and Y are the photo's center.
type Placement struct {
	Slot     int     `json:"slot"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Tilt     float64 `json:"tilt"`
	Scale    float64 `json:"scale"`
	ZIndex   int     `json:"z_index"`
	Fallback bool    `json:"fallback"`
}

// Place positions slots photos.
//
// Each slot draws a size, then searches up to MaxAttempts random points that
// clear the navigation circle and keep the minimum gap to every placed photo.
// A slot that finds none is put near one of six anchor zones, jittered and
// clamped, which may overlap. Every center lies in [0, Width]×[0, Height-FooterBuffer].
// A non-positive viewport or slot count yields no placements.
func Place(cfg ScatterConfig, slots int, rng Rand) []Placement {
	if slots <= 0 || cfg.Width <= 0 || cfg.Height <= 0 {
		return []Placement{}
	}

	placements := make([]Placement, 0, slots)

	for slot := range slots {
		placement, ok := search(cfg, placements, rng)
		if !ok {
			placement = fallback(cfg, slot, rng)
		}
		placement.Slot = slot
		placement.ZIndex = slot + 1
		placement.X, placement.Y = clampToViewport(cfg, placement.X, placement.Y)
		placements = append(placements, placement)
	}

	for i := range placements {
		placements[i].Tilt = between(rng, -10, 10)
		placements[i].Scale = 0.9 + rng.Float64()*0.2
	}

	return placements
}

func (cfg ScatterConfig) drawSize(rng Rand) float64 {
	return between(rng, cfg.MinSize, cfg.MaxSize)
}

func search(cfg ScatterConfig, placed []Placement, rng Rand) (Placement, bool) {
	size := cfg.drawSize(rng)

	for range cfg.MaxAttempts {
		x := rng.Float64()*(cfg.Width-2*cfg.EdgeMargin) + cfg.EdgeMargin
		maxY := cfg.Height - cfg.FooterBuffer - size/2
		y := rng.Float64()*(maxY-cfg.EdgeMargin) + cfg.EdgeMargin

		if math.Hypot(x-cfg.NavCenterX, y-cfg.NavCenterY) < cfg.MinDistanceFromCenter {
			continue
		}

		if tooClose(cfg, placed, x, y, size) {
			continue
		}

		return Placement{X: x, Y: y, Size: size}, true
	}

	return Placement{}, false
}

func tooClose(cfg ScatterConfig, placed []Placement, x, y, size float64) bool {
	for _, other := range placed {
		required := size/2 + other.Size/2 + cfg.MinPhotoDistance
		if math.Hypot(x-other.X, y-other.Y) < required {
			return true
		}
	}
	return false
}

func fallback(cfg ScatterConfig, slot int, rng Rand) Placement {
	safeBottom := (cfg.Height - cfg.FooterBuffer) * 0.85
	anchors := [...][2]float64{
		{cfg.Width * 0.15, cfg.Height * 0.15},
		{cfg.Width * 0.85, cfg.Height * 0.15},
		{cfg.Width * 0.15, safeBottom},
		{cfg.Width * 0.85, safeBottom},
		{cfg.Width * 0.1, cfg.Height * 0.5},
		{cfg.Width * 0.9, cfg.Height * 0.5},
	}
	anchor := anchors[slot%len(anchors)]

	size := cfg.drawSize(rng)
	maxY := cfg.Height - cfg.FooterBuffer - size/2
	jitter := cfg.MaxSize * 0.5

	x := anchor[0] + (rng.Float64()-0.5)*jitter
	y := anchor[1] + (rng.Float64()-0.5)*jitter

	return Placement{
		X:        math.Max(cfg.EdgeMargin, math.Min(cfg.Width-cfg.EdgeMargin, x)),
		Y:        math.Max(cfg.EdgeMargin, math.Min(maxY, y)),
		Size:     size,
		Fallback: true,
	}
}

// clampToViewport only changes anything in viewports too small for the margins.
func clampToViewport(cfg ScatterConfig, x, y float64) (float64, float64) {
	maxY := math.Max(0, cfg.Height-cfg.FooterBuffer)
	return math.Max(0, math.Min(cfg.Width, x)), math.Max(0, math.Min(maxY, y))
}

// # Initial Selection

// PickInitial chooses which of n photos fill slots. Indices are unique when
// n > slots; otherwise repeats are allowed.
func PickInitial(n, slots int, rng Rand) []int {
	if n <= 0 || slots <= 0 {
		return []int{}
	}

	used := make(map[int]bool, slots)
	indices := make([]int, 0, slots)

	for range slots {
		index := rng.IntN(n)
		for attempts := 0; used[index] && attempts < maxPickAttempts && n > slots; attempts++ {
			index = rng.IntN(n)
		}
		used[index] = true
		indices = append(indices, index)
	}

	return indices
}
