// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package layout

import "math"

// minSafeMargin keeps tilted cards from touching even at zero tilt.
const minSafeMargin = 15.0

// CardTilt returns the tilt a card renders with: the layout tilt when one was
// assigned, otherwise a fresh value in [-3, 3).
func CardTilt(layoutTilt float64, rng Rand) float64 {
	if layoutTilt != 0 {
		return layoutTilt
	}
	return between(rng, -3, 3)
}

// SafeMargin is the spacing a width×height card needs once rotated by tilt
// degrees: half the growth of its bounding box, never below 15px.
func SafeMargin(width, height, tilt float64) float64 {
	radians := math.Abs(tilt) * math.Pi / 180
	cos, sin := math.Abs(math.Cos(radians)), math.Abs(math.Sin(radians))

	rotatedWidth := width*cos + height*sin
	rotatedHeight := width*sin + height*cos

	return math.Max(math.Max((rotatedWidth-width)/2, (rotatedHeight-height)/2), minSafeMargin)
}
