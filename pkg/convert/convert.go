// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Each helper takes a default that is returned when the input is empty or
malformed. Layout endpoints use these for viewport sizes and seeds, where a
bad value should fall back rather than fail the request.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if parsing fails or string is empty.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToUint64D converts a string to a uint64, returning def on failure.
func ToUint64D(str string, def uint64) uint64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.ParseUint(str, 10, 64); err == nil {
		return v
	}

	return def
}

// ToFloat64D converts a string to a finite float64, returning def on failure.
// NaN and infinities are rejected.
func ToFloat64D(str string, def float64) float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}
