// Package query parses repeated URL query values into typed slices.
//
// Every helper here is lenient: malformed entries are dropped instead of
// reported, because a hand-edited or stale link must still render a page.
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses a slice of string values from URL query parameters
// into a slice of integers. Entries that are not plain base-10 integers,
// including ones with surrounding spaces, are dropped.
func IntSlice(vals []string) []int {
	res := make([]int, 0, len(vals))
	for _, v := range vals {
		if i, err := strconv.Atoi(v); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice returns a copy of vals with empty entries removed.
// It never returns nil so callers can encode the result as a JSON array.
func StringSlice(vals []string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// CSV parses a single comma-separated value into a trimmed slice of strings.
func CSV(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// TriBool parses the exact literals "true" and "false".
// Anything else, including "1" or "TRUE", yields nil (unset).
func TriBool(val string) *bool {
	switch val {
	case "true":
		b := true
		return &b
	case "false":
		b := false
		return &b
	}
	return nil
}
