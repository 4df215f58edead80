// Copyright (c) 2026 Nolfolio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for the platform.

It wraps google/uuid to generate Version 7 values. They are used as request
correlation IDs and as contact submission receipts, where time ordering makes
log and inbox correlation straightforward.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// If the time-based generator fails (entropy exhaustion), it falls back to
// a random v4 value instead of panicking.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
