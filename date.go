// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datediff

import (
	"cmp"
	"time"
)

// Date represents a calendar date that can be decomposed into a year,
// month and day. time.Time implements Date.
type Date interface {
	Date() (year int, month time.Month, day int)
}

// Compare returns -1 if a is before b, 0 if they refer to the same calendar
// date and +1 if a is after b. Only the year, month and day are compared,
// so the time of day and location of a time.Time are ignored.
func Compare(a, b Date) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if c := cmp.Compare(ay, by); c != 0 {
		return c
	}
	if c := cmp.Compare(am, bm); c != 0 {
		return c
	}
	return cmp.Compare(ad, bd)
}
