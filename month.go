// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datediff

import (
	"fmt"
	"time"
)

const oneDay = 24 * time.Hour

// DaysInMonth returns the number of days in the given month for the given
// year, including Feb 29 in leap years. It panics if month is not in the
// range January to December.
func DaysInMonth(year int, month time.Month) uint {
	if month < time.January || month > time.December {
		panic(fmt.Sprintf("datediff: invalid month: %d", month))
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Month 13 is normalized to January of the following year.
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return uint(next.Sub(first) / oneDay)
}
