// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datediff

import "time"

// Difference returns the calendar interval between start and end. The
// interval is Positive if end is on or after start. The magnitude is the
// same regardless of the order of the arguments.
//
// When the day of the later date is less than that of the earlier one,
// the length of the month preceding the later date is borrowed, so that
// Jan 30 2021 to Mar 2 2021 is 1 month and 0 days. At month ends the
// borrowed month may be too short to cover the earlier day (eg. Jan 31 to
// Mar 1); the days are then counted from the last day of the borrowed
// month, making that interval 1 month and 1 day.
func Difference(start, end Date) Interval {
	earlier, later, positive := start, end, true
	if Compare(end, start) < 0 {
		earlier, later, positive = end, start, false
	}
	ey, em, ed := earlier.Date()
	ly, lm, ld := later.Date()

	if ld < ed {
		var borrowed int
		if lm > time.January {
			borrowed = int(DaysInMonth(ly, lm-1))
		} else {
			borrowed = int(DaysInMonth(ly-1, time.December))
		}
		ld += borrowed
		if ld < ed {
			// The borrowed month is shorter than the earlier day.
			ed = borrowed
		}
		lm--
	}
	if lm < em {
		lm += 12
		ly--
	}
	return Interval{
		years:    uint(ly - ey),
		months:   uint(lm - em),
		days:     uint(ld - ed),
		positive: positive,
	}
}
