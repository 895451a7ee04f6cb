// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datediff

import (
	"fmt"
	"log/slog"
)

// Interval represents the calendar difference between two dates as
// years, months and days together with a direction. Intervals are
// created by Difference and may be compared using ==.
type Interval struct {
	years, months, days uint
	positive            bool
}

// Years returns the number of whole years in the interval.
func (i Interval) Years() uint {
	return i.years
}

// Months returns the number of whole months, in addition to Years, in
// the interval. It is always in the range 0-11.
func (i Interval) Months() uint {
	return i.months
}

// Days returns the number of days, in addition to Years and Months, in
// the interval.
func (i Interval) Days() uint {
	return i.days
}

// Positive returns true if the end date passed to Difference was on or
// after the start date.
func (i Interval) Positive() bool {
	return i.positive
}

// IsZero returns true if the interval spans no days at all.
func (i Interval) IsZero() bool {
	return i.years == 0 && i.months == 0 && i.days == 0
}

// Sign returns 0 for a zero interval, 1 for a positive one and -1
// otherwise.
func (i Interval) Sign() int {
	switch {
	case i.IsZero():
		return 0
	case i.positive:
		return 1
	}
	return -1
}

func (i Interval) direction() string {
	if i.positive {
		return "Ahead"
	}
	return "Behind"
}

// String returns a human readable form of the interval, eg.
// "(2 years 5 months 11 days Ahead)".
func (i Interval) String() string {
	return fmt.Sprintf("(%d years %d months %d days %s)", i.years, i.months, i.days, i.direction())
}

// LogValue implements slog.LogValuer.
func (i Interval) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("years", uint64(i.years)),
		slog.Uint64("months", uint64(i.months)),
		slog.Uint64("days", uint64(i.days)),
		slog.Bool("positive", i.positive),
	)
}
