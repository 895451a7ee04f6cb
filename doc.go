// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datediff computes the calendar difference between two dates as a
// signed interval of years, months and days, analogous to SQL's DATEDIFF
// but calendar aware rather than a raw count of days.
//
// The difference is computed the way it would be by hand: when the day of
// the later date is smaller than that of the earlier date a month's worth
// of days is borrowed, and when the month is smaller a year's worth of
// months is borrowed.
//
//	start := time.Date(1947, 8, 15, 0, 0, 0, 0, time.UTC)
//	end := time.Date(1950, 1, 26, 0, 0, 0, 0, time.UTC)
//	fmt.Println(datediff.Difference(start, end))
//
// Would produce:
//
//	(2 years 5 months 11 days Ahead)
//
// Calendar rules, including leap years, are those of the time package;
// only the year, month and day of each date are considered.
package datediff
