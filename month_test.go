// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datediff_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"cloudeng.io/datediff"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  uint
	}{
		{2020, time.February, 29},
		{1752, time.February, 29},
		{2019, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{3016, time.June, 30},
		{2019, time.December, 31},
		{2019, time.January, 31},
		{-4, time.February, 29},
	} {
		if got, want := datediff.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
}

func TestDaysInMonthAgreesWithDatetime(t *testing.T) {
	errs := errors.M{}
	for year := 1500; year <= 2500; year++ {
		for month := time.January; month <= time.December; month++ {
			got := datediff.DaysInMonth(year, month)
			want := uint(datetime.DaysInMonth(year, datetime.Month(month)))
			if got != want {
				errs.Append(fmt.Errorf("%v %v: got %v, want %v", year, month, got, want))
			}
		}
		if got, want := datediff.DaysInMonth(year, time.February) == 29, datetime.IsLeap(year); got != want {
			errs.Append(fmt.Errorf("%v: leap: got %v, want %v", year, got, want))
		}
	}
	if err := errs.Err(); err != nil {
		t.Error(err)
	}
}

func TestDaysInMonthPanics(t *testing.T) {
	for _, month := range []time.Month{-1, 0, 13} {
		func() {
			defer func() {
				e := recover()
				if e == nil {
					t.Errorf("month %d: expected a panic", month)
					return
				}
				if got, want := fmt.Sprint(e), "invalid month"; !strings.Contains(got, want) {
					t.Errorf("got %v, does not contain %v", got, want)
				}
			}()
			datediff.DaysInMonth(2020, month)
		}()
	}
}
