// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package gregorian provides a validated, immutable calendar date for the
// proleptic Gregorian calendar together with the leap year and month length
// rules it relies on.
//
// A CalendarDate can only be obtained from a constructor that validates its
// inputs, so any non-zero CalendarDate is a real date:
//
//	d, err := gregorian.New(2004, 2, 29)
//	if errors.Is(err, gregorian.ErrInvalidDate) {
//	    ...
//	}
//	fmt.Println(d.Describe())
//
// Create offers the same validation in the comma-ok form for callers that
// treat an invalid date as a normal outcome:
//
//	if d, ok := gregorian.Create(2014, 22, 21); !ok {
//	    ...
//	}
package gregorian
