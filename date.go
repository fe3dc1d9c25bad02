// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
)

var (
	// ErrInvalidDate is returned, wrapped, for any year, month and day
	// combination that is not a date in the Gregorian calendar.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidFormat is returned, wrapped, for text that cannot be
	// parsed as a date.
	ErrInvalidFormat = errors.New("invalid date format")
)

// CalendarDate represents a valid date with a year, month and day. The
// zero value is not a valid date, see IsZero.
type CalendarDate struct {
	year  int
	month Month
	day   int
}

var defaultDate = MustNew(2016, 1, 1)

// Default returns the default date of January 1st 2016.
func Default() CalendarDate {
	return defaultDate
}

// New returns the CalendarDate for year, month and day. The year must be
// 1 or greater, the month in the range 1-12 and the day must be a day of
// that month, taking leap years into account. The returned error wraps
// ErrInvalidDate when the date is not valid.
func New(year, month, day int) (CalendarDate, error) {
	if year < 1 {
		return CalendarDate{}, fmt.Errorf("year %d is before year 1: %w", year, ErrInvalidDate)
	}
	if day < 1 {
		return CalendarDate{}, fmt.Errorf("day %d is less than 1: %w", day, ErrInvalidDate)
	}
	maxDay := DaysInMonth(year, Month(month))
	if maxDay == 0 {
		return CalendarDate{}, fmt.Errorf("month %d is not in the range 1-12: %w", month, ErrInvalidDate)
	}
	if day > maxDay {
		return CalendarDate{}, fmt.Errorf("day %d exceeds %d days in %v %d: %w", day, maxDay, Month(month), year, ErrInvalidDate)
	}
	return CalendarDate{year: year, month: Month(month), day: day}, nil
}

// Create is like New but reports success as a boolean rather than
// an error.
func Create(year, month, day int) (CalendarDate, bool) {
	cd, err := New(year, month, day)
	return cd, err == nil
}

// MustNew is like New but panics if the date is invalid.
func MustNew(year, month, day int) CalendarDate {
	cd, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return cd
}

// FromTime returns the CalendarDate for the year, month and day of t
// in t's location.
func FromTime(t time.Time) (CalendarDate, error) {
	y, m, d := t.Date()
	return New(y, int(m), d)
}

func (cd CalendarDate) Year() int {
	return cd.year
}

func (cd CalendarDate) Month() Month {
	return cd.month
}

func (cd CalendarDate) Day() int {
	return cd.day
}

// DaysInMonth returns the number of days in the date's month.
func (cd CalendarDate) DaysInMonth() int {
	return DaysInMonth(cd.year, cd.month)
}

// IsZero returns true for the zero value, which is not a valid date.
func (cd CalendarDate) IsZero() bool {
	return cd == CalendarDate{}
}

// Weekday returns the day of the week congruence for the date:
//
//	(year + year/4 - year/100 + year/400 + (13*month+8)/5 + day) % 7
//
// The result is the raw congruence value in the range 0-6 rather than a
// Weekday. The month is used as is, so for January and February the value
// differs from the day of the week returned by DayOfWeek.
func (cd CalendarDate) Weekday() int {
	return congruence(cd.year, int(cd.month), cd.day)
}

// DayOfWeek returns the day of the week for the date. January and
// February are counted as months 13 and 14 of the previous year.
func (cd CalendarDate) DayOfWeek() Weekday {
	y, m := cd.year, int(cd.month)
	if m < 3 {
		y--
		m += 12
	}
	return Weekday(congruence(y, m, cd.day))
}

// congruence reduces each term mod 7 before summing so that years
// close to math.MaxInt do not overflow.
func congruence(y, m, d int) int {
	r := y%7 + (y/4)%7 - (y/100)%7 + (y/400)%7 + ((13*m+8)/5)%7 + d%7
	return (r%7 + 7) % 7
}

// YearDay returns the day of the year, 1-365 for non-leap years
// and 1-366 for leap years.
func (cd CalendarDate) YearDay() int {
	yd := cd.day
	for m := Month(1); m < cd.month; m++ {
		yd += DaysInMonth(cd.year, m)
	}
	return yd
}

// Time returns midnight at the start of the date in the specified location,
// a nil location is treated as time.UTC. Years beyond the range supported by
// time.Time are not representable and the result is then undefined.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(cd.year, time.Month(cd.month), cd.day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1 depending on whether cd is before, the same
// as or after o.
func (cd CalendarDate) Compare(o CalendarDate) int {
	switch {
	case cd.year != o.year:
		return sign(cd.year - o.year)
	case cd.month != o.month:
		return sign(int(cd.month) - int(o.month))
	}
	return sign(cd.day - o.day)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func (cd CalendarDate) Before(o CalendarDate) bool {
	return cd.Compare(o) < 0
}

func (cd CalendarDate) After(o CalendarDate) bool {
	return cd.Compare(o) > 0
}

// String returns the date in YYYY-MM-DD format.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.year, cd.month, cd.day)
}

// Describe returns a human readable description of the date that includes
// its year, month, day and Weekday value.
func (cd CalendarDate) Describe() string {
	return fmt.Sprintf("year %d month %d day %d weekday %d", cd.year, cd.month, cd.day, cd.Weekday())
}
