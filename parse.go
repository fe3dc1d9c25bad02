// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"strconv"
	"strings"

	"cloudeng.io/errors"
)

const expectedFormats = "2006-01-02, 01/02/2006 or Jan-02-2006"

// Parse parses a date in the formats '2006-01-02', '01/02/2006' or
// 'Jan-02-2006' where the month name may be any case insensitive prefix
// of at least three letters of the full month name. The returned error wraps
// ErrInvalidFormat if val is not in one of these formats and ErrInvalidDate
// if it is but does not refer to a valid date.
func Parse(val string) (CalendarDate, error) {
	if len(val) == 0 {
		return CalendarDate{}, fmt.Errorf("empty value, expected %s: %w", expectedFormats, ErrInvalidFormat)
	}
	var (
		y, m, d int
		err     error
	)
	switch {
	case strings.Contains(val, "/"):
		y, m, d, err = parseNumeric(val, "/", 2, 0, 1)
	case val[0] >= '0' && val[0] <= '9':
		y, m, d, err = parseNumeric(val, "-", 0, 1, 2)
	default:
		y, m, d, err = parseNamed(val)
	}
	if err != nil {
		return CalendarDate{}, err
	}
	cd, err := New(y, m, d)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%q: %w", val, err)
	}
	return cd, nil
}

// MustParse is like Parse but panics on error.
func MustParse(val string) CalendarDate {
	cd, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return cd
}

func split3(val, sep string) ([]string, error) {
	parts := strings.Split(val, sep)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid date %q, expected %s: %w", val, expectedFormats, ErrInvalidFormat)
	}
	return parts, nil
}

func atoi(val, field, part string) (int, error) {
	n, err := strconv.Atoi(part)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q in %q: %w", field, part, val, ErrInvalidFormat)
	}
	return n, nil
}

// parseNumeric parses a date with all-numeric fields separated by sep
// with the year, month and day at the given positions.
func parseNumeric(val, sep string, yi, mi, di int) (y, m, d int, err error) {
	parts, err := split3(val, sep)
	if err != nil {
		return
	}
	if y, err = atoi(val, "year", parts[yi]); err != nil {
		return
	}
	if m, err = atoi(val, "month", parts[mi]); err != nil {
		return
	}
	d, err = atoi(val, "day", parts[di])
	return
}

func parseNamed(val string) (y, m, d int, err error) {
	parts, err := split3(val, "-")
	if err != nil {
		return
	}
	month, err := ParseMonth(parts[0])
	if err != nil {
		return
	}
	m = int(month)
	if d, err = atoi(val, "day", parts[1]); err != nil {
		return
	}
	y, err = atoi(val, "year", parts[2])
	return
}

// ParseList parses a comma separated list of dates. All entries
// are parsed and any errors encountered are returned together, the
// returned list contains the valid dates in the order they appeared.
func ParseList(val string) (CalendarDateList, error) {
	if len(strings.TrimSpace(val)) == 0 {
		return nil, nil
	}
	parts := strings.Split(val, ",")
	cdl := make(CalendarDateList, 0, len(parts))
	errs := &errors.M{}
	for _, part := range parts {
		cd, err := Parse(strings.TrimSpace(part))
		if err != nil {
			errs.Append(err)
			continue
		}
		cdl = append(cdl, cd)
	}
	return cdl, errs.Err()
}
