// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month as an int, 1 for January through 12 for December.
type Month time.Month

var months = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}

func (m Month) String() string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month %q: %w", val, ErrInvalidFormat)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d: %w", n, ErrInvalidDate)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month %q: %w", val, ErrInvalidFormat)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month %q: %w", val, ErrInvalidFormat)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if len(val) > 0 && val[0] >= '0' && val[0] <= '9' {
		n, err := ParseNumericMonth(val)
		if err != nil {
			return err
		}
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	if year%400 == 0 {
		return true
	}
	return year%4 == 0 && year%100 != 0
}

// DaysInMonth returns the number of days in the given month for the given
// year, or 0 if month is not in the range 1-12.
func DaysInMonth(year int, month Month) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	}
	return 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}
