// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"
	"time"
)

// Weekday is a day of the week, with Sunday as 0.
type Weekday time.Weekday

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// String returns the three letter abbreviation of the day.
func (w Weekday) String() string {
	if w < 0 || int(w) >= len(weekdays) {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdays[w]
}

// IsWeekend returns true for Saturday and Sunday.
func (w Weekday) IsWeekend() bool {
	return time.Weekday(w) == time.Saturday || time.Weekday(w) == time.Sunday
}
