// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"slices"
	"strings"
)

// CalendarDateList is a list of CalendarDate values.
type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	return slices.Contains(cdl, d)
}

// Sort sorts the list in place, earliest date first.
func (cdl CalendarDateList) Sort() {
	slices.SortFunc(cdl, CalendarDate.Compare)
}
