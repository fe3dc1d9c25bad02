// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian_test

import (
	"errors"
	"strings"
	"testing"

	"cloudeng.io/gregorian"
)

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		input string
		month gregorian.Month
	}{
		{"1", 1}, {"01", 1}, {"12", 12},
		{"jan", 1}, {"Jan", 1}, {"JANUARY", 1}, {"febr", 2},
		{"jun", 6}, {"jul", 7}, {"sept", 9}, {"Dec", 12},
	} {
		var m gregorian.Month
		if err := m.Parse(tc.input); err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := m, tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}

	for _, tc := range []string{"", "ju", "xyz", "januaryy", "0", "13", "1x"} {
		var m gregorian.Month
		if err := m.Parse(tc); err == nil {
			t.Errorf("%v: expected error", tc)
		}
	}
	if _, err := gregorian.ParseNumericMonth("13"); !errors.Is(err, gregorian.ErrInvalidDate) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := gregorian.ParseNumericMonth("x"); !errors.Is(err, gregorian.ErrInvalidFormat) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if got, want := gregorian.Month(2).String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := gregorian.Month(22).String(), "Month(22)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	ncd := gregorian.MustNew
	for _, tc := range []struct {
		input string
		cd    gregorian.CalendarDate
	}{
		{"2024-01-01", ncd(2024, 1, 1)},
		{"2024-1-1", ncd(2024, 1, 1)},
		{"01/01/2024", ncd(2024, 1, 1)},
		{"02/29/2024", ncd(2024, 2, 29)},
		{"02/28/2023", ncd(2023, 2, 28)},
		{"Jan-01-2024", ncd(2024, 1, 1)},
		{"Feb-29-2024", ncd(2024, 2, 29)},
		{"february-28-2023", ncd(2023, 2, 28)},
		{"0001-01-01", ncd(1, 1, 1)},
	} {
		cd, err := gregorian.Parse(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		cd, err = gregorian.Parse(cd.String())
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
	}

	for _, tc := range []string{
		"02/29/2023",
		"Feb-29-2023",
		"2014-22-21",
		"0000-01-01",
		"2024-04-31",
		"2024-00-10",
	} {
		_, err := gregorian.Parse(tc)
		if !errors.Is(err, gregorian.ErrInvalidDate) {
			t.Errorf("%v: unexpected or missing error: %v", tc, err)
		}
	}

	for _, tc := range []string{
		"",
		"02-03",
		"Jan/03",
		"2024-01",
		"2024-01-01-01",
		"xx-01-2024",
		"Jan-xx-2024",
		"2024-01-xx",
		"01/02/yy",
	} {
		_, err := gregorian.Parse(tc)
		if !errors.Is(err, gregorian.ErrInvalidFormat) {
			t.Errorf("%v: unexpected or missing error: %v", tc, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic")
		}
	}()
	gregorian.MustParse("2023-02-29")
}

func TestParseList(t *testing.T) {
	ncd := gregorian.MustNew
	cdl, err := gregorian.ParseList("2024-01-01, Feb-29-2024,12/31/2023")
	if err != nil {
		t.Fatal(err)
	}
	want := gregorian.CalendarDateList{ncd(2024, 1, 1), ncd(2024, 2, 29), ncd(2023, 12, 31)}
	if got := cdl; got.String() != want.String() {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cdl.String(), "2024-01-01, 2024-02-29, 2023-12-31"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !cdl.Contains(ncd(2024, 2, 29)) {
		t.Errorf("%v should contain 2024-02-29", cdl)
	}
	if cdl.Contains(ncd(2024, 2, 28)) {
		t.Errorf("%v should not contain 2024-02-28", cdl)
	}
	cdl.Sort()
	if got, want := cdl.String(), "2023-12-31, 2024-01-01, 2024-02-29"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cdl, err = gregorian.ParseList("2024-01-01, 2023-02-29, 2024-13-01, bad")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := len(cdl), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, gregorian.ErrInvalidDate) || !errors.Is(err, gregorian.ErrInvalidFormat) {
		t.Errorf("unexpected error: %v", err)
	}
	for _, bad := range []string{"2023-02-29", "2024-13-01", "bad"} {
		if !strings.Contains(err.Error(), bad) {
			t.Errorf("%v: missing from error: %v", bad, err)
		}
	}

	cdl, err = gregorian.ParseList(" ")
	if err != nil || len(cdl) != 0 {
		t.Errorf("unexpected result: %v, %v", cdl, err)
	}
}
