// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/gregorian"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type CommonFlags struct {
	cmdutil.LoggingFlags
}

type describeFlags struct {
	CommonFlags
}

type validateFlags struct {
	CommonFlags
	File string `subcmd:"file,,yaml file with a dates list to validate in addition to any arguments"`
}

type leapFlags struct {
	CommonFlags
}

// withLogger returns a context carrying the logger configured by the
// logging flags. The returned function closes any log file.
func (c *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}

type dateCmds struct {
	out io.Writer
}

// atoiArgs converts args to ints, names[i] is used to refer to args[i]
// in error messages.
func atoiArgs(args []string, names ...string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], a, gregorian.ErrInvalidFormat)
		}
		vals[i] = v
	}
	return vals, nil
}

func (c *dateCmds) describe(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*describeFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	ymd, err := atoiArgs(args, "year", "month", "day")
	if err != nil {
		return err
	}
	cd, err := gregorian.New(ymd[0], ymd[1], ymd[2])
	if err != nil {
		ctxlog.Logger(ctx).Warn("invalid date", "year", ymd[0], "month", ymd[1], "day", ymd[2], "error", err)
		return err
	}
	ctxlog.Logger(ctx).Debug("describe", "date", cd.String())
	fmt.Fprintf(c.out, "%s (%v)\n", cd.Describe(), cd.DayOfWeek())
	return nil
}

type datesFile struct {
	Dates []string `yaml:"dates"`
}

type validation struct {
	Input   string                  `yaml:"input"`
	Valid   bool                    `yaml:"valid"`
	Date    *gregorian.CalendarDate `yaml:"date,omitempty"`
	Weekday string                  `yaml:"weekday,omitempty"`
	Error   string                  `yaml:"error,omitempty"`
}

func readDatesFile(filename string) ([]string, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var df datesFile
	if err := yaml.Unmarshal(buf, &df); err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", filename, err)
	}
	return df.Dates, nil
}

func (c *dateCmds) validate(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*validateFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	inputs := args
	if len(fv.File) > 0 {
		fromFile, err := readDatesFile(fv.File)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Info("read dates", "file", fv.File, "count", len(fromFile))
		inputs = append(fromFile, inputs...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no dates specified")
	}
	report := make([]validation, 0, len(inputs))
	errs := &errors.M{}
	for _, in := range inputs {
		cd, err := gregorian.Parse(in)
		if err != nil {
			ctxlog.Logger(ctx).Info("invalid date", "input", in, "error", err)
			errs.Append(err)
			report = append(report, validation{Input: in, Error: err.Error()})
			continue
		}
		report = append(report, validation{
			Input:   in,
			Valid:   true,
			Date:    &cd,
			Weekday: cd.DayOfWeek().String(),
		})
	}
	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	if _, err := c.out.Write(out); err != nil {
		return err
	}
	return errs.Err()
}

func (c *dateCmds) leap(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*leapFlags)
	_, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	if len(args) == 0 {
		return fmt.Errorf("no years specified")
	}
	years := make([]int, len(args))
	for i, a := range args {
		y, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", a, gregorian.ErrInvalidFormat)
		}
		if y < 1 {
			return fmt.Errorf("year %d is before year 1: %w", y, gregorian.ErrInvalidDate)
		}
		years[i] = y
	}
	for _, y := range years {
		fmt.Fprintf(c.out, "%d: leap %v, %d days\n", y, gregorian.IsLeap(y), gregorian.DaysInYear(y))
	}
	return nil
}
