// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caldate describes and validates Gregorian calendar dates.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmds := &dateCmds{out: os.Stdout}

	describeFlagSet := subcmd.NewFlagSet()
	describeFlagSet.MustRegisterFlagStruct(&describeFlags{}, nil, nil)
	validateFlagSet := subcmd.NewFlagSet()
	validateFlagSet.MustRegisterFlagStruct(&validateFlags{}, nil, nil)
	leapFlagSet := subcmd.NewFlagSet()
	leapFlagSet.MustRegisterFlagStruct(&leapFlags{}, nil, nil)

	describeCmd := subcmd.NewCommand("describe", describeFlagSet, cmds.describe, subcmd.ExactlyNumArguments(3))
	describeCmd.Document("describe the date, including its day of the week", "<year> <month> <day>")

	validateCmd := subcmd.NewCommand("validate", validateFlagSet, cmds.validate)
	validateCmd.Document("validate dates in 2006-01-02, 01/02/2006 or Jan-02-2006 format and print a yaml report", "<date>...")

	leapCmd := subcmd.NewCommand("leap", leapFlagSet, cmds.leap)
	leapCmd.Document("report whether years are leap years", "<year>...")

	cmdSet = subcmd.NewCommandSet(describeCmd, validateCmd, leapCmd)
	cmdSet.Document("describe and validate dates in the Gregorian calendar")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
