// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package gregorian

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, dates are written
// in YYYY-MM-DD format.
func (cd CalendarDate) MarshalYAML() (any, error) {
	if cd.IsZero() {
		return nil, fmt.Errorf("zero value: %w", ErrInvalidDate)
	}
	return cd.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler and accepts any of the
// formats supported by Parse.
func (cd *CalendarDate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a date, not a yaml %v: %w", value.Line, kindName(value.Kind), ErrInvalidFormat)
	}
	d, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*cd = d
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	}
	return "scalar"
}
