// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package units models temperature units and the provider-side unit groups,
// and implements temperature conversion between them.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a displayable temperature unit.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// Group selects the unit system of an entire provider response payload.
type Group string

const (
	GroupMetric Group = "metric"
	GroupUS     Group = "us"
)

// String returns the common symbol of the Unit.
func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "°F"
	default:
		return "°C"
	}
}

// Toggle returns the respective other Unit.
func (u Unit) Toggle() Unit {
	if u == Celsius {
		return Fahrenheit
	}
	return Celsius
}

// Group returns the provider unit group that delivers values in this Unit.
func (u Unit) Group() Group {
	if u == Fahrenheit {
		return GroupUS
	}
	return GroupMetric
}

// Unit returns the temperature Unit that the Group delivers.
func (g Group) Unit() Unit {
	if g == GroupUS {
		return Fahrenheit
	}
	return Celsius
}

// ParseUnit parses a unit name as found in config files or preferences.
func ParseUnit(val string) (Unit, error) {
	switch strings.ToLower(val) {
	case "celsius", "c", "metric":
		return Celsius, nil
	case "fahrenheit", "f", "us", "imperial":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature unit: %s", val)
}

// Round rounds to the nearest whole unit, halves away from zero (18.5 becomes
// 19, -18.5 becomes -19). This is the single rounding rule used everywhere.
func Round(val float64) float64 {
	return math.Round(val)
}

// Convert converts a temperature value between units. Conversion between equal
// units is the bit-exact identity. Rounding is applied once, after the full
// arithmetic expression. Round-tripping an already converted integer value is
// lossy and may be off by one unit; callers must always convert from the
// originally stored value instead of compounding conversions.
func Convert(val float64, from, to Unit) float64 {
	if from == to {
		return val
	}
	if from == Celsius {
		return Round(val*9.0/5.0 + 32.0)
	}
	return Round((val - 32.0) * 5.0 / 9.0)
}
