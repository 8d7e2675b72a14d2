// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package weather defines the normalized weather report model and the
// interface implemented by each weather API backend.
package weather

import (
	"context"
	"time"

	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/vartype"
)

// ForecastDays is the maximum number of forecast days carried in a Report,
// not counting the current day.
const ForecastDays = 7

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, query string, group units.Group) (*Report, error)
}

// Report is the normalized, display-ready weather structure derived from one
// provider response. All temperature values within a Report are in the unit
// system of the unit group used for the originating request. A Report is
// created fresh on each successful query and never mutated afterwards;
// display-side unit conversion always recomputes from the stored values.
type Report struct {
	FetchedAt       time.Time
	Provider        string
	ResolvedAddress string
	Timezone        string
	Latitude        float64
	Longitude       float64
	Units           units.Group

	Current  Day
	Forecast []Day
}

// Day carries the normalized fields of a single daily record. Numeric fields
// are wrapped in vartype variables so that fields the provider omitted stay
// recognizably absent instead of collapsing to zero.
type Day struct {
	Date        string
	Conditions  string
	Description string
	Icon        string
	Sunrise     string
	Sunset      string

	// Rounded to the nearest whole unit, halves away from zero.
	Temp      vartype.VarFloat64
	FeelsLike vartype.VarFloat64
	TempMax   vartype.VarFloat64
	TempMin   vartype.VarFloat64
	Humidity  vartype.VarFloat64
	WindSpeed vartype.VarFloat64

	// Passed through unrounded.
	Visibility vartype.VarFloat64
	Pressure   vartype.VarFloat64
	UVIndex    vartype.VarFloat64
	PrecipProb vartype.VarFloat64
}

// Category returns the weather category of the day, derived from its icon token.
func (d Day) Category() Category {
	return CategoryOf(d.Icon)
}
