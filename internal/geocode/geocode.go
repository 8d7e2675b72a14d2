// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package geocode resolves free-form location queries to coordinates for
// weather backends that only accept latitude/longitude pairs.
package geocode

import "context"

// Place is the result of a forward geocoding lookup.
type Place struct {
	Found       bool
	CacheHit    bool
	DisplayName string
	Latitude    float64
	Longitude   float64
}

// Geocoder is implemented by each forward geocoding backend.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, query string) (Place, error)
}
