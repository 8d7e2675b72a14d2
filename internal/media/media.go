// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package media defines the interface for auxiliary illustrative image
// lookups. Image lookups are strictly best-effort: callers absorb every
// failure and must never let one affect the primary weather display.
package media

import "context"

// Image is a single illustrative image match.
type Image struct {
	URL   string
	Title string
}

// Found reports whether the lookup yielded a usable image.
func (i Image) Found() bool {
	return i.URL != ""
}

// Finder is implemented by each media-search backend.
type Finder interface {
	Name() string
	BestMatch(ctx context.Context, phrase string) (Image, error)
}
