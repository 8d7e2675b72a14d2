// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package nominatim implements forward geocoding using the OSM Nominatim
// search endpoint.
package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/mveen/wxpeek/internal/geocode"
	"github.com/mveen/wxpeek/internal/http"
)

const (
	apiEndpoint   = "https://nominatim.openstreetmap.org/search"
	lookupTimeout = time.Second * 5
	name          = "osm-nominatim"
)

type Nominatim struct {
	http *http.Client
}

type apiResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func New(http *http.Client) (*Nominatim, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	return &Nominatim{http: http}, nil
}

func (n *Nominatim) Name() string {
	return name
}

// Search resolves a free-form query to coordinates. An empty result set is
// not an error; it yields a Place with Found unset.
func (n *Nominatim) Search(ctx context.Context, query string) (geocode.Place, error) {
	ctxLookup, cancelLookup := context.WithTimeout(ctx, lookupTimeout)
	defer cancelLookup()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	results := make([]apiResult, 0, 1)
	code, err := n.http.Get(ctxLookup, apiEndpoint, &results, params, nil)
	if err != nil {
		return geocode.Place{}, fmt.Errorf("failed to search Nominatim: %w", err)
	}
	if code != 200 {
		return geocode.Place{}, fmt.Errorf("Nominatim returned non-positive response code: %d", code)
	}
	if len(results) == 0 {
		return geocode.Place{}, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return geocode.Place{}, fmt.Errorf("failed to parse latitude from Nominatim response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return geocode.Place{}, fmt.Errorf("failed to parse longitude from Nominatim response: %w", err)
	}

	return geocode.Place{
		Found:       true,
		DisplayName: results[0].DisplayName,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
