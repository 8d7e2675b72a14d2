// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package giphy implements the media.Finder interface on top of the GIPHY
// translate ("best match") endpoint.
package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/mveen/wxpeek/internal/http"
	"github.com/mveen/wxpeek/internal/logger"
	"github.com/mveen/wxpeek/internal/media"
)

const (
	name          = "giphy"
	apiEndpoint   = "https://api.giphy.com/v1/gifs/translate"
	lookupTimeout = time.Second * 5
)

type Giphy struct {
	apiKey string
	log    *logger.Logger
	http   *http.Client
}

type translateResponse struct {
	Data gifData `json:"data"`
}

type gifData struct {
	Title  string `json:"title"`
	Images struct {
		Original struct {
			URL string `json:"url"`
		} `json:"original"`
	} `json:"images"`
}

// UnmarshalJSON tolerates the API's no-match shape, which delivers an empty
// array instead of an object.
func (d *gifData) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	type plain gifData
	return json.Unmarshal(b, (*plain)(d))
}

func New(http *http.Client, log *logger.Logger, apiKey string) (*Giphy, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &Giphy{apiKey: apiKey, http: http, log: log}, nil
}

func (g *Giphy) Name() string {
	return name
}

// BestMatch looks up the best matching image for a search phrase. A response
// without a usable match yields a zero Image, not an error.
func (g *Giphy) BestMatch(ctx context.Context, phrase string) (media.Image, error) {
	ctxLookup, cancelLookup := context.WithTimeout(ctx, lookupTimeout)
	defer cancelLookup()

	params := url.Values{}
	params.Set("api_key", g.apiKey)
	params.Set("s", phrase)

	res := new(translateResponse)
	code, err := g.http.Get(ctxLookup, apiEndpoint, res, params, nil)
	if err != nil {
		return media.Image{}, fmt.Errorf("failed to retrieve image from GIPHY API: %w", err)
	}
	if code != 200 {
		return media.Image{}, fmt.Errorf("GIPHY API returned non-positive response code: %d", code)
	}

	return media.Image{
		URL:   res.Data.Images.Original.URL,
		Title: res.Data.Title,
	}, nil
}
