// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package visualcrossing implements the weather.Provider interface on top of
// the Visual Crossing timeline API.
package visualcrossing

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/mveen/wxpeek/internal/http"
	"github.com/mveen/wxpeek/internal/logger"
	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/weather"
)

const (
	name        = "visualcrossing"
	apiEndpoint = "https://weather.visualcrossing.com/VisualCrossingWebServices/rest/services/timeline"
	apiTimeout  = time.Second * 10
)

type VisualCrossing struct {
	apiKey string
	log    *logger.Logger
	http   *http.Client
}

// timelineResponse is the wire format of the timeline endpoint. Numeric day
// fields are pointers, so that fields absent from the payload can be told
// apart from genuine zero values.
type timelineResponse struct {
	ResolvedAddress string        `json:"resolvedAddress"`
	Timezone        string        `json:"timezone"`
	Latitude        float64       `json:"latitude"`
	Longitude       float64       `json:"longitude"`
	Days            []timelineDay `json:"days"`
}

type timelineDay struct {
	Datetime    string   `json:"datetime"`
	Temp        *float64 `json:"temp"`
	FeelsLike   *float64 `json:"feelslike"`
	TempMax     *float64 `json:"tempmax"`
	TempMin     *float64 `json:"tempmin"`
	Humidity    *float64 `json:"humidity"`
	WindSpeed   *float64 `json:"windspeed"`
	Visibility  *float64 `json:"visibility"`
	Pressure    *float64 `json:"pressure"`
	UVIndex     *float64 `json:"uvindex"`
	PrecipProb  *float64 `json:"precipprob"`
	Conditions  string   `json:"conditions"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Sunrise     string   `json:"sunrise"`
	Sunset      string   `json:"sunset"`
}

func New(http *http.Client, log *logger.Logger, apiKey string) (*VisualCrossing, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &VisualCrossing{apiKey: apiKey, http: http, log: log}, nil
}

func (v *VisualCrossing) Name() string {
	return name
}

// Fetch retrieves current conditions and the daily forecast for a free-form
// location query. Non-2xx responses short-circuit before any JSON decoding,
// so a classified failure never produces a partial report.
func (v *VisualCrossing) Fetch(ctx context.Context, query string, group units.Group) (*weather.Report, error) {
	res := new(timelineResponse)

	params := url.Values{}
	params.Set("unitGroup", string(group))
	params.Set("key", v.apiKey)
	params.Set("contentType", "json")

	endpoint := apiEndpoint + "/" + url.PathEscape(query)
	code, err := v.http.GetWithTimeout(ctx, endpoint, res, params, nil, apiTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Visual Crossing API: %w", err)
	}
	if err = weather.ClassifyStatus(code); err != nil {
		return nil, err
	}

	report := normalize(res, group)
	report.FetchedAt = time.Now()
	return report, nil
}
