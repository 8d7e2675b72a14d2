// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements the weather.Provider interface on top of the
// keyless Open-Meteo forecast API. Free-form location queries are resolved to
// coordinates through a forward geocoder first; bare "lat,lon" pairs are
// accepted directly.
package openmeteo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hectormalot/omgo"
	"github.com/nathan-osman/go-sunrise"

	"github.com/mveen/wxpeek/internal/geocode"
	"github.com/mveen/wxpeek/internal/logger"
	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/vartype"
	"github.com/mveen/wxpeek/internal/weather"
)

const (
	name       = "open-meteo"
	apiTimeout = time.Second * 10

	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"
)

var dailyMetrics = []string{
	"temperature_2m_mean", "apparent_temperature_mean", "temperature_2m_max", "temperature_2m_min",
	"relative_humidity_2m_mean", "wind_speed_10m_max", "precipitation_probability_max",
	"surface_pressure_mean", "weather_code",
}

type OpenMeteo struct {
	client omgo.Client
	coder  geocode.Geocoder
	log    *logger.Logger
}

func New(coder geocode.Geocoder, log *logger.Logger) (*OpenMeteo, error) {
	if coder == nil {
		return nil, fmt.Errorf("geocoder is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	client, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}

	return &OpenMeteo{client: client, coder: coder, log: log}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

func (o *OpenMeteo) Fetch(ctx context.Context, query string, group units.Group) (*weather.Report, error) {
	ctxFetch, cancelFetch := context.WithTimeout(ctx, apiTimeout)
	defer cancelFetch()

	lat, lon, address, err := o.resolve(ctxFetch, query)
	if err != nil {
		return nil, err
	}
	location, err := omgo.NewLocation(lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo location from coordinates: %w", err)
	}

	opts := &omgo.Options{
		Timezone:     "auto",
		DailyMetrics: dailyMetrics,
	}
	switch group {
	case units.GroupUS:
		opts.TemperatureUnit = "fahrenheit"
		opts.WindspeedUnit = "mph"
		opts.PrecipitationUnit = "inch"
	default:
		opts.TemperatureUnit = "celsius"
		opts.WindspeedUnit = "kmh"
		opts.PrecipitationUnit = "mm"
	}

	forecast, err := o.client.Forecast(ctxFetch, location, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Open-Meteo API: %w", err)
	}

	report := normalize(forecast, group)
	report.ResolvedAddress = address
	report.FetchedAt = time.Now()
	return report, nil
}

// resolve turns a location query into coordinates. Bare "lat,lon" pairs skip
// the geocoder; an unresolvable query maps to the same failure condition a
// provider-side 400 would.
func (o *OpenMeteo) resolve(ctx context.Context, query string) (lat, lon float64, address string, err error) {
	if lat, lon, ok := parseCoordinates(query); ok {
		return lat, lon, query, nil
	}

	place, err := o.coder.Search(ctx, query)
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to geocode location query: %w", err)
	}
	if !place.Found {
		return 0, 0, "", weather.ErrLocationNotFound
	}
	return place.Latitude, place.Longitude, place.DisplayName, nil
}

func parseCoordinates(query string) (lat, lon float64, ok bool) {
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

// normalize reshapes an Open-Meteo forecast into a weather.Report using the
// same day layout as the primary provider: daily record zero becomes the
// current conditions, the remaining days the forecast. The current day's mean
// temperature is replaced with the live current weather reading.
func normalize(forecast *omgo.Forecast, group units.Group) *weather.Report {
	report := &weather.Report{
		Provider:  name,
		Latitude:  forecast.Latitude,
		Longitude: forecast.Longitude,
		Units:     group,
	}
	if len(forecast.DailyTimes) == 0 {
		return report
	}

	for i, dayTime := range forecast.DailyTimes {
		day := normalizeDay(forecast, i, dayTime)
		if i == 0 {
			day.Temp = vartype.NewVariable(units.Round(forecast.CurrentWeather.Temperature))
			day.Icon = wmoIcon(forecast.CurrentWeather.WeatherCode)
			day.Conditions = wmoConditions(forecast.CurrentWeather.WeatherCode)
			report.Current = day
			continue
		}
		if len(report.Forecast) < weather.ForecastDays {
			report.Forecast = append(report.Forecast, day)
		}
	}

	return report
}

func normalizeDay(forecast *omgo.Forecast, idx int, dayTime time.Time) weather.Day {
	day := weather.Day{
		Date:       dayTime.Format(dateFormat),
		Temp:       roundedMetric(forecast, "temperature_2m_mean", idx),
		FeelsLike:  roundedMetric(forecast, "apparent_temperature_mean", idx),
		TempMax:    roundedMetric(forecast, "temperature_2m_max", idx),
		TempMin:    roundedMetric(forecast, "temperature_2m_min", idx),
		Humidity:   roundedMetric(forecast, "relative_humidity_2m_mean", idx),
		WindSpeed:  roundedMetric(forecast, "wind_speed_10m_max", idx),
		Pressure:   metric(forecast, "surface_pressure_mean", idx),
		PrecipProb: metric(forecast, "precipitation_probability_max", idx),
	}
	if code, ok := metricValue(forecast, "weather_code", idx); ok {
		day.Icon = wmoIcon(code)
		day.Conditions = wmoConditions(code)
	}

	// Open-Meteo delivers sunrise/sunset as ISO strings outside the numeric
	// metrics, so they are computed from the coordinates instead.
	rise, set := sunrise.SunriseSunset(forecast.Latitude, forecast.Longitude,
		dayTime.Year(), dayTime.Month(), dayTime.Day())
	day.Sunrise = rise.Format(timeFormat)
	day.Sunset = set.Format(timeFormat)

	return day
}

func metricValue(forecast *omgo.Forecast, key string, idx int) (float64, bool) {
	values, ok := forecast.DailyMetrics[key]
	if !ok || idx >= len(values) {
		return 0, false
	}
	return values[idx], true
}

func metric(forecast *omgo.Forecast, key string, idx int) vartype.VarFloat64 {
	val, ok := metricValue(forecast, key, idx)
	if !ok {
		return vartype.VarFloat64{}
	}
	return vartype.NewVariable(val)
}

func roundedMetric(forecast *omgo.Forecast, key string, idx int) vartype.VarFloat64 {
	val, ok := metricValue(forecast, key, idx)
	if !ok {
		return vartype.VarFloat64{}
	}
	return vartype.NewVariable(units.Round(val))
}
