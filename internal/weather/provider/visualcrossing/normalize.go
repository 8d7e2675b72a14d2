// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package visualcrossing

import (
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/vartype"
	"github.com/mveen/wxpeek/internal/weather"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"
)

// normalize reshapes a timeline payload into a weather.Report. It performs no
// I/O and is deterministic: day zero becomes the current conditions, days one
// through seven become the forecast (never padded when the payload carries
// fewer days), and the rounding policy is applied to each day independently.
// FetchedAt is left to the caller.
func normalize(res *timelineResponse, group units.Group) *weather.Report {
	report := &weather.Report{
		Provider:        name,
		ResolvedAddress: res.ResolvedAddress,
		Timezone:        res.Timezone,
		Latitude:        res.Latitude,
		Longitude:       res.Longitude,
		Units:           group,
	}
	if len(res.Days) == 0 {
		return report
	}

	report.Current = normalizeDay(res.Days[0], res.Latitude, res.Longitude)
	last := len(res.Days)
	if last > weather.ForecastDays+1 {
		last = weather.ForecastDays + 1
	}
	for _, day := range res.Days[1:last] {
		report.Forecast = append(report.Forecast, normalizeDay(day, res.Latitude, res.Longitude))
	}

	return report
}

// normalizeDay rounds temperature, humidity and wind speed to the nearest
// whole unit (halves away from zero) and passes visibility, pressure, UV index
// and precipitation probability through unrounded. Fields absent from the
// payload stay absent. Missing sunrise/sunset times are backfilled from the
// coordinates and date.
func normalizeDay(day timelineDay, lat, lon float64) weather.Day {
	normalized := weather.Day{
		Date:        day.Datetime,
		Conditions:  day.Conditions,
		Description: day.Description,
		Icon:        day.Icon,
		Sunrise:     day.Sunrise,
		Sunset:      day.Sunset,
		Temp:        rounded(day.Temp),
		FeelsLike:   rounded(day.FeelsLike),
		TempMax:     rounded(day.TempMax),
		TempMin:     rounded(day.TempMin),
		Humidity:    rounded(day.Humidity),
		WindSpeed:   rounded(day.WindSpeed),
		Visibility:  passthrough(day.Visibility),
		Pressure:    passthrough(day.Pressure),
		UVIndex:     passthrough(day.UVIndex),
		PrecipProb:  passthrough(day.PrecipProb),
	}

	if normalized.Sunrise == "" || normalized.Sunset == "" {
		if date, err := time.Parse(dateFormat, day.Datetime); err == nil {
			rise, set := sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
			if normalized.Sunrise == "" {
				normalized.Sunrise = rise.Format(timeFormat)
			}
			if normalized.Sunset == "" {
				normalized.Sunset = set.Format(timeFormat)
			}
		}
	}

	return normalized
}

func rounded(val *float64) vartype.VarFloat64 {
	if val == nil {
		return vartype.VarFloat64{}
	}
	return vartype.NewVariable(units.Round(*val))
}

func passthrough(val *float64) vartype.VarFloat64 {
	if val == nil {
		return vartype.VarFloat64{}
	}
	return vartype.NewVariable(*val)
}
