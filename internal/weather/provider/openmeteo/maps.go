// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package openmeteo

// wmoConditionTexts maps WMO weather code integers to their descriptions
var wmoConditionTexts = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// wmoIconTokens maps WMO weather codes to the icon classifier tokens used by
// the primary provider, so category lookup behaves the same for both backends.
var wmoIconTokens = map[int]string{
	0:  "clear-day",
	1:  "clear-day",
	2:  "partly-cloudy-day",
	3:  "cloudy",
	45: "fog",
	48: "fog",
	51: "rain",
	53: "rain",
	55: "rain",
	56: "sleet",
	57: "sleet",
	61: "rain",
	63: "rain",
	65: "rain",
	66: "sleet",
	67: "sleet",
	71: "snow",
	73: "snow",
	75: "snow",
	77: "snow",
	80: "showers-day",
	81: "showers-day",
	82: "rain",
	85: "snow-showers-day",
	86: "snow-showers-day",
	95: "thunder-rain",
	96: "thunder-rain",
	99: "thunder-rain",
}

func wmoConditions(code float64) string {
	if text, ok := wmoConditionTexts[int(code)]; ok {
		return text
	}
	return "Unknown conditions"
}

func wmoIcon(code float64) string {
	if token, ok := wmoIconTokens[int(code)]; ok {
		return token
	}
	return "cloudy"
}
