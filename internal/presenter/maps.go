// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"github.com/vorlif/spreak/localize"

	"github.com/mveen/wxpeek/internal/weather"
)

// MoonPhaseIcon is a map where moon phase names are keys and their corresponding emoji representations are values.
var MoonPhaseIcon = map[string]string{
	"New Moon":        "🌑",
	"Waxing Crescent": "🌒",
	"First Quarter":   "🌓",
	"Waxing Gibbous":  "🌔",
	"Full Moon":       "🌕",
	"Waning Gibbous":  "🌖",
	"Third Quarter":   "🌗",
	"Waning Crescent": "🌘",
}

// CategoryIcons maps weather categories to single emoji icons.
var CategoryIcons = map[weather.Category]string{
	weather.CategorySunny:      "☀️",
	weather.CategoryClearNight: "🌙",
	weather.CategoryCloudy:     "☁️",
	weather.CategoryRainy:      "🌧️",
	weather.CategorySnowy:      "🌨️",
	weather.CategoryWindy:      "💨",
	weather.CategoryFoggy:      "🌫️",
}

// categoryColors maps weather categories to ANSI SGR sequences used for
// condition-driven theming of the terminal output.
var categoryColors = map[weather.Category]string{
	weather.CategorySunny:      "\x1b[33m", // yellow
	weather.CategoryClearNight: "\x1b[34m", // blue
	weather.CategoryCloudy:     "\x1b[37m", // light grey
	weather.CategoryRainy:      "\x1b[36m", // cyan
	weather.CategorySnowy:      "\x1b[97m", // white
	weather.CategoryWindy:      "\x1b[32m", // green
	weather.CategoryFoggy:      "\x1b[90m", // dark grey
}

const colorReset = "\x1b[0m"

var i18nVars = map[string]localize.MsgID{
	"temperature":   "Temperature",
	"feels like":    "Feels like",
	"humidity":      "Humidity",
	"wind speed":    "Wind speed",
	"visibility":    "Visibility",
	"pressure":      "Pressure",
	"uv index":      "UV index",
	"precipitation": "Precipitation",
	"sunrise":       "Sunrise",
	"sunset":        "Sunset",
	"moonphase":     "Moonphase",
	"forecast":      "Forecast",
	"fetched":       "Fetched",
}
