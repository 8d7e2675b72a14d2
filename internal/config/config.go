// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "WXPEEK"

	// DefaultReportTpl renders a weather report to the terminal.
	DefaultReportTpl = `{{theme .Current.Category}}{{pad .Current.Icon}}{{.Current.Conditions}}{{reset}} — {{.Address}}
{{loc "Temperature"}}: {{.Current.Temp}}{{.TempUnit}} ({{loc "Feels like"}} {{.Current.FeelsLike}}{{.TempUnit}})
{{loc "Humidity"}}: {{.Current.Humidity}}%  {{loc "Wind speed"}}: {{.Current.WindSpeed}} {{.WindUnit}}  {{loc "Pressure"}}: {{.Current.Pressure}} hPa
{{loc "Visibility"}}: {{.Current.Visibility}} {{.VisUnit}}  {{loc "UV index"}}: {{.Current.UVIndex}}  {{loc "Precipitation"}}: {{.Current.PrecipProb}}%
{{loc "Sunrise"}}: {{.Current.Sunrise}}  {{loc "Sunset"}}: {{.Current.Sunset}}  {{loc "Moonphase"}}: {{pad .MoonPhaseIcon}}{{.MoonPhase}}
{{loc "Forecast"}}:
{{range .Forecast}}  {{.Date}} {{theme .Category}}{{pad .Icon}}{{reset}} {{.TempMin}}{{$.TempUnit}} / {{.TempMax}}{{$.TempUnit}}  {{.Conditions}}
{{end}}{{if .Image.Found}}{{.Image.Title}}: {{.Image.URL}}
{{end}}{{loc "Fetched"}}: {{.FetchedAgo}}
`
)

// Config represents the application's configuration structure.
type Config struct {
	// Allowed values: celsius, fahrenheit
	Units    string     `fig:"units" default:"celsius"`
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"8"`
	StateDir string     `fig:"state_dir"`

	Weather struct {
		// Allowed values: visualcrossing, open-meteo
		Provider string `fig:"provider" default:"visualcrossing"`
		APIKey   string `fig:"api_key"`
	} `fig:"weather"`

	Media struct {
		Disable bool   `fig:"disable"`
		APIKey  string `fig:"api_key"`
	} `fig:"media"`

	Intervals struct {
		WatchUpdate time.Duration `fig:"watch_update" default:"15m"`
	} `fig:"intervals"`

	Templates struct {
		Report string `fig:"report"`
	} `fig:"templates"`
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Units) {
	case "celsius", "fahrenheit":
	default:
		return fmt.Errorf("invalid units: %s", c.Units)
	}
	switch strings.ToLower(c.Weather.Provider) {
	case "visualcrossing", "open-meteo":
	default:
		return fmt.Errorf("invalid weather provider: %s", c.Weather.Provider)
	}
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Intervals.WatchUpdate < time.Minute {
		return fmt.Errorf("invalid watch update interval: %s", c.Intervals.WatchUpdate)
	}
	if c.Templates.Report == "" {
		c.Templates.Report = DefaultReportTpl
	}
	if c.StateDir == "" {
		home, _ := os.UserHomeDir()
		c.StateDir = filepath.Join(home, ".config", "wxpeek")
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
