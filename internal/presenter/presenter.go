// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package presenter renders a normalized weather report for the terminal.
// Temperature values are converted to the display unit at render time, always
// recomputed from the originally stored values so that repeated unit toggles
// never compound rounding losses.
package presenter

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/vorlif/humanize"
	deLocale "github.com/vorlif/humanize/locale/de"
	"github.com/vorlif/spreak"
	"github.com/wneessen/go-moonphase"
	"golang.org/x/text/language"

	"github.com/mveen/wxpeek/internal/config"
	"github.com/mveen/wxpeek/internal/media"
	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/weather"
)

// DayView is the display-ready rendering of a single day. All fields are
// preformatted strings; absent values render as a placeholder.
type DayView struct {
	Date        string
	Conditions  string
	Description string
	Icon        string
	Category    weather.Category

	Temp       string
	FeelsLike  string
	TempMax    string
	TempMin    string
	Humidity   string
	WindSpeed  string
	Visibility string
	Pressure   string
	UVIndex    string
	PrecipProb string

	Sunrise string
	Sunset  string
}

// DisplayData is the root template context for one rendered report.
type DisplayData struct {
	Address   string
	Timezone  string
	Latitude  float64
	Longitude float64

	FetchedAt  time.Time
	FetchedAgo string
	TempUnit   string
	WindUnit   string
	VisUnit    string

	MoonPhase     string
	MoonPhaseIcon string

	Current  DayView
	Forecast []DayView

	Image media.Image
}

type Presenter struct {
	localizer *spreak.Localizer
	humanizer *humanize.Humanizer
	report    *template.Template
}

func New(conf *config.Config, localizer *spreak.Localizer) (*Presenter, error) {
	pres := new(Presenter)
	pres.localizer = localizer

	collection := humanize.MustNew(humanize.WithLocale(deLocale.New()))
	pres.humanizer = collection.CreateHumanizer(language.Make(conf.Locale))

	tpl, err := template.New("report").Funcs(pres.templateFuncMap()).Parse(conf.Templates.Report)
	if err != nil {
		return pres, fmt.Errorf("failed to parse report template: %w", err)
	}
	pres.report = tpl

	return pres, nil
}

// Render renders a report in the given display unit, including the auxiliary
// image if one was found.
func (p *Presenter) Render(report *weather.Report, unit units.Unit, image media.Image) (string, error) {
	data := p.BuildDisplayData(report, unit, image)
	buf := bytes.NewBuffer(nil)
	if err := p.report.Execute(buf, data); err != nil {
		return "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.String(), nil
}

// BuildDisplayData converts a report into its display representation.
func (p *Presenter) BuildDisplayData(report *weather.Report, unit units.Unit, image media.Image) *DisplayData {
	data := &DisplayData{
		Address:    report.ResolvedAddress,
		Timezone:   report.Timezone,
		Latitude:   report.Latitude,
		Longitude:  report.Longitude,
		FetchedAt:  report.FetchedAt,
		FetchedAgo: p.humanizer.NaturalTime(report.FetchedAt),
		TempUnit:   unit.String(),
		WindUnit:   windUnit(report.Units),
		VisUnit:    visUnit(report.Units),
		Current:    p.viewFromDay(report.Current, report.Units.Unit(), unit),
		Image:      image,
	}
	for _, day := range report.Forecast {
		data.Forecast = append(data.Forecast, p.viewFromDay(day, report.Units.Unit(), unit))
	}

	moon := moonphase.New(time.Now())
	data.MoonPhase = moon.PhaseName()
	data.MoonPhaseIcon = MoonPhaseIcon[data.MoonPhase]

	return data
}

func (p *Presenter) viewFromDay(day weather.Day, from, to units.Unit) DayView {
	category := day.Category()
	return DayView{
		Date:        day.Date,
		Conditions:  day.Conditions,
		Description: day.Description,
		Icon:        CategoryIcons[category],
		Category:    category,
		Temp:        tempString(day.Temp, from, to),
		FeelsLike:   tempString(day.FeelsLike, from, to),
		TempMax:     tempString(day.TempMax, from, to),
		TempMin:     tempString(day.TempMin, from, to),
		Humidity:    wholeString(day.Humidity),
		WindSpeed:   wholeString(day.WindSpeed),
		Visibility:  plainString(day.Visibility),
		Pressure:    plainString(day.Pressure),
		UVIndex:     plainString(day.UVIndex),
		PrecipProb:  plainString(day.PrecipProb),
		Sunrise:     day.Sunrise,
		Sunset:      day.Sunset,
	}
}

func windUnit(group units.Group) string {
	if group == units.GroupUS {
		return "mph"
	}
	return "km/h"
}

func visUnit(group units.Group) string {
	if group == units.GroupUS {
		return "mi"
	}
	return "km"
}
