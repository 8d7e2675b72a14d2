// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vorlif/spreak"

	"github.com/mveen/wxpeek/internal/config"
	"github.com/mveen/wxpeek/internal/i18n"
	"github.com/mveen/wxpeek/internal/media"
	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/vartype"
	"github.com/mveen/wxpeek/internal/weather"
)

func testReport() *weather.Report {
	report := &weather.Report{
		FetchedAt:       time.Now(),
		Provider:        "visualcrossing",
		ResolvedAddress: "London, England, United Kingdom",
		Timezone:        "Europe/London",
		Latitude:        51.5064,
		Longitude:       -0.12721,
		Units:           units.GroupMetric,
		Current: weather.Day{
			Date:       "2026-08-26",
			Conditions: "Partially cloudy",
			Icon:       "partly-cloudy-day",
			Sunrise:    "06:05:41",
			Sunset:     "19:58:43",
			Temp:       vartype.NewVariable(19.0),
			FeelsLike:  vartype.NewVariable(18.0),
			TempMax:    vartype.NewVariable(22.0),
			TempMin:    vartype.NewVariable(14.0),
			Humidity:   vartype.NewVariable(71.0),
			WindSpeed:  vartype.NewVariable(17.0),
			Visibility: vartype.NewVariable(14.9),
			Pressure:   vartype.NewVariable(1014.8),
			UVIndex:    vartype.NewVariable(5.0),
			PrecipProb: vartype.NewVariable(32.3),
		},
	}
	for day := 27; day <= 29; day++ {
		report.Forecast = append(report.Forecast, weather.Day{
			Date:       fmt.Sprintf("2026-08-%02d", day),
			Conditions: "Rain",
			Icon:       "rain",
			TempMax:    vartype.NewVariable(21.0),
			TempMin:    vartype.NewVariable(13.0),
		})
	}
	return report
}

func TestNew(t *testing.T) {
	t.Run("creating a new presenter succeeds", func(t *testing.T) {
		conf, lang := testConfLang(t)
		pres, err := New(conf, lang)
		if err != nil {
			t.Fatalf("failed to create presenter: %s", err)
		}
		if pres == nil {
			t.Fatal("expected presenter to be non-nil")
		}
	})
	t.Run("creating a presenter with an invalid template fails", func(t *testing.T) {
		conf, lang := testConfLang(t)
		conf.Templates.Report = "{{invalid"
		if _, err := New(conf, lang); err == nil {
			t.Error("expected presenter to fail, but didn't")
		}
	})
}

func TestPresenter_Render(t *testing.T) {
	t.Run("rendering a report contains the expected values", func(t *testing.T) {
		pres := testPresenter(t)
		out, err := pres.Render(testReport(), units.Celsius, media.Image{})
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		for _, want := range []string{
			"London, England, United Kingdom", "19°C", "18°C", "71%", "14.9", "1014.8",
			"06:05:41", "19:58:43", "Rain",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected rendered report to contain %q, got: %q", want, out)
			}
		}
	})
	t.Run("rendering in fahrenheit converts from the stored values", func(t *testing.T) {
		pres := testPresenter(t)
		out, err := pres.Render(testReport(), units.Fahrenheit, media.Image{})
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		// 19°C converts to 66°F, 18°C to 64°F
		for _, want := range []string{"66°F", "64°F"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected rendered report to contain %q, got: %q", want, out)
			}
		}
	})
	t.Run("double toggle restores the original rendering", func(t *testing.T) {
		pres := testPresenter(t)
		report := testReport()
		first, err := pres.Render(report, units.Celsius, media.Image{})
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		if _, err = pres.Render(report, units.Fahrenheit, media.Image{}); err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		second, err := pres.Render(report, units.Celsius, media.Image{})
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		if withoutFetchedLine(first) != withoutFetchedLine(second) {
			t.Error("expected rendering after a double unit toggle to match the original")
		}
	})
	t.Run("absent values render as placeholder", func(t *testing.T) {
		pres := testPresenter(t)
		report := testReport()
		report.Current.UVIndex.Reset()
		report.Current.Visibility.Reset()
		out, err := pres.Render(report, units.Celsius, media.Image{})
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		if !strings.Contains(out, "n/a") {
			t.Errorf("expected rendered report to contain the absent placeholder, got: %q", out)
		}
	})
	t.Run("a found image is included in the rendering", func(t *testing.T) {
		pres := testPresenter(t)
		image := media.Image{URL: "https://media0.giphy.com/media/abc/giphy.gif", Title: "Rain GIF"}
		out, err := pres.Render(testReport(), units.Celsius, image)
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		if !strings.Contains(out, image.URL) {
			t.Errorf("expected rendered report to contain the image URL, got: %q", out)
		}
		if !strings.Contains(out, image.Title) {
			t.Errorf("expected rendered report to contain the image title, got: %q", out)
		}
	})
	t.Run("a zero image is omitted from the rendering", func(t *testing.T) {
		pres := testPresenter(t)
		out, err := pres.Render(testReport(), units.Celsius, media.Image{})
		if err != nil {
			t.Fatalf("failed to render report: %s", err)
		}
		if strings.Contains(out, "giphy") {
			t.Errorf("expected rendered report to not contain an image, got: %q", out)
		}
	})
}

func TestPresenter_BuildDisplayData(t *testing.T) {
	t.Run("display data carries themed forecast views", func(t *testing.T) {
		pres := testPresenter(t)
		data := pres.BuildDisplayData(testReport(), units.Celsius, media.Image{})
		if len(data.Forecast) != 3 {
			t.Fatalf("expected 3 forecast views, got %d", len(data.Forecast))
		}
		for _, view := range data.Forecast {
			if view.Category != weather.CategoryRainy {
				t.Errorf("expected forecast category to be rainy, got %s", view.Category)
			}
			if view.Icon != CategoryIcons[weather.CategoryRainy] {
				t.Errorf("expected forecast icon to be the rainy icon, got %q", view.Icon)
			}
		}
	})
	t.Run("unit symbols follow the display unit and report group", func(t *testing.T) {
		pres := testPresenter(t)
		data := pres.BuildDisplayData(testReport(), units.Fahrenheit, media.Image{})
		if data.TempUnit != "°F" {
			t.Errorf("expected temperature unit to be °F, got %s", data.TempUnit)
		}
		if data.WindUnit != "km/h" {
			t.Errorf("expected wind unit to follow the metric report, got %s", data.WindUnit)
		}
	})
}

func TestEmojiWithSpace(t *testing.T) {
	padded := EmojiWithSpace("☀️")
	if !strings.HasSuffix(padded, " ") {
		t.Errorf("expected padded emoji to end with a space, got %q", padded)
	}
	if EmojiWithSpace("") != "" {
		t.Error("expected empty input to stay empty")
	}
}

// withoutFetchedLine strips the relative "Fetched" timestamp line, which can
// legitimately change between two renderings of the same report.
func withoutFetchedLine(out string) string {
	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "Fetched:") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func testPresenter(t *testing.T) *Presenter {
	t.Helper()
	conf, lang := testConfLang(t)
	pres, err := New(conf, lang)
	if err != nil {
		t.Fatalf("failed to create presenter: %s", err)
	}
	return pres
}

func testConfLang(t *testing.T) (*config.Config, *spreak.Localizer) {
	t.Helper()
	conf, err := config.New()
	if err != nil {
		t.Fatalf("failed to create config: %s", err)
	}
	conf.Locale = "en"
	lang, err := i18n.New(conf.Locale)
	if err != nil {
		t.Fatalf("failed to create i18n provider: %s", err)
	}
	return conf, lang
}
