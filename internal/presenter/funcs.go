// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/vartype"
	"github.com/mveen/wxpeek/internal/weather"
)

func (p *Presenter) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"timeFormat": timeFormat,
		"loc":        p.loc,
		"lc":         strings.ToLower,
		"uc":         strings.ToUpper,
		"pad":        EmojiWithSpace,
		"theme":      theme,
		"reset":      reset,
	}
}

func (p *Presenter) loc(val string) string {
	if raw, ok := i18nVars[strings.ToLower(val)]; ok {
		return p.localizer.Get(raw)
	}
	return val
}

func timeFormat(val time.Time, fmt string) string {
	return val.Format(fmt)
}

func theme(category weather.Category) string {
	return categoryColors[category]
}

func reset() string {
	return colorReset
}

// EmojiWithSpace pads an emoji with trailing spaces so that wide glyphs line
// up in monospaced terminal output.
func EmojiWithSpace(emoji string) string {
	width := runewidth.StringWidth(emoji)
	return fmt.Sprintf("%s%s", emoji, strings.Repeat(" ", width))
}

// tempString formats a temperature value in the display unit, converting from
// the report's stored unit. Absent values render as placeholder.
func tempString(val vartype.VarFloat64, from, to units.Unit) string {
	if !val.IsSet() {
		return val.String()
	}
	return fmt.Sprintf("%.0f", units.Convert(val.Value(), from, to))
}

// wholeString formats an already rounded value without decimals.
func wholeString(val vartype.VarFloat64) string {
	if !val.IsSet() {
		return val.String()
	}
	return fmt.Sprintf("%.0f", val.Value())
}

// plainString formats a passthrough value without inventing precision.
func plainString(val vartype.VarFloat64) string {
	if !val.IsSet() {
		return val.String()
	}
	return strconv.FormatFloat(val.Value(), 'f', -1, 64)
}
