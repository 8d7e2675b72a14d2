// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package units

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	t.Run("identity conversion returns the value unchanged", func(t *testing.T) {
		values := []float64{-40, -18.5, 0, 0.1, 18.5, 21, 37.123, 100}
		for _, val := range values {
			if got := Convert(val, Celsius, Celsius); got != val {
				t.Errorf("expected C->C conversion of %f to be identity, got %f", val, got)
			}
			if got := Convert(val, Fahrenheit, Fahrenheit); got != val {
				t.Errorf("expected F->F conversion of %f to be identity, got %f", val, got)
			}
		}
	})
	t.Run("celsius to fahrenheit", func(t *testing.T) {
		tests := []struct {
			celsius float64
			want    float64
		}{
			{0, 32},
			{100, 212},
			{-40, -40},
			{21, 70},
			{16.5, 62},
			{37, 99},
		}
		for _, tc := range tests {
			if got := Convert(tc.celsius, Celsius, Fahrenheit); got != tc.want {
				t.Errorf("expected %f°C to be %f°F, got %f", tc.celsius, tc.want, got)
			}
		}
	})
	t.Run("fahrenheit to celsius", func(t *testing.T) {
		tests := []struct {
			fahrenheit float64
			want       float64
		}{
			{32, 0},
			{212, 100},
			{-40, -40},
			{70, 21},
			{99, 37},
		}
		for _, tc := range tests {
			if got := Convert(tc.fahrenheit, Fahrenheit, Celsius); got != tc.want {
				t.Errorf("expected %f°F to be %f°C, got %f", tc.fahrenheit, tc.want, got)
			}
		}
	})
	t.Run("round trip conversion is lossy but within one unit", func(t *testing.T) {
		for celsius := -60.0; celsius <= 60.0; celsius++ {
			back := Convert(Convert(celsius, Celsius, Fahrenheit), Fahrenheit, Celsius)
			if math.Abs(back-celsius) > 1 {
				t.Errorf("expected round trip of %f°C to be within 1 unit, got %f", celsius, back)
			}
		}
	})
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		val  float64
		want float64
	}{
		{"half rounds away from zero", 18.5, 19},
		{"negative half rounds away from zero", -18.5, -19},
		{"below half rounds down", 18.4, 18},
		{"above half rounds up", 18.6, 19},
		{"whole values are unchanged", 18, 18},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Round(tc.val); got != tc.want {
				t.Errorf("expected %f to round to %f, got %f", tc.val, tc.want, got)
			}
		})
	}
}

func TestUnit_Toggle(t *testing.T) {
	if Celsius.Toggle() != Fahrenheit {
		t.Error("expected celsius to toggle to fahrenheit")
	}
	if Fahrenheit.Toggle() != Celsius {
		t.Error("expected fahrenheit to toggle to celsius")
	}
	if Celsius.Toggle().Toggle() != Celsius {
		t.Error("expected double toggle to be the original unit")
	}
}

func TestUnit_Group(t *testing.T) {
	if Celsius.Group() != GroupMetric {
		t.Error("expected celsius to map to the metric unit group")
	}
	if Fahrenheit.Group() != GroupUS {
		t.Error("expected fahrenheit to map to the us unit group")
	}
	if GroupMetric.Unit() != Celsius || GroupUS.Unit() != Fahrenheit {
		t.Error("expected unit group to unit mapping to be the inverse")
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		val     string
		want    Unit
		wantErr bool
	}{
		{"celsius", Celsius, false},
		{"C", Celsius, false},
		{"metric", Celsius, false},
		{"Fahrenheit", Fahrenheit, false},
		{"us", Fahrenheit, false},
		{"imperial", Fahrenheit, false},
		{"kelvin", Celsius, true},
	}
	for _, tc := range tests {
		t.Run(tc.val, func(t *testing.T) {
			got, err := ParseUnit(tc.val)
			if tc.wantErr && err == nil {
				t.Fatal("expected parsing to fail")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("failed to parse unit: %s", err)
			}
			if got != tc.want {
				t.Errorf("expected unit to be %s, got %s", tc.want, got)
			}
		})
	}
}
