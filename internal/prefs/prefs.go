// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package prefs persists the user's unit preference and last location across
// sessions. The store is a single JSON document under a fixed key in the
// state directory, read once at startup and written on explicit save.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mveen/wxpeek/internal/units"
)

// Key is the fixed preference identifier the record is stored under.
const Key = "wxpeek-prefs"

// Prefs is the persisted preference record.
type Prefs struct {
	Unit         string `json:"unit"`
	LastLocation string `json:"lastLocation"`
}

// Store reads and writes the preference record.
type Store struct {
	path string
}

// New returns a Store rooted in the given state directory.
func New(stateDir string) *Store {
	return &Store{path: filepath.Join(stateDir, Key+".json")}
}

// Load reads the preference record. An absent or unreadable record yields the
// defaults: Celsius and no last location.
func (s *Store) Load() (units.Unit, string) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return units.Celsius, ""
	}

	record := new(Prefs)
	if err = json.Unmarshal(data, record); err != nil {
		return units.Celsius, ""
	}
	unit, err := units.ParseUnit(record.Unit)
	if err != nil {
		unit = units.Celsius
	}
	return unit, record.LastLocation
}

// Save writes the preference record, creating the state directory if needed.
func (s *Store) Save(unit units.Unit, lastLocation string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	record := Prefs{LastLocation: lastLocation}
	switch unit {
	case units.Fahrenheit:
		record.Unit = "fahrenheit"
	default:
		record.Unit = "celsius"
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}
	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}

// Path returns the file path the record is stored at.
func (s *Store) Path() string {
	return s.path
}

// ErrNoStateDir is returned when no usable state directory can be determined.
var ErrNoStateDir = errors.New("no usable state directory")

// DefaultDir returns the default state directory for the preference store.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoStateDir
	}
	return filepath.Join(home, ".config", "wxpeek"), nil
}
