// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package session coordinates weather lookups, unit toggling and rendering.
// It owns the current report, the display unit and the auxiliary image, and
// guards them for concurrent use by the interactive and watch modes.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/vorlif/spreak"

	"github.com/mveen/wxpeek/internal/history"
	"github.com/mveen/wxpeek/internal/logger"
	"github.com/mveen/wxpeek/internal/media"
	"github.com/mveen/wxpeek/internal/prefs"
	"github.com/mveen/wxpeek/internal/presenter"
	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/weather"
)

// mediaTimeout bounds the detached image lookup so a hung media backend does
// not leak goroutines indefinitely.
const mediaTimeout = 3 * time.Second

// ErrNoReport is returned when rendering is requested before any lookup
// succeeded.
var ErrNoReport = errors.New("no weather report loaded yet")

// Session holds the state of one running wxpeek instance.
type Session struct {
	provider  weather.Provider
	finder    media.Finder
	presenter *presenter.Presenter
	localizer *spreak.Localizer
	prefs     *prefs.Store
	history   *history.Store
	logger    *logger.Logger

	mu        sync.RWMutex
	seq       uint64
	report    *weather.Report
	image     media.Image
	unit      units.Unit
	lastQuery string
}

// New creates a Session, restoring the persisted unit preference and last
// location. The history store is optional and may be nil.
func New(provider weather.Provider, finder media.Finder, pres *presenter.Presenter,
	localizer *spreak.Localizer, store *prefs.Store, hist *history.Store, log *logger.Logger,
) *Session {
	unit, lastLocation := store.Load()
	return &Session{
		provider:  provider,
		finder:    finder,
		presenter: pres,
		localizer: localizer,
		prefs:     store,
		history:   hist,
		logger:    log,
		unit:      unit,
		lastQuery: lastLocation,
	}
}

// Lookup fetches the weather for the given location query and makes it the
// session's current report. Each call is assigned a sequence number when it
// starts; a result is only applied if no newer lookup has started in the
// meantime, so overlapping lookups resolve to the most recent one. The
// auxiliary image lookup is fire-and-forget: it runs detached, never gates or
// delays the weather display, and may complete after the report has already
// been rendered.
func (s *Session) Lookup(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return weather.ErrEmptyQuery
	}

	s.mu.Lock()
	s.seq++
	seq := s.seq
	group := s.unit.Group()
	s.mu.Unlock()

	report, err := s.provider.Fetch(ctx, query, group)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.logger.Debug("discarding superseded lookup result", slog.String("query", query))
		return nil
	}
	s.report = report
	s.image = media.Image{}
	s.lastQuery = query

	if err = s.prefs.Save(s.unit, query); err != nil {
		s.logger.Warn("failed to save preferences", logger.Err(err))
	}
	if s.history != nil {
		if err = s.history.Record(query, report.ResolvedAddress, report.Provider); err != nil {
			s.logger.Warn("failed to record lookup history", logger.Err(err))
		}
	}
	s.mu.Unlock()

	go s.applyImage(ctx, seq, report)
	return nil
}

// applyImage runs the detached image lookup for a report and applies its
// result, unless a newer lookup has started since.
func (s *Session) applyImage(ctx context.Context, seq uint64, report *weather.Report) {
	image := s.findImage(ctx, report)
	if !image.Found() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return
	}
	s.image = image
}

// findImage looks up an illustrative image for the report's current
// conditions. Every failure is absorbed and yields a zero Image.
func (s *Session) findImage(ctx context.Context, report *weather.Report) media.Image {
	if s.finder == nil || report.Current.Conditions == "" {
		return media.Image{}
	}

	mctx, cancel := context.WithTimeout(ctx, mediaTimeout)
	defer cancel()
	image, err := s.finder.BestMatch(mctx, report.Current.Conditions+" weather")
	if err != nil {
		s.logger.Debug("image lookup failed", logger.Err(err))
		return media.Image{}
	}
	return image
}

// ToggleUnit switches the display unit between Celsius and Fahrenheit and
// persists the new preference. The current report is left untouched;
// rendering recomputes the converted values from it.
func (s *Session) ToggleUnit() units.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unit = s.unit.Toggle()
	if err := s.prefs.Save(s.unit, s.lastQuery); err != nil {
		s.logger.Warn("failed to save preferences", logger.Err(err))
	}
	return s.unit
}

// Render renders the current report in the session's display unit.
func (s *Session) Render() (string, error) {
	s.mu.RLock()
	report, unit, image := s.report, s.unit, s.image
	s.mu.RUnlock()

	if report == nil {
		return "", ErrNoReport
	}
	return s.presenter.Render(report, unit, image)
}

// Unit returns the session's current display unit.
func (s *Session) Unit() units.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unit
}

// LastQuery returns the most recent successful location query, restored from
// the preference store at startup.
func (s *Session) LastQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastQuery
}

// UserMessage translates a lookup error into a localized message suitable
// for display. Unknown errors map to a generic message.
func (s *Session) UserMessage(err error) string {
	var statusErr *weather.StatusError
	switch {
	case errors.Is(err, weather.ErrEmptyQuery):
		return s.localizer.Get("please enter a location to look up")
	case errors.Is(err, weather.ErrLocationNotFound):
		return s.localizer.Get("location could not be resolved, please check the spelling")
	case errors.Is(err, weather.ErrBadCredentials):
		return s.localizer.Get("the weather provider rejected the configured API key")
	case errors.Is(err, weather.ErrRateLimited):
		return s.localizer.Get("the weather provider rate limit is exceeded, please retry later")
	case errors.As(err, &statusErr):
		return s.localizer.Get("the weather provider request failed")
	default:
		return s.localizer.Get("something went wrong, please try again")
	}
}
