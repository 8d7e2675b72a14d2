// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

// Package main implements the wxpeek weather lookup tool.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/mveen/wxpeek/internal/config"
	"github.com/mveen/wxpeek/internal/geocode"
	"github.com/mveen/wxpeek/internal/geocode/provider/nominatim"
	"github.com/mveen/wxpeek/internal/history"
	"github.com/mveen/wxpeek/internal/http"
	"github.com/mveen/wxpeek/internal/i18n"
	"github.com/mveen/wxpeek/internal/logger"
	"github.com/mveen/wxpeek/internal/media"
	"github.com/mveen/wxpeek/internal/media/provider/giphy"
	"github.com/mveen/wxpeek/internal/prefs"
	"github.com/mveen/wxpeek/internal/presenter"
	"github.com/mveen/wxpeek/internal/session"
	"github.com/mveen/wxpeek/internal/units"
	"github.com/mveen/wxpeek/internal/weather"
	"github.com/mveen/wxpeek/internal/weather/provider/openmeteo"
	"github.com/mveen/wxpeek/internal/weather/provider/visualcrossing"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGKILL,
		syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	// Read config
	confRead := false
	confPath := flag.String("config", "", "path to the config file")
	unitsFlag := flag.String("units", "", "display unit (celsius or fahrenheit), overrides the saved preference")
	interactive := flag.Bool("interactive", false, "run an interactive lookup session")
	watch := flag.Duration("watch", 0, "refresh the weather for the given location on this interval (at least 1m)")
	historyFlag := flag.Int("history", 0, "list the N most recent lookups and exit")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("wxpeek %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	// Read default config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
		confRead = true
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); !confRead && (path != "" && file != "") {
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	if err = os.MkdirAll(conf.StateDir, 0o755); err != nil {
		log.Error("failed to create state directory", logger.Err(err))
		os.Exit(1)
	}
	hist, err := history.Open(conf.StateDir)
	if err != nil {
		log.Error("failed to open lookup history", logger.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err = hist.Close(); err != nil {
			log.Warn("failed to close lookup history", logger.Err(err))
		}
	}()

	if *historyFlag > 0 {
		if err = printHistory(hist, *historyFlag); err != nil {
			log.Error("failed to list lookup history", logger.Err(err))
			os.Exit(1)
		}
		return
	}

	pres, err := presenter.New(conf, t)
	if err != nil {
		log.Error("failed to initialize presenter", logger.Err(err))
		os.Exit(1)
	}
	provider, err := selectWeatherProvider(conf, log)
	if err != nil {
		log.Error("failed to initialize weather provider", logger.Err(err))
		os.Exit(1)
	}

	sess := session.New(provider, selectMediaFinder(conf, log), pres, t,
		prefs.New(conf.StateDir), hist, log)
	if err = applyUnitsFlag(sess, *unitsFlag); err != nil {
		log.Error("failed to apply units flag", logger.Err(err))
		os.Exit(1)
	}

	query := strings.Join(flag.Args(), " ")
	if query == "" {
		query = sess.LastQuery()
	}

	switch {
	case *interactive:
		err = runInteractive(ctx, sess, query)
	case *watch > 0:
		var interval time.Duration
		interval, err = watchInterval(*watch, conf)
		if err != nil {
			log.Error("invalid watch interval", logger.Err(err))
			os.Exit(1)
		}
		err = runWatch(ctx, sess, query, interval, log)
	default:
		err = runOnce(ctx, sess, query)
	}
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, sess.UserMessage(err))
		log.Debug("lookup failed", logger.Err(err))
		os.Exit(1)
	}
}

// runOnce performs a single lookup and prints the rendered report.
func runOnce(ctx context.Context, sess *session.Session, query string) error {
	if err := sess.Lookup(ctx, query); err != nil {
		return err
	}
	out, err := sess.Render()
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// runInteractive reads location queries from STDIN until EOF or :quit. The
// :units command toggles the display unit and re-renders the current report.
func runInteractive(ctx context.Context, sess *session.Session, query string) error {
	if query != "" {
		if err := runOnce(ctx, sess, query); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, sess.UserMessage(err))
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case ":quit", ":q":
			return nil
		case ":units", ":u":
			sess.ToggleUnit()
			out, err := sess.Render()
			if err != nil && !errors.Is(err, session.ErrNoReport) {
				_, _ = fmt.Fprintln(os.Stderr, sess.UserMessage(err))
			}
			if err == nil {
				fmt.Print(out)
			}
		default:
			if err := runOnce(ctx, sess, line); err != nil {
				_, _ = fmt.Fprintln(os.Stderr, sess.UserMessage(err))
			}
		}
		fmt.Print("> ")
	}
	return scanner.Err()
}

// runWatch refreshes the weather for the given location on a fixed interval
// until the context is cancelled.
func runWatch(ctx context.Context, sess *session.Session, query string, interval time.Duration,
	log *logger.Logger,
) error {
	if err := runOnce(ctx, sess, query); err != nil {
		return err
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(gocron.DurationJob(interval),
		gocron.NewTask(func(taskCtx context.Context) {
			if lerr := runOnce(taskCtx, sess, query); lerr != nil {
				log.Warn("scheduled weather update failed", logger.Err(lerr))
			}
		}),
		gocron.WithContext(ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("weather_update_job"),
	)
	if err != nil {
		return fmt.Errorf("failed to create weather update job: %w", err)
	}
	scheduler.Start()

	<-ctx.Done()
	return scheduler.Shutdown()
}

// watchInterval resolves the refresh interval for watch mode. The -watch flag
// value overrides the configured default and is held to the same lower bound.
func watchInterval(flagValue time.Duration, conf *config.Config) (time.Duration, error) {
	if flagValue <= 0 {
		return conf.Intervals.WatchUpdate, nil
	}
	if flagValue < time.Minute {
		return 0, fmt.Errorf("watch interval must be at least one minute, got %s", flagValue)
	}
	return flagValue, nil
}

// applyUnitsFlag applies a -units override on top of the persisted preference.
func applyUnitsFlag(sess *session.Session, value string) error {
	if value == "" {
		return nil
	}
	unit, err := units.ParseUnit(value)
	if err != nil {
		return err
	}
	if sess.Unit() != unit {
		sess.ToggleUnit()
	}
	return nil
}

// selectWeatherProvider initializes the weather backend selected in the config.
func selectWeatherProvider(conf *config.Config, log *logger.Logger) (weather.Provider, error) {
	switch strings.ToLower(conf.Weather.Provider) {
	case "open-meteo":
		coder, err := nominatim.New(http.New(log))
		if err != nil {
			return nil, err
		}
		cached := geocode.NewCachedGeocoder(coder, time.Hour, time.Minute*10)
		return openmeteo.New(cached, log)
	default:
		return visualcrossing.New(http.New(log), log, conf.Weather.APIKey)
	}
}

// selectMediaFinder initializes the image backend unless it is disabled or
// unconfigured. Image lookups are best-effort, so a failed initialization
// only disables them.
func selectMediaFinder(conf *config.Config, log *logger.Logger) media.Finder {
	if conf.Media.Disable || conf.Media.APIKey == "" {
		return nil
	}
	finder, err := giphy.New(http.New(log), log, conf.Media.APIKey)
	if err != nil {
		log.Warn("failed to initialize media finder, image lookups disabled", logger.Err(err))
		return nil
	}
	return finder
}

// printHistory lists the most recent lookups, newest first.
func printHistory(hist *history.Store, limit int) error {
	entries, err := hist.Recent(limit)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%s  %-25s %s (%s)\n", entry.LookedUpAt.Local().Format("2006-01-02 15:04"),
			entry.Query, entry.ResolvedAddress, entry.Provider)
	}
	return nil
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "wxpeek", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
