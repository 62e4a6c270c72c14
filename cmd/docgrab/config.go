package main

import (
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/crawl"
	"github.com/fwojciec/docgrab/rod"
)

// Environment variables read by LoadConfig.
const (
	EnvNavTimeout = "DOCGRAB_NAV_TIMEOUT"
	EnvRootSettle = "DOCGRAB_ROOT_SETTLE"
	EnvPageSettle = "DOCGRAB_PAGE_SETTLE"
	EnvRate       = "DOCGRAB_RATE"
	EnvLogLevel   = "DOCGRAB_LOG_LEVEL"
)

// Config holds tunables that are not exposed as flags.
type Config struct {
	NavTimeout time.Duration
	RootSettle time.Duration
	PageSettle time.Duration
	// Rate is the maximum subpage navigations per second per domain.
	// Zero disables throttling.
	Rate     float64
	LogLevel charmlog.Level
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		NavTimeout: rod.DefaultNavigationTimeout,
		RootSettle: crawl.DefaultRootSettle,
		PageSettle: crawl.DefaultPageSettle,
		LogLevel:   charmlog.WarnLevel,
	}
}

// LoadConfig overlays the environment, read through getenv, on the defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{EnvNavTimeout, &cfg.NavTimeout},
		{EnvRootSettle, &cfg.RootSettle},
		{EnvPageSettle, &cfg.PageSettle},
	}
	for _, d := range durations {
		v := getenv(d.name)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed < 0 {
			return Config{}, docgrab.Errorf(docgrab.EINVALID, "%s: invalid duration %q", d.name, v)
		}
		*d.dst = parsed
	}
	if cfg.NavTimeout == 0 {
		return Config{}, docgrab.Errorf(docgrab.EINVALID, "%s must be positive", EnvNavTimeout)
	}

	if v := getenv(EnvRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return Config{}, docgrab.Errorf(docgrab.EINVALID, "%s: invalid rate %q", EnvRate, v)
		}
		cfg.Rate = rate
	}

	if v := getenv(EnvLogLevel); v != "" {
		level, err := charmlog.ParseLevel(v)
		if err != nil {
			return Config{}, docgrab.Errorf(docgrab.EINVALID, "%s: unknown level %q", EnvLogLevel, v)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
