package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
)

// Validate checks every field and reports all problems at once:
//   - version is present
//   - feature_level and without name a known SDL 2 level and capabilities
//   - source is memory or sdl
//   - queue_depth fits the native queue limit
//   - ignore names known event types
//   - log settings are recognised
func Validate(cfg *Config) error {
	var errs *multierror.Error
	if cfg.Version == "" {
		errs = multierror.Append(errs, fmt.Errorf("version is required"))
	}
	if cfg.FeatureLevel != "" {
		if _, err := feature.ParseLevel(cfg.FeatureLevel); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("feature_level: %w", err))
		}
	}
	for i, name := range cfg.Without {
		if _, err := feature.ParseCapability(name); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("without[%d]: %w", i, err))
		}
	}
	switch cfg.Source {
	case SourceMemory, SourceSDL:
	default:
		errs = multierror.Append(errs, fmt.Errorf("source: must be %q or %q, got %q", SourceMemory, SourceSDL, cfg.Source))
	}
	if cfg.QueueDepth < 1 || cfg.QueueDepth > DefaultQueueDepth {
		errs = multierror.Append(errs, fmt.Errorf("queue_depth: must be between 1 and %d, got %d", DefaultQueueDepth, cfg.QueueDepth))
	}
	for i, name := range cfg.Ignore {
		if _, err := event.ParseType(name); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("ignore[%d]: %w", i, err))
		}
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = multierror.Append(errs, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = multierror.Append(errs, fmt.Errorf("log.format: must be text or json, got %q", cfg.Log.Format))
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 {
		errs = multierror.Append(errs, fmt.Errorf("log: max_size_mb and max_backups must not be negative"))
	}
	return errs.ErrorOrNil()
}

// Level resolves the configured feature level with capabilities from Without
// masked off. fallback is used when feature_level is empty.
func (c *Config) Level(fallback feature.Level) (feature.Level, error) {
	lvl := fallback
	if c.FeatureLevel != "" {
		var err error
		if lvl, err = feature.ParseLevel(c.FeatureLevel); err != nil {
			return feature.Level{}, err
		}
	}
	for _, name := range c.Without {
		capability, err := feature.ParseCapability(name)
		if err != nil {
			return feature.Level{}, err
		}
		lvl = lvl.Without(capability)
	}
	return lvl, nil
}

// IgnoredTypes resolves the ignore list.
func (c *Config) IgnoredTypes() ([]event.Type, error) {
	types := make([]event.Type, 0, len(c.Ignore))
	for _, name := range c.Ignore {
		t, err := event.ParseType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
