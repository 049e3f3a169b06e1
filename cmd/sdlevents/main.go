package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/sdlevents/internal/config"
	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input/sdl"
	"github.com/gyaneshwarpardhi/sdlevents/internal/logging"
)

var (
	cfgPath  string
	logLevel string
	level    string
)

func init() {
	// SDL must be driven from the thread that initialised it.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log.level from the config")
	rootCmd.PersistentFlags().StringVar(&level, "level", "", "Override feature_level from the config, e.g. 2.0.18")
}

var rootCmd = &cobra.Command{
	Use:           "sdlevents",
	Short:         "Decode SDL2 input events",
	Long:          "Decode raw SDL2 event records into typed events, from a live SDL source, a recording, or over HTTP.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup is what every subcommand needs: the effective config, its loader
// (nil without --config) and the logger built from it.
type setup struct {
	cfg    *config.Config
	loader *config.Loader
	logger *slog.Logger
	closer io.Closer
}

func loadSetup() (*setup, error) {
	s := &setup{}
	if cfgPath != "" {
		loader, err := config.NewLoader(cfgPath, slog.Default())
		if err != nil {
			return nil, err
		}
		c := *loader.Config()
		s.loader, s.cfg = loader, &c
	} else {
		s.cfg = &config.Config{Version: "1"}
		config.ApplyDefaults(s.cfg)
	}
	if level != "" {
		s.cfg.FeatureLevel = level
	}

	logConf := s.cfg.Log
	if logLevel != "" {
		logConf.Level = logLevel
	}
	logger, closer, err := logging.New(logConf)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	s.logger, s.closer = logger, closer
	return s, nil
}

func (s *setup) Close() error { return s.closer.Close() }

// openSource builds the configured source. The returned level is the
// configured feature level, or the source's own level when none is set.
func (s *setup) openSource(window bool) (input.Source, feature.Level, func(), error) {
	switch s.cfg.Source {
	case config.SourceSDL:
		src, err := sdl.Open(sdl.Options{Window: window, Logger: s.logger})
		if err != nil {
			return nil, feature.Level{}, nil, err
		}
		lvl, err := s.cfg.Level(src.Level())
		if err != nil {
			src.Close()
			return nil, feature.Level{}, nil, err
		}
		return src, lvl, func() { src.Close() }, nil
	default:
		lvl, err := s.cfg.Level(feature.Latest())
		if err != nil {
			return nil, feature.Level{}, nil, err
		}
		return input.NewQueue(s.cfg.QueueDepth, nil), lvl, func() {}, nil
	}
}

// newPoller wraps src with the configured ignore list.
func (s *setup) newPoller(src input.Source, lvl feature.Level) (*input.Poller, error) {
	ignored, err := s.cfg.IgnoredTypes()
	if err != nil {
		return nil, err
	}
	return input.NewPoller(src, event.NewDecoder(lvl.Set),
		input.WithLogger(s.logger), input.WithIgnored(ignored...)), nil
}
