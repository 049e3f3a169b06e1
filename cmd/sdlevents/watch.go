package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/sdlevents/internal/config"
	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
	"github.com/gyaneshwarpardhi/sdlevents/internal/recording"
)

var (
	watchHeadless bool
	watchFrame    time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(recordCmd)
	for _, cmd := range []*cobra.Command{watchCmd, recordCmd} {
		cmd.Flags().BoolVar(&watchHeadless, "headless", false, "Do not open a window")
		cmd.Flags().DurationVar(&watchFrame, "frame", 16*time.Millisecond, "Time between pumps")
		cmd.Flags().BoolVar(&replayJSON, "json", false, "Print one JSON object per event")
	}
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print live events from SDL (needs a build with -tags sdl2)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNative(cmd, "")
	},
}

var recordCmd = &cobra.Command{
	Use:   "record <file>",
	Short: "Capture live SDL events to a recording (needs a build with -tags sdl2)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNative(cmd, args[0])
	},
}

// runNative drives the SDL source on the main thread until a quit event or
// a signal. When path is set, every polled record is saved to it.
func runNative(cmd *cobra.Command, path string) error {
	s, err := loadSetup()
	if err != nil {
		return err
	}
	defer s.Close()
	s.cfg.Source = config.SourceSDL

	src, lvl, closeSrc, err := s.openSource(!watchHeadless)
	if err != nil {
		return err
	}
	defer closeSrc()

	var rec *recording.Recording
	var polled input.Source = src
	if path != "" {
		rec = recording.New(lvl)
		polled = recording.NewTap(src, rec)
	}
	p, err := s.newPoller(polled, lvl)
	if err != nil {
		return err
	}
	s.logger.Info("watching", "level", lvl.String(), "record", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	out := cmd.OutOrStdout()
	ticker := time.NewTicker(watchFrame)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-sig:
			break loop
		case <-ticker.C:
		}
		p.Pump()
		for e, ok := p.Poll(); ok; e, ok = p.Poll() {
			if err := printEvent(out, e); err != nil {
				return err
			}
			if _, quit := e.(*event.QuitEvent); quit {
				break loop
			}
		}
	}

	if rec != nil {
		if err := rec.Save(path); err != nil {
			return err
		}
		s.logger.Info("recording saved", "file", path, "events", len(rec.Events), "session", rec.Session)
	}
	return nil
}
