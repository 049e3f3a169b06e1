package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/sdlevents/internal/api"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
)

var (
	serveAddr     string
	pumpInterval  time.Duration
	serveNoWindow bool
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (default: http.addr from the config)")
	serveCmd.Flags().DurationVar(&pumpInterval, "pump-interval", 10*time.Millisecond, "How often the sdl source is pumped into the queue")
	serveCmd.Flags().BoolVar(&serveNoWindow, "headless", false, "Do not open a window for the sdl source")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the decoder over HTTP",
	Long: `Starts the HTTP API: decode records, push and poll events, inspect feature levels,
reload the config and scrape Prometheus metrics. With source: sdl, native events are
forwarded from the main thread into the in-memory queue the API polls.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSetup()
		if err != nil {
			return err
		}
		defer s.Close()
		logger := s.logger

		src, lvl, closeSrc, err := s.openSource(!serveNoWindow)
		if err != nil {
			return err
		}
		defer closeSrc()

		// The API always polls an in-memory queue; a native source feeds it.
		queue, isQueue := src.(*input.Queue)
		if !isQueue {
			queue = input.NewQueue(s.cfg.QueueDepth, nil)
		}
		poller, err := s.newPoller(queue, lvl)
		if err != nil {
			return err
		}
		logger.Info("decoder ready", "level", lvl.String(), "features", lvl.Set.String(), "source", s.cfg.Source)

		// ── Hot-reload watcher ────────────────────────────────────────────
		if s.loader != nil {
			stopWatch, err := s.loader.Watch()
			if err != nil {
				logger.Warn("config watcher unavailable (hot-reload disabled)", "err", err)
			} else {
				defer stopWatch()
			}
		}

		// ── HTTP server ───────────────────────────────────────────────────
		addr := serveAddr
		if addr == "" {
			addr = s.cfg.HTTP.Addr
		}
		srv := &http.Server{
			Addr:         addr,
			Handler:      api.New(poller, lvl, s.loader, logger),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		serveErr := make(chan error, 1)
		go func() {
			logger.Info("server starting", "addr", addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
		}()

		// ── Main loop: forward native events until a signal arrives ───────
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if isQueue {
			select {
			case <-ctx.Done():
			case err := <-serveErr:
				return err
			}
		} else if err := forward(ctx, src, queue, serveErr); err != nil {
			return err
		}
		logger.Info("shutting down…")

		shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutCancel()
		_ = srv.Shutdown(shutCtx)
		if n := queue.Clear(); n > 0 {
			logger.Info("discarded queued events", "count", n)
		}
		logger.Info("goodbye")
		return nil
	},
}

// forward pumps src on the calling thread and moves its records into dst.
func forward(ctx context.Context, src input.Source, dst *input.Queue, serveErr <-chan error) error {
	ticker := time.NewTicker(pumpInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-serveErr:
			return err
		case <-ticker.C:
			src.Pump()
			for rec, ok := src.Next(); ok; rec, ok = src.Next() {
				// A full queue drops the record; Push has released it.
				_ = dst.Push(rec)
			}
		}
	}
}
