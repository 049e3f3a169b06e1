package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/input"
	"github.com/gyaneshwarpardhi/sdlevents/internal/recording"
)

var (
	replayBatch int
	replayJSON  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().IntVar(&replayBatch, "batch", 64, "Records fed per pump")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "Print one JSON object per event")
}

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Decode and print a recording",
	Long: `Feeds a recording through the poll loop and prints every decoded event. The
decoder uses --level or feature_level from the config when set, otherwise the
level stored in the recording.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSetup()
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := recording.Load(args[0])
		if err != nil {
			return err
		}
		recLevel, err := rec.Level()
		if err != nil {
			return err
		}
		lvl, err := s.cfg.Level(recLevel)
		if err != nil {
			return err
		}

		player := recording.NewPlayer(rec, replayBatch)
		p, err := s.newPoller(input.NewQueue(s.cfg.QueueDepth, player), lvl)
		if err != nil {
			return err
		}
		s.logger.Info("replaying", "file", args[0], "session", rec.Session, "events", len(rec.Events), "level", lvl.String())

		out := cmd.OutOrStdout()
		n := 0
		for {
			p.Pump()
			for e, ok := p.Poll(); ok; e, ok = p.Poll() {
				if err := printEvent(out, e); err != nil {
					return err
				}
				n++
			}
			if player.Done() {
				break
			}
		}
		s.logger.Info("replay finished", "decoded", n)
		return nil
	},
}

type printedEvent struct {
	Type     string      `json:"type"`
	Category string      `json:"category"`
	Event    event.Event `json:"event"`
}

func printEvent(w io.Writer, e event.Event) error {
	if !replayJSON {
		_, err := fmt.Fprintln(w, e)
		return err
	}
	return json.NewEncoder(w).Encode(printedEvent{
		Type:     e.Type().String(),
		Category: event.CategoryOfEvent(e).String(),
		Event:    e,
	})
}
