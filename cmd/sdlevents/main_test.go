package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/recording"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		replayJSON = false
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestFeaturesTable(t *testing.T) {
	out := run(t, "features", "2.0.4")
	assert.Contains(t, out, "level 2.0.4")
	assert.Regexp(t, `button_clicks\s+2\.0\.2\s+true`, out)
	assert.Regexp(t, `display_moved\s+2\.28\.0\s+false`, out)
}

func TestFeaturesRejectsBadLevel(t *testing.T) {
	rootCmd.SetArgs([]string{"features", "3.0.0"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	assert.Error(t, rootCmd.Execute())
}

func TestReplayPrintsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	rec := recording.FromEvents(feature.Latest(), []event.Event{
		&event.QuitEvent{Common: event.Common{Timestamp: 1}},
		&event.QuitEvent{Common: event.Common{Timestamp: 2}},
	})
	require.NoError(t, rec.Save(path))

	out := run(t, "replay", path, "--batch", "1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"Quit{ts=1}", "Quit{ts=2}"}, lines)
}

func TestReplayJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	rec := recording.FromEvents(feature.Latest(), []event.Event{
		&event.QuitEvent{Common: event.Common{Timestamp: 9}},
	})
	require.NoError(t, rec.Save(path))

	out := run(t, "replay", path, "--json")
	assert.Contains(t, out, `"type":"quit"`)
	assert.Contains(t, out, `"category":"quit"`)
	assert.Contains(t, out, `"timestamp":9`)
}

func TestReplayWithoutRecordedLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	rec := recording.FromEvents(feature.Latest(), []event.Event{
		&event.QuitEvent{Common: event.Common{Timestamp: 4}},
	})
	rec.FeatureLevel = ""
	require.NoError(t, rec.Save(path))

	assert.Equal(t, "Quit{ts=4}\n", run(t, "replay", path))

	t.Cleanup(func() { level = "" })
	assert.Equal(t, "Quit{ts=4}\n", run(t, "replay", path, "--level", "2.0.4"))
}
