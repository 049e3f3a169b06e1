package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/gyaneshwarpardhi/sdlevents/internal/event"
	"github.com/gyaneshwarpardhi/sdlevents/internal/feature"
	"github.com/gyaneshwarpardhi/sdlevents/internal/metrics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sample = `
version: "1"
feature_level: "2.0.18"
without: [precise_wheel]
queue_depth: 128
ignore: [mouse_motion, finger_motion]
log:
  level: debug
  format: json
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdlevents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`version: "1"`))
	require.NoError(t, err)

	assert.Equal(t, SourceMemory, cfg.Source)
	assert.Equal(t, DefaultQueueDepth, cfg.QueueDepth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTP.Addr)
}

func TestParseSample(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	lvl, err := cfg.Level(feature.Latest())
	require.NoError(t, err)
	assert.Equal(t, "2.0.18", lvl.String())
	assert.False(t, lvl.Set.Has(feature.PreciseWheel))
	assert.True(t, lvl.Set.Has(feature.WheelDirection))

	types, err := cfg.IgnoredTypes()
	require.NoError(t, err)
	assert.Equal(t, []event.Type{event.TypeMouseMotion, event.TypeFingerMotion}, types)
}

func TestLevelFallback(t *testing.T) {
	cfg := &Config{}
	lvl, err := cfg.Level(feature.Baseline())
	require.NoError(t, err)
	assert.Equal(t, feature.Baseline(), lvl)
}

func TestValidateCollectsEveryError(t *testing.T) {
	cfg := &Config{
		FeatureLevel: "3.0.0",
		Without:      []string{"hovercraft"},
		Source:       "usb",
		QueueDepth:   70000,
		Ignore:       []string{"mouse_motion", "teleport"},
		Log:          LogConf{Level: "loud", Format: "xml"},
	}
	err := Validate(cfg)
	require.Error(t, err)

	me, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Equal(t, 8, me.Len())
	for _, want := range []string{"version", "feature_level", "without[0]", "source", "queue_depth", "ignore[1]", "log.level", "log.format"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoaderReload(t *testing.T) {
	path := writeFile(t, sample)
	l, err := NewLoader(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 128, l.Config().QueueDepth)

	var seen []*Config
	l.OnChange(func(c *Config) { seen = append(seen, c) })

	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(sample, "128", "256", 1)), 0o644))
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.QueueDepth)
	assert.Same(t, cfg, l.Config())
	require.Len(t, seen, 1)

	require.NoError(t, os.WriteFile(path, []byte("version: \"\"\n"), 0o644))
	_, err = l.Reload()
	require.Error(t, err)
	assert.Equal(t, 256, l.Config().QueueDepth, "invalid file must not replace the active config")
	assert.Len(t, seen, 1)
}

func TestReloadCountsResults(t *testing.T) {
	path := writeFile(t, sample)
	l, err := NewLoader(path, nil)
	require.NoError(t, err)

	ok := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("ok"))
	failed := testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("error"))

	_, err = l.Reload()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("version: \"\"\n"), 0o644))
	_, err = l.Reload()
	require.Error(t, err)

	assert.Equal(t, ok+1, testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("ok")))
	assert.Equal(t, failed+1, testutil.ToFloat64(metrics.ConfigReloads.WithLabelValues("error")))
}

func TestParseAcceptsWarningLevel(t *testing.T) {
	cfg, err := Parse([]byte("version: \"1\"\nlog:\n  level: warning\n"))
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.Log.Level)
}

func TestNewLoaderMissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
}

func TestLoaderWatch(t *testing.T) {
	path := writeFile(t, sample)
	l, err := NewLoader(path, nil)
	require.NoError(t, err)

	changed := make(chan *Config, 4)
	l.OnChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	body := strings.Replace(sample, "mouse_motion, finger_motion", "key_up", 1)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	select {
	case c := <-changed:
		assert.Equal(t, []string{"key_up"}, c.Ignore)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not pick up the change")
	}
}
