package config

// Config is the top-level YAML structure.
type Config struct {
	Version string `yaml:"version"`
	// FeatureLevel is the SDL version the decoder targets, e.g. "2.0.18".
	// Empty means the newest known level, or the linked library's version
	// for the sdl source.
	FeatureLevel string   `yaml:"feature_level"`
	Without      []string `yaml:"without"` // capabilities to mask off
	Source       string   `yaml:"source"`
	QueueDepth   int      `yaml:"queue_depth"`
	Ignore       []string `yaml:"ignore"` // event type names
	Log          LogConf  `yaml:"log"`
	HTTP         HTTPConf `yaml:"http"`
}

// Sources.
const (
	SourceMemory = "memory"
	SourceSDL    = "sdl"
)

// LogConf configures the process logger.
type LogConf struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // empty = stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type HTTPConf struct {
	Addr string `yaml:"addr"`
}
