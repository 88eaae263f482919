// Package config provides YAML-based configuration loading and environment
// overrides for the word search front ends.
package config

import (
	"time"

	"github.com/vovakirdan/wordsearch/internal/layout"
)

// Config is the complete application configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Words   WordsConfig   `yaml:"words"`
	Layout  LayoutConfig  `yaml:"layout"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the configuration was read from, or "embedded".
	Source string `yaml:"-"`
}

// GridConfig defines puzzle generation parameters.
type GridConfig struct {
	Size        int      `yaml:"size"`
	RoundWords  int      `yaml:"round_words"`
	MaxAttempts int      `yaml:"max_attempts"`
	Directions  []string `yaml:"directions"` // Names such as "right" or "up-right"
	Alphabet    string   `yaml:"alphabet"`
}

// WordsConfig selects the word pool.
type WordsConfig struct {
	Pack string `yaml:"pack"`
}

// LayoutConfig defines responsive cell sizing.
type LayoutConfig struct {
	Pixel            layout.Table  `yaml:"pixel"`
	Terminal         layout.Table  `yaml:"terminal"`
	ResizeDebounce   time.Duration `yaml:"resize_debounce"`
	OrientationDelay time.Duration `yaml:"orientation_delay"`
}

// ServerConfig defines the SSH and HTTP listeners.
type ServerConfig struct {
	SSHAddr         string        `yaml:"ssh_addr"`
	HostKeyPath     string        `yaml:"host_key_path"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	HTTPAddr        string        `yaml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig locates the word pack catalog.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr for servers, discard for the terminal game
}
