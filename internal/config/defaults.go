package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/wordsearch/internal/layout"
)

//go:embed defaults/wordsearch.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size:        wordsearch.DefaultSize,
			RoundWords:  wordsearch.DefaultRoundWords,
			MaxAttempts: wordsearch.DefaultMaxAttempts,
			Directions:  []string{"right", "down", "down-right", "up-right"},
			Alphabet:    wordsearch.DefaultAlphabet,
		},
		Words: WordsConfig{
			Pack: "tech",
		},
		Layout: LayoutConfig{
			Pixel:            layout.PixelTable(),
			Terminal:         layout.TerminalTable(),
			ResizeDebounce:   layout.ResizeDebounce,
			OrientationDelay: layout.OrientationDelay,
		},
		Server: ServerConfig{
			SSHAddr:         ":23235",
			HostKeyPath:     "~/.wordsearch/host_key",
			IdleTimeout:     30 * time.Minute,
			HTTPAddr:        ":8080",
			ShutdownTimeout: 30 * time.Second,
		},
		Storage: StorageConfig{
			DBPath: "~/.wordsearch/packs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "embedded",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
