package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded config invalid: %v", err)
	}

	expected := DefaultConfig()
	if !reflect.DeepEqual(cfg, expected) {
		t.Errorf("embedded config = %+v\nexpected %+v", cfg, expected)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("grid:\n  size: 12\n  round_words: 8\nlayout:\n  resize_debounce: 100ms\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Size != 12 || cfg.Grid.RoundWords != 8 {
		t.Errorf("grid = %+v, expected size 12 and 8 words", cfg.Grid)
	}
	if cfg.Grid.MaxAttempts != wordsearch.DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, expected default to be kept", cfg.Grid.MaxAttempts)
	}
	if cfg.Layout.ResizeDebounce != 100*time.Millisecond {
		t.Errorf("ResizeDebounce = %v, expected 100ms", cfg.Layout.ResizeDebounce)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, expected %q", cfg.Source, path)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"WORDSEARCH_GRID_SIZE":    "10",
		"WORDSEARCH_DIRECTIONS":   "right, left ,down",
		"WORDSEARCH_PACK":         "animals",
		"WORDSEARCH_LOG_LEVEL":    "debug",
		"WORDSEARCH_IDLE_TIMEOUT": "5m",
		"WORDSEARCH_HTTP_ADDR":    "  ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, lookup); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Grid.Size != 10 {
		t.Errorf("Grid.Size = %d, expected 10", cfg.Grid.Size)
	}
	if !reflect.DeepEqual(cfg.Grid.Directions, []string{"right", "left", "down"}) {
		t.Errorf("Directions = %v", cfg.Grid.Directions)
	}
	if cfg.Words.Pack != "animals" {
		t.Errorf("Pack = %q, expected animals", cfg.Words.Pack)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Server.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 5m", cfg.Server.IdleTimeout)
	}
	if cfg.Server.HTTPAddr != ":8080" {
		t.Errorf("blank override changed HTTPAddr to %q", cfg.Server.HTTPAddr)
	}
}

func TestApplyEnvInvalidNumber(t *testing.T) {
	cfg := DefaultConfig()
	lookup := func(k string) (string, bool) {
		if k == "WORDSEARCH_ROUND_WORDS" {
			return "six", true
		}
		return "", false
	}
	if err := ApplyEnv(&cfg, lookup); err == nil {
		t.Error("ApplyEnv() should reject a non-numeric value")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"size too small", func(c *Config) { c.Grid.Size = 1 }},
		{"no round words", func(c *Config) { c.Grid.RoundWords = 0 }},
		{"no attempts", func(c *Config) { c.Grid.MaxAttempts = 0 }},
		{"empty alphabet", func(c *Config) { c.Grid.Alphabet = " " }},
		{"unknown direction", func(c *Config) { c.Grid.Directions = []string{"sideways"} }},
		{"no directions", func(c *Config) { c.Grid.Directions = nil }},
		{"bad layout", func(c *Config) { c.Layout.Pixel.Default = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestGenParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Alphabet = "abc"

	p, err := cfg.GenParams()
	if err != nil {
		t.Fatalf("GenParams() error = %v", err)
	}
	if p.Size != 9 || p.RoundWords != 6 || p.MaxAttempts != 100 {
		t.Errorf("GenParams() = %+v", p)
	}
	if p.Alphabet != "ABC" {
		t.Errorf("Alphabet = %q, expected ABC", p.Alphabet)
	}
	if !reflect.DeepEqual(p.Directions, wordsearch.DefaultDirections()) {
		t.Errorf("Directions = %v, expected defaults", p.Directions)
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() of a missing file error = %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("WORDSEARCH_TEST_DOTENV=loaded\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDSEARCH_TEST_DOTENV", "")
	os.Unsetenv("WORDSEARCH_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("WORDSEARCH_TEST_DOTENV"); got != "loaded" {
		t.Errorf("WORDSEARCH_TEST_DOTENV = %q, expected loaded", got)
	}
}
