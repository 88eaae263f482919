package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "WORDSEARCH_"

// ErrInvalidConfig is returned when validation fails.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Load reads the configuration.
// Search order: customPath -> ~/.wordsearch/config.yaml -> ./configs/wordsearch.yaml -> embedded default.
// Values missing from the file keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Source = customPath
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				cfg.Source = userCfgPath
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "wordsearch.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parse(data); err == nil {
			cfg.Source = local
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordsearch", filename)
}

// LoadDotEnv loads KEY=VALUE pairs from path (".env" when empty) into the
// process environment. Variables already set are not overwritten and a
// missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides cfg with WORDSEARCH_* variables read through lookup.
// A nil lookup uses os.LookupEnv.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"GRID_SIZE", &cfg.Grid.Size},
		{"ROUND_WORDS", &cfg.Grid.RoundWords},
		{"MAX_ATTEMPTS", &cfg.Grid.MaxAttempts},
	}
	for _, e := range ints {
		if v, ok := get(e.name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("config: %s%s: %w", EnvPrefix, e.name, err)
			}
			*e.dst = n
		}
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"ALPHABET", &cfg.Grid.Alphabet},
		{"PACK", &cfg.Words.Pack},
		{"SSH_ADDR", &cfg.Server.SSHAddr},
		{"HOST_KEY", &cfg.Server.HostKeyPath},
		{"HTTP_ADDR", &cfg.Server.HTTPAddr},
		{"DB", &cfg.Storage.DBPath},
		{"LOG_LEVEL", &cfg.Log.Level},
		{"LOG_FILE", &cfg.Log.File},
	}
	for _, e := range strs {
		if v, ok := get(e.name); ok {
			*e.dst = v
		}
	}

	if v, ok := get("DIRECTIONS"); ok {
		cfg.Grid.Directions = splitList(v)
	}
	if v, ok := get("IDLE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sIDLE_TIMEOUT: %w", EnvPrefix, err)
		}
		cfg.Server.IdleTimeout = d
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	g := c.Grid
	if g.Size < 2 {
		return fmt.Errorf("%w: grid size %d, must be at least 2", ErrInvalidConfig, g.Size)
	}
	if g.RoundWords < 1 {
		return fmt.Errorf("%w: round words %d, must be at least 1", ErrInvalidConfig, g.RoundWords)
	}
	if g.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d, must be at least 1", ErrInvalidConfig, g.MaxAttempts)
	}
	if strings.TrimSpace(g.Alphabet) == "" {
		return fmt.Errorf("%w: empty alphabet", ErrInvalidConfig)
	}
	if _, err := c.Directions(); err != nil {
		return err
	}
	if err := c.Layout.Pixel.Validate(); err != nil {
		return fmt.Errorf("%w: pixel layout: %v", ErrInvalidConfig, err)
	}
	if err := c.Layout.Terminal.Validate(); err != nil {
		return fmt.Errorf("%w: terminal layout: %v", ErrInvalidConfig, err)
	}
	if c.Layout.ResizeDebounce < 0 || c.Layout.OrientationDelay < 0 {
		return fmt.Errorf("%w: negative layout delay", ErrInvalidConfig)
	}
	return nil
}

// Directions resolves the configured direction names.
func (c Config) Directions() ([]wordsearch.Direction, error) {
	if len(c.Grid.Directions) == 0 {
		return nil, fmt.Errorf("%w: no directions", ErrInvalidConfig)
	}
	dirs := make([]wordsearch.Direction, 0, len(c.Grid.Directions))
	for _, name := range c.Grid.Directions {
		d, ok := wordsearch.ParseDirection(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, name)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// GenParams converts the grid section into generator parameters.
func (c Config) GenParams() (wordsearch.GenParams, error) {
	if err := c.Validate(); err != nil {
		return wordsearch.GenParams{}, err
	}
	dirs, _ := c.Directions()
	return wordsearch.GenParams{
		Size:        c.Grid.Size,
		RoundWords:  c.Grid.RoundWords,
		MaxAttempts: c.Grid.MaxAttempts,
		Directions:  dirs,
		Alphabet:    strings.ToUpper(strings.TrimSpace(c.Grid.Alphabet)),
	}, nil
}
