// wordsearch is a word search puzzle for the terminal, SSH and the browser.
//
// Usage:
//
//	wordsearch play [pack]        - Play in the terminal
//	wordsearch print [pack]       - Print a puzzle to stdout
//	wordsearch serve              - Start SSH server for remote play
//	wordsearch web                - Start the browser front end
//	wordsearch packs <command>    - Manage word packs
//	wordsearch config             - Show the effective configuration
//
// Global flags:
//
//	--config <path>       - Configuration file
//	--seed <value>        - Set RNG seed for reproducible puzzles
//	--db <path>           - Word pack catalog (default: ~/.wordsearch/packs.db)
//	--size, --words       - Grid size and words per round
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/config"
	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/words"
)

var (
	// Global flags
	flagConfig     string
	flagEnvFile    string
	flagSeed       int64
	flagDBPath     string
	flagGridSize   int
	flagWords      int
	flagDirections []string
	flagLogLevel   string
	flagLogFile    string
)

// app holds what PersistentPreRunE resolved for the running command.
var app struct {
	cfg     config.Config
	params  wordsearch.GenParams
	logFile *os.File
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if app.logFile != nil {
		app.logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordsearch",
	Short: "Word Search - find hidden words in a letter grid",
	Long: `Word Search hides a handful of words in a grid of random letters.
Drag across the letters with the mouse to select a word.

Available commands:
  play     - Play in the terminal
  print    - Print a puzzle (optionally with its solution)
  serve    - Start SSH server for remote play
  web      - Serve the puzzle to browsers
  packs    - List, show, import and delete word packs
  config   - Show the effective configuration

Examples:
  wordsearch play
  wordsearch play animals --size 12 --words 8
  wordsearch print --solution
  wordsearch serve --ssh :2222
  wordsearch web --http :8080
  wordsearch packs import ./colors.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file with WORDSEARCH_* overrides")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to word pack catalog (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagGridSize, "size", 0, "Grid size (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWords, "words", 0, "Words per round (overrides config)")
	rootCmd.PersistentFlags().StringSliceVar(&flagDirections, "directions", nil, "Permitted directions, e.g. right,down,left (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration: .env, config file, WORDSEARCH_*
// variables, then flags.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(&cfg, nil); err != nil {
		return err
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if flagGridSize != 0 {
		cfg.Grid.Size = flagGridSize
	}
	if flagWords != 0 {
		cfg.Grid.RoundWords = flagWords
	}
	if len(flagDirections) > 0 {
		cfg.Grid.Directions = flagDirections
	}

	params, err := cfg.GenParams()
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.params = params
	return nil
}

// newLogger builds the logger for a command. Logs go to the configured file,
// or to fallback when none is set.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, error) {
	out := fallback
	if app.cfg.Log.File != "" {
		f, err := os.OpenFile(app.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		app.logFile = f
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if app.cfg.Log.Level != "" {
		level, err := log.ParseLevel(app.cfg.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", app.cfg.Log.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, nil
}

// openLibrary opens the pack catalog. If the catalog cannot be opened the
// built-in packs are still served.
func openLibrary(logger *log.Logger) (*words.Library, func()) {
	store, err := storage.Open(app.cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("pack catalog unavailable, using built-in packs", "db", app.cfg.Storage.DBPath, "err", err)
		return words.NewLibrary(nil), func() {}
	}
	return words.NewLibrary(store), func() { store.Close() }
}

// packArg returns the pack named on the command line or the configured one.
func packArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return app.cfg.Words.Pack
}
