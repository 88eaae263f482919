package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wordsearch/internal/platform/tui"
	"github.com/vovakirdan/wordsearch/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play in the terminal",
	Long: `Start a word search in the terminal.

Without a pack name a pack menu is shown first.

Controls:
  Mouse drag  - Select letters
  N           - New game
  Esc/M       - Back to pack menu
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Examples:
  wordsearch play
  wordsearch play tech
  wordsearch play animals --directions right,down
  wordsearch play --seed 42 --log-file ./wordsearch.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alt screen owns stdout, so logs are discarded unless a file is set.
	logger, err := newLogger("wordsearch", io.Discard)
	if err != nil {
		return err
	}

	lib, closeLib := openLibrary(logger)
	defer closeLib()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Params:         app.params,
		Layout:         app.cfg.Layout.Terminal,
		ResizeDebounce: app.cfg.Layout.ResizeDebounce,
		Seed:           flagSeed,
		Logger:         logger,
	}

	pack := ""
	if len(args) > 0 {
		pack = args[0]
	}

	err = tui.Run(cmd.Context(), lib, opts, pack, width, height)
	if errors.Is(err, registry.ErrPackNotFound) {
		return fmt.Errorf("%w\nRun 'wordsearch packs list' to see available packs", err)
	}
	return err
}
