package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/platform/web"
)

var flagHTTPAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the word search to browsers",
	Long: `Start an HTTP server with the browser front end.

Every browser tab gets its own puzzle over a websocket. Cell size follows
the viewport width and is recomputed after the window stops resizing.

Endpoints:
  GET /             - The game page
  GET /ws           - Websocket (?pack=<name>&width=<px>)
  GET /api/packs    - Available word packs
  GET /api/puzzle   - One-off puzzle (?pack=<name>&solution=1)
  GET /health       - Health check

Examples:
  wordsearch web
  wordsearch web --http :3000
  wordsearch web --directions right,down,left,up`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP listen address (host:port, overrides config)")
}

func runWeb(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("wordsearch-web", os.Stderr)
	if err != nil {
		return err
	}

	lib, closeLib := openLibrary(logger)
	defer closeLib()

	cfg := web.Config{
		Address:          app.cfg.Server.HTTPAddr,
		ShutdownTimeout:  app.cfg.Server.ShutdownTimeout,
		Pack:             app.cfg.Words.Pack,
		Params:           app.params,
		Layout:           app.cfg.Layout.Pixel,
		ResizeDebounce:   app.cfg.Layout.ResizeDebounce,
		OrientationDelay: app.cfg.Layout.OrientationDelay,
		Seed:             flagSeed,
	}
	if flagHTTPAddr != "" {
		cfg.Address = flagHTTPAddr
	}

	server, err := web.New(cfg, lib, logger)
	if err != nil {
		return err
	}

	logger.Info("config loaded", "source", app.cfg.Source, "grid", app.params.Size, "words", app.params.RoundWords)
	return server.ListenAndServe(cmd.Context())
}
