package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsearch/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the word search SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a pack menu and its own
puzzles. The pack catalog is shared by all users.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.wordsearch/host_key

Examples:
  wordsearch serve                           # Listen on :23235 with auto-generated key
  wordsearch serve --ssh :2222               # Listen on port 2222
  wordsearch serve --host-key ./my_host_key  # Use specific host key
  wordsearch serve --db ./packs.db           # Use specific pack catalog

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("wordsearch-ssh", os.Stderr)
	if err != nil {
		return err
	}

	lib, closeLib := openLibrary(logger)
	defer closeLib()

	cfg := tui.SSHServerConfig{
		Address:     app.cfg.Server.SSHAddr,
		HostKeyPath: app.cfg.Server.HostKeyPath,
		IdleTimeout: app.cfg.Server.IdleTimeout,
		Game: tui.Options{
			Params:         app.params,
			Layout:         app.cfg.Layout.Terminal,
			ResizeDebounce: app.cfg.Layout.ResizeDebounce,
		},
	}
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(cfg, lib, logger)
	if err != nil {
		return err
	}

	logger.Info("config loaded", "source", app.cfg.Source, "grid", app.params.Size, "words", app.params.RoundWords)
	return server.ListenAndServe(cmd.Context())
}
