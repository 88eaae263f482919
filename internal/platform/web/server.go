// Package web serves the word search to browsers. Pages are static; every
// connection gets its own session driven over a websocket, with pointer
// events in and session snapshots out.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/wordsearch/internal/layout"
	"github.com/vovakirdan/wordsearch/internal/registry"
	"github.com/vovakirdan/wordsearch/internal/words"
)

//go:embed static/index.html
var staticFS embed.FS

// Library lists and resolves word packs, typically *words.Library.
type Library interface {
	Entries(ctx context.Context) ([]words.Entry, error)
	Resolve(ctx context.Context, name string) (registry.Pack, error)
}

// Config holds configuration for the web server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// Pack is played when a client does not ask for one.
	Pack string

	Params wordsearch.GenParams

	// Layout maps viewport width in pixels to cell size.
	Layout layout.Table

	// Delays the page waits before asking for a new layout.
	ResizeDebounce   time.Duration
	OrientationDelay time.Duration

	// Seed makes puzzles reproducible; connection n uses Seed+n. 0 means time-based.
	Seed int64
}

func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
	if c.Pack == "" {
		c.Pack = words.DefaultPack
	}
	if len(c.Layout.Breakpoints) == 0 && c.Layout.Default == 0 {
		c.Layout = layout.PixelTable()
	}
	if c.ResizeDebounce <= 0 {
		c.ResizeDebounce = layout.ResizeDebounce
	}
	if c.OrientationDelay <= 0 {
		c.OrientationDelay = layout.OrientationDelay
	}
	return c
}

// Server is the HTTP and websocket front end.
type Server struct {
	cfg    Config
	lib    Library
	hub    *Hub
	router chi.Router
	page   *template.Template
	logger *log.Logger
	conns  atomic.Int64
}

// New creates a server and registers its routes.
func New(cfg Config, lib Library, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Layout.Validate(); err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	page, err := template.ParseFS(staticFS, "static/index.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse page: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		lib:    lib,
		hub:    NewHub(logger),
		router: chi.NewRouter(),
		page:   page,
		logger: logger,
	}

	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(chimw.Recoverer)
	s.router.Use(s.requestLogger)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "clients": s.hub.Len()})
	})
	s.router.Get("/ws", s.handleWS)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Get("/packs", s.handlePacks)
		r.Get("/puzzle", s.handlePuzzle)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler { return s.router }

// Hub returns the connection hub.
func (s *Server) Hub() *Hub { return s.hub }

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("starting web server", "address", s.cfg.Address)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by http.Server.
	stopHub()
	return srv.Shutdown(shutdownCtx)
}

// pageData is injected into the page script.
type pageData struct {
	Pack               string       `json:"pack"`
	GridSize           int          `json:"gridSize"`
	Layout             layout.Table `json:"layout"`
	ResizeDebounceMs   int64        `json:"resizeDebounceMs"`
	OrientationDelayMs int64        `json:"orientationDelayMs"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Pack:               s.cfg.Pack,
		GridSize:           s.cfg.Params.Size,
		Layout:             s.cfg.Layout,
		ResizeDebounceMs:   s.cfg.ResizeDebounce.Milliseconds(),
		OrientationDelayMs: s.cfg.OrientationDelay.Milliseconds(),
	}
	if data.GridSize <= 0 {
		data.GridSize = wordsearch.DefaultGenParams().Size
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render page", "err", err)
	}
}

func (s *Server) handlePacks(w http.ResponseWriter, r *http.Request) {
	entries, err := s.lib.Entries(r.Context())
	if err != nil {
		s.logger.Error("list packs", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "list_failed"})
		return
	}

	type packRes struct {
		Name   string `json:"name"`
		Title  string `json:"title"`
		Words  int    `json:"words"`
		Source string `json:"source"`
	}
	out := make([]packRes, 0, len(entries))
	for _, e := range entries {
		out = append(out, packRes{Name: e.Name, Title: e.Title, Words: e.Words, Source: e.Source})
	}
	writeJSON(w, http.StatusOK, out)
}

// handlePuzzle generates a one-off puzzle. ?solution=1 includes placements.
func (s *Server) handlePuzzle(w http.ResponseWriter, r *http.Request) {
	pack, ok := s.resolvePack(w, r)
	if !ok {
		return
	}

	p := wordsearch.Generate(s.nextRand(), pack.Words, s.cfg.Params)
	res := PuzzleResponse{
		Pack:  pack.Name,
		Size:  p.Grid.Size(),
		Rows:  p.Grid.Rows(),
		Words: p.Words,
	}
	if solution, _ := strconv.ParseBool(r.URL.Query().Get("solution")); solution {
		res.Placements = p.Placements
	}
	writeJSON(w, http.StatusOK, res)
}

// handleWS upgrades the connection and starts a session for it.
// Query parameters: pack, width.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	pack, ok := s.resolvePack(w, r)
	if !ok {
		return
	}
	width, _ := strconv.Atoi(r.URL.Query().Get("width"))

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	logger := s.logger.With("remote", r.RemoteAddr, "pack", pack.Name)
	client := &Client{
		hub:     s.hub,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		session: wordsearch.NewSession(s.nextRand(), pack.Words, s.cfg.Params),
		pack:    pack.Name,
		table:   s.cfg.Layout,
		width:   core.Clamp(width, 0, maxViewportWidth),
		logger:  logger,
	}

	logger.Info("round started", "round", client.session.Round(), "words", client.session.Total())
	client.queueState()
	s.hub.attach(client)
}

// resolvePack looks up ?pack=, falling back to the configured pack.
// It writes the error response itself when the pack cannot be used.
func (s *Server) resolvePack(w http.ResponseWriter, r *http.Request) (registry.Pack, bool) {
	name := r.URL.Query().Get("pack")
	if name == "" {
		name = s.cfg.Pack
	}

	pack, err := s.lib.Resolve(r.Context(), name)
	switch {
	case err == nil:
		return pack, true
	case errors.Is(err, registry.ErrPackNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown_pack", "pack": name})
	case errors.Is(err, words.ErrEmptyPool):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "empty_pack", "pack": name})
	default:
		s.logger.Error("resolve pack", "pack", name, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "resolve_failed"})
	}
	return registry.Pack{}, false
}

// nextRand returns the random source for the next puzzle.
func (s *Server) nextRand() *rand.Rand {
	n := s.conns.Add(1)
	if s.cfg.Seed == 0 {
		return core.NewRand(0)
	}
	return core.NewRand(s.cfg.Seed + n)
}

// requestLogger logs each request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimw.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
