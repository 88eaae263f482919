package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionModel manages the full flow: pack menu -> game -> pack menu.
// This is the top-level model for both local and SSH sessions.
type SessionModel struct {
	ctx       context.Context
	lib       PackLibrary
	opts      Options
	width     int
	height    int
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a session starting at the pack menu.
func NewSessionModel(ctx context.Context, lib PackLibrary, opts Options, width, height int) SessionModel {
	opts = opts.withDefaults()
	return SessionModel{
		ctx:    ctx,
		lib:    lib,
		opts:   opts,
		width:  width,
		height: height,
		menu:   NewMenuModel(ctx, lib, width, height),
	}
}

// StartGame switches the session straight into a game with the named pack.
func (m SessionModel) StartGame(name string) (SessionModel, error) {
	pack, err := m.lib.Resolve(m.ctx, name)
	if err != nil {
		return m, err
	}
	gm := NewGameModel(pack, m.opts, m.width, m.height)
	m.gameModel = &gm
	m.inGame = true
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.inGame && m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so a new game or menu starts at the right size
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		next, err := m.StartGame(selected.Name)
		if err != nil {
			m.opts.Logger.Warn("cannot start pack", "pack", selected.Name, "error", err)
			m.menu.SetError(err)
			return m, nil
		}
		return next, next.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.ctx, m.lib, m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// InGame reports whether a puzzle is on screen.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// Run starts a local terminal session. A non-empty pack skips the menu.
func Run(ctx context.Context, lib PackLibrary, opts Options, pack string, width, height int) error {
	model := NewSessionModel(ctx, lib, opts, width, height)
	if pack != "" {
		var err error
		if model, err = model.StartGame(pack); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
