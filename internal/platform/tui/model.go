package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/wordsearch/internal/layout"
	"github.com/vovakirdan/wordsearch/internal/registry"
)

// helpHeight is the number of lines reserved below the board for the help bar.
const helpHeight = 2

// Options configures a game model.
type Options struct {
	Params         wordsearch.GenParams
	Layout         layout.Table // Terminal width -> columns per cell
	ResizeDebounce time.Duration
	Seed           int64 // 0 means time-based
	Logger         *log.Logger
}

func (o Options) withDefaults() Options {
	if len(o.Layout.Breakpoints) == 0 && o.Layout.Default == 0 {
		o.Layout = layout.TerminalTable()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// GameModel is the Bubble Tea model for one word search session.
type GameModel struct {
	session  *wordsearch.Session
	pack     registry.Pack
	opts     Options
	screen   *core.Screen
	board    wordsearch.Board
	width    int
	height   int
	cellW    int
	debounce *layout.Debouncer
	keys     GameKeyMap
	help     help.Model
	logger   *log.Logger
	dragging bool

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model playing pack, sized for width×height.
func NewGameModel(pack registry.Pack, opts Options, width, height int) GameModel {
	opts = opts.withDefaults()

	m := GameModel{
		session:  wordsearch.NewSession(core.NewRand(opts.Seed), pack.Words, opts.Params),
		pack:     pack,
		opts:     opts,
		screen:   core.NewScreen(width, core.Max(height-helpHeight, 0)),
		width:    width,
		height:   height,
		cellW:    opts.Layout.CellSize(width),
		debounce: &layout.Debouncer{},
		keys:     DefaultGameKeyMap(),
		help:     help.New(),
		logger:   opts.Logger,
	}
	m.help.Width = width
	m.relayout()

	m.logger.Info("round started",
		"pack", pack.Name,
		"round", m.session.Round(),
		"words", m.session.Total(),
		"dropped", len(m.session.Drawn())-m.session.Total(),
	)
	return m
}

// Init initializes the model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SettleMsg:
		return m.handleSettle(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionNewGame:
		m.dispatch(wordsearch.NewGame{})

	case core.ActionMenu:
		m.backToMenu = true

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleMouse maps left-button press, drag and release onto pointer events.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if c, ok := m.board.HitTest(msg.X, msg.Y); ok {
			m.dragging = true
			m.dispatch(wordsearch.PointerDown{Cell: c})
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		if c, ok := m.board.HitTest(msg.X, msg.Y); ok {
			m.dispatch(wordsearch.PointerMove{Cell: c})
		}

	case tea.MouseActionRelease:
		// Release ends the drag wherever the pointer is.
		if m.dragging {
			m.dragging = false
			m.dispatch(wordsearch.PointerUp{})
		}
	}

	return m, nil
}

// handleResize resizes the screen right away and schedules the cell width
// recomputation after the debounce delay.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width
	m.relayout()

	gen := m.debounce.Bump()
	if m.opts.ResizeDebounce <= 0 {
		return m.handleSettle(SettleMsg{Gen: gen})
	}
	return m, settleCmd(m.opts.ResizeDebounce, gen)
}

// handleSettle applies the debounced cell width if no newer resize arrived.
func (m GameModel) handleSettle(msg SettleMsg) (tea.Model, tea.Cmd) {
	if !m.debounce.Current(msg.Gen) {
		return m, nil
	}
	if size := m.opts.Layout.CellSize(m.width); size != m.cellW {
		m.logger.Debug("cell width changed", "from", m.cellW, "to", size, "width", m.width)
		m.cellW = size
	}
	m.relayout()
	return m, nil
}

// dispatch feeds an event to the session and logs its outcome.
func (m *GameModel) dispatch(ev wordsearch.Event) {
	out := m.session.Dispatch(ev)

	if out.Found != "" {
		m.logger.Info("word found",
			"word", out.Found,
			"found", m.session.FoundCount(),
			"total", m.session.Total(),
		)
	}
	if out.Completed {
		m.logger.Info("round complete", "round", m.session.Round())
	}
	if out.NewRound {
		m.dragging = false
		m.relayout()
		m.logger.Info("round started",
			"pack", m.pack.Name,
			"round", m.session.Round(),
			"words", m.session.Total(),
		)
	}
}

func (m *GameModel) relayout() {
	m.board = m.session.Layout(m.screen.Width(), m.screen.Height(), m.cellW)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen, m.board)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + centerText(helpStyle.Render(m.help.View(m.keys)), m.width)
}

// Session exposes the underlying session.
func (m GameModel) Session() *wordsearch.Session {
	return m.session
}

// Board returns the current board placement.
func (m GameModel) Board() wordsearch.Board {
	return m.board
}

// CellWidth returns the columns per grid cell currently in use.
func (m GameModel) CellWidth() int {
	return m.cellW
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the pack menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
