package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/wordsearch/internal/layout"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Outbound messages buffered per client before new ones are dropped.
	sendBuffer = 256

	// Widths reported by the page are clamped to this many pixels.
	maxViewportWidth = 16384
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one browser connection. It owns its session; only readPump
// touches the session, so no locking is needed.
type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session *wordsearch.Session
	pack    string
	table   layout.Table
	width   int
	logger  *log.Logger
}

// Hub tracks the connected clients and closes them on shutdown.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	logger     *log.Logger
}

// NewHub creates a hub. Run must be called before clients connect.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the hub's event loop and blocks until ctx is cancelled.
// On exit every connection is closed.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Debug("client registered", "pack", client.pack, "clients", len(h.clients))

		case client := <-h.unregister:
			if h.clients[client] {
				delete(h.clients, client)
				close(client.send)
				h.count.Store(int64(len(h.clients)))
				h.logger.Debug("client unregistered", "clients", len(h.clients))
			}

		case <-ctx.Done():
			for client := range h.clients {
				_ = client.conn.Close()
				delete(h.clients, client)
			}
			h.count.Store(0)
			close(h.done)
			return
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	return int(h.count.Load())
}

// attach registers c and starts its pumps. It returns false once the hub has
// stopped.
func (h *Hub) attach(c *Client) bool {
	select {
	case h.register <- c:
	case <-h.done:
		_ = c.conn.Close()
		return false
	}

	go c.writePump()
	go c.readPump()
	return true
}

func (h *Hub) detach(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// readPump reads browser messages and applies them to the session.
func (c *Client) readPump() {
	defer func() {
		c.hub.detach(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read failed", "err", err)
			}
			return
		}

		var in Inbound
		if err := json.Unmarshal(data, &in); err != nil {
			c.queue(Outbound{Event: EventError, Error: "malformed message"})
			continue
		}
		c.handle(in)
	}
}

// handle applies one inbound message and queues the replies.
func (c *Client) handle(in Inbound) {
	if in.Type == MsgResize {
		c.width = core.Clamp(in.Width, 0, maxViewportWidth)
		c.queueState()
		return
	}

	ev, ok := in.event()
	if !ok {
		c.queue(Outbound{Event: EventError, Error: "unknown message type " + in.Type})
		return
	}

	out := c.session.Dispatch(ev)
	if out.NewRound {
		c.logger.Info("round started", "round", c.session.Round(), "words", c.session.Total())
	}
	if out.Found != "" {
		c.logger.Info("word found",
			"word", out.Found,
			"found", c.session.FoundCount(),
			"total", c.session.Total(),
		)
		c.queue(Outbound{Event: EventFound, Word: out.Found})
	}
	if out.Completed {
		c.logger.Info("round complete", "round", c.session.Round())
	}
	if out.Changed() {
		c.queueState()
	}
}

func (c *Client) queueState() {
	snap := c.session.Snapshot()
	lay := c.table.Compute(snap.Size, c.width)
	c.queue(Outbound{Event: EventState, Pack: c.pack, State: &snap, Layout: &lay})
}

// queue marshals msg onto the send buffer, dropping it if the client is not
// keeping up.
func (c *Client) queue(msg Outbound) {
	data, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("marshal message", "err", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Warn("send buffer full, dropping message", "event", msg.Event)
	}
}

// writePump writes queued messages and pings to the connection.
// Messages queued together are joined with newlines into one frame.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = w.Write(message)

			n := len(c.send)
			for i := 0; i < n; i++ {
				_, _ = w.Write([]byte{'\n'})
				_, _ = w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.hub.done:
			return
		}
	}
}
