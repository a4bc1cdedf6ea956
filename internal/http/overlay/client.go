// Package overlay streams demo playback frames to browser overlays over a websocket.
package overlay

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/preston-bernstein/scorebug-service/internal/logging"
	"github.com/preston-bernstein/scorebug-service/internal/playback"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendBufferSize = 64
)

// Message types sent to the overlay.
const (
	MessageSession = "session"
	MessageFrame   = "frame"
	MessageStatus  = "status"
	MessageError   = "error"
)

// Message is the envelope for everything written to the socket.
type Message struct {
	Type      string           `json:"type"`
	SessionID string           `json:"sessionId"`
	Frame     *playback.Frame  `json:"frame,omitempty"`
	Status    *playback.Status `json:"status,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Client pumps player events in and scoreboard frames out for one connection.
type Client struct {
	conn    *websocket.Conn
	session *playback.Session
	closer  func(id string) error
	logger  *slog.Logger

	send      chan Message
	done      chan struct{}
	closeOnce sync.Once
}

// NewClient wraps conn; call Attach before starting the pumps.
func NewClient(conn *websocket.Conn, logger *slog.Logger) *Client {
	return &Client{
		conn:   conn,
		logger: logger,
		send:   make(chan Message, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// Attach binds the playback session the client drives. closer releases it when the socket ends.
func (c *Client) Attach(session *playback.Session, closer func(id string) error) {
	c.session = session
	c.closer = closer
}

// PublishFrame is a playback.PublishFunc.
func (c *Client) PublishFrame(f playback.Frame) {
	if !c.TrySend(Message{Type: MessageFrame, SessionID: f.SessionID, Frame: &f}) {
		logging.Warn(c.logger, "overlay send buffer full, frame dropped",
			logging.FieldSessionID, f.SessionID,
			logging.FieldVideoTime, f.VideoTime,
		)
	}
}

// TrySend queues msg without blocking. It reports false when the buffer is full
// or the client has shut down.
func (c *Client) TrySend(msg Message) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// ReadPump decodes player events until the peer disconnects or ctx ends.
func (c *Client) ReadPump(ctx context.Context) {
	defer c.shutdown()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if ctx.Err() != nil {
			return
		}
		var ev playback.Event
		if err := c.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn(c.logger, "overlay connection closed unexpectedly",
					logging.FieldSessionID, c.sessionID(),
					"error", err,
				)
			}
			return
		}
		c.handle(ev)
	}
}

// WritePump drains queued messages and keeps the connection alive with pings.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				logging.Warn(c.logger, "overlay write failed", logging.FieldSessionID, c.sessionID(), "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(ev playback.Event) {
	if c.session == nil {
		c.TrySend(Message{Type: MessageError, Error: "no playback session"})
		return
	}
	if err := c.session.Handle(ev); err != nil {
		c.TrySend(Message{Type: MessageError, SessionID: c.session.ID(), Error: err.Error()})
		if errors.Is(err, playback.ErrSessionClosed) {
			c.shutdown()
		}
		return
	}
	switch ev.Kind {
	case playback.EventLoadedMetadata, playback.EventPlay, playback.EventPause, playback.EventEnded:
		st := c.session.Status()
		c.TrySend(Message{Type: MessageStatus, SessionID: st.SessionID, Status: &st})
	}
}

func (c *Client) shutdown() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.session != nil && c.closer != nil {
			_ = c.closer(c.session.ID())
		}
		_ = c.conn.Close()
	})
}

func (c *Client) sessionID() string {
	if c.session == nil {
		return ""
	}
	return c.session.ID()
}
