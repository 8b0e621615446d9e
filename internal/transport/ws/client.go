package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"undercover/internal/app"
	"undercover/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10 // must stay below pongWait
	maxMessageSize = 1024                // clients only send ping/snapshot
	sendBufferSize = 64
)

// Client is one device following a session. It implements app.ClientConnection.
type Client struct {
	id       string
	conn     *websocket.Conn
	session  *app.GameSession
	outbox   chan *ServerMessage
	quit     chan struct{}
	stopOnce sync.Once
	logger   *slog.Logger
}

func newClient(id string, conn *websocket.Conn, session *app.GameSession, logger *slog.Logger) *Client {
	return &Client{
		id:      id,
		conn:    conn,
		session: session,
		outbox:  make(chan *ServerMessage, sendBufferSize),
		quit:    make(chan struct{}),
		logger:  logger.With("sessionID", session.ID(), "clientID", id),
	}
}

// GetClientID implements app.ClientConnection
func (c *Client) GetClientID() string {
	return c.id
}

// Send implements app.ClientConnection
func (c *Client) Send(event *domain.GameEvent) error {
	c.enqueue(messageForEvent(event))
	return nil
}

// enqueue hands msg to the writer. A slow device loses messages rather than
// stalling the session's event loop; it can ask for a fresh snapshot.
func (c *Client) enqueue(msg *ServerMessage) {
	select {
	case <-c.quit:
	case c.outbox <- msg:
	default:
		c.logger.Warn("outbox full, message dropped", "type", msg.Type)
	}
}

// Close implements app.ClientConnection
func (c *Client) Close() error {
	var err error
	c.stopOnce.Do(func() {
		close(c.quit)
		err = c.conn.Close()
	})
	return err
}

// serve runs the writer in the background and reads until the peer goes away
func (c *Client) serve() {
	go c.writeLoop()

	defer func() {
		c.session.UnregisterClient(c.id)
		c.Close()
		c.logger.Info("websocket disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError(app.ErrCodeInvalidMessage, "Invalid message format")
			continue
		}
		c.handle(msg)
	}
}

// writeLoop sends one JSON message per frame and keeps the connection alive
func (c *Client) writeLoop() {
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-c.quit:
			return
		case msg := <-c.outbox:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Debug("websocket write failed", "error", err)
				c.Close()
				return
			}
		case <-ping.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		}
	}
}

// handle answers the socket-level requests; game commands go through HTTP
func (c *Client) handle(msg ClientMessage) {
	switch msg.Type {
	case MsgPing:
		c.enqueue(NewServerMessage(MsgPong, nil))
	case MsgSnapshot:
		c.enqueue(NewServerMessage(MsgState, &StatePayload{
			Event: domain.EventStateChanged,
			State: c.session.Snapshot(),
		}))
	default:
		c.sendError(app.ErrCodeInvalidMessage, "Unknown message type")
	}
}

func (c *Client) sendConnected() {
	c.enqueue(NewServerMessage(MsgConnected, &ConnectedPayload{
		ClientID:  c.id,
		SessionID: c.session.ID(),
		State:     c.session.Snapshot(),
	}))
}

func (c *Client) sendError(code, message string) {
	c.enqueue(NewServerMessage(MsgError, &ErrorPayload{Code: code, Message: message}))
}
