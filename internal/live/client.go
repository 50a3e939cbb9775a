package live

import (
	"time"

	"arena-wallet/internal/model"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Message is the frame written to WebSocket clients.
type Message struct {
	Type    model.SnapshotKind `json:"type"`
	ID      string             `json:"id"`
	Payload any                `json:"payload"`
}

// NewMessage renders a snapshot for one viewer. Tournament room credentials are
// only included for participants.
func NewMessage(snap model.Snapshot, viewerID string) Message {
	msg := Message{Type: snap.Kind, ID: snap.ID}
	switch {
	case snap.Profile != nil:
		msg.Payload = snap.Profile
	case snap.Tournament != nil:
		msg.Payload = snap.Tournament.ViewFor(viewerID)
	}
	return msg
}

// Client pumps one subscription into one WebSocket connection.
type Client struct {
	conn     *websocket.Conn
	sub      *Subscription
	viewerID string
	logger   zerolog.Logger
}

func NewClient(conn *websocket.Conn, sub *Subscription, viewerID string, logger zerolog.Logger) *Client {
	return &Client{
		conn:     conn,
		sub:      sub,
		viewerID: viewerID,
		logger:   logger.With().Str("user_id", viewerID).Logger(),
	}
}

// Serve runs both pumps and returns when the peer disconnects.
func (c *Client) Serve() {
	go c.writePump()
	c.readPump()
}

// readPump only services control frames; client messages are ignored.
func (c *Client) readPump() {
	defer func() {
		c.sub.Close()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("Live client closed unexpectedly")
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case snap, ok := <-c.sub.C():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
				return
			}

			if err := c.conn.WriteJSON(NewMessage(snap, c.viewerID)); err != nil {
				c.logger.Debug().Err(err).Msg("Live client write failed")
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
