package ws

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Socket is the write side of one live connection. *websocket.Conn
// satisfies it; tests substitute a capture.
type Socket interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one authenticated websocket connection. It lives from a
// successful upgrade+auth until disconnect and never survives a restart.
// Writes go through the buffered Send channel drained by WritePump, so a
// single writer touches the socket.
type Client struct {
	ID       string
	UserID   string
	Username string

	hub  *Hub
	conn Socket
	Send chan []byte

	closeOnce sync.Once
	gone      bool // guarded by hub.mu
}

func newClient(hub *Hub, conn Socket, userID, username string) *Client {
	return &Client{
		ID:       uuid.New().String(),
		UserID:   userID,
		Username: username,
		hub:      hub,
		conn:     conn,
		Send:     make(chan []byte, 64),
	}
}

// WritePump drains Send until the hub closes it, then closes the socket.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for data := range c.Send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// Enqueue hands an already-marshaled event to the client, dropping it when
// the buffer is full (slow or closing consumer).
func (c *Client) Enqueue(data []byte) bool {
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}
