package websocket

import (
	"context"
	"time"

	ws "github.com/coder/websocket"
)

const (
	// A burst of board edits (import, preset apply) fans out several
	// notifications at once; the buffer absorbs that without blocking
	// the hub.
	sendBufferSize = 16
	pingInterval   = 30 * time.Second

	// Viewers never send board data; anything inbound is at most a close
	// frame, so the read side stays tiny.
	maxInboundBytes = 512
)

// Client is one connected viewer: a browser tab showing the editor or a
// shared board. Sync is one-way, server to client.
type Client struct {
	hub  *Hub
	conn *ws.Conn
	send chan []byte
}

// NewClient creates a Client tied to the given hub and connection.
func NewClient(hub *Hub, conn *ws.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// Run registers the client, starts the notification pump, and blocks until
// the connection closes, then unregisters.
func (c *Client) Run(ctx context.Context) {
	c.hub.Register(c)
	defer c.hub.Unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.conn.SetReadLimit(maxInboundBytes)

	go c.notifyPump(ctx)
	c.awaitClose(ctx)
}

// awaitClose services the read side solely so the close handshake and ping
// replies work; board viewers have nothing to say. It returns when the
// connection drops.
func (c *Client) awaitClose(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

// notifyPump writes queued board notifications to the viewer and pings
// periodically so dead tabs are reaped instead of lingering in the hub.
func (c *Client) notifyPump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				// Hub unregistered us.
				c.conn.Close(ws.StatusNormalClosure, "")
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			c.conn.Close(ws.StatusGoingAway, "server shutting down")
			return
		}
	}
}
