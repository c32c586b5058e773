// Package eventstream relays captured VirtualEvents to a connected viewer
// over a WebSocket, adapted from the teacher's internal/websocket client:
// same ping/pong keepalive and buffered send channel, narrowed from a
// bidirectional command channel down to a one-way event feed for
// `iohook-demo record --stream`.
package eventstream

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/zhaoq-v/iohook"
	"github.com/zhaoq-v/iohook/internal/logging"
)

var log = logging.L("eventstream")

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Frame is the wire shape of one streamed event. SessionID identifies which
// recording a viewer's frames belong to, the way the teacher's
// SendDesktopFrame tags each frame with a session ID so a server fanning out
// multiple concurrent streams can demultiplex them.
type Frame struct {
	Type      string               `json:"type"`
	SessionID string               `json:"sessionId"`
	Event     *iohook.VirtualEvent `json:"event"`
}

// Client is a one-way WebSocket sender: it dials once, then streams events
// from Send until Close, reconnection is the caller's responsibility (a demo
// CLI run is short-lived, unlike the teacher's long-running agent).
type Client struct {
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
	done      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// Dial connects to serverURL ("ws://host:port/path" or an http(s) URL,
// upgraded the same way the teacher's buildWSURL does).
func Dial(serverURL string) (*Client, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("eventstream: parse url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	}

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("eventstream: dial: %w", err)
	}
	conn.SetReadLimit(maxMessageSize)

	c := &Client{
		conn:      conn,
		sessionID: uuid.NewString(),
		send:      make(chan []byte, 256),
		done:      make(chan struct{}),
	}
	c.wg.Add(1)
	go c.writePump()
	log.Info("connected", "server", serverURL, "sessionId", c.sessionID)
	return c, nil
}

// Send enqueues ev for delivery. Non-blocking: drops the frame and logs a
// warning if the send buffer is full, matching the teacher's
// SendDesktopFrame behavior for a lossy, latency-sensitive stream.
func (c *Client) Send(ev *iohook.VirtualEvent) {
	data, err := json.Marshal(Frame{Type: "event", SessionID: c.sessionID, Event: ev})
	if err != nil {
		log.Warn("marshal event", "error", err)
		return
	}
	select {
	case c.send <- data:
	case <-c.done:
	default:
		log.Warn("send buffer full, dropping event")
	}
}

// Close stops the write pump and closes the connection.
func (c *Client) Close() {
	c.stopOnce.Do(func() {
		close(c.done)
		c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(writeWait),
		)
		c.conn.Close()
	})
	c.wg.Wait()
}

func (c *Client) writePump() {
	defer c.wg.Done()
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Warn("write error", "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
