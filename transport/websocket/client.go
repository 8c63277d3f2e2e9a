package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/peerhut/rendezvous/signal"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Sized for WebRTC SDP
	// payloads.
	maxMessageSize = 64 * 1024

	// Outbound buffer per connection.
	sendBuffer = 256
)

// Client wraps one WebSocket connection and implements signal.Peer.
type Client struct {
	router *signal.Router
	conn   *websocket.Conn

	id   string
	send chan []byte

	done     chan struct{}
	doneOnce sync.Once
}

// newClient attaches the connection to the router and returns the
// client, ready to pump.
func newClient(router *signal.Router, conn *websocket.Conn) *Client {
	c := &Client{
		router: router,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
	}
	c.id = router.Attach(c)
	return c
}

// ID returns the connection identifier assigned by the router.
func (c *Client) ID() string { return c.id }

// Send marshals v and queues it for delivery. It never blocks: messages
// are dropped when the connection is closing or the buffer is full.
func (c *Client) Send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal message for %s: %v", c.id, err)
		return
	}

	select {
	case <-c.done:
	case c.send <- data:
	default:
		log.Printf("Send buffer full for %s, dropping message", c.id)
	}
}

// close shuts the connection down once, unblocking both pumps.
func (c *Client) close() {
	c.doneOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// readPump pumps frames from the WebSocket connection into the router.
//
// There is at most one reader per connection; all reads happen here.
// When the pump exits the connection is detached from the router, which
// handles room teardown and peer notification.
func (c *Client) readPump() {
	defer func() {
		c.router.Detach(c.id)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error on %s: %v", c.id, err)
			}
			break
		}
		c.router.Dispatch(c.id, frame)
	}
}

// writePump pumps queued messages to the WebSocket connection and keeps
// it alive with pings. There is at most one writer per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Printf("Write failed on %s: %v", c.id, err)
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
