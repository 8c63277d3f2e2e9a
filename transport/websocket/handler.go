package websocket

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/peerhut/rendezvous/signal"
)

// Handler upgrades HTTP requests to WebSocket connections and hands
// them to the signaling router.
type Handler struct {
	router   *signal.Router
	upgrader websocket.Upgrader
}

// NewHandler creates a WebSocket handler. allowedOrigin restricts the
// Origin header on upgrade requests; "*" allows any origin.
func NewHandler(router *signal.Router, allowedOrigin string) *Handler {
	return &Handler{
		router: router,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := newClient(h.router, conn)

	go client.writePump()
	go client.readPump()
}
