package signal

import (
	"sync"

	"github.com/google/uuid"
)

// Peer is the transport handle for one live connection. Send is
// fire-and-forget: implementations must not block and must drop the
// message silently when the underlying channel is not open.
type Peer interface {
	Send(v any)
}

// Conns maps connection IDs to their transport handles and owns
// identifier generation. IDs are 128-bit random tokens, so a collision
// over the life of a process is not a realistic event; there is no
// detection path.
type Conns struct {
	peers map[string]Peer
	mu    sync.RWMutex
}

// NewConns creates an empty connection registry.
func NewConns() *Conns {
	return &Conns{peers: make(map[string]Peer)}
}

// Add registers a transport handle and returns its fresh connection ID.
func (c *Conns) Add(p Peer) string {
	id := uuid.NewString()

	c.mu.Lock()
	c.peers[id] = p
	c.mu.Unlock()

	return id
}

// Get returns the transport handle for a connection ID.
func (c *Conns) Get(id string) (Peer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.peers[id]
	return p, ok
}

// Remove drops a connection entry. Removing an unknown ID is a no-op.
func (c *Conns) Remove(id string) {
	c.mu.Lock()
	delete(c.peers, id)
	c.mu.Unlock()
}

// Len returns the number of registered connections.
func (c *Conns) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.peers)
}
