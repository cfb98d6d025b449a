package ws

import (
	"encoding/json"
	"sync"
)

// Client is one open timeline socket for a user. Its Send channel is owned by
// the hub once registered: the hub closes it on unregister, under the hub
// lock, so a close can never race a broadcast send.
type Client struct {
	UserID uint
	Send   chan []byte
	hub    *Hub
}

// Close detaches the client and closes its Send channel. Safe to call more
// than once and from multiple goroutines.
func (c *Client) Close() {
	if c.hub != nil {
		c.hub.unregister(c)
		return
	}
	close(c.Send)
}

// Hub fans newly written ledger entries out to the owning user's open widget
// sockets. One user can hold multiple connections (several tabs).
type Hub struct {
	mu     sync.RWMutex
	byUser map[uint]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{byUser: make(map[uint]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	if h.byUser[c.UserID] == nil {
		h.byUser[c.UserID] = make(map[*Client]struct{})
	}
	h.byUser[c.UserID][c] = struct{}{}
}

// unregister removes the client and closes its channel while holding the
// write lock. The membership check makes repeated calls no-ops, so the
// channel closes exactly once.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.byUser[c.UserID]
	if m == nil {
		return
	}
	if _, ok := m[c]; !ok {
		return
	}
	delete(m, c)
	if len(m) == 0 {
		delete(h.byUser, c.UserID)
	}
	close(c.Send)
}

// BroadcastToUser pushes a payload to every socket the user holds. Sends run
// under the read lock, which excludes unregister's close; slow consumers are
// skipped rather than blocked on, so the lock is held only briefly.
func (h *Hub) BroadcastToUser(userID uint, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.byUser[userID] {
		select {
		case c.Send <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, m := range h.byUser {
		n += len(m)
	}
	return n
}
