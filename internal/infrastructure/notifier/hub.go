package notifier

import (
	"log"
	"sync"

	"waste_pickup/internal/usecase/interfaces"
)

// Hub tracks live in-app connections per user.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]interfaces.Connection
}

var _ interfaces.IConnectionRegistry = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{conns: map[string][]interfaces.Connection{}}
}

func (h *Hub) Register(userID string, conn interfaces.Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[userID] = append(h.conns[userID], conn)
}

// Unregister drops conn; the user entry is removed with its last connection.
func (h *Hub) Unregister(userID string, conn interfaces.Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.conns[userID]
	for i, c := range list {
		if c == conn {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(h.conns, userID)
		return
	}
	h.conns[userID] = list
}

// Publish writes payload to every connection of userID and returns how many
// writes succeeded. A failed write does not stop delivery to the others.
func (h *Hub) Publish(userID string, payload any) int {
	h.mu.RLock()
	targets := append([]interfaces.Connection(nil), h.conns[userID]...)
	h.mu.RUnlock()

	delivered := 0
	for _, c := range targets {
		if err := c.WriteJSON(payload); err != nil {
			log.Printf("[notification][hub] write failed user_id=%s err=%v", userID, err)
			continue
		}
		delivered++
	}
	return delivered
}

// Connections returns the number of live connections for userID.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}
