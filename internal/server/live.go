package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/yacobolo/cssplay"
)

// Live message types pushed to preview pages.
const (
	MessageProperty = "property"
	MessageRemove   = "remove"
	MessageTheme    = "theme"
)

// LiveMessage is one update for the preview pages.
type LiveMessage struct {
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	Value      string `json:"value,omitempty"`
	Theme      string `json:"theme,omitempty"`
	StyleClass string `json:"styleClass,omitempty"`
}

// liveConn wraps a WebSocket connection with its own write mutex.
type liveConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// LiveHub fans updates out to every connected preview page. It is the
// rendering environment that imported declarations are applied to.
type LiveHub struct {
	mu    sync.RWMutex
	conns map[string]*liveConn
}

// NewLiveHub creates an empty hub.
func NewLiveHub() *LiveHub {
	return &LiveHub{conns: make(map[string]*liveConn)}
}

// Add registers conn and returns its id.
func (h *LiveHub) Add(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = &liveConn{conn: conn}
	return id
}

// Remove forgets the connection with id.
func (h *LiveHub) Remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}

// Len returns the number of connected pages.
func (h *LiveHub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends msg to every connection. Dead connections are dropped.
func (h *LiveHub) Broadcast(msg LiveMessage) {
	h.mu.RLock()
	targets := make(map[string]*liveConn, len(h.conns))
	for id, lc := range h.conns {
		targets[id] = lc
	}
	h.mu.RUnlock()

	for id, lc := range targets {
		lc.mu.Lock()
		err := lc.conn.WriteJSON(msg)
		lc.mu.Unlock()

		if err != nil {
			h.Remove(id)
			_ = lc.conn.Close()
		}
	}
}

// SetProperty pushes a declaration to every preview page. Pages apply any
// declaration, so it always reports success.
func (h *LiveHub) SetProperty(name, value string) bool {
	h.Broadcast(LiveMessage{Type: MessageProperty, Name: name, Value: value})
	return true
}

// RemoveProperty tells preview pages to drop an inline declaration.
func (h *LiveHub) RemoveProperty(name string) {
	h.Broadcast(LiveMessage{Type: MessageRemove, Name: name})
}

// SetTheme tells preview pages to switch the theme class.
func (h *LiveHub) SetTheme(theme cssplay.ThemePreset) {
	h.Broadcast(LiveMessage{Type: MessageTheme, Theme: theme.ID, StyleClass: theme.StyleClass})
}

// CloseAll closes every connection, used on shutdown.
func (h *LiveHub) CloseAll() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[string]*liveConn)
	h.mu.Unlock()

	for _, lc := range conns {
		lc.mu.Lock()
		_ = lc.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		lc.mu.Unlock()
		_ = lc.conn.Close()
	}
}

var _ cssplay.PropertyApplier = (*LiveHub)(nil)
