package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"themeplane/model"
	"themeplane/theme"
)

const writeWait = 5 * time.Second

// themeMessage is pushed to every storefront page on each theme change.
type themeMessage struct {
	Type      string            `json:"type"`
	Revision  string            `json:"revision"`
	Time      string            `json:"time"`
	Variables map[string]string `json:"variables"`
	CSS       string            `json:"css"`
	MenuStyle string            `json:"mobileMenuStyle"`
}

func newThemeMessage(t model.Theme, vars []theme.Variable) themeMessage {
	return themeMessage{
		Type:      "theme",
		Revision:  uuid.NewString(),
		Time:      time.Now().UTC().Format(time.RFC3339),
		Variables: theme.VariableMap(vars),
		CSS:       theme.CSS(vars),
		MenuStyle: string(t.Navigation.MobileMenuStyle),
	}
}

// client pairs a connection with the mutex serializing its writes.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub tracks connected storefront pages and republishes theme changes.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	last    *themeMessage
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

// Add registers conn and sends it the latest theme. The send happens under
// the registration lock so no newer broadcast can reach conn first.
func (h *Hub) Add(conn *websocket.Conn) error {
	c := &client{conn: conn}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = c
	if h.last == nil {
		return nil
	}
	return c.write(h.last)
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// PublishTheme is a theme.Listener.
func (h *Hub) PublishTheme(t model.Theme, vars []theme.Variable) {
	msg := newThemeMessage(t, vars)
	h.mu.Lock()
	h.last = &msg
	h.mu.Unlock()
	h.Broadcast(msg)
}

// Broadcast sends v to all clients, dropping any that fail.
func (h *Hub) Broadcast(v any) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.write(v); err != nil {
			h.Remove(c.conn)
			c.conn.Close()
		}
	}
}
