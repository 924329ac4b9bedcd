package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"quizmaster/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client is one connection listening for achievement events.
type Client struct {
	Conn    *websocket.Conn
	Email   string
	writeMu sync.Mutex
}

// SafeWriteJSON serializes writes to the connection.
func (c *Client) SafeWriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Hub broadcasts achievement-unlock events to connected clients. A
// client only receives events for its own user.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]bool)}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	log.Printf("Achievement client registered. Total clients: %d", len(h.clients))
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
	client.Conn.Close()
	log.Printf("Achievement client unregistered. Total clients: %d", len(h.clients))
}

// BroadcastAchievement delivers the event to the owning user's
// connections. A failed write drops the client.
func (h *Hub) BroadcastAchievement(event models.AchievementEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if client.Email != event.Email {
			continue
		}
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting achievement event: %v", err)
			go h.Unregister(client)
		}
	}
}

// Handler upgrades the request and keeps the connection registered
// until the peer goes away.
func (h *Hub) Handler(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}

	client := &Client{Conn: conn, Email: email}
	h.Register(client)

	go func() {
		defer h.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
