package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vnkhanh/podshare-backend/models"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	Clients map[*websocket.Conn]*Client
	Mutex   sync.RWMutex
}

var H = Hub{
	Clients: make(map[*websocket.Conn]*Client),
}

// Event pushed to feed subscribers when a podcast is created.
type PodcastCreatedEvent struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.Clients[conn] = client

	go h.writePump(client)
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.Clients[conn]; ok {
		close(client.Send)
		delete(h.Clients, conn)
	}
}

func (h *Hub) Broadcast(data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.Clients {
		select {
		case client.Send <- data:
		default:
			// Slow subscriber, drop the message.
		}
	}
}

func (h *Hub) BroadcastPodcastCreated(p *models.Podcast) {
	event := PodcastCreatedEvent{
		Type:     "podcast_created",
		ID:       p.ID.String(),
		Title:    p.Title,
		Category: p.Category.CategoryName,
	}
	data, err := json.Marshal(event)
	if err != nil {
		log.Println("marshal podcast event:", err)
		return
	}
	h.Broadcast(data)
}

func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	return map[string]int{
		"feed_clients": len(h.Clients),
	}
}

func (h *Hub) writePump(client *Client) {
	for data := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}
