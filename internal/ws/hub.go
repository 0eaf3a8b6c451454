package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event types pushed to connected storefront clients
const (
	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventSaleRecorded   = "sale_recorded"
)

// CatalogEvent is one message on the live catalog feed
type CatalogEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub fans catalog events out to every connected websocket client.
// In-process only: it pushes browser updates, it is not an inventory sync
// mechanism.
type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
	}
}

// Publish queues a catalog event for broadcast. Safe to call from request
// goroutines; marshal failures are logged and dropped.
func (h *Hub) Publish(event CatalogEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: dropping event %q: %v", event.Type, err)
		return
	}
	h.broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New catalog feed client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
