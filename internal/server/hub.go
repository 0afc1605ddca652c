package server

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks websocket subscribers per game and pushes state snapshots to
// them after every change.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*websocket.Conn]bool)}
}

func (h *Hub) Add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[*websocket.Conn]bool)
	}
	h.subs[gameID][conn] = true
}

func (h *Hub) Remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[gameID], conn)
	if len(h.subs[gameID]) == 0 {
		delete(h.subs, gameID)
	}
}

// Broadcast sends v as JSON to every subscriber of the game, dropping
// connections that fail to write.
func (h *Hub) Broadcast(gameID string, v interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[gameID] {
		if err := conn.WriteJSON(v); err != nil {
			log.Printf("Error broadcasting to client: %v", err)
			conn.Close()
			delete(h.subs[gameID], conn)
		}
	}
}

// CloseGame disconnects every subscriber of a removed game.
func (h *Hub) CloseGame(gameID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[gameID] {
		conn.Close()
	}
	delete(h.subs, gameID)
}
