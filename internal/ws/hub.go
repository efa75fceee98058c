package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub tracks websocket connections per team and fans out verification
// events to them.
type Hub struct {
	mu    sync.RWMutex
	teams map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		teams: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(teamID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.teams[teamID] == nil {
		h.teams[teamID] = make(map[*websocket.Conn]bool)
	}
	h.teams[teamID][conn] = true
	log.Printf("ws: client connected to team %d (total: %d)", teamID, len(h.teams[teamID]))
}

func (h *Hub) RemoveConnection(teamID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.teams[teamID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.teams, teamID)
		}
		log.Printf("ws: client disconnected from team %d", teamID)
	}
}

func (h *Hub) Broadcast(teamID uint, message Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.teams[teamID]))
	for conn := range h.teams[teamID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			h.RemoveConnection(teamID, conn)
		}
	}
}
