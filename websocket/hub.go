package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one authenticated participant connected to a session room.
type Client struct {
	UserID uuid.UUID
	RoomID string
	Conn   *websocket.Conn
}

// SignalPayload is an opaque signaling frame relayed between the two
// participants of a room; the server never interprets Data.
type SignalPayload struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data,omitempty"`
	From  uuid.UUID   `json:"from,omitempty"`
}

var rooms = make(map[string]map[*websocket.Conn]uuid.UUID)
var roomsMu sync.RWMutex

var Register = make(chan *Client)
var Unregister = make(chan *Client)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Room %s: client joined: %s", client.RoomID, client.UserID)
			roomsMu.Lock()
			if rooms[client.RoomID] == nil {
				rooms[client.RoomID] = make(map[*websocket.Conn]uuid.UUID)
			}
			rooms[client.RoomID][client.Conn] = client.UserID
			roomsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Room %s: client left: %s", client.RoomID, client.UserID)
			roomsMu.Lock()
			if conns, ok := rooms[client.RoomID]; ok {
				delete(conns, client.Conn)
				if len(conns) == 0 {
					delete(rooms, client.RoomID)
				}
			}
			roomsMu.Unlock()
		}
	}
}

// RelayToRoom forwards a signaling frame to every other participant in the
// room. Dead connections are dropped from the registry.
func RelayToRoom(roomID string, sender *websocket.Conn, payload SignalPayload) {
	roomsMu.RLock()
	conns := make([]*websocket.Conn, 0, len(rooms[roomID]))
	for conn := range rooms[roomID] {
		if conn != sender {
			conns = append(conns, conn)
		}
	}
	roomsMu.RUnlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(payload); err != nil {
			log.Printf("Room %s: error relaying frame: %v", roomID, err)
			conn.Close()
			roomsMu.Lock()
			if peers, ok := rooms[roomID]; ok {
				delete(peers, conn)
			}
			roomsMu.Unlock()
		}
	}
}
