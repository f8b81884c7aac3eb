package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// MsgEscalation carries the ordered escalation action list for the
	// session UI to execute
	MsgEscalation MessageType = "escalation"
	MsgError      MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the escalation-instruction connections, one per user session
type Hub struct {
	userConns map[string]*Connection

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	push       chan *pushMessage
}

// Connection represents a connected session UI
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *Hub
}

type pushMessage struct {
	UserID  string
	Message *Message
}

// NewHub creates a new hub and starts its event loop
func NewHub() *Hub {
	h := &Hub{
		userConns:  make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		push:       make(chan *pushMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if existing, ok := h.userConns[conn.UserID]; ok {
				close(existing.Send)
			}
			h.userConns[conn.UserID] = conn
			h.mu.Unlock()
			log.Printf("Session UI connected for user %s", conn.UserID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.userConns[conn.UserID]; ok && existing == conn {
				delete(h.userConns, conn.UserID)
				close(conn.Send)
				log.Printf("Session UI disconnected for user %s", conn.UserID)
			}
			h.mu.Unlock()

		case msg := <-h.push:
			h.mu.RLock()
			if conn, ok := h.userConns[msg.UserID]; ok {
				data, _ := json.Marshal(msg.Message)
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// NotifyUser pushes a message to a user's connected session UI (implements
// service.EscalationNotifier). A user with no open connection simply misses
// the push; the same action list is already in the HTTP response.
func (h *Hub) NotifyUser(userID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.push <- &pushMessage{
		UserID: userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
