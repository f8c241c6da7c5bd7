// Package websocket delivers live store events and typing indicators to
// authenticated clients.
package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"expohub/live"
	"expohub/session"
	"expohub/store"
)

// Manager tracks connected clients per user.
type Manager struct {
	hub    *live.Hub
	tokens *session.Tokens
	chats  store.Chats
	log    logrus.FieldLogger

	clients    map[*Client]bool
	users      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

func NewManager(hub *live.Hub, tokens *session.Tokens, chats store.Chats, log logrus.FieldLogger) *Manager {
	return &Manager{
		hub:        hub,
		tokens:     tokens,
		chats:      chats,
		log:        log,
		clients:    make(map[*Client]bool),
		users:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Start runs the registration loop until Stop is called.
func (m *Manager) Start() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client] = true
			if m.users[client.userID] == nil {
				m.users[client.userID] = make(map[*Client]bool)
			}
			m.users[client.userID][client] = true
			total := len(m.clients)
			m.mu.Unlock()
			m.log.WithFields(logrus.Fields{"user": client.userID, "clients": total}).Debug("websocket client registered")

		case client := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[client]; ok {
				delete(m.clients, client)
				delete(m.users[client.userID], client)
				if len(m.users[client.userID]) == 0 {
					delete(m.users, client.userID)
				}
				client.close()
			}
			total := len(m.clients)
			m.mu.Unlock()
			m.log.WithFields(logrus.Fields{"user": client.userID, "clients": total}).Debug("websocket client unregistered")

		case <-m.done:
			m.mu.Lock()
			for client := range m.clients {
				client.close()
			}
			m.clients = make(map[*Client]bool)
			m.users = make(map[string]map[*Client]bool)
			m.mu.Unlock()
			return
		}
	}
}

// Stop disconnects every client and ends Start.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.done) })
}

func (m *Manager) add(c *Client) bool {
	select {
	case m.register <- c:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) remove(c *Client) {
	select {
	case m.unregister <- c:
	case <-m.done:
	}
}

// SendToUser delivers a message to every connection of userID.
func (m *Manager) SendToUser(userID, kind string, payload interface{}) {
	msg, err := encode(kind, payload)
	if err != nil {
		m.log.WithError(err).WithField("type", kind).Error("failed to marshal websocket message")
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for client := range m.users[userID] {
		client.enqueue(msg)
	}
}

// ConnectedUsers returns the number of users with at least one connection.
func (m *Manager) ConnectedUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// Outgoing is a message sent to clients.
type Outgoing struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

func encode(kind string, payload interface{}) ([]byte, error) {
	return json.Marshal(Outgoing{Type: kind, Payload: payload})
}

func unix() int64 {
	return time.Now().Unix()
}
