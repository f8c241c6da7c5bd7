package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expohub/live"
	"expohub/models"
	"expohub/session"
	"expohub/store/memstore"
)

type received struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

type fixture struct {
	store   *memstore.Store
	tokens  *session.Tokens
	manager *Manager
	server  *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, _ := test.NewNullLogger()

	s := memstore.New()
	hub := live.NewHub(s, log)
	tokens := session.NewTokens("secret", time.Hour)
	m := NewManager(hub, tokens, s, log)
	go m.Start()

	srv := httptest.NewServer(Handler(m))
	t.Cleanup(func() {
		srv.Close()
		m.Stop()
		hub.Close()
	})

	_, _, err := s.CreateChat(context.Background(), &models.Chat{ID: "u1_u2", Participants: []string{"u1", "u2"}})
	require.NoError(t, err)

	return &fixture{store: s, tokens: tokens, manager: m, server: srv}
}

func (f *fixture) dial(t *testing.T, userID string) *websocket.Conn {
	t.Helper()
	token, err := f.tokens.Issue(&models.User{ID: userID})
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	expect(t, conn, "connected")
	return conn
}

// expect reads until a message of type kind arrives.
func expect(t *testing.T, conn *websocket.Conn, kind string) received {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var msg received
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == kind {
			return msg
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, kind string, payload interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": kind, "payload": payload}))
}

func TestHandler_RejectsUnauthenticated(t *testing.T) {
	f := newFixture(t)
	url := "ws" + strings.TrimPrefix(f.server.URL, "http")

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(url+"?token=forged", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClient_MessagesSubscription(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "u2")

	send(t, conn, "subscribe", map[string]string{"topic": "messages:u1_u2"})
	ack := expect(t, conn, "subscribed")
	assert.Equal(t, "messages:u1_u2", ack.Payload["topic"])

	err := f.store.AddMessage(context.Background(), &models.Message{
		ID:       "m1",
		ChatID:   "u1_u2",
		SenderID: "u1",
		Content:  "hello",
		Kind:     models.KindText,
		ReadBy:   map[string]time.Time{"u1": {}},
	}, []string{"u2"})
	require.NoError(t, err)

	msg := expect(t, conn, "message_added")
	assert.Equal(t, "m1", msg.Payload["id"])
	message, ok := msg.Payload["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hello", message["content"])
}

func TestClient_SubscribeForbidden(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "u3")

	send(t, conn, "subscribe_chat", map[string]string{"chatId": "u1_u2"})
	msg := expect(t, conn, "error")
	assert.Equal(t, "not a participant of this chat", msg.Payload["error"])

	send(t, conn, "subscribe", map[string]string{"topic": "chats:u1"})
	msg = expect(t, conn, "error")
	assert.Equal(t, "cannot watch another user's chats", msg.Payload["error"])
}

func TestClient_TypingRelayedToParticipantsOnly(t *testing.T) {
	f := newFixture(t)
	sender := f.dial(t, "u1")
	partner := f.dial(t, "u2")
	outsider := f.dial(t, "u3")

	send(t, sender, "typing_start", map[string]string{"chatId": "u1_u2"})

	msg := expect(t, partner, "typing_start")
	assert.Equal(t, "u1", msg.Payload["userId"])
	assert.Equal(t, "u1_u2", msg.Payload["chatId"])

	send(t, outsider, "ping", nil)
	require.NoError(t, outsider.SetReadDeadline(time.Now().Add(2*time.Second)))
	var next received
	require.NoError(t, outsider.ReadJSON(&next))
	assert.Equal(t, "pong", next.Type)

	send(t, sender, "ping", nil)
	expect(t, sender, "pong")
}

func TestClient_DisconnectReleasesSubscriptions(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t, "u1")

	send(t, conn, "subscribe_posts", nil)
	expect(t, conn, "subscribed")
	assert.Equal(t, 1, f.manager.hub.Subscribers(live.PostsTopic()))

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool {
		return f.manager.hub.Topics() == 0 && f.manager.ConnectedUsers() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
