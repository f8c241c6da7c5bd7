package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"expohub/feed"
	"expohub/live"
	"expohub/store"
)

const (
	readLimit   = 4096
	pongWait    = 60 * time.Second
	pingPeriod  = 30 * time.Second
	writeWait   = 10 * time.Second
	sendBuffer  = 256
	tokenHeader = "Authorization"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Client is one websocket connection of a user.
type Client struct {
	conn    *websocket.Conn
	userID  string
	send    chan []byte
	manager *Manager
	log     logrus.FieldLogger

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
	subs   map[live.Topic]*live.Subscription
}

// Incoming is a message received from a client.
type Incoming struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type topicPayload struct {
	Topic  string `json:"topic"`
	ChatID string `json:"chatId"`
}

type chatPayload struct {
	ChatID string `json:"chatId"`
}

// Handler authenticates the connection with the token query parameter or the
// bearer Authorization header and upgrades it.
func Handler(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			token = strings.TrimPrefix(r.Header.Get(tokenHeader), "Bearer ")
		}
		if token == "" {
			http.Error(w, "token required", http.StatusUnauthorized)
			return
		}

		claims, err := manager.tokens.Parse(token)
		if err != nil {
			manager.log.WithError(err).Debug("websocket connection rejected")
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			manager.log.WithError(err).Warn("websocket upgrade failed")
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		client := &Client{
			conn:    conn,
			userID:  claims.UserID,
			send:    make(chan []byte, sendBuffer),
			manager: manager,
			log:     manager.log.WithField("user", claims.UserID),
			ctx:     ctx,
			cancel:  cancel,
			subs:    make(map[live.Topic]*live.Subscription),
		}

		if !manager.add(client) {
			cancel()
			conn.Close()
			return
		}

		client.reply("connected", map[string]interface{}{
			"userId": client.userID,
			"time":   unix(),
		})

		go client.writePump()
		go client.readPump()
	}
}

func (c *Client) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		c.log.Warn("websocket send buffer full, dropping message")
		return false
	}
}

// close is called by the manager once the client is unregistered.
func (c *Client) close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	subs := c.subs
	c.subs = make(map[live.Topic]*live.Subscription)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.Release()
	}
	c.cancel()
}

func (c *Client) reply(kind string, payload interface{}) {
	msg, err := encode(kind, payload)
	if err != nil {
		c.log.WithError(err).Error("failed to marshal websocket message")
		return
	}
	c.enqueue(msg)
}

func (c *Client) fail(reason string) {
	c.reply("error", map[string]interface{}{"error": reason})
}

func (c *Client) readPump() {
	defer func() {
		c.manager.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(readLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("websocket read error")
			}
			return
		}

		var in Incoming
		if err := json.Unmarshal(message, &in); err != nil {
			c.fail("malformed message")
			continue
		}

		switch in.Type {
		case "subscribe", "subscribe_chat", "subscribe_posts":
			c.handleSubscribe(in)
		case "unsubscribe":
			c.handleUnsubscribe(in)
		case "typing_start", "typing_end":
			c.handleTyping(in)
		case "ping":
			c.reply("pong", map[string]interface{}{"time": unix()})
		default:
			c.fail("unknown message type " + in.Type)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) topic(in Incoming) (live.Topic, error) {
	var p topicPayload
	if len(in.Payload) > 0 {
		if err := json.Unmarshal(in.Payload, &p); err != nil {
			return live.Topic{}, errors.New("malformed payload")
		}
	}
	switch in.Type {
	case "subscribe_chat":
		if p.ChatID == "" {
			return live.Topic{}, errors.New("chatId required")
		}
		return live.MessagesTopic(p.ChatID), nil
	case "subscribe_posts":
		return live.PostsTopic(), nil
	default:
		return live.ParseTopic(p.Topic)
	}
}

// authorize lets users watch their own chat list, the messages of chats they
// take part in and the shared posts feed.
func (c *Client) authorize(t live.Topic) error {
	switch t.Kind {
	case live.TopicChats:
		if t.Key != c.userID {
			return errors.New("cannot watch another user's chats")
		}
	case live.TopicMessages:
		if err := c.participant(t.Key); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) participant(chatID string) error {
	chat, err := c.manager.chats.GetChat(c.ctx, chatID)
	if errors.Is(err, store.ErrNotFound) {
		return errors.New("chat not found")
	}
	if err != nil {
		c.log.WithError(err).WithField("chat", chatID).Error("failed to load chat")
		return errors.New("failed to load chat")
	}
	if !chat.HasParticipant(c.userID) {
		return errors.New("not a participant of this chat")
	}
	return nil
}

func (c *Client) handleSubscribe(in Incoming) {
	t, err := c.topic(in)
	if err != nil {
		c.fail(err.Error())
		return
	}
	if err := c.authorize(t); err != nil {
		c.fail(err.Error())
		return
	}

	c.mu.Lock()
	_, exists := c.subs[t]
	c.mu.Unlock()
	if exists {
		c.reply("subscribed", map[string]interface{}{"topic": t.String()})
		return
	}

	sub, err := c.manager.hub.Subscribe(c.ctx, t)
	if err != nil {
		c.log.WithError(err).WithField("topic", t.String()).Error("failed to subscribe")
		c.fail("failed to subscribe")
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		sub.Release()
		return
	}
	if _, exists := c.subs[t]; exists {
		c.mu.Unlock()
		sub.Release()
		return
	}
	c.subs[t] = sub
	c.mu.Unlock()

	go c.forward(sub)
	c.reply("subscribed", map[string]interface{}{"topic": t.String()})
}

func (c *Client) handleUnsubscribe(in Incoming) {
	var p topicPayload
	if err := json.Unmarshal(in.Payload, &p); err != nil {
		c.fail("malformed payload")
		return
	}
	t, err := live.ParseTopic(p.Topic)
	if err != nil {
		c.fail(err.Error())
		return
	}

	c.mu.Lock()
	sub, ok := c.subs[t]
	delete(c.subs, t)
	c.mu.Unlock()

	if ok {
		sub.Release()
	}
	c.reply("unsubscribed", map[string]interface{}{"topic": t.String()})
}

// handleTyping relays the indicator to the other participants of the chat.
func (c *Client) handleTyping(in Incoming) {
	var p chatPayload
	if err := json.Unmarshal(in.Payload, &p); err != nil || p.ChatID == "" {
		c.fail("chatId required")
		return
	}

	chat, err := c.manager.chats.GetChat(c.ctx, p.ChatID)
	if err != nil || !chat.HasParticipant(c.userID) {
		c.fail("not a participant of this chat")
		return
	}

	payload := map[string]interface{}{
		"chatId":    p.ChatID,
		"userId":    c.userID,
		"timestamp": unix(),
	}
	for _, id := range chat.Participants {
		if id != c.userID {
			c.manager.SendToUser(id, in.Type, payload)
		}
	}
}

func (c *Client) forward(sub *live.Subscription) {
	t := sub.Topic()
	for e := range sub.C() {
		kind, payload := eventMessage(t, e)
		c.reply(kind, payload)
	}
}

// eventMessage renders a store event as "<entity>_<kind>", e.g. message_added.
func eventMessage(t live.Topic, e store.Event) (string, map[string]interface{}) {
	payload := map[string]interface{}{
		"topic": t.String(),
		"id":    e.ID,
	}

	var entity string
	switch t.Kind {
	case live.TopicChats:
		entity = "chat"
		if e.Chat != nil {
			payload["chat"] = e.Chat
		}
	case live.TopicMessages:
		entity = "message"
		if e.Message != nil {
			payload["message"] = e.Message
		}
	case live.TopicPosts:
		entity = "post"
		if e.Post != nil {
			payload["post"] = feed.NormalizePost(e.Post)
		}
	}
	return entity + "_" + string(e.Kind), payload
}
