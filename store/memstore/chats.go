package memstore

import (
	"context"
	"sort"
	"time"

	"expohub/models"
	"expohub/store"
)

func (s *Store) ListChats(_ context.Context, userID string) ([]*models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Chat
	for _, c := range s.chats {
		if c.HasParticipant(userID) {
			out = append(out, copyChat(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (s *Store) GetChat(_ context.Context, id string) (*models.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyChat(c), nil
}

// CreateChat keeps an existing chat with the same id and reports false.
func (s *Store) CreateChat(_ context.Context, c *models.Chat) (*models.Chat, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.chats[c.ID]; ok {
		return copyChat(existing), false, nil
	}

	stored := copyChat(c)
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.chats[c.ID] = stored

	s.publishChat(store.EventAdded, stored)
	return copyChat(stored), true, nil
}

func (s *Store) AddMessage(_ context.Context, m *models.Message, recipients []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[m.ChatID]
	if !ok {
		return store.ErrNotFound
	}

	now := s.now()
	m.CreatedAt = now
	for id, t := range m.ReadBy {
		if t.IsZero() {
			m.ReadBy[id] = now
		}
	}
	stored := copyMessage(m)
	s.messages[m.ChatID] = append(s.messages[m.ChatID], stored)

	c.LastMessage = &models.LastMessage{
		Content:   m.Content,
		SenderID:  m.SenderID,
		Timestamp: now,
		Kind:      m.Kind,
	}
	c.UpdatedAt = now
	if c.UnreadCount == nil {
		c.UnreadCount = map[string]int{}
	}
	for _, r := range recipients {
		c.UnreadCount[r]++
	}

	s.publishMessage(store.EventAdded, stored)
	s.publishChat(store.EventModified, c)
	return nil
}

func (s *Store) ResetUnread(_ context.Context, chatID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.chats[chatID]
	if !ok {
		return store.ErrNotFound
	}
	if c.UnreadCount == nil {
		c.UnreadCount = map[string]int{}
	}
	if v, ok := c.UnreadCount[userID]; ok && v == 0 {
		return nil
	}
	c.UnreadCount[userID] = 0

	s.publishChat(store.EventModified, c)
	return nil
}

func (s *Store) MarkMessagesRead(_ context.Context, chatID, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chats[chatID]; !ok {
		return store.ErrNotFound
	}
	for _, m := range s.messages[chatID] {
		if _, ok := m.ReadBy[userID]; ok {
			continue
		}
		if m.ReadBy == nil {
			m.ReadBy = map[string]time.Time{}
		}
		m.ReadBy[userID] = at
		s.publishMessage(store.EventModified, m)
	}
	return nil
}

func (s *Store) ListMessages(_ context.Context, chatID string) ([]*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.chats[chatID]; !ok {
		return nil, store.ErrNotFound
	}
	out := make([]*models.Message, 0, len(s.messages[chatID]))
	for _, m := range s.messages[chatID] {
		out = append(out, copyMessage(m))
	}
	return out, nil
}
