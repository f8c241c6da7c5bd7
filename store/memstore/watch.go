package memstore

import (
	"context"

	"expohub/models"
	"expohub/store"
)

const (
	watchChats    = "chats"
	watchMessages = "messages"
	watchPosts    = "posts"
)

func (s *Store) WatchChats(ctx context.Context, userID string) (<-chan store.Event, error) {
	return s.watch(ctx, watchChats, userID), nil
}

func (s *Store) WatchMessages(ctx context.Context, chatID string) (<-chan store.Event, error) {
	return s.watch(ctx, watchMessages, chatID), nil
}

func (s *Store) WatchPosts(ctx context.Context) (<-chan store.Event, error) {
	return s.watch(ctx, watchPosts, ""), nil
}

func (s *Store) watch(ctx context.Context, kind, key string) <-chan store.Event {
	w := &watcher{
		kind: kind,
		key:  key,
		ch:   make(chan store.Event, watchBuffer),
	}

	s.mu.Lock()
	s.watchers[w] = struct{}{}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()

		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.watchers[w]; ok {
			delete(s.watchers, w)
			close(w.ch)
		}
	}()

	return w.ch
}

// publish must be called with s.mu held. Events are dropped for watchers whose
// buffer is full.
func (s *Store) publish(kind string, match func(key string) bool, e store.Event) {
	for w := range s.watchers {
		if w.kind != kind || !match(w.key) {
			continue
		}
		select {
		case w.ch <- e:
		default:
		}
	}
}

func (s *Store) publishChat(kind store.EventKind, c *models.Chat) {
	s.publish(watchChats, c.HasParticipant, store.Event{Kind: kind, ID: c.ID, Chat: copyChat(c)})
}

func (s *Store) publishMessage(kind store.EventKind, m *models.Message) {
	s.publish(watchMessages, func(key string) bool { return key == m.ChatID }, store.Event{
		Kind:    kind,
		ID:      m.ID,
		Message: copyMessage(m),
	})
}

func (s *Store) publishPost(kind store.EventKind, d store.Document) {
	id, _ := d["id"].(string)
	s.publish(watchPosts, func(string) bool { return true }, store.Event{Kind: kind, ID: id, Post: copyDocument(d)})
}
