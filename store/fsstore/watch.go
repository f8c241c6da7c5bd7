package fsstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"expohub/database"
	"expohub/store"
)

const (
	watchBuffer = 64
	// postWindow bounds the posts query listened to by WatchPosts.
	postWindow = 200
)

func (s *Store) WatchChats(ctx context.Context, userID string) (<-chan store.Event, error) {
	q := s.col(database.Chats).Where("participants", "array-contains", userID)
	return s.watch(ctx, q, func(e *store.Event, snap *firestore.DocumentSnapshot) error {
		c, err := decodeChat(snap)
		e.Chat = c
		return err
	}), nil
}

func (s *Store) WatchMessages(ctx context.Context, chatID string) (<-chan store.Event, error) {
	return s.watch(ctx, s.messagesCol(chatID).Query, func(e *store.Event, snap *firestore.DocumentSnapshot) error {
		m, err := decodeMessage(snap)
		e.Message = m
		return err
	}), nil
}

func (s *Store) WatchPosts(ctx context.Context) (<-chan store.Event, error) {
	q := s.col(database.Posts).OrderBy("createdAt", firestore.Desc).Limit(postWindow)
	return s.watch(ctx, q, func(e *store.Event, snap *firestore.DocumentSnapshot) error {
		e.Post = postDocument(snap)
		return nil
	}), nil
}

// watch listens to q. The first snapshot holds the current result set and is
// skipped, so only changes made after the call are reported.
func (s *Store) watch(ctx context.Context, q firestore.Query, decode func(*store.Event, *firestore.DocumentSnapshot) error) <-chan store.Event {
	out := make(chan store.Event, watchBuffer)

	go func() {
		defer close(out)

		it := q.Snapshots(ctx)
		defer it.Stop()

		first := true
		for {
			qs, err := it.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled && ctx.Err() == nil {
					s.log.WithError(err).Error("snapshot listener failed")
				}
				return
			}
			if first {
				first = false
				continue
			}

			for _, ch := range qs.Changes {
				e := store.Event{ID: ch.Doc.Ref.ID}
				switch ch.Kind {
				case firestore.DocumentAdded:
					e.Kind = store.EventAdded
				case firestore.DocumentModified:
					e.Kind = store.EventModified
				case firestore.DocumentRemoved:
					e.Kind = store.EventRemoved
				}
				if err := decode(&e, ch.Doc); err != nil {
					s.log.WithError(err).WithField("id", e.ID).Error("failed to decode changed document")
					continue
				}

				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
