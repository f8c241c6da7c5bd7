package mongostore

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"expohub/models"
	"expohub/store"
)

const watchBuffer = 64

type changeEvent struct {
	OperationType string   `bson:"operationType"`
	FullDocument  bson.Raw `bson:"fullDocument"`
	DocumentKey   struct {
		ID string `bson:"_id"`
	} `bson:"documentKey"`
}

func (e changeEvent) kind() (store.EventKind, bool) {
	switch e.OperationType {
	case "insert":
		return store.EventAdded, true
	case "update", "replace":
		return store.EventModified, true
	case "delete":
		return store.EventRemoved, true
	default:
		return "", false
	}
}

// WatchChats streams changes to the chats userID takes part in.
func (s *Store) WatchChats(ctx context.Context, userID string) (<-chan store.Event, error) {
	match := bson.D{{Key: "fullDocument.participants", Value: userID}}
	return s.watch(ctx, s.chats, match, decodeChatEvent)
}

func (s *Store) WatchMessages(ctx context.Context, chatID string) (<-chan store.Event, error) {
	match := bson.D{{Key: "fullDocument.chatId", Value: chatID}}
	return s.watch(ctx, s.messages, match, decodeMessageEvent)
}

// WatchPosts streams every post change, deletes included.
func (s *Store) WatchPosts(ctx context.Context) (<-chan store.Event, error) {
	return s.watch(ctx, s.posts, nil, decodePostEvent)
}

type eventDecoder func(*store.Event, bson.Raw) error

func decodeChatEvent(e *store.Event, raw bson.Raw) error {
	var c models.Chat
	if err := bson.Unmarshal(raw, &c); err != nil {
		return err
	}
	e.Chat = &c
	return nil
}

func decodeMessageEvent(e *store.Event, raw bson.Raw) error {
	var m models.Message
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	e.Message = &m
	return nil
}

func decodePostEvent(e *store.Event, raw bson.Raw) error {
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return err
	}
	e.Post = document(m)
	return nil
}

// watch opens a change stream on coll. Deletes carry no full document and are
// only reported when match is nil.
func (s *Store) watch(ctx context.Context, coll *mongo.Collection, match bson.D, decode eventDecoder) (<-chan store.Event, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	stream, err := coll.Watch(ctx, pipeline, options.ChangeStream().SetFullDocument(options.UpdateLookup))
	if err != nil {
		return nil, err
	}

	log := s.log.WithField("collection", coll.Name())
	out := make(chan store.Event, watchBuffer)

	go func() {
		defer close(out)
		defer stream.Close(context.Background())

		for stream.Next(ctx) {
			var ce changeEvent
			if err := stream.Decode(&ce); err != nil {
				log.WithError(err).Error("failed to decode change event")
				continue
			}
			e, ok := toEvent(log, ce, decode)
			if !ok {
				continue
			}

			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("change stream failed")
		}
	}()

	return out, nil
}

// toEvent converts a change event. Unknown operations and documents that do
// not decode are dropped, the latter with an error log.
func toEvent(log logrus.FieldLogger, ce changeEvent, decode eventDecoder) (store.Event, bool) {
	kind, ok := ce.kind()
	if !ok {
		return store.Event{}, false
	}

	e := store.Event{Kind: kind, ID: ce.DocumentKey.ID}
	if len(ce.FullDocument) > 0 {
		if err := decode(&e, ce.FullDocument); err != nil {
			log.WithError(err).WithField("id", e.ID).Error("failed to decode changed document")
			return store.Event{}, false
		}
	}
	return e, true
}
