package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"expohub/models"
)

func (s *Store) ListChats(ctx context.Context, userID string) ([]*models.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: 1}})

	cursor, err := s.chats.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find chats: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*models.Chat
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode chats: %w", err)
	}
	return out, nil
}

func (s *Store) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	var c models.Chat
	if err := s.chats.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

// CreateChat upserts the chat keeping every field of an existing document, so
// two users opening the same conversation at once end up with one chat.
func (s *Store) CreateChat(ctx context.Context, c *models.Chat) (*models.Chat, bool, error) {
	keep := func(field string, v interface{}) bson.E {
		return bson.E{Key: field, Value: bson.D{{Key: "$ifNull", Value: bson.A{"$" + field, v}}}}
	}
	literal := func(v interface{}) bson.D {
		return bson.D{{Key: "$literal", Value: v}}
	}

	unread := c.UnreadCount
	if unread == nil {
		unread = map[string]int{}
	}
	info := c.ParticipantInfo
	if info == nil {
		info = map[string]models.ParticipantInfo{}
	}

	pipeline := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		keep("participants", literal(c.Participants)),
		keep("participantInfo", literal(info)),
		keep("unreadCount", literal(unread)),
		keep("createdAt", "$$NOW"),
		keep("updatedAt", "$$NOW"),
	}}}}

	res, err := s.chats.UpdateOne(ctx, bson.M{"_id": c.ID}, pipeline, options.Update().SetUpsert(true))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, false, fmt.Errorf("failed to upsert chat %s: %w", c.ID, err)
	}
	created := err == nil && res.UpsertedCount == 1

	stored, err := s.GetChat(ctx, c.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read chat %s: %w", c.ID, err)
	}
	return stored, created, nil
}

// AddMessage inserts the message with the server's clock and then updates the
// chat summary with the time the message was stored at.
func (s *Store) AddMessage(ctx context.Context, m *models.Message, recipients []string) error {
	if _, err := s.GetChat(ctx, m.ChatID); err != nil {
		return err
	}

	readBy := bson.D{}
	for id, t := range m.ReadBy {
		if t.IsZero() {
			readBy = append(readBy, bson.E{Key: id, Value: "$$NOW"})
			continue
		}
		readBy = append(readBy, bson.E{Key: id, Value: bson.D{{Key: "$literal", Value: t}}})
	}

	pipeline := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "chatId", Value: bson.D{{Key: "$literal", Value: m.ChatID}}},
		{Key: "senderId", Value: bson.D{{Key: "$literal", Value: m.SenderID}}},
		{Key: "content", Value: bson.D{{Key: "$literal", Value: m.Content}}},
		{Key: "kind", Value: bson.D{{Key: "$literal", Value: m.Kind}}},
		{Key: "createdAt", Value: "$$NOW"},
		{Key: "readBy", Value: readBy},
	}}}}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Message
	if err := s.messages.FindOneAndUpdate(ctx, bson.M{"_id": m.ID}, pipeline, opts).Decode(&stored); err != nil {
		return fmt.Errorf("failed to insert message: %w", wrap(err))
	}
	m.CreatedAt = stored.CreatedAt
	m.ReadBy = stored.ReadBy

	inc := bson.M{}
	for _, r := range recipients {
		inc["unreadCount."+r] = 1
	}
	update := bson.M{
		"$set": bson.M{
			"lastMessage": models.LastMessage{
				Content:   m.Content,
				SenderID:  m.SenderID,
				Timestamp: m.CreatedAt,
				Kind:      m.Kind,
			},
			"updatedAt": m.CreatedAt,
		},
	}
	if len(inc) > 0 {
		update["$inc"] = inc
	}

	return s.updateOne(ctx, s.chats, m.ChatID, update)
}

func (s *Store) ResetUnread(ctx context.Context, chatID, userID string) error {
	return s.updateOne(ctx, s.chats, chatID, bson.M{"$set": bson.M{"unreadCount." + userID: 0}})
}

func (s *Store) MarkMessagesRead(ctx context.Context, chatID, userID string, at time.Time) error {
	field := "readBy." + userID
	filter := bson.M{"chatId": chatID, field: bson.M{"$exists": false}}

	if _, err := s.messages.UpdateMany(ctx, filter, bson.M{"$set": bson.M{field: at}}); err != nil {
		return fmt.Errorf("failed to mark messages of chat %s read: %w", chatID, err)
	}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, chatID string) ([]*models.Message, error) {
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.messages.Find(ctx, bson.M{"chatId": chatID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer cursor.Close(ctx)

	out := []*models.Message{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return out, nil
}
