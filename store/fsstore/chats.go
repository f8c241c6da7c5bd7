package fsstore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"expohub/database"
	"expohub/models"
)

func (s *Store) ListChats(ctx context.Context, userID string) ([]*models.Chat, error) {
	it := s.col(database.Chats).
		Where("participants", "array-contains", userID).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	var out []*models.Chat
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list chats: %w", err)
		}
		c, err := decodeChat(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func decodeChat(snap *firestore.DocumentSnapshot) (*models.Chat, error) {
	var c models.Chat
	if err := snap.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode chat %s: %w", snap.Ref.ID, err)
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func decodeMessage(snap *firestore.DocumentSnapshot) (*models.Message, error) {
	var m models.Message
	if err := snap.DataTo(&m); err != nil {
		return nil, fmt.Errorf("failed to decode message %s: %w", snap.Ref.ID, err)
	}
	m.ID = snap.Ref.ID
	return &m, nil
}

func (s *Store) GetChat(ctx context.Context, id string) (*models.Chat, error) {
	snap, err := s.col(database.Chats).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return decodeChat(snap)
}

// CreateChat relies on Create failing for an existing document, so concurrent
// callers with the same chat id get one chat.
func (s *Store) CreateChat(ctx context.Context, c *models.Chat) (*models.Chat, bool, error) {
	unread := c.UnreadCount
	if unread == nil {
		unread = map[string]int{}
	}

	_, err := s.col(database.Chats).Doc(c.ID).Create(ctx, map[string]interface{}{
		"participants":    c.Participants,
		"participantInfo": c.ParticipantInfo,
		"unreadCount":     unread,
		"createdAt":       firestore.ServerTimestamp,
		"updatedAt":       firestore.ServerTimestamp,
	})
	created := err == nil
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return nil, false, fmt.Errorf("failed to create chat %s: %w", c.ID, err)
	}

	stored, err := s.GetChat(ctx, c.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read chat %s: %w", c.ID, err)
	}
	return stored, created, nil
}

// AddMessage writes the message and the chat summary in one transaction using
// the server timestamp for both.
func (s *Store) AddMessage(ctx context.Context, m *models.Message, recipients []string) error {
	chatRef := s.col(database.Chats).Doc(m.ChatID)
	msgRef := s.messagesCol(m.ChatID).Doc(m.ID)

	readBy := make(map[string]interface{}, len(m.ReadBy))
	for id, t := range m.ReadBy {
		if t.IsZero() {
			readBy[id] = firestore.ServerTimestamp
			continue
		}
		readBy[id] = t
	}

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(chatRef); err != nil {
			return err
		}
		if err := tx.Create(msgRef, map[string]interface{}{
			"chatId":    m.ChatID,
			"senderId":  m.SenderID,
			"content":   m.Content,
			"kind":      string(m.Kind),
			"createdAt": firestore.ServerTimestamp,
			"readBy":    readBy,
		}); err != nil {
			return err
		}

		updates := []firestore.Update{
			{Path: "lastMessage.content", Value: m.Content},
			{Path: "lastMessage.senderId", Value: m.SenderID},
			{Path: "lastMessage.kind", Value: string(m.Kind)},
			{Path: "lastMessage.timestamp", Value: firestore.ServerTimestamp},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		}
		for _, r := range recipients {
			updates = append(updates, firestore.Update{
				FieldPath: firestore.FieldPath{"unreadCount", r},
				Value:     firestore.Increment(1),
			})
		}
		return tx.Update(chatRef, updates)
	})
	if err != nil {
		return fmt.Errorf("failed to add message to chat %s: %w", m.ChatID, wrap(err))
	}

	snap, err := msgRef.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to read message %s: %w", m.ID, wrap(err))
	}
	stored, err := decodeMessage(snap)
	if err != nil {
		return err
	}
	m.CreatedAt = stored.CreatedAt
	m.ReadBy = stored.ReadBy
	return nil
}

func (s *Store) ResetUnread(ctx context.Context, chatID, userID string) error {
	return s.update(ctx, s.col(database.Chats).Doc(chatID), firestore.Update{
		FieldPath: firestore.FieldPath{"unreadCount", userID},
		Value:     0,
	})
}

func (s *Store) MarkMessagesRead(ctx context.Context, chatID, userID string, at time.Time) error {
	messages, err := s.ListMessages(ctx, chatID)
	if err != nil {
		return err
	}

	bw := s.client.BulkWriter(ctx)
	var jobs []*firestore.BulkWriterJob
	for _, m := range messages {
		if _, ok := m.ReadBy[userID]; ok {
			continue
		}
		job, err := bw.Update(s.messagesCol(chatID).Doc(m.ID), []firestore.Update{{
			FieldPath: firestore.FieldPath{"readBy", userID},
			Value:     at,
		}})
		if err != nil {
			bw.End()
			return fmt.Errorf("failed to queue read receipt: %w", err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return fmt.Errorf("failed to mark message read: %w", err)
		}
	}
	return nil
}

func (s *Store) ListMessages(ctx context.Context, chatID string) ([]*models.Message, error) {
	if _, err := s.GetChat(ctx, chatID); err != nil {
		return nil, err
	}

	it := s.messagesCol(chatID).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer it.Stop()

	out := []*models.Message{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}
		m, err := decodeMessage(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
