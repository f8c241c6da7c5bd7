// Package chat resolves two-party conversations and mediates sending and
// reading their messages.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"expohub/models"
	"expohub/store"
)

var (
	// ErrProfileNotLoaded is returned when the acting user's profile has not been
	// loaded yet; a chat must not be created with incomplete metadata.
	ErrProfileNotLoaded = errors.New("profile is not loaded")
	// ErrInvalidParticipant is returned when the target lacks an id or a name,
	// or is the acting user.
	ErrInvalidParticipant = errors.New("invalid participant")
	// ErrNotParticipant is returned when a user acts on a chat they are not part of.
	ErrNotParticipant = errors.New("not a participant")
	// ErrInvalidKind is returned for an unknown message kind.
	ErrInvalidKind = errors.New("invalid message kind")
)

// Participant identifies the user a chat is opened with.
type Participant struct {
	ID          string
	DisplayName string
	ImageURL    string
	ProfileType models.ProfileType
}

// Service runs two-party conversations on top of store.Chats.
type Service struct {
	chats store.Chats
	log   logrus.FieldLogger
	now   func() time.Time
	newID func() string
}

// New creates a chat service.
func New(chats store.Chats, log logrus.FieldLogger) *Service {
	return &Service{
		chats: chats,
		log:   log.WithField("module", "chat"),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Key returns the deterministic chat id of the unordered pair a, b.
func Key(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

// FindOrCreate returns the chat between current and target, creating it if
// none exists. Creation is keyed by Key so concurrent calls for the same pair
// end up with one chat.
func (s *Service) FindOrCreate(ctx context.Context, current models.Profile, target Participant) (*models.Chat, error) {
	full, ok := current.(models.FullProfile)
	if !ok || full.User == nil {
		return nil, ErrProfileNotLoaded
	}
	me := full.User

	if target.ID == "" || strings.TrimSpace(target.DisplayName) == "" || target.ID == me.ID {
		return nil, ErrInvalidParticipant
	}

	chats, err := s.chats.ListChats(ctx, me.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats of %s: %w", me.ID, err)
	}
	for _, c := range chats {
		if len(c.Participants) == 2 && c.HasParticipant(target.ID) {
			return c, nil
		}
	}

	c := &models.Chat{
		ID:           Key(me.ID, target.ID),
		Participants: []string{me.ID, target.ID},
		ParticipantInfo: map[string]models.ParticipantInfo{
			me.ID: {
				Name:        me.DisplayName,
				Image:       me.Image(),
				ProfileType: me.ProfileType,
			},
			target.ID: {
				Name:        target.DisplayName,
				Image:       target.ImageURL,
				ProfileType: target.ProfileType,
			},
		},
		UnreadCount: map[string]int{me.ID: 0, target.ID: 0},
	}

	stored, created, err := s.chats.CreateChat(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat %s: %w", c.ID, err)
	}
	if created {
		s.log.WithField("chat", stored.ID).Info("chat created")
	}
	return stored, nil
}

// Get returns the chat if userID participates in it.
func (s *Service) Get(ctx context.Context, chatID, userID string) (*models.Chat, error) {
	c, err := s.chats.GetChat(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat %s: %w", chatID, err)
	}
	if !c.HasParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return c, nil
}

// List returns the chats of userID, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Chat, error) {
	chats, err := s.chats.ListChats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats of %s: %w", userID, err)
	}
	return chats, nil
}

// SendMessage appends a message from senderID to the chat. Content that is
// empty after trimming is ignored: no message is stored and nil is returned.
func (s *Service) SendMessage(ctx context.Context, c *models.Chat, senderID, content string, kind models.MessageKind) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}
	if kind == "" {
		kind = models.KindText
	}
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if !c.HasParticipant(senderID) {
		return nil, ErrNotParticipant
	}

	m := &models.Message{
		ID:       s.newID(),
		ChatID:   c.ID,
		SenderID: senderID,
		Content:  content,
		Kind:     kind,
		ReadBy:   map[string]time.Time{senderID: {}},
	}

	recipients := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		if p != senderID {
			recipients = append(recipients, p)
		}
	}

	if err := s.chats.AddMessage(ctx, m, recipients); err != nil {
		return nil, fmt.Errorf("failed to add message to %s: %w", c.ID, err)
	}

	c.LastMessage = &models.LastMessage{
		Content:   m.Content,
		SenderID:  senderID,
		Timestamp: m.CreatedAt,
		Kind:      kind,
	}
	c.UpdatedAt = m.CreatedAt
	if c.UnreadCount == nil {
		c.UnreadCount = map[string]int{}
	}
	for _, r := range recipients {
		c.UnreadCount[r]++
	}

	return m, nil
}

// MarkRead resets userID's unread counter of the chat and marks the chat's
// messages as read by userID.
func (s *Service) MarkRead(ctx context.Context, c *models.Chat, userID string) error {
	if !c.HasParticipant(userID) {
		return ErrNotParticipant
	}

	if err := s.chats.ResetUnread(ctx, c.ID, userID); err != nil {
		return fmt.Errorf("failed to reset unread counter of %s: %w", c.ID, err)
	}
	if err := s.chats.MarkMessagesRead(ctx, c.ID, userID, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to mark messages of %s read: %w", c.ID, err)
	}

	if c.UnreadCount == nil {
		c.UnreadCount = map[string]int{}
	}
	c.UnreadCount[userID] = 0
	return nil
}

// Messages returns the chat's messages in ascending timestamp order.
func (s *Service) Messages(ctx context.Context, c *models.Chat) ([]*models.Message, error) {
	msgs, err := s.chats.ListMessages(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages of %s: %w", c.ID, err)
	}
	SortMessages(msgs)
	return msgs, nil
}

// SortMessages orders messages by creation time, keeping the stored order of
// messages with equal timestamps.
func SortMessages(msgs []*models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
}
