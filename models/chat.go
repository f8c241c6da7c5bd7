package models

import "time"

// ParticipantInfo is the display metadata snapshotted into a chat at creation.
type ParticipantInfo struct {
	Name        string      `bson:"name" json:"name" firestore:"name"`
	Image       string      `bson:"image" json:"image" firestore:"image"`
	ProfileType ProfileType `bson:"profileType" json:"profileType" firestore:"profileType"`
}

// LastMessage summarizes the latest message of a chat.
type LastMessage struct {
	Content   string      `bson:"content" json:"content" firestore:"content"`
	SenderID  string      `bson:"senderId" json:"senderId" firestore:"senderId"`
	Timestamp time.Time   `bson:"timestamp" json:"timestamp" firestore:"timestamp"`
	Kind      MessageKind `bson:"kind" json:"kind" firestore:"kind"`
}

type Chat struct {
	ID              string                     `bson:"_id" json:"id" firestore:"-"`
	Participants    []string                   `bson:"participants" json:"participants" firestore:"participants"`
	ParticipantInfo map[string]ParticipantInfo `bson:"participantInfo" json:"participantInfo" firestore:"participantInfo"`
	LastMessage     *LastMessage               `bson:"lastMessage,omitempty" json:"lastMessage,omitempty" firestore:"lastMessage,omitempty"`
	UnreadCount     map[string]int             `bson:"unreadCount" json:"unreadCount" firestore:"unreadCount"`
	CreatedAt       time.Time                  `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time                  `bson:"updatedAt" json:"updatedAt" firestore:"updatedAt"`
}

// HasParticipant reports whether userID takes part in the chat.
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// Partner returns the other participant of a two-party chat.
func (c *Chat) Partner(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}
