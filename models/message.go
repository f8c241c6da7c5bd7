package models

import "time"

// MessageKind is the payload kind of a chat message.
type MessageKind string

const (
	KindText  MessageKind = "text"
	KindImage MessageKind = "image"
	KindFile  MessageKind = "file"
)

// Valid reports whether k is a known message kind.
func (k MessageKind) Valid() bool {
	return k == KindText || k == KindImage || k == KindFile
}

type Message struct {
	ID        string               `bson:"_id" json:"id" firestore:"-"`
	ChatID    string               `bson:"chatId" json:"chatId" firestore:"chatId"`
	SenderID  string               `bson:"senderId" json:"senderId" firestore:"senderId"`
	Content   string               `bson:"content" json:"content" firestore:"content"`
	Kind      MessageKind          `bson:"kind" json:"kind" firestore:"kind"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt" firestore:"createdAt"`
	ReadBy    map[string]time.Time `bson:"readBy" json:"readBy" firestore:"readBy"`
}
