// Package store contains the storage interfaces of the service.
package store

import (
	"context"
	"errors"
	"time"

	"expohub/models"
)

//go:generate mockgen -destination=./mock/store.go -package=mock -source=store.go

var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a document with the same key is already stored.
	ErrAlreadyExists = errors.New("already exists")
)

// Document is a raw stored record decoded into plain Go values: maps are
// map[string]interface{}, arrays are []interface{}, timestamps are time.Time.
type Document map[string]interface{}

// Users provides access to user profiles and the industries lookup list.
type Users interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error
	// AddUserPost appends postID to the user's posts with array-union semantics.
	AddUserPost(ctx context.Context, userID, postID string) error
	// AddUserExhibition appends exhibitionID to the user's exhibitions with array-union semantics.
	AddUserExhibition(ctx context.Context, userID, exhibitionID string) error
	ListIndustries(ctx context.Context) ([]*models.Industry, error)
}

// Exhibitions provides access to exhibitions.
type Exhibitions interface {
	CreateExhibition(ctx context.Context, e *models.Exhibition) error
	GetExhibition(ctx context.Context, id string) (*models.Exhibition, error)
	ListExhibitions(ctx context.Context) ([]*models.Exhibition, error)
	// JoinExhibition sets joinedUsers[member.ID]. Joining twice is a no-op.
	JoinExhibition(ctx context.Context, id string, member models.JoinedProfile) error
	// AddBrochure appends url to the brochures with array-union semantics.
	AddBrochure(ctx context.Context, id, url string) error
}

// PostFilter narrows ListPosts.
type PostFilter struct {
	AuthorID     string
	ExhibitionID string
	Limit        int
}

// Posts provides access to posts. Posts are returned raw because stored posts
// do not share one shape; see feed.NormalizePost.
type Posts interface {
	CreatePost(ctx context.Context, p *models.NewPost) error
	GetPost(ctx context.Context, id string) (Document, error)
	// ListPosts returns posts newest first.
	ListPosts(ctx context.Context, f PostFilter) ([]Document, error)
	// ToggleLike atomically adds userID to likedBy or removes it, recomputes
	// postLikes from likedBy and returns the updated post.
	ToggleLike(ctx context.Context, id, userID string) (Document, error)
	// AppendComment atomically appends c to postComments, collapsing a map-shaped
	// postComments into an array, refreshes postCommentsCount and returns the
	// updated post.
	AppendComment(ctx context.Context, id string, c models.Comment) (Document, error)
}

// Chats provides access to chats and their messages.
type Chats interface {
	// ListChats returns the chats userID participates in, most recently updated first.
	ListChats(ctx context.Context, userID string) ([]*models.Chat, error)
	GetChat(ctx context.Context, id string) (*models.Chat, error)
	// CreateChat stores c unless a chat with c.ID already exists. It returns the
	// stored chat and whether it was created by this call.
	CreateChat(ctx context.Context, c *models.Chat) (*models.Chat, bool, error)
	// AddMessage stores msg in the chat's messages, stamps msg.CreatedAt with
	// the store's time, updates the chat's lastMessage and updatedAt and
	// increments the unread counter of every recipient. Zero times in
	// msg.ReadBy are stamped with the same time.
	AddMessage(ctx context.Context, msg *models.Message, recipients []string) error
	// ResetUnread sets userID's unread counter of the chat to zero.
	ResetUnread(ctx context.Context, chatID, userID string) error
	// MarkMessagesRead stamps readBy[userID] on every message of the chat that
	// userID has not read yet.
	MarkMessagesRead(ctx context.Context, chatID, userID string, at time.Time) error
	// ListMessages returns the messages of a chat in ascending creation order.
	ListMessages(ctx context.Context, chatID string) ([]*models.Message, error)
}

// EventKind is the kind of change reported by a watch.
type EventKind string

const (
	EventAdded    EventKind = "added"
	EventModified EventKind = "modified"
	EventRemoved  EventKind = "removed"
)

// Event is a single change pushed by a watch. Exactly one of Chat, Message and
// Post is set, matching the watched collection.
type Event struct {
	Kind    EventKind
	ID      string
	Chat    *models.Chat
	Message *models.Message
	Post    Document
}

// Watcher provides live change streams. Channels are closed when ctx is done or
// the underlying stream fails.
type Watcher interface {
	WatchChats(ctx context.Context, userID string) (<-chan Event, error)
	WatchMessages(ctx context.Context, chatID string) (<-chan Event, error)
	WatchPosts(ctx context.Context) (<-chan Event, error)
}

// IndustrySeeder populates the industries lookup list. Seeding is idempotent:
// names already present are skipped and the number of added entries returned.
type IndustrySeeder interface {
	SeedIndustries(ctx context.Context, names []string) (int, error)
}

// Store bundles every storage interface of a backend.
type Store interface {
	Users
	Exhibitions
	Posts
	Chats
	Watcher
	IndustrySeeder

	Close(ctx context.Context) error
}
