package models

import "time"

// MediaType is the kind of media attached to a post.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Post is the normalized in-memory post. Stored posts are decoded through
// feed.NormalizePost because their comment field has had several shapes.
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorType   string    `json:"authorType"`
	AuthorImage  string    `json:"authorImage"`
	Content      string    `json:"content"`
	MediaURL     string    `json:"mediaUrl,omitempty"`
	MediaType    MediaType `json:"mediaType,omitempty"`
	ExhibitionID string    `json:"exhibitionId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	LikeCount    int       `json:"postLikes"`
	LikedBy      []string  `json:"likedBy"`
	Comments     []Comment `json:"postComments"`
	CommentCount int       `json:"postCommentsCount"`
}

// LikedByUser reports whether userID is in the post's liked-by set.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// NewPost is the document written when a post is created.
type NewPost struct {
	ID           string    `bson:"_id" firestore:"-"`
	AuthorID     string    `bson:"authorId" firestore:"authorId"`
	AuthorName   string    `bson:"authorName" firestore:"authorName"`
	AuthorType   string    `bson:"authorType" firestore:"authorType"`
	AuthorImage  string    `bson:"authorImage" firestore:"authorImage"`
	Content      string    `bson:"content" firestore:"content"`
	MediaURL     string    `bson:"mediaUrl,omitempty" firestore:"mediaUrl,omitempty"`
	MediaType    MediaType `bson:"mediaType,omitempty" firestore:"mediaType,omitempty"`
	ExhibitionID string    `bson:"exhibitionId,omitempty" firestore:"exhibitionId,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" firestore:"createdAt"`
	PostLikes    int       `bson:"postLikes" firestore:"postLikes"`
	LikedBy      []string  `bson:"likedBy" firestore:"likedBy"`
	PostComments []Comment `bson:"postComments" firestore:"postComments"`
	CommentCount int       `bson:"postCommentsCount" firestore:"postCommentsCount"`
}

type Comment struct {
	ID          string    `bson:"id" json:"id" firestore:"id"`
	AuthorID    string    `bson:"authorId" json:"authorId" firestore:"authorId"`
	AuthorName  string    `bson:"authorName" json:"authorName" firestore:"authorName"`
	AuthorType  string    `bson:"authorType" json:"authorType" firestore:"authorType"`
	AuthorImage string    `bson:"authorImage" json:"authorImage" firestore:"authorImage"`
	Content     string    `bson:"content" json:"content" firestore:"content"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp" firestore:"timestamp"`
}
