// Package feed aggregates posts, likes and comments. Stored posts are decoded
// through NormalizePost; writes go through the store's atomic primitives.
package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"expohub/models"
	"expohub/store"
)

const (
	// DefaultLimit is the number of posts listed when no limit is given.
	DefaultLimit = 50
	// MaxLimit caps the number of posts listed at once.
	MaxLimit = 200
)

var (
	// ErrEmptyContent is returned when a comment has no text.
	ErrEmptyContent = errors.New("content is empty")
	// ErrEmptyPost is returned when a post has neither text nor media.
	ErrEmptyPost = errors.New("post has neither content nor media")
	// ErrInvalidMedia is returned for an unknown media type.
	ErrInvalidMedia = errors.New("invalid media type")
)

// Service creates posts and applies likes and comments atomically on the store.
type Service struct {
	posts store.Posts
	users store.Users
	log   logrus.FieldLogger
	now   func() time.Time
	newID func() string
}

// New creates a feed service.
func New(posts store.Posts, users store.Users, log logrus.FieldLogger) *Service {
	return &Service{
		posts: posts,
		users: users,
		log:   log.WithField("module", "feed"),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

type NewPostParams struct {
	Content      string
	MediaURL     string
	MediaType    models.MediaType
	ExhibitionID string
}

// CreatePost stores a new post authored by author.
func (s *Service) CreatePost(ctx context.Context, author models.Profile, p NewPostParams) (models.Post, error) {
	content := strings.TrimSpace(p.Content)
	if content == "" && p.MediaURL == "" {
		return models.Post{}, ErrEmptyPost
	}
	if p.MediaURL != "" && p.MediaType != models.MediaImage && p.MediaType != models.MediaVideo {
		return models.Post{}, ErrInvalidMedia
	}

	a := authorOf(author)
	post := &models.NewPost{
		ID:           s.newID(),
		AuthorID:     a.ID,
		AuthorName:   a.Name,
		AuthorType:   a.Type,
		AuthorImage:  a.Image,
		Content:      content,
		MediaURL:     p.MediaURL,
		MediaType:    p.MediaType,
		ExhibitionID: p.ExhibitionID,
		CreatedAt:    s.now().UTC(),
		LikedBy:      []string{},
		PostComments: []models.Comment{},
	}
	if p.MediaURL == "" {
		post.MediaType = ""
	}

	if err := s.posts.CreatePost(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	if _, full := author.(models.FullProfile); full {
		if err := s.users.AddUserPost(ctx, a.ID, post.ID); err != nil {
			s.log.WithError(err).WithField("post", post.ID).Warn("failed to record post on author")
		}
	}

	return models.Post{
		ID:           post.ID,
		AuthorID:     post.AuthorID,
		AuthorName:   post.AuthorName,
		AuthorType:   post.AuthorType,
		AuthorImage:  post.AuthorImage,
		Content:      post.Content,
		MediaURL:     post.MediaURL,
		MediaType:    post.MediaType,
		ExhibitionID: post.ExhibitionID,
		CreatedAt:    post.CreatedAt,
		LikedBy:      []string{},
		Comments:     []models.Comment{},
	}, nil
}

// Get returns a normalized post.
func (s *Service) Get(ctx context.Context, id string) (models.Post, error) {
	raw, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	return s.normalize(raw), nil
}

// List returns normalized posts newest first.
func (s *Service) List(ctx context.Context, f store.PostFilter) ([]models.Post, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}

	raws, err := s.posts.ListPosts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	out := make([]models.Post, 0, len(raws))
	for _, raw := range raws {
		out = append(out, s.normalize(raw))
	}
	return out, nil
}

// ToggleLike likes the post for userID, or unlikes it if userID already likes it.
func (s *Service) ToggleLike(ctx context.Context, postID, userID string) (models.Post, error) {
	raw, err := s.posts.ToggleLike(ctx, postID, userID)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to toggle like on %s: %w", postID, err)
	}
	return s.normalize(raw), nil
}

// AddComment appends a comment by author to the post. A minimal author profile
// is enough: the comment carries whatever identity is known.
func (s *Service) AddComment(ctx context.Context, postID string, author models.Profile, content string) (models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Post{}, ErrEmptyContent
	}

	a := authorOf(author)
	c := models.Comment{
		ID:          s.newID(),
		AuthorID:    a.ID,
		AuthorName:  a.Name,
		AuthorType:  a.Type,
		AuthorImage: a.Image,
		Content:     content,
		Timestamp:   s.now().UTC(),
	}

	raw, err := s.posts.AppendComment(ctx, postID, c)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to add comment to %s: %w", postID, err)
	}
	return s.normalize(raw), nil
}

func (s *Service) normalize(raw store.Document) models.Post {
	if CounterDrift(raw) {
		s.log.WithField("post", raw["id"]).Debug("stored counters disagree with lists")
	}
	return NormalizePost(raw)
}

type author struct {
	ID    string
	Name  string
	Type  string
	Image string
}

func authorOf(p models.Profile) author {
	switch v := p.(type) {
	case models.FullProfile:
		return author{
			ID:    v.User.ID,
			Name:  v.User.DisplayName,
			Type:  string(v.User.ProfileType),
			Image: v.User.Image(),
		}
	case models.MinimalProfile:
		name := v.DisplayName
		if name == "" {
			name = v.Email
		}
		return author{
			ID:    v.ID,
			Name:  name,
			Type:  string(models.Visitor),
			Image: v.PhotoURL,
		}
	default:
		return author{ID: p.UserID()}
	}
}
