package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"expohub/models"
	"expohub/store"
)

func (s *Store) CreatePost(_ context.Context, p *models.NewPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[p.ID]; ok {
		return fmt.Errorf("post %s: %w", p.ID, store.ErrAlreadyExists)
	}

	comments := make([]interface{}, 0, len(p.PostComments))
	for _, c := range p.PostComments {
		comments = append(comments, store.CommentDocument(c))
	}
	likedBy := make([]interface{}, 0, len(p.LikedBy))
	for _, id := range p.LikedBy {
		likedBy = append(likedBy, id)
	}

	doc := store.Document{
		"id":                    p.ID,
		"authorId":              p.AuthorID,
		"authorName":            p.AuthorName,
		"authorType":            p.AuthorType,
		"authorImage":           p.AuthorImage,
		"content":               p.Content,
		"createdAt":             p.CreatedAt,
		store.FieldLikes:        int64(len(p.LikedBy)),
		store.FieldLikedBy:      likedBy,
		store.FieldComments:     comments,
		store.FieldCommentCount: int64(len(comments)),
	}
	if p.MediaURL != "" {
		doc["mediaUrl"] = p.MediaURL
		doc["mediaType"] = string(p.MediaType)
	}
	if p.ExhibitionID != "" {
		doc["exhibitionId"] = p.ExhibitionID
	}

	s.posts[p.ID] = doc
	s.publishPost(store.EventAdded, doc)
	return nil
}

func (s *Store) GetPost(_ context.Context, id string) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyDocument(d), nil
}

func (s *Store) ListPosts(_ context.Context, f store.PostFilter) ([]store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]store.Document, 0, len(s.posts))
	for _, d := range s.posts {
		if f.AuthorID != "" && d["authorId"] != f.AuthorID {
			continue
		}
		if f.ExhibitionID != "" && d["exhibitionId"] != f.ExhibitionID {
			continue
		}
		out = append(out, copyDocument(d))
	}

	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := out[i]["createdAt"].(time.Time)
		tj, _ := out[j]["createdAt"].(time.Time)
		if ti.Equal(tj) {
			return fmt.Sprint(out[i]["id"]) > fmt.Sprint(out[j]["id"])
		}
		return ti.After(tj)
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) ToggleLike(_ context.Context, id, userID string) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	likedBy := store.ToggleMember(store.StringList(d[store.FieldLikedBy]), userID)
	raw := make([]interface{}, 0, len(likedBy))
	for _, v := range likedBy {
		raw = append(raw, v)
	}
	d[store.FieldLikedBy] = raw
	d[store.FieldLikes] = int64(len(raw))

	s.publishPost(store.EventModified, d)
	return copyDocument(d), nil
}

func (s *Store) AppendComment(_ context.Context, id string, c models.Comment) (store.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	existing := store.CommentList(d[store.FieldComments])
	comments := make([]interface{}, 0, len(existing)+1)
	comments = append(comments, existing...)
	comments = append(comments, store.CommentDocument(c))

	d[store.FieldComments] = comments
	d[store.FieldCommentCount] = int64(len(comments))

	s.publishPost(store.EventModified, d)
	return copyDocument(d), nil
}
