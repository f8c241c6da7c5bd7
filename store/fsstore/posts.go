package fsstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"expohub/database"
	"expohub/models"
	"expohub/store"
)

func (s *Store) CreatePost(ctx context.Context, p *models.NewPost) error {
	v := *p
	v.LikedBy = nonNil(v.LikedBy)
	if v.PostComments == nil {
		v.PostComments = []models.Comment{}
	}
	v.PostLikes = len(v.LikedBy)
	v.CommentCount = len(v.PostComments)

	if _, err := s.col(database.Posts).Doc(v.ID).Create(ctx, v); err != nil {
		return fmt.Errorf("failed to create post: %w", wrap(err))
	}
	return nil
}

func postDocument(snap *firestore.DocumentSnapshot) store.Document {
	d := store.Document(snap.Data())
	d["id"] = snap.Ref.ID
	return d
}

func (s *Store) GetPost(ctx context.Context, id string) (store.Document, error) {
	snap, err := s.col(database.Posts).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return postDocument(snap), nil
}

func (s *Store) ListPosts(ctx context.Context, f store.PostFilter) ([]store.Document, error) {
	q := s.col(database.Posts).Query
	if f.AuthorID != "" {
		q = q.Where("authorId", "==", f.AuthorID)
	}
	if f.ExhibitionID != "" {
		q = q.Where("exhibitionId", "==", f.ExhibitionID)
	}
	q = q.OrderBy("createdAt", firestore.Desc)
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	it := q.Documents(ctx)
	defer it.Stop()

	out := []store.Document{}
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list posts: %w", err)
		}
		out = append(out, postDocument(snap))
	}
	return out, nil
}

// ToggleLike flips userID in likedBy inside a transaction and rewrites
// postLikes from the resulting list.
func (s *Store) ToggleLike(ctx context.Context, id, userID string) (store.Document, error) {
	return s.updatePost(ctx, id, func(d store.Document) []firestore.Update {
		likedBy := store.ToggleMember(store.StringList(d[store.FieldLikedBy]), userID)
		return []firestore.Update{
			{Path: store.FieldLikedBy, Value: likedBy},
			{Path: store.FieldLikes, Value: len(likedBy)},
		}
	})
}

// AppendComment writes postComments back as an array, which also converts
// map-shaped comments left by older clients.
func (s *Store) AppendComment(ctx context.Context, id string, c models.Comment) (store.Document, error) {
	return s.updatePost(ctx, id, func(d store.Document) []firestore.Update {
		existing := store.CommentList(d[store.FieldComments])
		comments := make([]interface{}, 0, len(existing)+1)
		comments = append(comments, existing...)
		comments = append(comments, store.CommentDocument(c))
		return []firestore.Update{
			{Path: store.FieldComments, Value: comments},
			{Path: store.FieldCommentCount, Value: len(comments)},
		}
	})
}

// updatePost applies the updates computed by change inside a transaction and
// returns the post as written.
func (s *Store) updatePost(ctx context.Context, id string, change func(store.Document) []firestore.Update) (store.Document, error) {
	ref := s.col(database.Posts).Doc(id)

	var result store.Document
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		d := postDocument(snap)
		updates := change(d)
		for _, u := range updates {
			d[u.Path] = u.Value
		}
		result = d
		return tx.Update(ref, updates)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, wrap(err))
	}
	return result, nil
}
