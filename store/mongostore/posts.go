package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

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

	if _, err := s.posts.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to insert post: %w", wrap(err))
	}
	return nil
}

func (s *Store) GetPost(ctx context.Context, id string) (store.Document, error) {
	var m bson.M
	if err := s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, wrap(err)
	}
	return document(m), nil
}

func (s *Store) ListPosts(ctx context.Context, f store.PostFilter) ([]store.Document, error) {
	filter := bson.M{}
	if f.AuthorID != "" {
		filter["authorId"] = f.AuthorID
	}
	if f.ExhibitionID != "" {
		filter["exhibitionId"] = f.ExhibitionID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cursor, err := s.posts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find posts: %w", err)
	}
	defer cursor.Close(ctx)

	out := []store.Document{}
	for cursor.Next(ctx) {
		var m bson.M
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode post: %w", err)
		}
		out = append(out, document(m))
	}
	return out, cursor.Err()
}

// ToggleLike removes userID from likedBy when present and appends it
// otherwise, then derives postLikes from the result. Both steps run as one
// update so concurrent toggles never lose a like.
func (s *Store) ToggleLike(ctx context.Context, id, userID string) (store.Document, error) {
	uid := bson.D{{Key: "$literal", Value: userID}}
	likedBy := bson.D{{Key: "$ifNull", Value: bson.A{"$" + store.FieldLikedBy, bson.A{}}}}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: store.FieldLikedBy, Value: bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{uid, likedBy}}}},
			{Key: "then", Value: bson.D{{Key: "$filter", Value: bson.D{
				{Key: "input", Value: likedBy},
				{Key: "as", Value: "u"},
				{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$u", uid}}}},
			}}}},
			{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{likedBy, bson.A{uid}}}}},
		}}}}}}},
		{{Key: "$set", Value: bson.D{{Key: store.FieldLikes, Value: bson.D{{Key: "$size", Value: "$" + store.FieldLikedBy}}}}}},
	}

	return s.updatePost(ctx, id, pipeline)
}

// AppendComment appends c to postComments. A map-shaped postComments left by
// older clients is converted to an array ordered by key in the same update.
func (s *Store) AppendComment(ctx context.Context, id string, c models.Comment) (store.Document, error) {
	field := "$" + store.FieldComments
	existing := bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: bson.A{
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$isArray", Value: field}}},
				{Key: "then", Value: field},
			},
			bson.D{
				{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: field}}, "object"}}}},
				{Key: "then", Value: bson.D{{Key: "$map", Value: bson.D{
					{Key: "input", Value: bson.D{{Key: "$sortArray", Value: bson.D{
						{Key: "input", Value: bson.D{{Key: "$objectToArray", Value: field}}},
						{Key: "sortBy", Value: bson.D{{Key: "k", Value: 1}}},
					}}}},
					{Key: "as", Value: "e"},
					{Key: "in", Value: "$$e.v"},
				}}}},
			},
		}},
		{Key: "default", Value: bson.A{}},
	}}}

	comment := bson.D{{Key: "$literal", Value: store.CommentDocument(c)}}

	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: store.FieldComments, Value: bson.D{
			{Key: "$concatArrays", Value: bson.A{existing, bson.A{comment}}},
		}}}}},
		{{Key: "$set", Value: bson.D{{Key: store.FieldCommentCount, Value: bson.D{{Key: "$size", Value: field}}}}}},
	}

	return s.updatePost(ctx, id, pipeline)
}

func (s *Store) updatePost(ctx context.Context, id string, pipeline mongo.Pipeline) (store.Document, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m bson.M
	if err := s.posts.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline, opts).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to update post %s: %w", id, wrap(err))
	}
	return document(m), nil
}
