// Package mongostore implements store.Store on MongoDB.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"expohub/database"
	"expohub/models"
	"expohub/store"
)

var _ store.Store = (*Store)(nil)

// Store keeps every collection of the database in one place.
type Store struct {
	log         logrus.FieldLogger
	db          *mongo.Database
	users       *mongo.Collection
	industries  *mongo.Collection
	exhibitions *mongo.Collection
	posts       *mongo.Collection
	chats       *mongo.Collection
	messages    *mongo.Collection
}

// New creates a store on db. Change stream failures are logged to log.
func New(db *mongo.Database, log logrus.FieldLogger) *Store {
	return &Store{
		log:         log,
		db:          db,
		users:       db.Collection(database.Users),
		industries:  db.Collection(database.Industries),
		exhibitions: db.Collection(database.Exhibitions),
		posts:       db.Collection(database.Posts),
		chats:       db.Collection(database.Chats),
		messages:    db.Collection(database.Messages),
	}
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

func wrap(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", err.Error(), store.ErrAlreadyExists)
	default:
		return err
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	v := *u
	v.Exhibitions = nonNil(v.Exhibitions)
	v.Interests = nonNil(v.Interests)
	v.Posts = nonNil(v.Posts)

	if _, err := s.users.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to insert user: %w", wrap(err))
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	if upd.Empty() {
		return nil
	}
	return s.updateOne(ctx, s.users, id, bson.M{"$set": upd.Fields()})
}

func (s *Store) AddUserPost(ctx context.Context, userID, postID string) error {
	return s.updateOne(ctx, s.users, userID, bson.M{"$addToSet": bson.M{"posts": postID}})
}

func (s *Store) AddUserExhibition(ctx context.Context, userID, exhibitionID string) error {
	return s.updateOne(ctx, s.users, userID, bson.M{"$addToSet": bson.M{"exhibitions": exhibitionID}})
}

func (s *Store) ListIndustries(ctx context.Context) ([]*models.Industry, error) {
	cursor, err := s.industries.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find industries: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*models.Industry
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode industries: %w", err)
	}
	return out, nil
}

// SeedIndustries upserts one document per name keyed by store.IndustryID.
func (s *Store) SeedIndustries(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, n := range names {
		id := store.IndustryID(n)
		if id == "" {
			continue
		}
		res, err := s.industries.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$setOnInsert": bson.M{"name": strings.TrimSpace(n)}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return added, fmt.Errorf("failed to seed industry %s: %w", id, err)
		}
		added += int(res.UpsertedCount)
	}
	return added, nil
}

func (s *Store) CreateExhibition(ctx context.Context, e *models.Exhibition) error {
	v := *e
	v.Brochures = nonNil(v.Brochures)
	if v.JoinedUsers == nil {
		v.JoinedUsers = map[string]models.JoinedProfile{}
	}

	if _, err := s.exhibitions.InsertOne(ctx, v); err != nil {
		return fmt.Errorf("failed to insert exhibition: %w", wrap(err))
	}
	return nil
}

func (s *Store) GetExhibition(ctx context.Context, id string) (*models.Exhibition, error) {
	var e models.Exhibition
	if err := s.exhibitions.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		return nil, wrap(err)
	}
	return &e, nil
}

func (s *Store) ListExhibitions(ctx context.Context) ([]*models.Exhibition, error) {
	cursor, err := s.exhibitions.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find exhibitions: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*models.Exhibition
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode exhibitions: %w", err)
	}
	return out, nil
}

func (s *Store) JoinExhibition(ctx context.Context, id string, member models.JoinedProfile) error {
	return s.updateOne(ctx, s.exhibitions, id, bson.M{"$set": bson.M{"joinedUsers." + member.ID: member}})
}

func (s *Store) AddBrochure(ctx context.Context, id, url string) error {
	return s.updateOne(ctx, s.exhibitions, id, bson.M{"$addToSet": bson.M{"brochures": url}})
}

func (s *Store) updateOne(ctx context.Context, coll *mongo.Collection, id string, update interface{}) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", coll.Name(), id, wrap(err))
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// plain converts a decoded bson value to the plain Go values of store.Document.
func plain(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.M:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = plain(e)
		}
		return m
	case primitive.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.A:
		l := make([]interface{}, len(t))
		for i, e := range t {
			l[i] = plain(e)
		}
		return l
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.ObjectID:
		return t.Hex()
	case int32:
		return int64(t)
	default:
		return v
	}
}

func document(m bson.M) store.Document {
	d := store.Document(plain(m).(map[string]interface{}))
	if id, ok := d["_id"]; ok {
		d["id"] = id
		delete(d, "_id")
	}
	return d
}
