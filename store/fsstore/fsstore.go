// Package fsstore implements store.Store on Cloud Firestore. Messages are kept
// in a messages subcollection of their chat.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"expohub/database"
	"expohub/models"
	"expohub/store"
)

var _ store.Store = (*Store)(nil)

type Store struct {
	client *firestore.Client
	log    logrus.FieldLogger
}

// New creates a store on client. Snapshot listener failures are logged to log.
func New(client *firestore.Client, log logrus.FieldLogger) *Store {
	return &Store{client: client, log: log}
}

func (s *Store) Close(_ context.Context) error {
	return s.client.Close()
}

func (s *Store) col(name string) *firestore.CollectionRef {
	return s.client.Collection(name)
}

func (s *Store) messagesCol(chatID string) *firestore.CollectionRef {
	return s.col(database.Chats).Doc(chatID).Collection(database.Messages)
}

func wrap(err error) error {
	switch status.Code(err) {
	case codes.OK:
		return err
	case codes.NotFound:
		return store.ErrNotFound
	case codes.AlreadyExists:
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

var errEmailTaken = errors.New("email already registered")

func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	v := *u
	v.Exhibitions = nonNil(v.Exhibitions)
	v.Interests = nonNil(v.Interests)
	v.Posts = nonNil(v.Posts)

	users := s.col(database.Users)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if v.Email != "" {
			it := tx.Documents(users.Where("email", "==", v.Email).Limit(1))
			defer it.Stop()
			if _, err := it.Next(); err == nil {
				return errEmailTaken
			} else if err != iterator.Done {
				return err
			}
		}
		return tx.Create(users.Doc(v.ID), v)
	})
	if errors.Is(err, errEmailTaken) {
		return fmt.Errorf("email %s: %w", v.Email, store.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", wrap(err))
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	snap, err := s.col(database.Users).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return decodeUser(snap)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	it := s.col(database.Users).Where("email", "==", email).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if err == iterator.Done {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user by email: %w", err)
	}
	return decodeUser(snap)
}

func decodeUser(snap *firestore.DocumentSnapshot) (*models.User, error) {
	var u models.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user %s: %w", snap.Ref.ID, err)
	}
	u.ID = snap.Ref.ID
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	if upd.Empty() {
		return nil
	}
	var updates []firestore.Update
	for k, v := range upd.Fields() {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	return s.update(ctx, s.col(database.Users).Doc(id), updates...)
}

func (s *Store) AddUserPost(ctx context.Context, userID, postID string) error {
	return s.update(ctx, s.col(database.Users).Doc(userID),
		firestore.Update{Path: "posts", Value: firestore.ArrayUnion(postID)})
}

func (s *Store) AddUserExhibition(ctx context.Context, userID, exhibitionID string) error {
	return s.update(ctx, s.col(database.Users).Doc(userID),
		firestore.Update{Path: "exhibitions", Value: firestore.ArrayUnion(exhibitionID)})
}

// SeedIndustries creates one document per name keyed by store.IndustryID,
// leaving existing documents untouched.
func (s *Store) SeedIndustries(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, n := range names {
		id := store.IndustryID(n)
		if id == "" {
			continue
		}
		_, err := s.col(database.Industries).Doc(id).Create(ctx, map[string]interface{}{"name": strings.TrimSpace(n)})
		switch {
		case err == nil:
			added++
		case status.Code(err) == codes.AlreadyExists:
		default:
			return added, fmt.Errorf("failed to seed industry %s: %w", id, err)
		}
	}
	return added, nil
}

func (s *Store) ListIndustries(ctx context.Context) ([]*models.Industry, error) {
	it := s.col(database.Industries).OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []*models.Industry
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list industries: %w", err)
		}
		var i models.Industry
		if err := snap.DataTo(&i); err != nil {
			return nil, fmt.Errorf("failed to decode industry %s: %w", snap.Ref.ID, err)
		}
		i.ID = snap.Ref.ID
		out = append(out, &i)
	}
	return out, nil
}

func (s *Store) CreateExhibition(ctx context.Context, e *models.Exhibition) error {
	v := *e
	v.Brochures = nonNil(v.Brochures)
	if v.JoinedUsers == nil {
		v.JoinedUsers = map[string]models.JoinedProfile{}
	}
	if _, err := s.col(database.Exhibitions).Doc(v.ID).Create(ctx, v); err != nil {
		return fmt.Errorf("failed to create exhibition: %w", wrap(err))
	}
	return nil
}

func (s *Store) GetExhibition(ctx context.Context, id string) (*models.Exhibition, error) {
	snap, err := s.col(database.Exhibitions).Doc(id).Get(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return decodeExhibition(snap)
}

func (s *Store) ListExhibitions(ctx context.Context) ([]*models.Exhibition, error) {
	it := s.col(database.Exhibitions).OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var out []*models.Exhibition
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list exhibitions: %w", err)
		}
		e, err := decodeExhibition(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func decodeExhibition(snap *firestore.DocumentSnapshot) (*models.Exhibition, error) {
	var e models.Exhibition
	if err := snap.DataTo(&e); err != nil {
		return nil, fmt.Errorf("failed to decode exhibition %s: %w", snap.Ref.ID, err)
	}
	e.ID = snap.Ref.ID
	return &e, nil
}

func (s *Store) JoinExhibition(ctx context.Context, id string, member models.JoinedProfile) error {
	return s.update(ctx, s.col(database.Exhibitions).Doc(id), firestore.Update{
		FieldPath: firestore.FieldPath{"joinedUsers", member.ID},
		Value:     map[string]interface{}{"id": member.ID, "imageUrl": member.ImageURL},
	})
}

func (s *Store) AddBrochure(ctx context.Context, id, url string) error {
	return s.update(ctx, s.col(database.Exhibitions).Doc(id),
		firestore.Update{Path: "brochures", Value: firestore.ArrayUnion(url)})
}

func (s *Store) update(ctx context.Context, ref *firestore.DocumentRef, updates ...firestore.Update) error {
	if _, err := ref.Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update %s: %w", ref.Path, wrap(err))
	}
	return nil
}
