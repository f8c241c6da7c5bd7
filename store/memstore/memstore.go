// Package memstore is an in-process implementation of store.Store. It keeps
// every collection in maps guarded by one mutex and is used by tests and by
// the memory store driver.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"expohub/models"
	"expohub/store"
)

const watchBuffer = 128

type watcher struct {
	kind string
	key  string
	ch   chan store.Event
}

var _ store.Store = (*Store)(nil)

// Store keeps everything in maps guarded by one mutex. Reads return copies.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users       map[string]*models.User
	industries  []*models.Industry
	exhibitions map[string]*models.Exhibition
	posts       map[string]store.Document
	chats       map[string]*models.Chat
	messages    map[string][]*models.Message

	watchers map[*watcher]struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now as the store's server clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIndustries seeds the industries lookup list.
func WithIndustries(names ...string) Option {
	return func(s *Store) {
		s.seedIndustries(names)
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		users:       map[string]*models.User{},
		exhibitions: map[string]*models.Exhibition{},
		posts:       map[string]store.Document{},
		chats:       map[string]*models.Chat{},
		messages:    map[string][]*models.Message{},
		watchers:    map[*watcher]struct{}{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Close closes every open watch.
func (s *Store) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for w := range s.watchers {
		delete(s.watchers, w)
		close(w.ch)
	}
	return nil
}

// PutPost stores a raw post document as is. It lets tests and fixtures seed
// posts in historical shapes.
func (s *Store) PutPost(id string, doc store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := copyDocument(doc)
	d["id"] = id
	s.posts[id] = d
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; ok {
		return fmt.Errorf("user %s: %w", u.ID, store.ErrAlreadyExists)
	}
	for _, v := range s.users {
		if u.Email != "" && v.Email == u.Email {
			return fmt.Errorf("email %s: %w", u.Email, store.ErrAlreadyExists)
		}
	}
	s.users[u.ID] = copyUser(u)
	return nil
}

func (s *Store) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyUser(u), nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, id string, upd models.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return store.ErrNotFound
	}
	if upd.DisplayName != nil {
		u.DisplayName = *upd.DisplayName
	}
	if upd.ProfileType != nil {
		u.ProfileType = *upd.ProfileType
	}
	if upd.ImageURL != nil {
		u.ImageURL = *upd.ImageURL
	}
	if upd.CompanyImageURL != nil {
		u.CompanyImageURL = *upd.CompanyImageURL
	}
	if upd.Description != nil {
		u.Description = *upd.Description
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.Interests != nil {
		u.Interests = append([]string(nil), upd.Interests...)
	}
	if upd.Onboarded != nil {
		u.Onboarded = *upd.Onboarded
	}
	if upd.LastSeen != nil {
		u.LastSeen = *upd.LastSeen
	}
	if upd.GoogleID != nil {
		v := *upd.GoogleID
		u.GoogleID = &v
	}
	if upd.AuthProvider != nil {
		u.AuthProvider = *upd.AuthProvider
	}
	return nil
}

func (s *Store) AddUserPost(_ context.Context, userID, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Posts = union(u.Posts, postID)
	return nil
}

func (s *Store) AddUserExhibition(_ context.Context, userID, exhibitionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return store.ErrNotFound
	}
	u.Exhibitions = union(u.Exhibitions, exhibitionID)
	return nil
}

func (s *Store) SeedIndustries(_ context.Context, names []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seedIndustries(names), nil
}

func (s *Store) seedIndustries(names []string) int {
	added := 0
	for _, n := range names {
		id := store.IndustryID(n)
		if id == "" || s.hasIndustry(id) {
			continue
		}
		s.industries = append(s.industries, &models.Industry{ID: id, Name: strings.TrimSpace(n)})
		added++
	}
	sort.SliceStable(s.industries, func(i, j int) bool { return s.industries[i].Name < s.industries[j].Name })
	return added
}

func (s *Store) hasIndustry(id string) bool {
	for _, i := range s.industries {
		if i.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) ListIndustries(_ context.Context) ([]*models.Industry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Industry, 0, len(s.industries))
	for _, i := range s.industries {
		v := *i
		out = append(out, &v)
	}
	return out, nil
}

func (s *Store) CreateExhibition(_ context.Context, e *models.Exhibition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.exhibitions[e.ID]; ok {
		return fmt.Errorf("exhibition %s: %w", e.ID, store.ErrAlreadyExists)
	}
	s.exhibitions[e.ID] = copyExhibition(e)
	return nil
}

func (s *Store) GetExhibition(_ context.Context, id string) (*models.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.exhibitions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyExhibition(e), nil
}

func (s *Store) ListExhibitions(_ context.Context) ([]*models.Exhibition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Exhibition, 0, len(s.exhibitions))
	for _, e := range s.exhibitions {
		out = append(out, copyExhibition(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) JoinExhibition(_ context.Context, id string, member models.JoinedProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.exhibitions[id]
	if !ok {
		return store.ErrNotFound
	}
	if e.JoinedUsers == nil {
		e.JoinedUsers = map[string]models.JoinedProfile{}
	}
	e.JoinedUsers[member.ID] = member
	return nil
}

func (s *Store) AddBrochure(_ context.Context, id, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.exhibitions[id]
	if !ok {
		return store.ErrNotFound
	}
	e.Brochures = union(e.Brochures, url)
	return nil
}

func union(list []string, v string) []string {
	for _, e := range list {
		if e == v {
			return list
		}
	}
	return append(list, v)
}
