package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expohub/models"
	"expohub/store"
)

var ctx = context.Background()

func TestStore_SeedIndustries(t *testing.T) {
	s := New(WithIndustries("Technology"))

	added, err := s.SeedIndustries(ctx, []string{"Fashion", "technology ", "Food & Beverage", "  "})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	list, err := s.ListIndustries(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(list))
	for _, i := range list {
		names = append(names, i.Name)
	}
	assert.Equal(t, []string{"Fashion", "Food & Beverage", "Technology"}, names)
	assert.Equal(t, "food-beverage", list[1].ID)
}

func TestStore_Users(t *testing.T) {
	s := New()

	u := &models.User{ID: "u1", Email: "ada@example.com", DisplayName: "Ada"}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.True(t, errors.Is(s.CreateUser(ctx, &models.User{ID: "u2", Email: "ada@example.com"}), store.ErrAlreadyExists))

	got, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	got.DisplayName = "changed"

	again, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.DisplayName)

	require.NoError(t, s.AddUserExhibition(ctx, "u1", "e1"))
	require.NoError(t, s.AddUserExhibition(ctx, "u1", "e1"))
	again, err = s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1"}, again.Exhibitions)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestStore_WatchChats(t *testing.T) {
	clock := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return clock }))

	wctx, cancel := context.WithCancel(ctx)
	events, err := s.WatchChats(wctx, "u2")
	require.NoError(t, err)
	other, err := s.WatchChats(wctx, "u3")
	require.NoError(t, err)

	_, created, err := s.CreateChat(ctx, &models.Chat{ID: "u1_u2", Participants: []string{"u1", "u2"}})
	require.NoError(t, err)
	require.True(t, created)

	e := <-events
	assert.Equal(t, store.EventAdded, e.Kind)
	assert.Equal(t, "u1_u2", e.ID)
	assert.Equal(t, clock, e.Chat.CreatedAt)

	require.NoError(t, s.AddMessage(ctx, &models.Message{ID: "m1", ChatID: "u1_u2", SenderID: "u1", Content: "hi"}, []string{"u2"}))
	e = <-events
	assert.Equal(t, store.EventModified, e.Kind)
	assert.Equal(t, 1, e.Chat.UnreadCount["u2"])

	assert.Len(t, other, 0)

	cancel()
	_, open := <-events
	assert.False(t, open)
}

func TestStore_WatchMessagesAndClose(t *testing.T) {
	s := New()
	_, _, err := s.CreateChat(ctx, &models.Chat{ID: "c1", Participants: []string{"u1", "u2"}})
	require.NoError(t, err)

	events, err := s.WatchMessages(ctx, "c1")
	require.NoError(t, err)

	require.NoError(t, s.AddMessage(ctx, &models.Message{ID: "m1", ChatID: "c1", SenderID: "u1", Content: "hi", ReadBy: map[string]time.Time{"u1": {}}}, []string{"u2"}))
	e := <-events
	assert.Equal(t, "m1", e.Message.ID)
	assert.False(t, e.Message.ReadBy["u1"].IsZero())

	require.NoError(t, s.MarkMessagesRead(ctx, "c1", "u2", time.Now()))
	e = <-events
	assert.Equal(t, store.EventModified, e.Kind)
	assert.Contains(t, e.Message.ReadBy, "u2")

	require.NoError(t, s.Close(ctx))
	_, open := <-events
	assert.False(t, open)
}
