package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expohub/models"
	"expohub/store"
	"expohub/store/memstore"
	"expohub/store/mock"
)

var ctx = context.Background()

func newTestService(chats store.Chats) *Service {
	log, _ := test.NewNullLogger()
	s := New(chats, log)
	var mu sync.Mutex
	seq := 0
	s.newID = func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("m-%d", seq)
	}
	return s
}

func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func profile(id, name string) models.FullProfile {
	return models.FullProfile{User: &models.User{ID: id, DisplayName: name, ProfileType: models.Visitor}}
}

func participant(id, name string) Participant {
	return Participant{ID: id, DisplayName: name, ProfileType: models.Exhibitor}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "u1_u2", Key("u1", "u2"))
	assert.Equal(t, "u1_u2", Key("u2", "u1"))
	assert.Equal(t, Key("b", "a"), Key("a", "b"))
}

func TestService_Conversation(t *testing.T) {
	st := memstore.New(memstore.WithClock(tickingClock()))
	s := newTestService(st)

	c, err := s.FindOrCreate(ctx, profile("u1", "Ada"), participant("u2", "Grace"))
	require.NoError(t, err)
	assert.Equal(t, "u1_u2", c.ID)
	assert.Equal(t, []string{"u1", "u2"}, c.Participants)
	assert.Equal(t, "Grace", c.ParticipantInfo["u2"].Name)
	assert.Equal(t, map[string]int{"u1": 0, "u2": 0}, c.UnreadCount)

	m, err := s.SendMessage(ctx, c, "u1", "hello", models.KindText)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.False(t, m.CreatedAt.IsZero())
	assert.Contains(t, m.ReadBy, "u1")

	stored, err := s.Get(ctx, c.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.UnreadCount["u2"])
	assert.Equal(t, 0, stored.UnreadCount["u1"])
	require.NotNil(t, stored.LastMessage)
	assert.Equal(t, "hello", stored.LastMessage.Content)
	assert.Equal(t, "u1", stored.LastMessage.SenderID)

	_, err = s.SendMessage(ctx, stored, "u1", "are you at the booth?", "")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.UnreadCount["u2"])

	require.NoError(t, s.MarkRead(ctx, stored, "u2"))
	assert.Equal(t, 0, stored.UnreadCount["u2"])

	reread, err := s.Get(ctx, c.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, reread.UnreadCount["u2"])

	msgs, err := s.Messages(ctx, reread)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, models.KindText, msgs[1].Kind)
	for _, m := range msgs {
		assert.Contains(t, m.ReadBy, "u2")
	}
}

func TestService_FindOrCreate_Idempotent(t *testing.T) {
	st := memstore.New()
	s := newTestService(st)

	first, err := s.FindOrCreate(ctx, profile("u1", "Ada"), participant("u2", "Grace"))
	require.NoError(t, err)

	second, err := s.FindOrCreate(ctx, profile("u2", "Grace"), participant("u1", "Ada"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	chats, err := st.ListChats(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}

func TestService_FindOrCreate_Concurrent(t *testing.T) {
	st := memstore.New()
	s := newTestService(st)

	const n = 20
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			me, other := profile("u1", "Ada"), participant("u2", "Grace")
			if i%2 == 1 {
				me, other = profile("u2", "Grace"), participant("u1", "Ada")
			}
			c, err := s.FindOrCreate(ctx, me, other)
			if assert.NoError(t, err) {
				ids[i] = c.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, "u1_u2", id)
	}
	chats, err := st.ListChats(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}

func TestService_FindOrCreate_LegacyChat(t *testing.T) {
	st := memstore.New()
	_, _, err := st.CreateChat(ctx, &models.Chat{
		ID:           "legacy-random-id",
		Participants: []string{"u2", "u1"},
		UnreadCount:  map[string]int{},
	})
	require.NoError(t, err)
	s := newTestService(st)

	c, err := s.FindOrCreate(ctx, profile("u1", "Ada"), participant("u2", "Grace"))
	require.NoError(t, err)
	assert.Equal(t, "legacy-random-id", c.ID)
}

func TestService_FindOrCreate_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestService(mock.NewMockChats(ctrl))

	tt := []struct {
		name    string
		current models.Profile
		target  Participant
		want    error
	}{
		{"minimal profile", models.MinimalProfile{ID: "u1", Email: "a@b.c"}, participant("u2", "Grace"), ErrProfileNotLoaded},
		{"nil user", models.FullProfile{}, participant("u2", "Grace"), ErrProfileNotLoaded},
		{"missing target id", profile("u1", "Ada"), participant("", "Grace"), ErrInvalidParticipant},
		{"blank target name", profile("u1", "Ada"), participant("u2", "  "), ErrInvalidParticipant},
		{"self", profile("u1", "Ada"), participant("u1", "Ada"), ErrInvalidParticipant},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.FindOrCreate(ctx, tc.current, tc.target)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestService_SendMessage_EmptyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestService(mock.NewMockChats(ctrl))
	c := &models.Chat{ID: "u1_u2", Participants: []string{"u1", "u2"}}

	m, err := s.SendMessage(ctx, c, "u1", "  \n ", models.KindText)
	assert.NoError(t, err)
	assert.Nil(t, m)
	assert.Nil(t, c.LastMessage)
}

func TestService_SendMessage_Rejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestService(mock.NewMockChats(ctrl))
	c := &models.Chat{ID: "u1_u2", Participants: []string{"u1", "u2"}}

	_, err := s.SendMessage(ctx, c, "u3", "hi", models.KindText)
	assert.True(t, errors.Is(err, ErrNotParticipant))

	_, err = s.SendMessage(ctx, c, "u1", "hi", "sticker")
	assert.True(t, errors.Is(err, ErrInvalidKind))

	assert.True(t, errors.Is(s.MarkRead(ctx, c, "u3"), ErrNotParticipant))
}

func TestService_SendMessage_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("write conflict")
	chats := mock.NewMockChats(ctrl)
	chats.EXPECT().AddMessage(gomock.Any(), gomock.Any(), []string{"u2"}).Return(boom)

	s := newTestService(chats)
	c := &models.Chat{ID: "u1_u2", Participants: []string{"u1", "u2"}, UnreadCount: map[string]int{"u2": 4}}

	_, err := s.SendMessage(ctx, c, "u1", "hi", models.KindText)
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 4, c.UnreadCount["u2"])
}

func TestService_Get_NotParticipant(t *testing.T) {
	st := memstore.New()
	s := newTestService(st)

	c, err := s.FindOrCreate(ctx, profile("u1", "Ada"), participant("u2", "Grace"))
	require.NoError(t, err)

	_, err = s.Get(ctx, c.ID, "u3")
	assert.True(t, errors.Is(err, ErrNotParticipant))

	_, err = s.Get(ctx, "nope", "u1")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestSortMessages(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	msgs := []*models.Message{
		{ID: "c", CreatedAt: base.Add(2 * time.Second)},
		{ID: "a", CreatedAt: base},
		{ID: "b1", CreatedAt: base.Add(time.Second)},
		{ID: "b2", CreatedAt: base.Add(time.Second)},
	}

	SortMessages(msgs)

	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, ids)
}
