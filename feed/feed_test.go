package feed

import (
	"context"
	"errors"
	"fmt"
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

func newTestService(posts store.Posts, users store.Users) *Service {
	log, _ := test.NewNullLogger()
	s := New(posts, users, log)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return s
}

func exhibitor() models.FullProfile {
	return models.FullProfile{User: &models.User{
		ID:              "u1",
		DisplayName:     "Acme Corp",
		ProfileType:     models.Exhibitor,
		ImageURL:        "https://img/avatar.png",
		CompanyImageURL: "https://img/company.png",
	}}
}

func TestService_CreatePost(t *testing.T) {
	st := memstore.New()
	require.NoError(t, st.CreateUser(ctx, exhibitor().User))
	s := newTestService(st, st)

	p, err := s.CreatePost(ctx, exhibitor(), NewPostParams{Content: "  booth 12  "})
	require.NoError(t, err)
	assert.Equal(t, "booth 12", p.Content)
	assert.Equal(t, "Acme Corp", p.AuthorName)
	assert.Equal(t, "exhibitor", p.AuthorType)
	assert.Equal(t, "https://img/company.png", p.AuthorImage)
	assert.Empty(t, p.MediaType)

	u, err := st.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, u.Posts)

	stored, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Content, stored.Content)
	assert.Zero(t, stored.LikeCount)
	assert.Empty(t, stored.Comments)
}

func TestService_CreatePost_Invalid(t *testing.T) {
	st := memstore.New()
	s := newTestService(st, st)

	_, err := s.CreatePost(ctx, exhibitor(), NewPostParams{Content: "   "})
	assert.True(t, errors.Is(err, ErrEmptyPost))

	_, err = s.CreatePost(ctx, exhibitor(), NewPostParams{MediaURL: "https://x/y.gif", MediaType: "gif"})
	assert.True(t, errors.Is(err, ErrInvalidMedia))
}

func TestService_ToggleLike(t *testing.T) {
	st := memstore.New()
	st.PutPost("p1", store.Document{
		"content":          "hello",
		store.FieldLikes:   int64(3),
		store.FieldLikedBy: []interface{}{"u1", "u2", "u3"},
	})
	s := newTestService(st, st)

	p, err := s.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, p.LikeCount)
	assert.Equal(t, []string{"u1", "u3"}, p.LikedBy)

	p, err = s.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 3, p.LikeCount)
	assert.ElementsMatch(t, []string{"u1", "u2", "u3"}, p.LikedBy)

	raw, err := st.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, raw[store.FieldLikes])

	_, err = s.ToggleLike(ctx, "missing", "u2")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestService_AddComment_Order(t *testing.T) {
	st := memstore.New()
	st.PutPost("p1", store.Document{"content": "hello"})
	s := newTestService(st, st)

	const n = 5
	var p models.Post
	for i := 0; i < n; i++ {
		var err error
		p, err = s.AddComment(ctx, "p1", exhibitor(), fmt.Sprintf("comment %d", i))
		require.NoError(t, err)
	}

	require.Len(t, p.Comments, n)
	assert.Equal(t, n, p.CommentCount)
	for i, c := range p.Comments {
		assert.Equal(t, fmt.Sprintf("comment %d", i), c.Content)
		assert.Equal(t, "u1", c.AuthorID)
	}
}

func TestService_AddComment_MigratesMap(t *testing.T) {
	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	st := memstore.New()
	st.PutPost("p1", store.Document{
		"content": "legacy",
		store.FieldComments: map[string]interface{}{
			"b": comment("second", old.Add(time.Hour)),
			"a": comment("first", old),
		},
	})
	s := newTestService(st, st)

	p, err := s.AddComment(ctx, "p1", models.MinimalProfile{ID: "u9", Email: "guest@example.com"}, "new one")
	require.NoError(t, err)

	require.Len(t, p.Comments, 3)
	assert.Equal(t, "first", p.Comments[0].ID)
	assert.Equal(t, "second", p.Comments[1].ID)
	assert.Equal(t, "new one", p.Comments[2].Content)
	assert.Equal(t, "guest@example.com", p.Comments[2].AuthorName)
	assert.Equal(t, "visitor", p.Comments[2].AuthorType)

	raw, err := st.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.IsType(t, []interface{}{}, raw[store.FieldComments])
	assert.EqualValues(t, 3, raw[store.FieldCommentCount])
}

func TestService_AddComment_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	posts := mock.NewMockPosts(ctrl)
	s := newTestService(posts, mock.NewMockUsers(ctrl))

	_, err := s.AddComment(ctx, "p1", exhibitor(), " \n\t")
	assert.True(t, errors.Is(err, ErrEmptyContent))
}

func TestService_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("connection reset")
	posts := mock.NewMockPosts(ctrl)
	posts.EXPECT().AppendComment(gomock.Any(), "p1", gomock.Any()).Return(nil, boom)
	posts.EXPECT().ToggleLike(gomock.Any(), "p1", "u1").Return(nil, boom)
	posts.EXPECT().ListPosts(gomock.Any(), store.PostFilter{Limit: MaxLimit}).Return(nil, boom)

	s := newTestService(posts, mock.NewMockUsers(ctrl))

	_, err := s.AddComment(ctx, "p1", exhibitor(), "hi")
	assert.True(t, errors.Is(err, boom))

	_, err = s.ToggleLike(ctx, "p1", "u1")
	assert.True(t, errors.Is(err, boom))

	_, err = s.List(ctx, store.PostFilter{Limit: 10000})
	assert.True(t, errors.Is(err, boom))
}

func TestService_List(t *testing.T) {
	st := memstore.New()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	st.PutPost("old", store.Document{"authorId": "a", "createdAt": base})
	st.PutPost("new", store.Document{"authorId": "b", "createdAt": base.Add(time.Hour), "exhibitionId": "e1"})
	st.PutPost("mid", store.Document{"authorId": "a", "createdAt": base.Add(time.Minute)})
	s := newTestService(st, st)

	all, err := s.List(ctx, store.PostFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})

	mine, err := s.List(ctx, store.PostFilter{AuthorID: "a", Limit: 1})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "mid", mine[0].ID)

	expo, err := s.List(ctx, store.PostFilter{ExhibitionID: "e1"})
	require.NoError(t, err)
	require.Len(t, expo, 1)
	assert.Equal(t, "new", expo[0].ID)
}
