//go:build integration

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"expohub/database"
	"expohub/models"
	"expohub/store"
)

var (
	ctx = context.Background()
	db  *mongo.Database
	s   *Store
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db, logrus.StandardLogger())

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}
	port, err := c.MappedPort(ctx, "27017")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	uri := fmt.Sprintf("mongodb://%s:%d", host, port.Int())
	db, err = database.ConnectMongoWithRetry(ctx, uri, "expohub_test", 5, time.Second)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to mongo")
	}

	return func() {
		if err := database.DisconnectMongo(db); err != nil {
			logrus.WithError(err).Error("failed to disconnect")
		}
		if err := c.Terminate(ctx); err != nil {
			logrus.WithError(err).Error("failed to terminate container")
		}
	}
}

func cleanup(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Drop(ctx))
	require.NoError(t, database.RegisterIndexes(ctx, db))
}

func TestStore_Users(t *testing.T) {
	cleanup(t)

	hash := "hash"
	u := &models.User{ID: "u1", Email: "ada@example.com", PasswordHash: &hash, DisplayName: "Ada", ProfileType: models.Visitor}
	require.NoError(t, s.CreateUser(ctx, u))

	err := s.CreateUser(ctx, &models.User{ID: "u2", Email: "ada@example.com"})
	assert.True(t, errors.Is(err, store.ErrAlreadyExists))

	got, err := s.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	require.NotNil(t, got.PasswordHash)

	name := "Ada Lovelace"
	require.NoError(t, s.UpdateUser(ctx, "u1", models.UserUpdate{DisplayName: &name, Interests: []string{"tech"}}))
	require.NoError(t, s.AddUserPost(ctx, "u1", "p1"))
	require.NoError(t, s.AddUserPost(ctx, "u1", "p1"))

	got, err = s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, name, got.DisplayName)
	assert.Equal(t, []string{"tech"}, got.Interests)
	assert.Equal(t, []string{"p1"}, got.Posts)

	_, err = s.GetUser(ctx, "missing")
	assert.True(t, errors.Is(err, store.ErrNotFound))
	assert.True(t, errors.Is(s.UpdateUser(ctx, "missing", models.UserUpdate{DisplayName: &name}), store.ErrNotFound))
}

func TestStore_Exhibitions(t *testing.T) {
	cleanup(t)

	e := &models.Exhibition{ID: "e1", Name: "Tech Expo", CreatedBy: "u1", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.CreateExhibition(ctx, e))

	member := models.JoinedProfile{ID: "u2", ImageURL: "https://img/u2.png"}
	require.NoError(t, s.JoinExhibition(ctx, "e1", member))
	require.NoError(t, s.JoinExhibition(ctx, "e1", member))
	require.NoError(t, s.AddBrochure(ctx, "e1", "https://cdn/b.pdf"))

	got, err := s.GetExhibition(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, map[string]models.JoinedProfile{"u2": member}, got.JoinedUsers)
	assert.Equal(t, []string{"https://cdn/b.pdf"}, got.Brochures)

	list, err := s.ListExhibitions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStore_Posts(t *testing.T) {
	cleanup(t)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"p1", "p2", "p3"} {
		require.NoError(t, s.CreatePost(ctx, &models.NewPost{
			ID:        id,
			AuthorID:  "u1",
			Content:   "post " + id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			LikedBy:   []string{},
		}))
	}

	list, err := s.ListPosts(ctx, store.PostFilter{AuthorID: "u1", Limit: 2})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p3", list[0]["id"])
	assert.Equal(t, "p2", list[1]["id"])

	doc, err := s.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, store.StringList(doc[store.FieldLikedBy]))
	assert.EqualValues(t, 1, doc[store.FieldLikes])

	doc, err = s.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Empty(t, store.StringList(doc[store.FieldLikedBy]))
	assert.EqualValues(t, 0, doc[store.FieldLikes])

	_, err = s.ToggleLike(ctx, "missing", "u2")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestStore_ConcurrentLikes(t *testing.T) {
	cleanup(t)
	require.NoError(t, s.CreatePost(ctx, &models.NewPost{ID: "p1", CreatedAt: time.Now().UTC(), LikedBy: []string{}}))

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.ToggleLike(ctx, "p1", fmt.Sprintf("u%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	doc, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, store.StringList(doc[store.FieldLikedBy]), n)
	assert.EqualValues(t, n, doc[store.FieldLikes])
}

func TestStore_AppendComment_MapShape(t *testing.T) {
	cleanup(t)

	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := db.Collection(database.Posts).InsertOne(ctx, bson.M{
		"_id":     "legacy",
		"content": "old post",
		store.FieldComments: bson.M{
			"b": bson.M{"id": "c2", "content": "second", "timestamp": old.Add(time.Hour)},
			"a": bson.M{"id": "c1", "content": "first", "timestamp": old},
		},
	})
	require.NoError(t, err)

	doc, err := s.AppendComment(ctx, "legacy", models.Comment{ID: "c3", Content: "third", Timestamp: time.Now().UTC()})
	require.NoError(t, err)

	list, ok := doc[store.FieldComments].([]interface{})
	require.True(t, ok, "postComments is %T", doc[store.FieldComments])
	require.Len(t, list, 3)
	assert.Equal(t, "c1", list[0].(map[string]interface{})["id"])
	assert.Equal(t, "c3", list[2].(map[string]interface{})["id"])
	assert.EqualValues(t, 3, doc[store.FieldCommentCount])

	doc, err = s.AppendComment(ctx, "legacy", models.Comment{ID: "c4", Content: "$literal stays text", Timestamp: time.Now().UTC()})
	require.NoError(t, err)
	list = doc[store.FieldComments].([]interface{})
	require.Len(t, list, 4)
	assert.Equal(t, "$literal stays text", list[3].(map[string]interface{})["content"])
}

func TestStore_Chats(t *testing.T) {
	cleanup(t)

	newChat := func() *models.Chat {
		return &models.Chat{
			ID:           "u1_u2",
			Participants: []string{"u1", "u2"},
			ParticipantInfo: map[string]models.ParticipantInfo{
				"u1": {Name: "Ada"},
				"u2": {Name: "Grace"},
			},
			UnreadCount: map[string]int{"u1": 0, "u2": 0},
		}
	}

	const n = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, ok, err := s.CreateChat(ctx, newChat())
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, "u1_u2", c.ID)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)

	m := &models.Message{
		ID:       "m1",
		ChatID:   "u1_u2",
		SenderID: "u1",
		Content:  "hello",
		Kind:     models.KindText,
		ReadBy:   map[string]time.Time{"u1": {}},
	}
	require.NoError(t, s.AddMessage(ctx, m, []string{"u2"}))
	assert.False(t, m.CreatedAt.IsZero())
	assert.False(t, m.ReadBy["u1"].IsZero())

	c, err := s.GetChat(ctx, "u1_u2")
	require.NoError(t, err)
	assert.Equal(t, 1, c.UnreadCount["u2"])
	require.NotNil(t, c.LastMessage)
	assert.Equal(t, "hello", c.LastMessage.Content)

	require.NoError(t, s.ResetUnread(ctx, "u1_u2", "u2"))
	require.NoError(t, s.MarkMessagesRead(ctx, "u1_u2", "u2", time.Now().UTC()))

	c, err = s.GetChat(ctx, "u1_u2")
	require.NoError(t, err)
	assert.Equal(t, 0, c.UnreadCount["u2"])

	msgs, err := s.ListMessages(ctx, "u1_u2")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].ReadBy, "u2")

	chats, err := s.ListChats(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	err = s.AddMessage(ctx, &models.Message{ID: "m2", ChatID: "nope", SenderID: "u1"}, nil)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
