package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expohub/chat"
	"expohub/feed"
	"expohub/handlers"
	"expohub/media"
	"expohub/models"
	"expohub/routes"
	"expohub/session"
	"expohub/store/memstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type notification struct {
	userID string
	kind   string
}

type recorder struct {
	mu   sync.Mutex
	sent []notification
}

func (r *recorder) SendToUser(userID, kind string, _ interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, notification{userID: userID, kind: kind})
}

func (r *recorder) all() []notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification(nil), r.sent...)
}

type env struct {
	t        *testing.T
	router   *gin.Engine
	store    *memstore.Store
	media    *media.Memory
	notifier *recorder
}

func newEnv(t *testing.T) *env {
	log, _ := test.NewNullLogger()
	st := memstore.New(memstore.WithIndustries("Technology", "Fashion"))
	tokens := session.NewTokens("test-secret", time.Hour)
	up := media.NewMemory("https://cdn.test")
	n := &recorder{}

	h := handlers.New(handlers.Deps{
		Auth:        session.New(st, tokens, log),
		Users:       st,
		Exhibitions: st,
		Feed:        feed.New(st, st, log),
		Chats:       chat.New(st, log),
		Media:       up,
		Notifier:    n,
	})

	return &env{
		t:        t,
		router:   routes.SetupRouter(h, routes.Options{Tokens: tokens, Log: log}),
		store:    st,
		media:    up,
		notifier: n,
	}
}

func (e *env) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(e.t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.send(req, token)
}

func (e *env) upload(path, token, field, filename, contentType string, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(e.t, w.WriteField(k, v))
	}
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(e.t, err)
	_, err = part.Write([]byte("file-content"))
	require.NoError(e.t, err)
	require.NoError(e.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return e.send(req, token)
}

func (e *env) send(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// signup registers a user and returns its id and token.
func (e *env) signup(email string) (string, string) {
	rec := e.do(http.MethodPost, "/api/signup", "", gin.H{"email": email, "password": "secret123"})
	require.Equal(e.t, http.StatusCreated, rec.Code, rec.Body.String())

	var res struct {
		Token  string `json:"token"`
		UserID string `json:"userId"`
	}
	decode(e.t, rec, &res)
	return res.UserID, res.Token
}

func (e *env) onboard(token, name, profileType string) string {
	rec := e.do(http.MethodPost, "/api/me/onboarding", token, gin.H{
		"displayName": name,
		"profileType": profileType,
	})
	require.Equal(e.t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	decode(e.t, rec, &res)
	return res.Token
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestAuth(t *testing.T) {
	e := newEnv(t)

	id, token := e.signup("ada@example.com")
	assert.NotEmpty(t, id)
	assert.NotEmpty(t, token)

	rec := e.do(http.MethodPost, "/api/signup", "", gin.H{"email": "ada@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = e.do(http.MethodPost, "/api/signup", "", gin.H{"email": "bob@example.com", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/login", "", gin.H{"email": "ada@example.com", "password": "wrong-one"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(http.MethodPost, "/api/login", "", gin.H{"email": "ada@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(http.MethodGet, "/api/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	decode(t, rec, &me)
	assert.Equal(t, id, me.ID)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = e.do(http.MethodPost, "/api/google-auth", "", gin.H{"credential": "abc"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProfile(t *testing.T) {
	e := newEnv(t)
	id, token := e.signup("ada@example.com")

	token = e.onboard(token, "Ada Lovelace", "exhibitor")
	claims, err := session.NewTokens("test-secret", time.Hour).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", claims.Name)

	rec := e.do(http.MethodPut, "/api/me", token, gin.H{"displayName": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPut, "/api/me", token, gin.H{"profileType": "organizer"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPut, "/api/me", token, gin.H{"location": "Lagos"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.upload("/api/me/company-image", token, "image", "logo.png", "image/png", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	_, ok := e.media.Get("companies/" + id)
	assert.True(t, ok)

	rec = e.upload("/api/me/avatar", token, "image", "cv.pdf", "application/pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodGet, "/api/user/"+id, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var pub map[string]interface{}
	decode(t, rec, &pub)
	assert.Equal(t, "Ada Lovelace", pub["displayName"])
	assert.Equal(t, "Lagos", pub["location"])
	assert.Equal(t, "https://cdn.test/companies/"+id, pub["image"])
	assert.NotContains(t, pub, "email")

	rec = e.do(http.MethodGet, "/api/user/nobody", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(http.MethodGet, "/api/industries", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Technology")
}

func TestChatFlow(t *testing.T) {
	e := newEnv(t)
	u1, t1 := e.signup("ada@example.com")
	u2, t2 := e.signup("grace@example.com")
	_, t3 := e.signup("eve@example.com")
	t1 = e.onboard(t1, "Ada", "visitor")
	t2 = e.onboard(t2, "Grace", "exhibitor")

	rec := e.do(http.MethodPost, "/api/chats", t1, gin.H{"userId": u2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created struct {
		ID      string `json:"id"`
		Partner struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"partner"`
	}
	decode(t, rec, &created)
	assert.Equal(t, chat.Key(u1, u2), created.ID)
	assert.Equal(t, u2, created.Partner.ID)
	assert.Equal(t, "Grace", created.Partner.Name)

	rec = e.do(http.MethodPost, "/api/chats", t2, gin.H{"userId": u1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID)

	rec = e.do(http.MethodPost, "/api/chats", t1, gin.H{"userId": u1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/chats", t1, gin.H{"userId": "ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	path := "/api/chats/" + created.ID
	rec = e.do(http.MethodPost, path+"/messages", t1, gin.H{"content": "hello"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(http.MethodPost, path+"/messages", t1, gin.H{"content": "   "})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = e.upload(path+"/messages", t1, "file", "map.png", "image/png", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var img struct {
		Kind    string `json:"kind"`
		Content string `json:"content"`
	}
	decode(t, rec, &img)
	assert.Equal(t, "image", img.Kind)
	assert.Contains(t, img.Content, "https://cdn.test/chats/"+created.ID+"/")

	rec = e.do(http.MethodGet, path+"/messages", t3, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(http.MethodGet, path, t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		Unread int `json:"unread"`
	}
	decode(t, rec, &view)
	assert.Equal(t, 2, view.Unread)

	rec = e.do(http.MethodGet, "/api/chats", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	decode(t, rec, &list)
	require.Len(t, list, 1)

	rec = e.do(http.MethodPost, path+"/read", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var read struct {
		Unread int `json:"unread"`
	}
	decode(t, rec, &read)
	assert.Zero(t, read.Unread)

	rec = e.do(http.MethodGet, path+"/messages", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var msgs []struct {
		Content string               `json:"content"`
		ReadBy  map[string]time.Time `json:"readBy"`
	}
	decode(t, rec, &msgs)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Contains(t, msgs[0].ReadBy, u2)

	assert.Equal(t, []notification{
		{userID: u2, kind: "new_message"},
		{userID: u2, kind: "new_message"},
		{userID: u1, kind: "message_read"},
	}, e.notifier.all())
}

func TestChat_MinimalProfileRejected(t *testing.T) {
	e := newEnv(t)
	u2, _ := e.signup("grace@example.com")

	// A valid session whose user record does not exist resolves to a minimal profile.
	ghost, err := session.NewTokens("test-secret", time.Hour).Issue(&models.User{
		ID:          "ghost",
		Email:       "ghost@example.com",
		DisplayName: "Ghost",
	})
	require.NoError(t, err)

	rec := e.do(http.MethodPost, "/api/chats", ghost, gin.H{"userId": u2})
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)

	chats, err := e.store.ListChats(context.Background(), u2)
	require.NoError(t, err)
	assert.Empty(t, chats)
}

func TestFeedFlow(t *testing.T) {
	e := newEnv(t)
	u1, t1 := e.signup("ada@example.com")
	_, t2 := e.signup("grace@example.com")
	t1 = e.onboard(t1, "Ada", "exhibitor")

	rec := e.do(http.MethodPost, "/api/post", t1, gin.H{"content": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(http.MethodPost, "/api/post", t1, gin.H{"content": "Visit booth 12"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var post models.Post
	decode(t, rec, &post)
	assert.Equal(t, "Ada", post.AuthorName)

	rec = e.upload("/api/post", t1, "media", "clip.mp4", "video/mp4", map[string]string{"content": "demo"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var video models.Post
	decode(t, rec, &video)
	assert.Equal(t, models.MediaVideo, video.MediaType)
	assert.NotEmpty(t, video.MediaURL)

	rec = e.upload("/api/post", t1, "media", "doc.pdf", "application/pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	like := "/api/posts/" + post.ID + "/like"
	rec = e.do(http.MethodPost, like, t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var liked struct {
		Post  models.Post `json:"post"`
		Liked bool        `json:"liked"`
	}
	decode(t, rec, &liked)
	assert.True(t, liked.Liked)
	assert.Equal(t, 1, liked.Post.LikeCount)

	rec = e.do(http.MethodPost, like, t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &liked)
	assert.False(t, liked.Liked)
	assert.Zero(t, liked.Post.LikeCount)

	rec = e.do(http.MethodPost, "/api/posts/missing/like", t2, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	comments := "/api/posts/" + post.ID + "/comments"
	rec = e.do(http.MethodPost, comments, t2, gin.H{"content": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, text := range []string{"first", "second"} {
		rec = e.do(http.MethodPost, comments, t2, gin.H{"content": text})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	var commented models.Post
	decode(t, rec, &commented)
	require.Len(t, commented.Comments, 2)
	assert.Equal(t, "first", commented.Comments[0].Content)
	assert.Equal(t, 2, commented.CommentCount)

	rec = e.do(http.MethodGet, "/api/feed?limit=1", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var feedPosts []models.Post
	decode(t, rec, &feedPosts)
	assert.Len(t, feedPosts, 1)

	rec = e.do(http.MethodGet, "/api/user/"+u1+"/posts", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &feedPosts)
	assert.Len(t, feedPosts, 2)

	rec = e.do(http.MethodGet, "/api/my/posts", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestExhibitionFlow(t *testing.T) {
	e := newEnv(t)
	u1, t1 := e.signup("ada@example.com")
	u2, t2 := e.signup("grace@example.com")
	t1 = e.onboard(t1, "Ada", "exhibitor")

	rec := e.do(http.MethodPost, "/api/exhibitions", t2, gin.H{"name": "Tech Expo"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(http.MethodPost, "/api/exhibitions", t1, gin.H{"name": "Tech Expo", "location": "Lagos"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var expo models.Exhibition
	decode(t, rec, &expo)
	assert.Equal(t, u1, expo.CreatedBy)

	path := "/api/exhibitions/" + expo.ID
	for i := 0; i < 2; i++ {
		rec = e.do(http.MethodPost, path+"/join", t2, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = e.do(http.MethodGet, path, t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &expo)
	assert.Len(t, expo.JoinedUsers, 1)
	assert.Contains(t, expo.JoinedUsers, u2)

	u, err := e.store.GetUser(context.Background(), u2)
	require.NoError(t, err)
	assert.Equal(t, []string{expo.ID}, u.Exhibitions)

	rec = e.do(http.MethodGet, path+"/members", t1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), u2)

	rec = e.upload(path+"/brochures", t2, "file", "b.pdf", "application/pdf", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.upload(path+"/brochures", t1, "file", "b.pdf", "application/pdf", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = e.do(http.MethodPost, "/api/post", t1, gin.H{"content": "see you there", "exhibitionId": expo.ID})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = e.do(http.MethodPost, "/api/post", t1, gin.H{"content": "nowhere", "exhibitionId": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(http.MethodGet, path+"/posts", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var posts []models.Post
	decode(t, rec, &posts)
	require.Len(t, posts, 1)
	assert.Equal(t, expo.ID, posts[0].ExhibitionID)

	rec = e.do(http.MethodGet, "/api/exhibitions/missing/posts", t2, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(http.MethodGet, "/api/exhibitions", t2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tech Expo")
}

func TestRouting(t *testing.T) {
	e := newEnv(t)

	rec := e.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = e.do(http.MethodGet, "/api/nothing-here", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Endpoint not found")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
