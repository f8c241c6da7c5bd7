// Package handlers implements the HTTP API.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"expohub/chat"
	"expohub/feed"
	"expohub/media"
	"expohub/middleware"
	"expohub/models"
	"expohub/session"
	"expohub/store"
)

const (
	fallbackAvatar = "https://upload.wikimedia.org/wikipedia/commons/8/89/Portrait_Placeholder.png"
	requestTimeout = 10 * time.Second
	maxUploadSize  = 10 << 20
)

var (
	errForbidden    = errors.New("forbidden")
	errFileTooLarge = errors.New("file too large")
	errMissingFile  = errors.New("file is required")
)

// Notifier pushes events to a user's live connections.
type Notifier interface {
	SendToUser(userID, kind string, payload interface{})
}

// Deps are the collaborators of the handlers.
type Deps struct {
	Auth        *session.Service
	Users       store.Users
	Exhibitions store.Exhibitions
	Feed        *feed.Service
	Chats       *chat.Service
	Media       media.Uploader
	Notifier    Notifier
}

// Handler serves the REST API. Its methods are gin handlers.
type Handler struct {
	auth        *session.Service
	users       store.Users
	exhibitions store.Exhibitions
	feed        *feed.Service
	chats       *chat.Service
	media       media.Uploader
	notifier    Notifier
	now         func() time.Time
}

func New(d Deps) *Handler {
	return &Handler{
		auth:        d.Auth,
		users:       d.Users,
		exhibitions: d.Exhibitions,
		feed:        d.Feed,
		chats:       d.Chats,
		media:       d.Media,
		notifier:    d.Notifier,
		now:         time.Now,
	}
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

func (h *Handler) notify(userID, kind string, payload interface{}) {
	if h.notifier != nil {
		h.notifier.SendToUser(userID, kind, payload)
	}
}

// statusOf maps service errors onto HTTP statuses.
func statusOf(err error) int {
	switch {
	case errors.Is(err, feed.ErrEmptyContent),
		errors.Is(err, feed.ErrEmptyPost),
		errors.Is(err, feed.ErrInvalidMedia),
		errors.Is(err, chat.ErrInvalidParticipant),
		errors.Is(err, chat.ErrInvalidKind),
		errors.Is(err, session.ErrWeakPassword),
		errors.Is(err, media.ErrUnsupportedType),
		errors.Is(err, errMissingFile):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrInvalidCredentials),
		errors.Is(err, session.ErrInvalidToken),
		errors.Is(err, session.ErrUnverifiedEmail):
		return http.StatusUnauthorized
	case errors.Is(err, chat.ErrNotParticipant),
		errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrAlreadyExists),
		errors.Is(err, session.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, chat.ErrProfileNotLoaded):
		return http.StatusPreconditionFailed
	case errors.Is(err, errFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, session.ErrGoogleDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Internal failures are logged and
// answered with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		middleware.Logger(c).WithError(err).Error("request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	msg := err.Error()
	if errors.Is(err, store.ErrNotFound) {
		msg = "Not found"
	}
	c.JSON(status, gin.H{"error": msg})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// profile resolves the acting user's profile, degrading to the session
// identity when the user record cannot be loaded.
func (h *Handler) profile(ctx context.Context, c *gin.Context) models.Profile {
	claims := middleware.Claims(c)
	if claims == nil {
		return models.MinimalProfile{ID: middleware.UserID(c)}
	}
	p, err := session.Resolve(ctx, h.users, claims)
	if err != nil {
		middleware.Logger(c).WithError(err).Warn("using session identity as profile")
	}
	return p
}

func limitParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return n
}

// upload stores the multipart file field at p and returns it with its
// declared content type.
func (h *Handler) upload(ctx context.Context, c *gin.Context, field string, p media.Path) (*media.Object, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", errMissingFile
		}
		return nil, "", fmt.Errorf("%w: %s", errMissingFile, err.Error())
	}
	if fh.Size > maxUploadSize {
		return nil, "", errFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	obj, err := h.media.Upload(ctx, p, f)
	if err != nil {
		return nil, "", err
	}
	return obj, fh.Header.Get("Content-Type"), nil
}
