package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expohub/chat"
	"expohub/middleware"
	"expohub/models"
)

type CreateChatRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type partnerView struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	ProfileType models.ProfileType `json:"profileType"`
}

// chatView is a chat as seen by one of its participants.
type chatView struct {
	*models.Chat
	Partner partnerView `json:"partner"`
	Unread  int         `json:"unread"`
}

func viewChat(c *models.Chat, userID string) chatView {
	partnerID := c.Partner(userID)
	info := c.ParticipantInfo[partnerID]

	image := info.Image
	if image == "" {
		image = fallbackAvatar
	}
	name := info.Name
	if name == "" {
		name = "Unknown User"
	}

	return chatView{
		Chat: c,
		Partner: partnerView{
			ID:          partnerID,
			Name:        name,
			Image:       image,
			ProfileType: info.ProfileType,
		},
		Unread: c.UnreadCount[userID],
	}
}

func (h *Handler) GetChatList(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	userID := middleware.UserID(c)
	chats, err := h.chats.List(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]chatView, 0, len(chats))
	for _, ch := range chats {
		views = append(views, viewChat(ch, userID))
	}
	c.JSON(http.StatusOK, views)
}

// CreateChat finds or creates the chat with the requested user.
func (h *Handler) CreateChat(c *gin.Context) {
	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	target, err := h.users.GetUser(ctx, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	ch, err := h.chats.FindOrCreate(ctx, h.profile(ctx, c), chat.Participant{
		ID:          target.ID,
		DisplayName: target.DisplayName,
		ImageURL:    target.Image(),
		ProfileType: target.ProfileType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewChat(ch, middleware.UserID(c)))
}

func (h *Handler) GetChat(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	userID := middleware.UserID(c)
	ch, err := h.chats.Get(ctx, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewChat(ch, userID))
}
