package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expohub/media"
	"expohub/middleware"
	"expohub/models"
)

type SendMessageRequest struct {
	Content string             `form:"content" json:"content"`
	Kind    models.MessageKind `form:"kind" json:"kind"`
}

func (h *Handler) GetMessages(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	ch, err := h.chats.Get(ctx, c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	msgs, err := h.chats.Messages(ctx, ch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// SendMessage sends a text message, or an uploaded image or file when the
// request is a multipart form with a "file" field. Blank text is ignored.
func (h *Handler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	userID := middleware.UserID(c)
	ch, err := h.chats.Get(ctx, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	content, kind := req.Content, req.Kind
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if _, err := c.FormFile("file"); err == nil {
			obj, contentType, err := h.upload(ctx, c, "file", media.ChatPath(ch.ID, uuid.NewString()))
			if err != nil {
				respondError(c, err)
				return
			}
			content, kind = obj.URL, media.MessageKind(contentType)
		}
	}

	msg, err := h.chats.SendMessage(ctx, ch, userID, content, kind)
	if err != nil {
		respondError(c, err)
		return
	}
	if msg == nil {
		c.Status(http.StatusNoContent)
		return
	}

	for _, p := range ch.Participants {
		if p != userID {
			h.notify(p, "new_message", gin.H{"chatId": ch.ID, "message": msg})
		}
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) MarkAsRead(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	userID := middleware.UserID(c)
	ch, err := h.chats.Get(ctx, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.chats.MarkRead(ctx, ch, userID); err != nil {
		respondError(c, err)
		return
	}

	h.notify(ch.Partner(userID), "message_read", gin.H{"chatId": ch.ID, "userId": userID})
	c.JSON(http.StatusOK, gin.H{"chatId": ch.ID, "unread": ch.UnreadCount[userID]})
}
