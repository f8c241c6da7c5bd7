package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expohub/feed"
	"expohub/media"
	"expohub/middleware"
	"expohub/models"
	"expohub/store"
)

type CreatePostRequest struct {
	Content      string `form:"content" json:"content"`
	ExhibitionID string `form:"exhibitionId" json:"exhibitionId"`
}

type CommentRequest struct {
	Content string `json:"content"`
}

// CreatePost accepts JSON or a multipart form with an optional "media" file.
func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if req.ExhibitionID != "" {
		if _, err := h.exhibitions.GetExhibition(ctx, req.ExhibitionID); err != nil {
			respondError(c, err)
			return
		}
	}

	params := feed.NewPostParams{Content: req.Content, ExhibitionID: req.ExhibitionID}
	userID := middleware.UserID(c)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if fh, err := c.FormFile("media"); err == nil {
			mt, err := media.PostMediaType(fh.Header.Get("Content-Type"))
			if err != nil {
				respondError(c, err)
				return
			}
			obj, _, err := h.upload(ctx, c, "media", media.PostPath(userID, uuid.NewString()))
			if err != nil {
				respondError(c, err)
				return
			}
			params.MediaURL = obj.URL
			params.MediaType = mt
		} else if !errors.Is(err, http.ErrMissingFile) {
			badRequest(c, err)
			return
		}
	}

	post, err := h.feed.CreatePost(ctx, h.profile(ctx, c), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *Handler) listPosts(c *gin.Context, f store.PostFilter) {
	ctx, cancel := requestContext(c)
	defer cancel()

	f.Limit = limitParam(c)
	posts, err := h.feed.List(ctx, f)
	if err != nil {
		respondError(c, err)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// GetFeed lists the newest posts, optionally within one exhibition.
func (h *Handler) GetFeed(c *gin.Context) {
	h.listPosts(c, store.PostFilter{ExhibitionID: c.Query("exhibitionId")})
}

func (h *Handler) GetUserPosts(c *gin.Context) {
	h.listPosts(c, store.PostFilter{AuthorID: c.Param("id")})
}

func (h *Handler) GetMyPosts(c *gin.Context) {
	h.listPosts(c, store.PostFilter{AuthorID: middleware.UserID(c)})
}

func (h *Handler) GetExhibitionPosts(c *gin.Context) {
	h.listPosts(c, store.PostFilter{ExhibitionID: c.Param("id")})
}

func (h *Handler) GetPost(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.feed.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) ToggleLike(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	userID := middleware.UserID(c)
	post, err := h.feed.ToggleLike(ctx, c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post, "liked": post.LikedByUser(userID)})
}

func (h *Handler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	post, err := h.feed.AddComment(ctx, c.Param("id"), h.profile(ctx, c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}
