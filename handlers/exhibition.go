package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expohub/media"
	"expohub/middleware"
	"expohub/models"
)

type CreateExhibitionRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	CoverImageURL string `json:"coverImageUrl"`
	LogoURL       string `json:"logoUrl"`
}

func (h *Handler) ListExhibitions(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.exhibitions.ListExhibitions(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []*models.Exhibition{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetExhibition(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	e, err := h.exhibitions.GetExhibition(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// CreateExhibition is limited to exhibitors.
func (h *Handler) CreateExhibition(c *gin.Context) {
	var req CreateExhibitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		badRequest(c, errors.New("name cannot be empty"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.users.GetUser(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if u.ProfileType != models.Exhibitor {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only exhibitors can create exhibitions"})
		return
	}

	e := &models.Exhibition{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   req.Description,
		Location:      req.Location,
		CoverImageURL: req.CoverImageURL,
		LogoURL:       req.LogoURL,
		Brochures:     []string{},
		JoinedUsers:   map[string]models.JoinedProfile{},
		CreatedBy:     u.ID,
		CreatedAt:     h.now().UTC(),
	}
	if err := h.exhibitions.CreateExhibition(ctx, e); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, e)
}

// JoinExhibition records the user on the exhibition and the exhibition on the
// user. Joining twice changes nothing.
func (h *Handler) JoinExhibition(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	id := c.Param("id")
	if _, err := h.exhibitions.GetExhibition(ctx, id); err != nil {
		respondError(c, err)
		return
	}

	member := models.JoinedProfile{ID: middleware.UserID(c)}
	switch p := h.profile(ctx, c).(type) {
	case models.FullProfile:
		member.ImageURL = p.User.Image()
	case models.MinimalProfile:
		member.ImageURL = p.PhotoURL
	}

	if err := h.exhibitions.JoinExhibition(ctx, id, member); err != nil {
		respondError(c, err)
		return
	}
	if err := h.users.AddUserExhibition(ctx, member.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exhibitionId": id, "member": member})
}

// ListExhibitionMembers returns the joined users ordered by id.
func (h *Handler) ListExhibitionMembers(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	e, err := h.exhibitions.GetExhibition(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	members := make([]models.JoinedProfile, 0, len(e.JoinedUsers))
	for _, m := range e.JoinedUsers {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })

	c.JSON(http.StatusOK, members)
}

// UploadBrochure is limited to the exhibition's creator.
func (h *Handler) UploadBrochure(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	e, err := h.exhibitions.GetExhibition(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if e.CreatedBy != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the organizer can upload brochures"})
		return
	}

	obj, _, err := h.upload(ctx, c, "file", media.BrochurePath(e.ID, uuid.NewString()))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.exhibitions.AddBrochure(ctx, e.ID, obj.URL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": obj.URL})
}
