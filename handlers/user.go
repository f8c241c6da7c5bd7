package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"expohub/media"
	"expohub/middleware"
	"expohub/models"
)

type UpdateProfileRequest struct {
	DisplayName *string             `json:"displayName"`
	ProfileType *models.ProfileType `json:"profileType"`
	Description *string             `json:"description"`
	Location    *string             `json:"location"`
	Interests   []string            `json:"interests"`
}

func (r UpdateProfileRequest) update() (models.UserUpdate, error) {
	upd := models.UserUpdate{
		Description: r.Description,
		Location:    r.Location,
		Interests:   r.Interests,
	}
	if r.DisplayName != nil {
		name := strings.TrimSpace(*r.DisplayName)
		if name == "" {
			return upd, errors.New("displayName cannot be empty")
		}
		upd.DisplayName = &name
	}
	if r.ProfileType != nil {
		if !r.ProfileType.Valid() {
			return upd, errors.New("profileType must be visitor or exhibitor")
		}
		upd.ProfileType = r.ProfileType
	}
	return upd, nil
}

type OnboardingRequest struct {
	DisplayName string             `json:"displayName" binding:"required"`
	ProfileType models.ProfileType `json:"profileType" binding:"required"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Interests   []string           `json:"interests"`
}

// publicUser is the profile shown to other users.
func publicUser(u *models.User) gin.H {
	image := u.Image()
	if image == "" {
		image = fallbackAvatar
	}
	return gin.H{
		"id":          u.ID,
		"displayName": u.DisplayName,
		"profileType": u.ProfileType,
		"image":       image,
		"description": u.Description,
		"location":    u.Location,
		"exhibitions": u.Exhibitions,
		"interests":   u.Interests,
		"posts":       u.Posts,
	}
}

func (h *Handler) GetMyProfile(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.users.GetUser(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) UpdateMyProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	upd, err := req.update()
	if err != nil {
		badRequest(c, err)
		return
	}

	h.applyUpdate(c, upd)
}

func (h *Handler) CompleteOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		badRequest(c, errors.New("displayName cannot be empty"))
		return
	}
	if !req.ProfileType.Valid() {
		badRequest(c, errors.New("profileType must be visitor or exhibitor"))
		return
	}

	onboarded := true
	interests := req.Interests
	if interests == nil {
		interests = []string{}
	}
	h.applyUpdate(c, models.UserUpdate{
		DisplayName: &name,
		ProfileType: &req.ProfileType,
		Description: &req.Description,
		Location:    &req.Location,
		Interests:   interests,
		Onboarded:   &onboarded,
	})
}

// applyUpdate stores upd and answers with the updated user and a token
// carrying the new display name and picture.
func (h *Handler) applyUpdate(c *gin.Context, upd models.UserUpdate) {
	ctx, cancel := requestContext(c)
	defer cancel()

	userID := middleware.UserID(c)
	if err := h.users.UpdateUser(ctx, userID, upd); err != nil {
		respondError(c, err)
		return
	}

	u, err := h.users.GetUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := h.auth.Issue(u)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

func (h *Handler) GetUser(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	u, err := h.users.GetUser(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicUser(u))
}

func (h *Handler) UploadAvatar(c *gin.Context) {
	h.uploadProfileImage(c, media.AvatarPath, func(upd *models.UserUpdate, url string) {
		upd.ImageURL = &url
	})
}

func (h *Handler) UploadCompanyImage(c *gin.Context) {
	h.uploadProfileImage(c, media.CompanyPath, func(upd *models.UserUpdate, url string) {
		upd.CompanyImageURL = &url
	})
}

func (h *Handler) uploadProfileImage(c *gin.Context, path func(string) media.Path, set func(*models.UserUpdate, string)) {
	ctx, cancel := requestContext(c)
	defer cancel()

	if fh, err := c.FormFile("image"); err == nil && !media.IsImage(fh.Header.Get("Content-Type")) {
		respondError(c, media.ErrUnsupportedType)
		return
	}

	userID := middleware.UserID(c)
	obj, _, err := h.upload(ctx, c, "image", path(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	var upd models.UserUpdate
	set(&upd, obj.URL)
	if err := h.users.UpdateUser(ctx, userID, upd); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": obj.URL})
}

func (h *Handler) ListIndustries(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	industries, err := h.users.ListIndustries(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	if industries == nil {
		industries = []*models.Industry{}
	}
	c.JSON(http.StatusOK, industries)
}
