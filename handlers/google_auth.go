package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"expohub/middleware"
	"expohub/session"
)

const oauthStateCookie = "oauth_state"

type GoogleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleAuthWithCredential signs in with a Google Identity Services credential.
func (h *Handler) GoogleAuthWithCredential(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.auth.SignInWithCredential(ctx, req.Credential)
	if err != nil {
		respondError(c, err)
		return
	}
	h.googleSignedIn(c, res)
}

// GetGoogleAuthURL starts the code flow. The state is echoed back in a cookie
// and checked by the callback.
func (h *Handler) GetGoogleAuthURL(c *gin.Context) {
	state := uuid.NewString()
	url, err := h.auth.GoogleAuthURL(state)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) GoogleOAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code missing"})
		return
	}

	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", c.Request.TLS != nil, true)

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.auth.SignInWithCode(ctx, code)
	if err != nil {
		respondError(c, err)
		return
	}
	h.googleSignedIn(c, res)
}

func (h *Handler) googleSignedIn(c *gin.Context, res *session.Result) {
	middleware.Logger(c).WithField("user", res.User.ID).Info("google sign-in")

	status, message := http.StatusOK, "Login successful"
	if res.Created {
		status, message = http.StatusCreated, "User created successfully"
	}
	body := authResponse(res, message)
	body["isNewUser"] = res.Created
	c.JSON(status, body)
}
