package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"expohub/handlers"
	"expohub/middleware"
	"expohub/session"
)

// Options configures the router.
type Options struct {
	Tokens      *session.Tokens
	Limiter     *middleware.IPRateLimiter
	CORSOrigins []string
	Log         logrus.FieldLogger
	// WebSocket serves /ws when set.
	WebSocket http.Handler
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func SetupRouter(h *handlers.Handler, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(opts.Log))
	router.Use(cors.New(corsConfig(opts.CORSOrigins)))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	if opts.WebSocket != nil {
		router.GET("/ws", gin.WrapH(opts.WebSocket))
	}

	api := router.Group("/api")
	if opts.Limiter != nil {
		api.Use(middleware.RateLimit(opts.Limiter))
	}

	// Public routes
	api.POST("/signup", h.Signup)
	api.POST("/login", h.Login)
	api.POST("/google-auth", h.GoogleAuthWithCredential)
	api.GET("/google/auth-url", h.GetGoogleAuthURL)
	api.GET("/google/callback", h.GoogleOAuthCallback)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(opts.Tokens))

	// Profile
	protected.GET("/me", h.GetMyProfile)
	protected.PUT("/me", h.UpdateMyProfile)
	protected.POST("/me/onboarding", h.CompleteOnboarding)
	protected.POST("/me/avatar", h.UploadAvatar)
	protected.POST("/me/company-image", h.UploadCompanyImage)
	protected.GET("/user/:id", h.GetUser)
	protected.GET("/industries", h.ListIndustries)

	// Exhibitions
	protected.GET("/exhibitions", h.ListExhibitions)
	protected.POST("/exhibitions", h.CreateExhibition)
	protected.GET("/exhibitions/:id", h.GetExhibition)
	protected.POST("/exhibitions/:id/join", h.JoinExhibition)
	protected.GET("/exhibitions/:id/members", h.ListExhibitionMembers)
	protected.GET("/exhibitions/:id/posts", h.GetExhibitionPosts)
	protected.POST("/exhibitions/:id/brochures", h.UploadBrochure)

	// Posts
	protected.POST("/post", h.CreatePost)
	protected.GET("/feed", h.GetFeed)
	protected.GET("/user/:id/posts", h.GetUserPosts)
	protected.GET("/my/posts", h.GetMyPosts)
	protected.GET("/posts/:id", h.GetPost)
	protected.POST("/posts/:id/like", h.ToggleLike)
	protected.POST("/posts/:id/comments", h.AddComment)

	// Chats
	protected.GET("/chats", h.GetChatList)
	protected.POST("/chats", h.CreateChat)
	protected.GET("/chats/:id", h.GetChat)
	protected.GET("/chats/:id/messages", h.GetMessages)
	protected.POST("/chats/:id/messages", h.SendMessage)
	protected.POST("/chats/:id/read", h.MarkAsRead)

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Status(http.StatusNotFound)
	})

	return router
}
