package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"expohub/session"
)

// Context keys set by JWTAuth.
const (
	UserIDKey = "userId"
	ClaimsKey = "claims"
)

// JWTAuth verifies the bearer token of the request, falling back to the token
// query parameter, and stores the claims in the context.
func JWTAuth(tokens *session.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			token := c.Query("token")
			if token == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "Authentication required",
					"message": "No authorization token provided",
				})
				return
			}
			authHeader = "Bearer " + token
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid authorization header",
				"message": "Format should be: Bearer <token>",
			})
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			Logger(c).WithError(err).Debug("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "Token validation failed",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// Claims returns the claims stored by JWTAuth.
func Claims(c *gin.Context) *session.Claims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(*session.Claims); ok {
			return claims
		}
	}
	return nil
}

// UserID returns the authenticated user id.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
