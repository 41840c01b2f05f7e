package middleware

import (
	"net/http"
	"strings"

	"ship_telemetry/internal/app/repository"
	"ship_telemetry/internal/app/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and resolves its subject to an
// existing user. Every failure mode answers the same 401 body so callers
// cannot probe which check tripped.
func AuthMiddleware(rep *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseJWT(tokenStr, rep.JWTKey())
		if err != nil {
			unauthorized(c)
			return
		}

		user, err := rep.GetUserByUsername(claims.Subject)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
}
