package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lyepez-glitch/VitalCore/internal/core/auth"
	resp "github.com/lyepez-glitch/VitalCore/internal/transport/http/response"
)

const KeyUserID = "userId"

// AuthJWT checks a Bearer token and stores the user id in the context.
// Mounted only on routes the configuration marks as protected.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Err(c, http.StatusUnauthorized, "missing token")
			c.Abort()
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Err(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
