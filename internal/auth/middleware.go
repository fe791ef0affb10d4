package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/response"
)

// CallerRequired is a Gin middleware that reads the caller identity from
// the X-Caller-Id header. The id is opaque here; existence is checked by
// the services that need it.
func CallerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := ParseCallerID(c.GetHeader(CallerHeader))
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(callerIDKey, id)
		c.Next()
	}
}
