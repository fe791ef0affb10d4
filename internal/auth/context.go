package auth

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

// CallerHeader carries the acting user's id on every protected call.
const CallerHeader = "X-Caller-Id"

const callerIDKey = "callerID"

var (
	ErrMissingCaller = apperror.Validation("missing X-Caller-Id header")
	ErrInvalidCaller = apperror.Validation("invalid X-Caller-Id header")
)

// ParseCallerID parses a raw header value into a positive user id.
func ParseCallerID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingCaller
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidCaller
	}
	return id, nil
}

// GetCallerID returns the caller id stored by CallerRequired, or 0.
func GetCallerID(c *gin.Context) int64 {
	if v, ok := c.Get(callerIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
