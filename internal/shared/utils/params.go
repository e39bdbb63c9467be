package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"chefviral/internal/shared/constants"
)

// GetUserID extracts the authenticated user ID from the gin context.
func GetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := v.(uint)
	return userID, ok
}

// QueryInt parses an optional integer query parameter with a default.
func QueryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// QueryFloat parses an optional decimal query parameter. The second return
// value reports whether the parameter was present and valid.
func QueryFloat(c *gin.Context, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
