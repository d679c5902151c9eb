package api

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	userIDHeader = "X-User-ID"
	userIDKey    = "userID"
	adminKey     = "admin"
)

// RequireUser identifies the caller from the X-User-ID header, set by the
// gateway in front of this service. Callers listed in adminIDs are flagged
// as administrators.
func RequireUser(adminIDs ...int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(userIDHeader)

		if len(raw) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
			c.Abort()
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)

		if err != nil || userID <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Set(adminKey, slices.Contains(adminIDs, userID))
	}
}

// AdminOnly must run after RequireUser; unidentified callers are refused too.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func currentUser(c *gin.Context) int64 {
	return c.MustGet(userIDKey).(int64)
}

func isAdmin(c *gin.Context) bool {
	return c.GetBool(adminKey)
}
