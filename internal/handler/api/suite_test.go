//go:build unit

package api_test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth mimics OptionalAuth and RequireAuth without a token validator.
type fakeAuth struct {
	userID uuid.UUID
}

func (f *fakeAuth) optional(c *gin.Context) {
	if c.GetHeader("Authorization") != "" {
		c.Set("user_id", f.userID)
	}
	c.Next()
}

func (f *fakeAuth) require(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.Set("user_id", f.userID)
	c.Next()
}
