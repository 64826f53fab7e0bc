package handler

import (
	"kostify-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userID returns the authenticated user's ID from the request context.
func userID(c *gin.Context) string {
	v, _ := c.Get(middleware.CtxUserID)
	id, _ := v.(string)
	return id
}

// ownerID returns the effective owner scope: the owner's own ID, or the
// inviting owner for a pengelola.
func ownerID(c *gin.Context) string {
	v, _ := c.Get(middleware.CtxOwnerID)
	id, _ := v.(string)
	return id
}
