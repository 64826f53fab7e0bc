package middleware

import (
	"net/http"
	"strings"

	"kostify-backend/internal/models"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	CtxUserID      = "userID"
	CtxRole        = "role"
	CtxOwnerID     = "ownerID"
	CtxPropertyID  = "propertyID"
	CtxPermissions = "permissions"
)

// AuthMiddleware validates JWT access token from Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		token := parts[1]

		// Validate token
		claims, err := utils.ValidateAccessToken(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Inject claims into context
		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxOwnerID, claims.OwnerID)
		c.Set(CtxPropertyID, claims.PropertyID)
		c.Set(CtxPermissions, claims.Permissions)

		c.Next()
	}
}

// RequireOwner restricts a route to owner accounts
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		if role != models.RoleOwner {
			utils.ErrorResponse(c, http.StatusForbidden, "Owner access required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequirePermission restricts a route to owners and to pengelola holding
// the given permission tag. The server is the enforcement boundary; the
// UI merely hides what this would reject.
func RequirePermission(tag string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		// Owners implicitly hold every permission
		if role == models.RoleOwner {
			c.Next()
			return
		}

		permissions, _ := c.Get(CtxPermissions)
		tags, ok := permissions.([]string)
		if ok {
			for _, t := range tags {
				if t == tag {
					c.Next()
					return
				}
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Permission "+tag+" required")
		c.Abort()
	}
}

// PropertyScope resolves the effective property filter for list endpoints.
// A pengelola scoped to one property may not read outside it: without an
// explicit query parameter their scope applies, and a mismatching explicit
// parameter is rejected.
func PropertyScope(c *gin.Context) (string, bool) {
	requested := c.Query("property_id")
	scope, _ := c.Get(CtxPropertyID)
	scopeID, _ := scope.(string)

	if scopeID == "" {
		return requested, true
	}
	if requested == "" || requested == scopeID {
		return scopeID, true
	}
	return "", false
}
