package auth

import "github.com/gin-gonic/gin"

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
	ctxIsAdmin  = "isAdmin"
)

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// GetUsername returns the authenticated user's username or empty string.
func GetUsername(c *gin.Context) string {
	return c.GetString(ctxUsername)
}

// SetAdmin records the result of the stored-role lookup for the caller.
func SetAdmin(c *gin.Context, isAdmin bool) {
	c.Set(ctxIsAdmin, isAdmin)
}

// IsAdmin reports whether the caller's stored role is admin.
// It is false unless a role-resolving middleware ran earlier in the chain.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdmin)
}

// CanAccess reports whether the caller owns the resource or is an admin.
func CanAccess(c *gin.Context, ownerID string) bool {
	return IsAdmin(c) || (ownerID != "" && GetUserID(c) == ownerID)
}
