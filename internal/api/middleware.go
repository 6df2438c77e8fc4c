package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// roleResolver reads the stored role so a demoted or deleted account loses access immediately.
func roleResolver(userService user.Service) auth.RoleResolver {
	return func(ctx context.Context, userID string) (bool, error) {
		u, err := userService.GetByID(ctx, userID)
		if err != nil {
			return false, err
		}
		return u.IsAdmin(), nil
	}
}

// RequireAdmin rejects callers whose stored role is not admin.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			response.Abort(c, http.StatusUnauthorized, "Token is missing!")
			return
		}
		if !auth.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}
