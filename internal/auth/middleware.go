package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
)

// tokenFromRequest reads the token from "Authorization: Bearer <token>",
// falling back to the x-access-token header used by older clients.
func tokenFromRequest(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", false
		}
		return strings.TrimSpace(parts[1]), true
	}

	if token := c.GetHeader("x-access-token"); token != "" {
		return token, true
	}
	return "", false
}

// RoleResolver looks up whether the stored account behind userID is an admin.
// An error means the account no longer exists.
type RoleResolver func(ctx context.Context, userID string) (isAdmin bool, err error)

// AuthRequired is a Gin middleware that validates the JWT and stores the caller identity.
// When resolveRole is set, the caller's stored role is loaded too.
func AuthRequired(jwtManager *JWTManager, resolveRole RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := tokenFromRequest(c)
		if !ok || tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, "Token is missing!")
			return
		}

		claims, err := jwtManager.ParseAndValidate(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		// Store user info into Gin context for later handlers.
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUsername, claims.Username)

		if resolveRole != nil {
			isAdmin, err := resolveRole(c.Request.Context(), claims.UserID)
			if err != nil {
				response.Abort(c, http.StatusUnauthorized, "User not found!")
				return
			}
			SetAdmin(c, isAdmin)
		}

		c.Next()
	}
}
