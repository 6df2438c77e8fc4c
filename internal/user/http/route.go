package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the account routes.
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/user")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
		group.GET("/me", authMiddleware, h.Me)
	}
}
