package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
)

type UserHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewHandler(userService user.Service, jwtManager *auth.JWTManager) *UserHandler {
	return &UserHandler{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Register creates a new account with the default "user" role.
func (h *UserHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.ErrorWithMessage(c, err, "Some errors occured while registering a new user!")
		return
	}

	response.Created(c, "User registered successfully!", NewUserResponse(u))
}

// Login authenticates a user using username and password.
// On success, it returns a JWT access token and the caller's role.
func (h *UserHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	u, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.ErrorWithMessage(c, err, "Some errors occured while logging in user!")
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Username)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Internal Server Error: Authentication failed!")
		return
	}

	response.OK(c, "User logged in successfully!", LoginResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        string(u.Role),
		AccessToken: token,
	})
}

// Me retrieves the profile of the currently authenticated user.
func (h *UserHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		response.Fail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", NewUserResponse(u))
}
