package user

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "User not found!")
	ErrUsernameTaken      = apperror.New(http.StatusBadRequest, "This Username is already existed!")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "Invalid Credentials!")
	ErrMissingCredentials = apperror.New(http.StatusBadRequest, "Please Provide Username and Password!")
)

// Role is the stored permission level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const (
	MinUsernameLength = 4
	MinPasswordLength = 6
)

// User represents an account.
type User struct {
	ID           string // 24-hex identifier
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin is the capability predicate gating catalog mutation.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
