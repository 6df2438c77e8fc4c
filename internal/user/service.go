package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// EnsureAdmin creates the account if needed and makes sure it carries the admin role.
	EnsureAdmin(ctx context.Context, username, password string) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Register(ctx context.Context, username, password string) (*User, error) {
	return s.create(ctx, username, password, RoleUser)
}

func (s *service) create(ctx context.Context, username, password string, role Role) (*User, error) {
	cleanUsername := normalizeUsername(username)
	if cleanUsername == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	var problems []string
	if len([]rune(cleanUsername)) < MinUsernameLength {
		problems = append(problems, fmt.Sprintf("Username must be at least %d characters", MinUsernameLength))
	}
	if len(password) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("Password must be at least %d characters", MinPasswordLength))
	}
	if len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}

	// Check if username is already used.
	_, err := s.repo.GetByUsername(ctx, cleanUsername)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	// If the error is something other than "not found", propagate it.
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		ID:           objectid.New(),
		Username:     cleanUsername,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	cleanUsername := normalizeUsername(username)
	if cleanUsername == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	u, err := s.repo.GetByUsername(ctx, cleanUsername)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}

	// Compare password hash.
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if u.Role == "" {
		u.Role = RoleUser
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) EnsureAdmin(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, normalizeUsername(username))
	switch {
	case errors.Is(err, ErrNotFound):
		return s.create(ctx, username, password, RoleAdmin)
	case err != nil:
		return nil, fmt.Errorf("failed to fetch admin account: %w", err)
	}

	if u.IsAdmin() {
		return u, nil
	}

	if err := s.repo.UpdateRole(ctx, u.ID, RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to promote admin account: %w", err)
	}
	log.Printf("promoted user %q to admin", u.Username)
	u.Role = RoleAdmin
	return u, nil
}

// normalizeUsername trims surrounding spaces; usernames are case-sensitive.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}
