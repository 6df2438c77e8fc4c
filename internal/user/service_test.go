package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
	"github.com/nekogravitycat/petcare-booking-backend/internal/store/memory"
	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
)

func newService() (user.Service, user.Repository) {
	repo := memory.NewStore().Users()
	return user.NewService(repo, auth.NewBcryptPasswordHasherWithCost(bcrypt.MinCost)), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()

	u, err := svc.Register(ctx, "  alice  ", "secret1")
	require.NoError(t, err)
	assert.True(t, objectid.IsValid(u.ID))
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, user.RoleUser, u.Role)

	stored, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	_, err = svc.Register(ctx, "alice", "another1")
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestRegister_RejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Register(ctx, "", "secret1")
	assert.ErrorIs(t, err, user.ErrMissingCredentials)

	_, err = svc.Register(ctx, "bob", "12345")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.ElementsMatch(t, []string{
		"Username must be at least 4 characters",
		"Password must be at least 6 characters",
	}, appErr.Errors)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.Login(ctx, "alice", "wrong-pass")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, user.ErrNotFound)

	_, err = svc.Login(ctx, "alice", "")
	assert.ErrorIs(t, err, user.ErrMissingCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	admin, err := svc.EnsureAdmin(ctx, "root", "rootpass")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	again, err := svc.EnsureAdmin(ctx, "root", "rootpass")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	plain, err := svc.Register(ctx, "carol", "secret1")
	require.NoError(t, err)
	promoted, err := svc.EnsureAdmin(ctx, "carol", "ignored")
	require.NoError(t, err)
	assert.Equal(t, plain.ID, promoted.ID)

	stored, err := svc.GetByID(ctx, plain.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, stored.Role)
}
