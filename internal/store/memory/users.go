package memory

import (
	"context"

	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
	}
	u.CreatedAt = r.s.now()
	r.s.users[u.ID] = *u
	r.s.track(u.ID)
	return nil
}

func (r *userRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Role = role
	r.s.users[id] = u
	return nil
}
