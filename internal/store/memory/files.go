package memory

import (
	"context"

	"github.com/nekogravitycat/petcare-booking-backend/internal/file"
)

type fileRepo struct {
	s *Store
}

func (r *fileRepo) Create(ctx context.Context, f *file.File) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.files[f.ID] = *f
	r.s.track(f.ID)
	return nil
}

func (r *fileRepo) GetByID(ctx context.Context, id string) (*file.File, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.files[id]
	if !ok {
		return nil, file.ErrNotFound
	}
	return &f, nil
}

func (r *fileRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.files[id]; !ok {
		return file.ErrNotFound
	}
	delete(r.s.files, id)
	return nil
}
