package memory

import (
	"context"
	"sort"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pet"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) populate(p pet.Pet) *pet.Pet {
	p.OwnerUsername = ""
	if u, ok := r.s.users[p.OwnerID]; ok {
		p.OwnerUsername = u.Username
	}
	return &p
}

func (r *petRepo) Create(ctx context.Context, p *pet.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.pets[p.ID] = *p
	r.s.track(p.ID)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (*pet.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return nil, pet.ErrNotFound
	}
	return r.populate(p), nil
}

func (r *petRepo) List(ctx context.Context, filter pet.Filter) ([]*pet.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*pet.Pet, 0)
	for _, p := range r.s.pets {
		if filter.OwnerID != "" && p.OwnerID != filter.OwnerID {
			continue
		}
		out = append(out, r.populate(p))
	}
	sort.Slice(out, func(i, j int) bool {
		return r.s.newer(out[i].ID, out[i].CreatedAt, out[j].ID, out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) Update(ctx context.Context, p *pet.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[p.ID]; !ok {
		return pet.ErrNotFound
	}
	p.UpdatedAt = r.s.now()
	r.s.pets[p.ID] = *p
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return pet.ErrNotFound
	}
	delete(r.s.pets, id)
	return nil
}
