package memory

import (
	"context"
	"sort"

	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
)

type serviceRepo struct {
	s *Store
}

func (r *serviceRepo) Create(ctx context.Context, cs *catalog.CareService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	cs.CreatedAt, cs.UpdatedAt = now, now
	r.s.services[cs.ID] = *cs
	r.s.track(cs.ID)
	return nil
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*catalog.CareService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cs, ok := r.s.services[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &cs, nil
}

func (r *serviceRepo) List(ctx context.Context, filter catalog.Filter) ([]*catalog.CareService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*catalog.CareService, 0, len(r.s.services))
	for _, cs := range r.s.services {
		if filter.Available != nil && cs.Available != *filter.Available {
			continue
		}
		cs := cs
		out = append(out, &cs)
	}
	// Oldest first.
	sort.Slice(out, func(i, j int) bool {
		return r.s.newer(out[j].ID, out[j].CreatedAt, out[i].ID, out[i].CreatedAt)
	})
	return out, nil
}

func (r *serviceRepo) Update(ctx context.Context, cs *catalog.CareService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[cs.ID]; !ok {
		return catalog.ErrNotFound
	}
	cs.UpdatedAt = r.s.now()
	r.s.services[cs.ID] = *cs
	return nil
}

func (r *serviceRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.services[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.s.services, id)
	return nil
}
