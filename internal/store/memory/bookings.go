package memory

import (
	"context"
	"sort"

	"github.com/nekogravitycat/petcare-booking-backend/internal/booking"
)

type bookingRepo struct {
	s *Store
}

// populate attaches the service summary and owner the way the SQL joins do.
// Callers hold at least the read lock.
func (r *bookingRepo) populate(b booking.Booking) *booking.Booking {
	b.Service = nil
	if cs, ok := r.s.services[b.ServiceID]; ok {
		b.Service = &booking.ServiceSummary{
			ID:          cs.ID,
			Name:        cs.Name,
			Description: cs.Description,
			Price:       cs.Price,
			Duration:    cs.Duration,
			ImageURL:    cs.ImageURL,
		}
	}
	b.OwnerUsername, b.OwnerRole = "", ""
	if u, ok := r.s.users[b.OwnerID]; ok {
		b.OwnerUsername = u.Username
		b.OwnerRole = string(u.Role)
	}
	return &b
}

func (r *bookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	b.CreatedAt, b.UpdatedAt = now, now
	stored := *b
	stored.Service = nil
	r.s.bookings[b.ID] = stored
	r.s.track(b.ID)
	return nil
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return r.populate(b), nil
}

func (r *bookingRepo) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*booking.Booking, 0)
	for _, b := range r.s.bookings {
		if filter.OwnerID != "" && b.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ServiceID != "" && b.ServiceID != filter.ServiceID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, r.populate(b))
	}

	// Newest first on the chosen key.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch filter.SortBy {
		case "appointment_date_time":
			if !a.AppointmentDateTime.Equal(b.AppointmentDateTime) {
				return a.AppointmentDateTime.After(b.AppointmentDateTime)
			}
		case "status":
			if a.Status != b.Status {
				return a.Status > b.Status
			}
		}
		return r.s.newer(a.ID, a.CreatedAt, b.ID, b.CreatedAt)
	})
	return out, nil
}

func (r *bookingRepo) Update(ctx context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[b.ID]; !ok {
		return booking.ErrNotFound
	}
	b.UpdatedAt = r.s.now()
	stored := *b
	stored.Service = nil
	r.s.bookings[b.ID] = stored
	return nil
}

func (r *bookingRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[id]; !ok {
		return booking.ErrNotFound
	}
	delete(r.s.bookings, id)
	return nil
}
