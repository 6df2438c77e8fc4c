// Package memory keeps every repository in process memory.
// It backs STORAGE_DRIVER=memory and the HTTP tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/booking"
	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	"github.com/nekogravitycat/petcare-booking-backend/internal/file"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pet"
	"github.com/nekogravitycat/petcare-booking-backend/internal/user"
)

// Store holds all records behind one lock so reads can join across them.
type Store struct {
	mu       sync.RWMutex
	seq      int64
	order    map[string]int64
	users    map[string]user.User
	services map[string]catalog.CareService
	bookings map[string]booking.Booking
	pets     map[string]pet.Pet
	files    map[string]file.File
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		order:    make(map[string]int64),
		users:    make(map[string]user.User),
		services: make(map[string]catalog.CareService),
		bookings: make(map[string]booking.Booking),
		pets:     make(map[string]pet.Pet),
		files:    make(map[string]file.File),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// track records insertion order. Callers hold the write lock.
func (s *Store) track(id string) {
	s.seq++
	s.order[id] = s.seq
}

// newer reports whether record a was created after record b.
func (s *Store) newer(aID string, aAt time.Time, bID string, bAt time.Time) bool {
	if !aAt.Equal(bAt) {
		return aAt.After(bAt)
	}
	return s.order[aID] > s.order[bID]
}

func (s *Store) Users() user.Repository       { return &userRepo{s} }
func (s *Store) Services() catalog.Repository { return &serviceRepo{s} }
func (s *Store) Bookings() booking.Repository { return &bookingRepo{s} }
func (s *Store) Pets() pet.Repository         { return &petRepo{s} }
func (s *Store) Files() file.Repository       { return &fileRepo{s} }
