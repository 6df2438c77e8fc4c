package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
)

type CreateRequest struct {
	CustomerName        string
	PhoneNumber         string
	PetName             string
	AppointmentDateTime time.Time
	ServiceID           string
	OwnerID             string
	Notes               string
}

// UpdateRequest carries a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	CustomerName        *string
	PhoneNumber         *string
	PetName             *string
	AppointmentDateTime *time.Time
	ServiceID           *string
	Status              *Status
	Notes               *string
}

// ServiceCatalog is the part of the catalog a booking needs.
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*catalog.CareService, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Booking, error)
	Cancel(ctx context.Context, id string, actorID string, isAdmin bool) (*Booking, error)
	// Delete hard-removes the booking and returns the removed record.
	Delete(ctx context.Context, id string, actorID string, isAdmin bool) (*Booking, error)
}

// Option configures a booking Service.
type Option func(*service)

// WithClock replaces the time source used for the future-appointment rule.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	repo     Repository
	services ServiceCatalog
	now      func() time.Time
}

func NewService(repo Repository, services ServiceCatalog, opts ...Option) Service {
	s := &service{
		repo:     repo,
		services: services,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// lookupService resolves a service reference, mapping a miss to ErrServiceNotFound.
func (s *service) lookupService(ctx context.Context, id string) (*catalog.CareService, error) {
	cs, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return cs, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	serviceID := objectid.Normalize(req.ServiceID)

	problems := collect(
		validateCustomerName(req.CustomerName),
		validatePhone(req.PhoneNumber),
		validatePetName(req.PetName),
		validateAppointment(req.AppointmentDateTime, s.now()),
		validateNotes(strings.TrimSpace(req.Notes)),
	)
	if !objectid.IsValid(serviceID) {
		problems = append(problems, "Invalid service ID format")
	}
	if !objectid.IsValid(req.OwnerID) {
		problems = append(problems, "Owner is required")
	}
	if len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}

	cs, err := s.lookupService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if !cs.Available {
		return nil, ErrServiceUnavailable
	}

	b := &Booking{
		ID:                  objectid.New(),
		CustomerName:        strings.TrimSpace(req.CustomerName),
		PhoneNumber:         req.PhoneNumber,
		PetName:             strings.TrimSpace(req.PetName),
		AppointmentDateTime: req.AppointmentDateTime.UTC(),
		ServiceID:           cs.ID,
		Status:              StatusPending,
		Notes:               strings.TrimSpace(req.Notes),
		OwnerID:             req.OwnerID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, objectid.Normalize(id))
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*Booking, error) {
	bookings, err := s.repo.List(ctx, Filter{OwnerID: objectid.Normalize(ownerID)})
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrNoUserBookings
	}
	return bookings, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, apperror.Validation("Status must be one of: pending, confirmed, completed, cancelled")
	}
	if filter.ServiceID != "" {
		filter.ServiceID = objectid.Normalize(filter.ServiceID)
	}

	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}
	return bookings, nil
}

// getForActor loads a booking and checks the actor may act on it.
func (s *service) getForActor(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, objectid.Normalize(id))
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.OwnerID != actorID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.getForActor(ctx, id, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if !b.Status.Editable() {
		return nil, ErrNotEditable
	}

	var problems []string

	if req.CustomerName != nil {
		if msg := validateCustomerName(*req.CustomerName); msg != "" {
			problems = append(problems, msg)
		}
		b.CustomerName = strings.TrimSpace(*req.CustomerName)
	}
	if req.PhoneNumber != nil {
		if msg := validatePhone(*req.PhoneNumber); msg != "" {
			problems = append(problems, msg)
		}
		b.PhoneNumber = *req.PhoneNumber
	}
	if req.PetName != nil {
		if msg := validatePetName(*req.PetName); msg != "" {
			problems = append(problems, msg)
		}
		b.PetName = strings.TrimSpace(*req.PetName)
	}
	// The future-date rule only applies to a newly supplied value.
	if req.AppointmentDateTime != nil {
		if msg := validateAppointment(*req.AppointmentDateTime, s.now()); msg != "" {
			problems = append(problems, msg)
		}
		b.AppointmentDateTime = req.AppointmentDateTime.UTC()
	}
	if req.Notes != nil {
		notes := strings.TrimSpace(*req.Notes)
		if msg := validateNotes(notes); msg != "" {
			problems = append(problems, msg)
		}
		b.Notes = notes
	}

	var newServiceID string
	if req.ServiceID != nil {
		newServiceID = objectid.Normalize(*req.ServiceID)
		if !objectid.IsValid(newServiceID) {
			problems = append(problems, "Invalid service ID format")
		}
	}

	if req.Status != nil {
		switch *req.Status {
		case StatusPending, StatusConfirmed, StatusCompleted:
		default:
			problems = append(problems, "Status must be one of: pending, confirmed, completed")
		}
	}

	if len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}

	if req.Status != nil && *req.Status != b.Status {
		if !isAdmin {
			return nil, ErrPermissionDenied
		}
		if !b.Status.CanTransitionTo(*req.Status) {
			return nil, apperror.Wrap(ErrInvalidTransition, http.StatusBadRequest,
				fmt.Sprintf("Cannot change booking status from %s to %s", b.Status, *req.Status))
		}
		b.Status = *req.Status
	}

	if newServiceID != "" && newServiceID != b.ServiceID {
		cs, err := s.lookupService(ctx, newServiceID)
		if err != nil {
			return nil, err
		}
		b.ServiceID = cs.ID
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Cancel(ctx context.Context, id string, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.getForActor(ctx, id, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(StatusCancelled) {
		return nil, apperror.Wrap(ErrInvalidTransition, http.StatusBadRequest,
			fmt.Sprintf("Cannot cancel a booking with status: %s", b.Status))
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) Delete(ctx context.Context, id string, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.getForActor(ctx, id, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, b.ID); err != nil {
		return nil, err
	}
	return b, nil
}
