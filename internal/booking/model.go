package booking

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "Booking not found")
	ErrNoBookings         = apperror.New(http.StatusNotFound, "No bookings found")
	ErrNoUserBookings     = apperror.New(http.StatusNotFound, "No bookings found for this user")
	ErrServiceNotFound    = apperror.New(http.StatusNotFound, "Service not found")
	ErrServiceUnavailable = apperror.New(http.StatusBadRequest, "This service is not currently available")
	ErrInvalidTransition  = apperror.New(http.StatusBadRequest, "invalid booking status transition")
	ErrNotEditable        = apperror.New(http.StatusBadRequest, "Only pending or confirmed bookings can be edited")
	ErrPermissionDenied   = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions lists the states reachable from each state.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether a booking in status s accepts field updates.
func (s Status) Editable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ServiceSummary is the part of the booked service returned with a booking.
type ServiceSummary struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    int
	ImageURL    string
}

type Booking struct {
	ID                  string
	CustomerName        string
	PhoneNumber         string
	PetName             string
	AppointmentDateTime time.Time
	ServiceID           string
	Service             *ServiceSummary // nil when the service was deleted
	Status              Status
	Notes               string
	OwnerID             string
	OwnerUsername       string
	OwnerRole           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Filter struct {
	OwnerID   string
	ServiceID string
	Status    Status
	SortBy    string // created_at (default), appointment_date_time, status
}
