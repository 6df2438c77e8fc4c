package http

import (
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/booking"
	catalogHttp "github.com/nekogravitycat/petcare-booking-backend/internal/catalog/http"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	userHttp "github.com/nekogravitycat/petcare-booking-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for the admin listing.
type ListBookingsRequest struct {
	Status    string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	ServiceID string `form:"serviceId" binding:"omitempty,objectid"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=createdAt appointmentDateTime status"`
}

// sortKeys maps API sort names to repository sort keys.
var sortKeys = map[string]string{
	"createdAt":           "created_at",
	"appointmentDateTime": "appointment_date_time",
	"status":              "status",
}

// ByUserRequest binds the owner path parameter.
type ByUserRequest struct {
	User string `uri:"user" binding:"required,objectid"`
}

type BookingResponse struct {
	ID                  string                  `json:"id"`
	CustomerName        string                  `json:"customerName"`
	PhoneNumber         string                  `json:"phoneNumber"`
	PetName             string                  `json:"petName"`
	AppointmentDateTime time.Time               `json:"appointmentDateTime"`
	ServiceID           string                  `json:"serviceId"`
	Service             *catalogHttp.ServiceTag `json:"service"`
	Status              string                  `json:"status"`
	Notes               string                  `json:"notes,omitempty"`
	Owner               userHttp.UserTag        `json:"owner"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		PhoneNumber:         b.PhoneNumber,
		PetName:             b.PetName,
		AppointmentDateTime: b.AppointmentDateTime.UTC(),
		ServiceID:           b.ServiceID,
		Status:              string(b.Status),
		Notes:               b.Notes,
		Owner:               userHttp.UserTag{ID: b.OwnerID, Username: b.OwnerUsername, Role: b.OwnerRole},
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if b.Service != nil {
		resp.Service = &catalogHttp.ServiceTag{
			ID:          b.Service.ID,
			Name:        b.Service.Name,
			Description: b.Service.Description,
			Price:       b.Service.Price,
			Duration:    b.Service.Duration,
			ImageURL:    b.Service.ImageURL,
		}
	}
	return resp
}

func newBookingResponses(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}

type CreateBookingRequest struct {
	CustomerName        string     `json:"customerName"`
	PhoneNumber         string     `json:"phoneNumber"`
	PetName             string     `json:"petName"`
	AppointmentDateTime *time.Time `json:"appointmentDateTime"`
	ServiceID           string     `json:"serviceId"`
	Owner               string     `json:"owner"` // must match the caller when present
	Notes               string     `json:"notes"`
}

// Validate checks that every required field is present.
func (r *CreateBookingRequest) Validate() error {
	if r.CustomerName == "" || r.PhoneNumber == "" || r.PetName == "" || r.AppointmentDateTime == nil || r.ServiceID == "" {
		return apperror.Validation("customerName, phoneNumber, petName, appointmentDateTime, and serviceId are required")
	}
	return nil
}

type UpdateBookingRequest struct {
	CustomerName        *string    `json:"customerName"`
	PhoneNumber         *string    `json:"phoneNumber"`
	PetName             *string    `json:"petName"`
	AppointmentDateTime *time.Time `json:"appointmentDateTime"`
	ServiceID           *string    `json:"serviceId"`
	Status              *string    `json:"status"`
	Notes               *string    `json:"notes"`
}

func (r *UpdateBookingRequest) toDomain() booking.UpdateRequest {
	req := booking.UpdateRequest{
		CustomerName:        r.CustomerName,
		PhoneNumber:         r.PhoneNumber,
		PetName:             r.PetName,
		AppointmentDateTime: r.AppointmentDateTime,
		ServiceID:           r.ServiceID,
		Notes:               r.Notes,
	}
	if r.Status != nil {
		st := booking.Status(*r.Status)
		req.Status = &st
	}
	return req
}
