package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/booking"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// bindID binds the booking id path parameter, answering 400 on a malformed id.
func bindID(c *gin.Context) (string, bool) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid booking ID format")
		return "", false
	}
	return req.ID, true
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	// The owner is always the authenticated caller.
	userID := auth.GetUserID(c)
	if body.Owner != "" && objectid.Normalize(body.Owner) != userID {
		response.Fail(c, http.StatusForbidden, "owner must match the authenticated user")
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		CustomerName:        body.CustomerName,
		PhoneNumber:         body.PhoneNumber,
		PetName:             body.PetName,
		AppointmentDateTime: *body.AppointmentDateTime,
		ServiceID:           body.ServiceID,
		OwnerID:             userID,
		Notes:               body.Notes,
	})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error creating booking")
		return
	}

	response.Created(c, "Booking created successfully", NewBookingResponse(b))
}

// List returns every booking. Access Control: admin only.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	bookings, err := h.service.List(c.Request.Context(), booking.Filter{
		Status:    booking.Status(req.Status),
		ServiceID: req.ServiceID,
		SortBy:    sortKeys[req.SortBy],
	})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error retrieving bookings")
		return
	}

	response.List(c, "All bookings retrieved successfully", newBookingResponses(bookings))
}

func (h *Handler) ListByUser(c *gin.Context) {
	var uri ByUserRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	ownerID := objectid.Normalize(uri.User)
	if !auth.CanAccess(c, ownerID) {
		response.Fail(c, http.StatusForbidden, "permission denied")
		return
	}

	bookings, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.ErrorWithMessage(c, err, "Error retrieving user bookings")
		return
	}

	response.List(c, "User bookings retrieved successfully", newBookingResponses(bookings))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMessage(c, err, "Error retrieving booking")
		return
	}

	if !auth.CanAccess(c, b.OwnerID) {
		response.Fail(c, http.StatusForbidden, "permission denied")
		return
	}

	response.OK(c, "Booking retrieved successfully", NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, body.toDomain(), auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.ErrorWithMessage(c, err, "Error updating booking")
		return
	}

	response.OK(c, "Booking updated successfully", NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.ErrorWithMessage(c, err, "Error cancelling booking")
		return
	}

	response.OK(c, "Booking cancelled successfully", NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	b, err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.ErrorWithMessage(c, err, "Error deleting booking")
		return
	}

	response.OK(c, "Booking deleted successfully", NewBookingResponse(b))
}
