package pet

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "Pet not found")
	ErrInvalidOwnerID   = apperror.New(http.StatusBadRequest, "Invalid owner ID format")
	ErrInvalidAge       = apperror.New(http.StatusBadRequest, "Age must be a non-negative number")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Pet struct {
	ID            string
	Name          string
	Age           float64
	Breed         string
	Image         string
	OwnerID       string
	OwnerUsername string // populated on reads
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter narrows List. An empty OwnerID lists every pet.
type Filter struct {
	OwnerID string
}
