package catalog

import (
	"net/http"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound   = apperror.New(http.StatusNotFound, "Service not found")
	ErrNoServices = apperror.New(http.StatusNotFound, "No services found")
)

const (
	MinNameLength        = 3
	MinDescriptionLength = 10
	MinDuration          = 15
	DefaultDuration      = 60
)

// CareService is a bookable offering such as grooming or a bath.
type CareService struct {
	ID          string
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Duration    int // minutes
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing services.
type Filter struct {
	Available *bool
}
