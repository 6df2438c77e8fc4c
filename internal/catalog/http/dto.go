package http

import (
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

// ListServicesRequest defines query parameters for listing services.
type ListServicesRequest struct {
	Available *bool `form:"available"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Duration    int       `json:"duration"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewServiceResponse(s *catalog.CareService) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		Duration:    s.Duration,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type CreateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Duration    *int     `json:"duration"`
	Available   *bool    `json:"available"`
}

// Validate checks presence of the fields the domain cannot default.
func (r *CreateServiceRequest) Validate() error {
	if r.Name == "" || r.Description == "" || r.Price == nil || r.ImageURL == "" {
		return apperror.Validation("name, description, price, and imageUrl are required fields")
	}
	return nil
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Duration    *int     `json:"duration"`
	Available   *bool    `json:"available"`
}

// ServiceTag is the summary of a service embedded in other resources.
type ServiceTag struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}
