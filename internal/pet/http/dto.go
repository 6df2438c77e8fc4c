package http

import (
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pet"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	userHttp "github.com/nekogravitycat/petcare-booking-backend/internal/user/http"
)

type ListPetsRequest struct {
	Owner string `form:"owner"`
}

type PetResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Age       float64          `json:"age"`
	Breed     string           `json:"breed"`
	Image     string           `json:"image,omitempty"`
	Owner     userHttp.UserTag `json:"owner"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func NewPetResponse(p *pet.Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Breed:     p.Breed,
		Image:     p.Image,
		Owner:     userHttp.UserTag{ID: p.OwnerID, Username: p.OwnerUsername},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type CreatePetRequest struct {
	Name  string   `json:"name"`
	Age   *float64 `json:"age"`
	Breed string   `json:"breed"`
	Image string   `json:"image"`
	Owner string   `json:"owner"` // must match the caller when present
}

func (r *CreatePetRequest) Validate() error {
	if r.Name == "" || r.Age == nil || r.Breed == "" {
		return apperror.Validation("name, age and breed are required")
	}
	return nil
}

type UpdatePetRequest struct {
	Name  *string  `json:"name"`
	Age   *float64 `json:"age"`
	Breed *string  `json:"breed"`
	Image *string  `json:"image"`
}
