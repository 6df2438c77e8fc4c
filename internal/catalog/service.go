package catalog

import (
	"context"
	"strings"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
)

type CreateRequest struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Duration    *int  // defaults to DefaultDuration
	Available   *bool // defaults to true
}

// UpdateRequest carries a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Duration    *int
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CareService, error)
	GetByID(ctx context.Context, id string) (*CareService, error)
	List(ctx context.Context, filter Filter) ([]*CareService, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*CareService, error)
	// Delete removes the service and returns the removed record.
	// Bookings referencing it are left untouched.
	Delete(ctx context.Context, id string) (*CareService, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CareService, error) {
	cs := &CareService{
		ID:          objectid.New(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Duration:    DefaultDuration,
		Available:   true,
	}
	if req.Duration != nil {
		cs.Duration = *req.Duration
	}
	if req.Available != nil {
		cs.Available = *req.Available
	}

	if problems := Validate(cs); len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}

	if err := s.repo.Create(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*CareService, error) {
	return s.repo.GetByID(ctx, objectid.Normalize(id))
}

func (s *service) List(ctx context.Context, filter Filter) ([]*CareService, error) {
	services, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, ErrNoServices
	}
	return services, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*CareService, error) {
	cs, err := s.repo.GetByID(ctx, objectid.Normalize(id))
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		cs.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		cs.Description = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		cs.Price = *req.Price
	}
	if req.ImageURL != nil {
		cs.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Duration != nil {
		cs.Duration = *req.Duration
	}
	if req.Available != nil {
		cs.Available = *req.Available
	}

	if problems := Validate(cs); len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}

	if err := s.repo.Update(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *service) Delete(ctx context.Context, id string) (*CareService, error) {
	cs, err := s.repo.GetByID(ctx, objectid.Normalize(id))
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, cs.ID); err != nil {
		return nil, err
	}
	return cs, nil
}
