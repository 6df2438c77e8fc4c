package pet

import (
	"context"
	"strings"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
)

type CreateRequest struct {
	Name    string
	Age     float64
	Breed   string
	Image   string
	OwnerID string
}

// UpdateRequest carries a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	Name  *string
	Age   *float64
	Breed *string
	Image *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Pet, error)
	GetByID(ctx context.Context, id string) (*Pet, error)
	List(ctx context.Context, filter Filter) ([]*Pet, error)
	// Authorize returns the pet when the actor may modify it.
	Authorize(ctx context.Context, id, actorID string, isAdmin bool) (*Pet, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Pet, error)
	AttachImage(ctx context.Context, id, image, actorID string, isAdmin bool) (*Pet, error)
	Delete(ctx context.Context, id, actorID string, isAdmin bool) (*Pet, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Pet, error) {
	p := &Pet{
		ID:      objectid.New(),
		Name:    strings.TrimSpace(req.Name),
		Age:     req.Age,
		Breed:   strings.TrimSpace(req.Breed),
		Image:   strings.TrimSpace(req.Image),
		OwnerID: objectid.Normalize(req.OwnerID),
	}

	var problems []string
	if p.Name == "" {
		problems = append(problems, "Pet name is required")
	}
	if p.Breed == "" {
		problems = append(problems, "Breed is required")
	}
	if !objectid.IsValid(p.OwnerID) {
		problems = append(problems, "Invalid owner ID format")
	}
	if len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}
	if p.Age < 0 {
		return nil, ErrInvalidAge
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, p.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Pet, error) {
	return s.repo.GetByID(ctx, objectid.Normalize(id))
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Pet, error) {
	if filter.OwnerID != "" {
		filter.OwnerID = objectid.Normalize(filter.OwnerID)
		if !objectid.IsValid(filter.OwnerID) {
			return nil, ErrInvalidOwnerID
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Authorize(ctx context.Context, id, actorID string, isAdmin bool) (*Pet, error) {
	p, err := s.repo.GetByID(ctx, objectid.Normalize(id))
	if err != nil {
		return nil, err
	}
	if !isAdmin && p.OwnerID != actorID {
		return nil, ErrPermissionDenied
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string, isAdmin bool) (*Pet, error) {
	p, err := s.Authorize(ctx, id, actorID, isAdmin)
	if err != nil {
		return nil, err
	}

	var problems []string
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
		if p.Name == "" {
			problems = append(problems, "Pet name is required")
		}
	}
	if req.Breed != nil {
		p.Breed = strings.TrimSpace(*req.Breed)
		if p.Breed == "" {
			problems = append(problems, "Breed is required")
		}
	}
	if len(problems) > 0 {
		return nil, apperror.Validation(problems...)
	}
	if req.Age != nil {
		if *req.Age < 0 {
			return nil, ErrInvalidAge
		}
		p.Age = *req.Age
	}
	if req.Image != nil {
		p.Image = strings.TrimSpace(*req.Image)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) AttachImage(ctx context.Context, id, image, actorID string, isAdmin bool) (*Pet, error) {
	return s.Update(ctx, id, UpdateRequest{Image: &image}, actorID, isAdmin)
}

func (s *service) Delete(ctx context.Context, id, actorID string, isAdmin bool) (*Pet, error) {
	p, err := s.Authorize(ctx, id, actorID, isAdmin)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}
