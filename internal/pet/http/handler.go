package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/file"
	fileHttp "github.com/nekogravitycat/petcare-booking-backend/internal/file/http"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pet"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
)

type Handler struct {
	service        pet.Service
	fileHandler    *fileHttp.Handler
	maxUploadBytes int64
}

func NewHandler(service pet.Service, fileHandler *fileHttp.Handler, maxUploadBytes int64) *Handler {
	return &Handler{
		service:        service,
		fileHandler:    fileHandler,
		maxUploadBytes: maxUploadBytes,
	}
}

func bindID(c *gin.Context) (string, bool) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid pet ID")
		return "", false
	}
	return req.ID, true
}

func (h *Handler) List(c *gin.Context) {
	var req ListPetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	pets, err := h.service.List(c.Request.Context(), pet.Filter{OwnerID: req.Owner})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error fetching pets")
		return
	}

	items := make([]PetResponse, len(pets))
	for i, p := range pets {
		items[i] = NewPetResponse(p)
	}
	response.List(c, "Pets retrieved successfully", items)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMessage(c, err, "Error fetching pet")
		return
	}

	response.OK(c, "Pet retrieved successfully", NewPetResponse(p))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID := auth.GetUserID(c)
	if body.Owner != "" && objectid.Normalize(body.Owner) != userID {
		response.Fail(c, http.StatusForbidden, "owner must match the authenticated user")
		return
	}

	p, err := h.service.Create(c.Request.Context(), pet.CreateRequest{
		Name:    body.Name,
		Age:     *body.Age,
		Breed:   body.Breed,
		Image:   body.Image,
		OwnerID: userID,
	})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error creating pet")
		return
	}

	response.Created(c, "Pet created", NewPetResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var body UpdatePetRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, pet.UpdateRequest{
		Name:  body.Name,
		Age:   body.Age,
		Breed: body.Breed,
		Image: body.Image,
	}, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.ErrorWithMessage(c, err, "Error updating pet")
		return
	}

	response.OK(c, "Pet updated", NewPetResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	p, err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		response.ErrorWithMessage(c, err, "Error deleting pet")
		return
	}

	response.OK(c, "Pet deleted", NewPetResponse(p))
}

// UploadImage stores the multipart "cover" image and links it to the pet.
func (h *Handler) UploadImage(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	userID, isAdmin := auth.GetUserID(c), auth.IsAdmin(c)
	if _, err := h.service.Authorize(c.Request.Context(), id, userID, isAdmin); err != nil {
		response.ErrorWithMessage(c, err, "Error uploading pet image")
		return
	}

	h.fileHandler.HandleFileUpload(c, fileHttp.UploadConfig{
		FormFieldName: "cover",
		MaxSizeBytes:  h.maxUploadBytes,
		AllowedTypes:  file.ImageTypes,
		Message:       "Pet image uploaded",
		AfterUpload: func(ctx context.Context, f *file.File) (any, error) {
			p, err := h.service.AttachImage(ctx, id, file.FileURL(f.ID), userID, isAdmin)
			if err != nil {
				return nil, err
			}
			return NewPetResponse(p), nil
		},
	})
}
