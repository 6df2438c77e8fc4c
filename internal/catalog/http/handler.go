package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/catalog"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
)

type Handler struct {
	service catalog.Service
}

func NewHandler(service catalog.Service) *Handler {
	return &Handler{service: service}
}

func toResponses(services []*catalog.CareService) []ServiceResponse {
	items := make([]ServiceResponse, len(services))
	for i, s := range services {
		items[i] = NewServiceResponse(s)
	}
	return items
}

func (h *Handler) List(c *gin.Context) {
	var req ListServicesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	services, err := h.service.List(c.Request.Context(), catalog.Filter{Available: req.Available})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error retrieving services")
		return
	}

	response.List(c, "Services retrieved successfully", toResponses(services))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.ErrorWithMessage(c, err, "Error retrieving service")
		return
	}

	response.OK(c, "Service retrieved successfully", NewServiceResponse(s))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	s, err := h.service.Create(c.Request.Context(), catalog.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		ImageURL:    body.ImageURL,
		Duration:    body.Duration,
		Available:   body.Available,
	})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error creating service")
		return
	}

	response.Created(c, "Service created successfully", NewServiceResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var body UpdateServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BindError(c, err)
		return
	}

	s, err := h.service.Update(c.Request.Context(), uri.ID, catalog.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		ImageURL:    body.ImageURL,
		Duration:    body.Duration,
		Available:   body.Available,
	})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error updating service")
		return
	}

	response.OK(c, "Service updated successfully", NewServiceResponse(s))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	s, err := h.service.Delete(c.Request.Context(), req.ID)
	if err != nil {
		response.ErrorWithMessage(c, err, "Error deleting service")
		return
	}

	response.OK(c, "Service deleted successfully", NewServiceResponse(s))
}
