package http

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/auth"
	"github.com/nekogravitycat/petcare-booking-backend/internal/file"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/request"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/response"
)

type Handler struct {
	fileService file.Service
}

func NewHandler(fileService file.Service) *Handler {
	return &Handler{fileService: fileService}
}

// UploadConfig defines how HandleFileUpload reads and stores one file.
type UploadConfig struct {
	FormFieldName string            // default: "file"
	MaxSizeBytes  int64             // 0 = no limit
	AllowedTypes  map[string]string // extension -> MIME type, empty = allow all
	// AfterUpload links the stored file to its owner entity and returns the data to respond with.
	// A failing hook removes the stored file again.
	AfterUpload func(ctx context.Context, f *file.File) (any, error)
	Message     string
}

// HandleFileUpload stores the uploaded file and runs the after-upload hook.
func (h *Handler) HandleFileUpload(c *gin.Context, cfg UploadConfig) {
	fieldName := cfg.FormFieldName
	if fieldName == "" {
		fieldName = "file"
	}

	fileHeader, err := c.FormFile(fieldName)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "No file uploaded", fieldName+" is required")
		return
	}

	f, err := h.fileService.Upload(c.Request.Context(), file.UploadInput{
		FileHeader:   fileHeader,
		UserID:       auth.GetUserID(c),
		MaxSizeBytes: cfg.MaxSizeBytes,
		AllowedTypes: cfg.AllowedTypes,
	})
	if err != nil {
		response.ErrorWithMessage(c, err, "Error uploading file")
		return
	}

	var data any = NewFileResponse(f)
	if cfg.AfterUpload != nil {
		data, err = cfg.AfterUpload(c.Request.Context(), f)
		if err != nil {
			_ = h.fileService.Delete(c.Request.Context(), f.ID)
			response.ErrorWithMessage(c, err, "Error uploading file")
			return
		}
	}

	msg := cfg.Message
	if msg == "" {
		msg = "File uploaded successfully"
	}
	response.OK(c, msg, data)
}

// ServeFile streams the stored file.
func (h *Handler) ServeFile(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid file ID format")
		return
	}

	stream, info, err := h.fileService.Download(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", info.ContentType)
	c.Header("Content-Disposition", "inline; filename=\""+info.Filename+"\"")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		log.Printf("stream file %s: %v", info.ID, err)
	}
}

// ServeThumbnail streams the JPEG thumbnail of an image file.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid file ID format")
		return
	}

	stream, info, err := h.fileService.DownloadThumbnail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", "inline; filename=\""+info.Filename+"_thumb.jpg\"")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, stream); err != nil {
		log.Printf("stream thumbnail %s: %v", info.ID, err)
	}
}
