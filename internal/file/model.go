package file

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "File not found")
	ErrNoThumbnail       = apperror.New(http.StatusNotFound, "Thumbnail not available for this file")
	ErrFileTooLarge      = apperror.New(http.StatusRequestEntityTooLarge, "File size exceeds the upload limit")
	ErrUnsupportedType   = apperror.New(http.StatusBadRequest, "Only image files (jpeg, jpg, png, gif, webp) are allowed")
	ErrMissingUploadFile = apperror.New(http.StatusBadRequest, "No file uploaded")
)

// ImageTypes maps accepted image extensions to their MIME types.
var ImageTypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// File is the metadata of a stored upload.
type File struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// UploadInput describes a single upload and the limits applied to it.
type UploadInput struct {
	FileHeader   *multipart.FileHeader
	UserID       string
	MaxSizeBytes int64             // 0 = no limit
	AllowedTypes map[string]string // extension -> MIME type, empty = allow all
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/files/" + id + "/thumbnail"
}
