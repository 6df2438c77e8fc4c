package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/apperror"
)

// Error sends a JSON error envelope.
// It checks if the error is an AppError to determine the status code.
// If it's not an AppError, it defaults to 500 Internal Server Error.
func Error(c *gin.Context, err error) {
	ErrorWithMessage(c, err, "internal server error")
}

// ErrorWithMessage behaves like Error but uses message for unexpected failures.
// The underlying error text is passed through in the errors array.
func ErrorWithMessage(c *gin.Context, err error, message string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Fail(c, appErr.Code, appErr.Message, appErr.Errors...)
		return
	}

	log.Printf("request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
	Fail(c, http.StatusInternalServerError, message, err.Error())
}

// BindError reports a request that could not be bound or failed tag validation.
func BindError(c *gin.Context, err error) {
	Fail(c, http.StatusBadRequest, apperror.ValidationMessage, err.Error())
}
