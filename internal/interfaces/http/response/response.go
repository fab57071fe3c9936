package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "orderlink.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Anything that is not an AppError becomes
// an opaque 500.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else if errors.Is(err, domainerrors.ErrNotFound) {
		appErr = domainerrors.NotFound("resource not found")
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

// ErrorWithStatus sends an error response with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"message": message,
		"error":   message,
	})
}
