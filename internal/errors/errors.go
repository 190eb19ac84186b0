package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError represents a user-facing API error. Messages are localized strings
// returned verbatim in the response body.
type APIError struct {
	Message string `json:"error"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

// RespondWithError sends an error response as {"error": message}
func RespondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, NewAPIError(message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	RespondWithError(c, http.StatusUnauthorized, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	RespondWithError(c, http.StatusInternalServerError, message)
}
