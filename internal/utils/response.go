package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body shape for human-readable outcomes.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the body shape for failures. The error field carries a
// generic message only; internal detail stays in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Message sends a 200 response with a confirmation message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Msg: msg})
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ErrorResponse{Error: errorMessage})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, errorMessage string) {
	Error(c, http.StatusConflict, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
