package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response body. Every endpoint, success or failure,
// answers with this shape.
type Envelope struct {
	Success bool        `json:"success"`
	Msg     string      `json:"msg,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a success envelope with the given status.
func Success(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, Envelope{Success: true, Msg: msg, Data: data})
}

func respond(c *gin.Context, status int, msg string) {
	c.JSON(status, Envelope{Success: false, Msg: msg})
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	respond(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied. Please login to continue."
	}
	respond(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access denied."
	}
	respond(c, http.StatusForbidden, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	respond(c, http.StatusNotFound, message)
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	respond(c, http.StatusConflict, message)
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	respond(c, http.StatusInternalServerError, message)
}

// ServerConfiguration sends a 500 response for missing or broken process
// configuration, without leaking what is missing.
func ServerConfiguration(c *gin.Context) {
	respond(c, http.StatusInternalServerError, "Server configuration error. Please contact administrator.")
}
