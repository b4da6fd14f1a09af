package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/scholardesk/research-hub-api/pkg/errors"
)

// The frontend consumes unwrapped bodies: arrays and objects directly,
// {"error": ...} on failure and {"message": ...} for deletions.

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message sends a 200 with a confirmation message.
func Message(c *gin.Context, msg string) {
	JSON(c, http.StatusOK, gin.H{"message": msg})
}

// Error maps the error onto its HTTP status with a flat error body.
// Internal detail stays server-side; the client sees the typed message only.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
