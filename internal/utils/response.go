package utils

import (
	"net/http"

	"github.com/osa911/astrobooking/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleMessage sends a success response with just a message
func HandleMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message))
}

// HandleValidationErrors sends every violated constraint back to the client
func HandleValidationErrors(c *gin.Context, errors []string) {
	c.JSON(http.StatusBadRequest, common.NewValidationErrorResponse(errors))
}

// HandleError sends a failure response with a client-safe message
func HandleError(c *gin.Context, status int, message string) {
	c.JSON(status, common.NewErrorResponse(message))
}
