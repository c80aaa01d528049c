package handlers

import (
	"net/http"

	"github.com/osa911/astrobooking/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	transport string
}

func NewHealthHandler(transport string) *HealthHandler {
	return &HealthHandler{transport: transport}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"transport": h.transport,
		"version":   version.GetBuildInfo(),
	})
}
