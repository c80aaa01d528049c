package handlers

import (
	"net/http"

	"github.com/osa911/astrobooking/internal/api/dto/v1/payment"
	"github.com/osa911/astrobooking/internal/models"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	config models.PaymentConfig
}

func NewPaymentHandler(config models.PaymentConfig) *PaymentHandler {
	return &PaymentHandler{config: config}
}

// GetConfig returns the UPI details the frontend shows for payment
func (h *PaymentHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, payment.PaymentConfigResponse{
		UPIID:        h.config.UPIID,
		MerchantName: h.config.MerchantName,
	})
}
