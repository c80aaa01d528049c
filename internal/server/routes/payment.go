package routes

import (
	"github.com/osa911/astrobooking/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(router *gin.RouterGroup, payment *handlers.PaymentHandler) {
	router.GET("/payment-config", payment.GetConfig)
}
