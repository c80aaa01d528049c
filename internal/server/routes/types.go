package routes

import (
	"github.com/osa911/astrobooking/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers contains all the route handlers
type Handlers struct {
	Booking *handlers.BookingHandler
	Contact *handlers.ContactHandler
	Payment *handlers.PaymentHandler
	Health  *handlers.HealthHandler
}

// Middleware contains the middleware applied per route group
type Middleware struct {
	GlobalRateLimit     gin.HandlerFunc
	SubmissionRateLimit gin.HandlerFunc
	BodyLimit           gin.HandlerFunc
}
