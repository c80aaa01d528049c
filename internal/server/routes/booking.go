package routes

import (
	"github.com/osa911/astrobooking/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the consultation booking endpoint
func SetupBookingRoutes(router *gin.RouterGroup, booking *handlers.BookingHandler, m *Middleware) {
	router.POST("/book-consultation",
		m.SubmissionRateLimit,
		m.BodyLimit,
		booking.Book,
	)
}
