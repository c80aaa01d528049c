package routes

import (
	"github.com/osa911/astrobooking/internal/api/middleware"
	"github.com/osa911/astrobooking/internal/logging"
	coremw "github.com/osa911/astrobooking/internal/middleware"
	"github.com/osa911/astrobooking/internal/telemetry"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)

	api := router.Group("/api")

	SetupBookingRoutes(api, h.Booking, m)
	SetupContactRoutes(api, h.Contact, m)
	SetupPaymentRoutes(api, h.Payment)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, frontendURL string, m *Middleware) {
	router.Use(coremw.Recovery(logger))
	router.Use(otelgin.Middleware(telemetry.ServiceName))
	router.Use(coremw.RequestID())
	router.Use(coremw.Logger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(frontendURL))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(m.GlobalRateLimit)
}
