package middleware

import (
	"net/http"
	"time"

	"github.com/osa911/astrobooking/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins are the frontends always allowed to call the API
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"https://astrosharma.vercel.app",
}

// CORS allows the known frontends plus frontendURL. With no frontendURL
// configured every origin is allowed.
func CORS(frontendURL string) gin.HandlerFunc {
	allowed := append([]string(nil), DefaultAllowedOrigins...)
	if frontendURL != "" {
		allowed = append(allowed, utils.NormalizeOrigin(frontendURL))
	}

	config := cors.DefaultConfig()
	config.AllowOriginFunc = func(origin string) bool {
		if frontendURL == "" {
			return true
		}
		return utils.OriginAllowed(origin, allowed)
	}
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Content-Type", "Authorization"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	return cors.New(config)
}
