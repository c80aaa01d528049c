package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds the standard hardening headers to every response
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent clickjacking attacks
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		// The API only returns JSON, nothing needs to load
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'self'")

		c.Header("Cross-Origin-Opener-Policy", "same-origin")
		c.Header("Cross-Origin-Resource-Policy", "same-origin")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("X-DNS-Prefetch-Control", "off")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")
		c.Header("X-XSS-Protection", "0")

		c.Next()
	}
}
