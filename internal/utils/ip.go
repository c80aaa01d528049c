package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// GetRealIP extracts the client IP from proxy headers, falling back to the
// connection address. Rate limits are keyed by this value.
func GetRealIP(c *gin.Context) string {
	// X-Real-IP is set by the fronting proxy
	ip := c.GetHeader("X-Real-IP")
	if ip != "" {
		return ip
	}

	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		// Format: client, proxy1, proxy2, ...
		ips := strings.Split(forwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return clientIP
		}
	}

	return c.ClientIP()
}
