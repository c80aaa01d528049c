package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osa911/astrobooking/internal/api/dto/common"
	"github.com/osa911/astrobooking/internal/logging"
	"github.com/osa911/astrobooking/internal/ratelimit"
	"github.com/osa911/astrobooking/internal/utils"

	"github.com/gin-gonic/gin"
)

// GlobalLimitMessage is the plain text body sent when the global quota is spent
const GlobalLimitMessage = "Too many requests from this IP, please try again after 15 minutes"

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	Policy ratelimit.Policy
	Store  ratelimit.Store
	// OnLimit writes the rejection. Defaults to a JSON error body.
	OnLimit func(c *gin.Context)
}

// RateLimitMiddleware counts requests per client IP and rejects those over
// the policy with 429. Store failures let the request through.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	onLimit := config.OnLimit
	if onLimit == nil {
		onLimit = func(c *gin.Context) {
			utils.HandleError(c, http.StatusTooManyRequests, common.MsgTooManyRequests)
		}
	}

	return func(c *gin.Context) {
		decision, err := config.Store.Take(c.Request.Context(), config.Policy, utils.GetRealIP(c))
		if err != nil {
			logging.GetLogger().Warn("Rate limit store unavailable for %s policy: %v", config.Policy.Name, err)
			c.Next()
			return
		}

		c.Header("RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		c.Header("RateLimit-Reset", strconv.Itoa(decision.ResetAfter(time.Now())))

		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(decision.ResetAfter(time.Now())))
			onLimit(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GlobalRateLimit applies the whole-API quota with a plain text rejection
func GlobalRateLimit(store ratelimit.Store) gin.HandlerFunc {
	return RateLimitMiddleware(RateLimitConfig{
		Policy: ratelimit.GlobalPolicy,
		Store:  store,
		OnLimit: func(c *gin.Context) {
			c.String(http.StatusTooManyRequests, GlobalLimitMessage)
		},
	})
}

// SubmissionRateLimit applies the stricter quota of the form endpoints
func SubmissionRateLimit(store ratelimit.Store) gin.HandlerFunc {
	return RateLimitMiddleware(RateLimitConfig{
		Policy: ratelimit.SubmissionPolicy,
		Store:  store,
	})
}
