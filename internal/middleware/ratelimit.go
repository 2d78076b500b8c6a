package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RateLimit creates a Gin middleware that rate limits requests per caller.
// Authenticated callers are keyed by their staff or organization identity so
// a shared NAT egress does not starve co-located clinics; anonymous requests
// fall back to the client IP.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := limiterKey(c)

		context, err := limiterInstance.Get(c.Request.Context(), key)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate limit context", slog.String("key", key), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		if context.Reached {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("limit", context.Limit), slog.Int64("remaining_requests", context.Remaining))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}

// limiterKey picks the most specific caller identity available. Staff tokens
// outrank org tokens; a token carrying neither is keyed by its subject.
func limiterKey(c *gin.Context) string {
	if staffID, ok := GetStaffIDFromContext(c); ok {
		return "staff:" + staffID
	}
	if orgID, ok := GetOrgIDFromContext(c); ok {
		return "org:" + orgID
	}
	if userID, ok := GetUserIDFromContext(c); ok {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}
