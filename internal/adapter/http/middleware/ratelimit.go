package middleware

import (
	"context"
	"net/http"

	"waste_pickup/pkg"

	"github.com/gin-gonic/gin"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)

type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// RateLimit throttles by client IP. A nil limiter disables throttling.
func RateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		if !l.Allow(c.Request.Context(), c.ClientIP()) {
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
