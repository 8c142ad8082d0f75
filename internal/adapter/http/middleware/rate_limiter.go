package middleware

import (
	"net/http"
	"sync"
	"time"

	"homeez_booking/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Rate limit exceeded. Try again later.", http.StatusTooManyRequests)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	logger   *zap.Logger
}

// NewRateLimiter allows perMinute requests per IP with a burst of the same size.
func NewRateLimiter(perMinute int, logger *zap.Logger) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 100
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		logger:   logger,
	}
}

func (r *RateLimiter) limiter(ip string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.limiters[ip]
	if !ok {
		l = rate.NewLimiter(r.limit, r.burst)
		r.limiters[ip] = l
	}
	return l
}

func (r *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !r.limiter(ip).Allow() {
			r.logger.Warn("[http][middleware] rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
