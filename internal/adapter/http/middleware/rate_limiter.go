package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"taskapi/pkg/logging"
	"taskapi/pkg/tracing"
)

// Quota is a fixed-window policy: at most Requests per Window per key.
type Quota struct {
	Requests int
	Window   time.Duration
}

type KeyFunc func(*gin.Context) string

func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter keeps per-key window counters in an expiring in-process cache.
// It is constructed once and shared; the per-route policy comes from the
// Middleware call, not from the limiter itself.
type RateLimiter struct {
	cache   *cache.Cache
	logger  *logging.AppLogger
	metrics *tracing.AppMetrics
	mutex   sync.Mutex
}

func NewRateLimiter(logger *logging.AppLogger, metrics *tracing.AppMetrics) *RateLimiter {
	return &RateLimiter{
		cache:   cache.New(time.Hour, 2*time.Hour),
		logger:  logger,
		metrics: metrics,
	}
}

// Middleware enforces quota for requests keyed by keyFunc, independent of
// the wrapped handler's business logic.
func (rl *RateLimiter) Middleware(quota Quota, keyFunc KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		key := fmt.Sprintf("rate_limit:%s %s:%s", c.Request.Method, path, keyFunc(c))

		allowed, remaining, resetTime := rl.check(key, quota)

		c.Header("X-RateLimit-Limit", strconv.Itoa(quota.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(c.Request.Context(), path, "ip")
			}

			rl.logger.Logger.Ctx(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", path),
				zap.Int("limit", quota.Requests),
				zap.Duration("window", quota.Window),
			)

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Limit: %d per %v", quota.Requests, quota.Window),
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			c.Abort()
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(c.Request.Context(), path, "ip")
		}

		c.Next()
	}
}

func (rl *RateLimiter) check(key string, quota Quota) (bool, int, time.Time) {
	now := time.Now()

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if found, ok := rl.cache.Get(key); ok {
		entry := found.(rateLimitEntry)

		if now.After(entry.ResetTime) {
			fresh := rateLimitEntry{Count: 1, ResetTime: now.Add(quota.Window)}
			rl.cache.Set(key, fresh, quota.Window)

			return true, quota.Requests - 1, fresh.ResetTime
		}

		if entry.Count >= quota.Requests {
			return false, 0, entry.ResetTime
		}

		entry.Count++
		rl.cache.Set(key, entry, cache.DefaultExpiration)

		return true, quota.Requests - entry.Count, entry.ResetTime
	}

	fresh := rateLimitEntry{Count: 1, ResetTime: now.Add(quota.Window)}
	rl.cache.Set(key, fresh, quota.Window)

	return true, quota.Requests - 1, fresh.ResetTime
}
