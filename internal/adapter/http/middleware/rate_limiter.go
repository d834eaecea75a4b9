package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/Ezhilarasu1330/React-Todo-App/pkg/logging"
	"github.com/Ezhilarasu1330/React-Todo-App/pkg/metrics"
)

type RateLimitEndpointConfig struct {
	Requests int
	Window   time.Duration
	KeyFunc  func(*gin.Context) string
}

type RateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

// RateLimiter throttles the unauthenticated endpoints per client IP and the
// authenticated ones per user. Buckets live in a go-cache store keyed by
// method, path and caller identity.
type RateLimiter struct {
	cache   *gocache.Cache
	config  map[string]RateLimitEndpointConfig
	logger  *logging.Logger
	metrics *metrics.AppMetrics
	mutex   sync.Mutex
}

func NewRateLimiter(logger *logging.Logger, appMetrics *metrics.AppMetrics) *RateLimiter {
	c := gocache.New(5*time.Minute, 10*time.Minute)

	configs := map[string]RateLimitEndpointConfig{
		"POST /api/signup": {
			Requests: 5,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
		"POST /api/login": {
			Requests: 10,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
		"POST /api/todo": {
			Requests: 20,
			Window:   time.Minute,
			KeyFunc:  userIDOrIP,
		},
		"default": {
			Requests: 60,
			Window:   time.Minute,
			KeyFunc:  clientIP,
		},
	}

	return &RateLimiter{
		cache:   c,
		config:  configs,
		logger:  logger,
		metrics: appMetrics,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()

		if path == "" {
			path = c.Request.URL.Path
		}

		methodPath := c.Request.Method + " " + path

		config, exists := rl.config[methodPath]

		if !exists {
			config = rl.config["default"]
		}

		key := fmt.Sprintf("rate_limit:%s:%s", methodPath, config.KeyFunc(c))

		allowed, remaining, resetTime := rl.check(key, config)

		keyType := "ip"

		if strings.Contains(key, "user_") {
			keyType = "user"
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(c.Request.Context(), path, keyType)
			}

			rl.logger.Ctx(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", path),
				zap.Int("limit", config.Requests),
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     fmt.Sprintf("Too many requests. Limit: %d per %v", config.Requests, config.Window),
				"retry_after": int(time.Until(resetTime).Seconds()),
			})
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(c.Request.Context(), path, keyType)
		}

		c.Next()
	}
}

func (rl *RateLimiter) check(key string, config RateLimitEndpointConfig) (bool, int, time.Time) {
	now := time.Now()

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if entry, found := rl.cache.Get(key); found {
		rateLimitEntry := entry.(RateLimitEntry)

		if now.After(rateLimitEntry.ResetTime) {
			resetTime := now.Add(config.Window)
			rl.cache.Set(key, RateLimitEntry{Count: 1, ResetTime: resetTime}, config.Window)
			return true, config.Requests - 1, resetTime
		}

		if rateLimitEntry.Count >= config.Requests {
			return false, 0, rateLimitEntry.ResetTime
		}

		rateLimitEntry.Count++
		rl.cache.Set(key, rateLimitEntry, gocache.DefaultExpiration)

		return true, config.Requests - rateLimitEntry.Count, rateLimitEntry.ResetTime
	}

	resetTime := now.Add(config.Window)
	rl.cache.Set(key, RateLimitEntry{Count: 1, ResetTime: resetTime}, config.Window)

	return true, config.Requests - 1, resetTime
}

// SetConfig overrides the limits for one endpoint, used by tests.
func (rl *RateLimiter) SetConfig(methodPath string, config RateLimitEndpointConfig) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	rl.config[methodPath] = config
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

func userIDOrIP(c *gin.Context) string {
	if userID := c.GetString(ContextUserIDKey); userID != "" {
		return "user_" + userID
	}

	return c.ClientIP()
}
