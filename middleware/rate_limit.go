package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	rateLimitPeriod = 1 * time.Minute
	rateLimitCount  = 5 // per IP per period
)

// RateLimiter throttles per client IP: a redis INCR window when redis is
// up, an in-process token bucket otherwise.
func RateLimiter(client *redis.Client) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = map[string]*rate.Limiter{}
	)
	local := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(rate.Every(rateLimitPeriod/rateLimitCount), rateLimitCount)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if client == nil {
			if !local(ip).Allow() {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
				return
			}
			c.Next()
			return
		}

		key := "rate_limit:" + ip
		count, err := client.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis hiccup: fail open.
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(c.Request.Context(), key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
