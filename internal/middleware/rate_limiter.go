package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type LimiterConfig struct {
	RPS     float64       // 每秒補充的令牌數
	Burst   int           // 桶子容量
	IdleTTL time.Duration // key 閒置多久後清除
}

type keyLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 以 key（預設 client IP）分桶的 token bucket，存在記憶體
type RateLimiter struct {
	conf    LimiterConfig
	mu      sync.Mutex
	buckets map[string]*keyLimiter
}

// NewRateLimiter ctx 結束時停止背景清理
func NewRateLimiter(ctx context.Context, conf LimiterConfig) *RateLimiter {
	if conf.IdleTTL <= 0 {
		conf.IdleTTL = 10 * time.Minute
	}
	rl := &RateLimiter{
		conf:    conf,
		buckets: make(map[string]*keyLimiter),
	}

	go func() {
		ticker := time.NewTicker(conf.IdleTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				rl.evictIdle(now)
			}
		}
	}()

	return rl
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for k, v := range rl.buckets {
		if now.Sub(v.lastSeen) > rl.conf.IdleTTL {
			delete(rl.buckets, k)
		}
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets[key]; ok {
		b.lastSeen = now
		return b.limiter
	}

	lim := rate.NewLimiter(rate.Limit(rl.conf.RPS), rl.conf.Burst)
	rl.buckets[key] = &keyLimiter{limiter: lim, lastSeen: now}
	return lim
}

type KeySelector func(c *gin.Context) string

func ClientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

func (rl *RateLimiter) Middleware(selectKey KeySelector) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(selectKey(c)).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
