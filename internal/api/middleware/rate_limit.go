package middleware

import (
	"fmt"
	"math"
	"time"

	"cleanup-estimator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxTrackedClients 同時追蹤的用戶端上限，超過時淘汰最久未出現的
const maxTrackedClients = 10000

// RateLimiter 以用戶端 IP 區分的令牌桶
type RateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewRateLimiter 每個 window 最多 requests 次請求
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	cache, _ := lru.New[string, *rate.Limiter](maxTrackedClients)
	return &RateLimiter{
		limiters: cache,
		limit:    rate.Limit(float64(requests) / window.Seconds()),
		burst:    requests,
	}
}

// Allow 檢查是否允許請求
func (rl *RateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.limit, rl.burst)
		if prev, found, _ := rl.limiters.PeekOrAdd(key, limiter); found {
			limiter = prev
		}
	}
	return limiter.Allow()
}

// RateLimit 限流中間件
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)
	retryAfter := int(math.Ceil(window.Seconds() / float64(requests)))

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			common.LogInfo("Rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.AbortWithStatusJSON(common.ErrTooManyRequests.Status, common.ErrorResponse{
				Success: false,
				Code:    common.ErrTooManyRequests.Code,
				Error:   common.ErrTooManyRequests.Message,
			})
			return
		}

		c.Next()
	}
}
