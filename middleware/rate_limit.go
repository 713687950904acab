package middleware

import (
	"Shotshelf/pkg/response"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/time/rate"
)

const limiterIdle = 5 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimit 按客户端 IP 的令牌桶限流，保护调用外部模型和 Figma 的接口
func RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute < 1 {
		perMinute = 1
	}
	limit := rate.Every(time.Minute / time.Duration(perMinute))
	burst := max(perMinute/2, 1)

	limiters := cmap.New[*ipLimiter]()
	var lastSweep atomic.Int64
	lastSweep.Store(time.Now().UnixNano())

	return func(c *gin.Context) {
		now := time.Now()
		sweepIdle(limiters, &lastSweep, now)

		l := limiters.Upsert(c.ClientIP(), nil, func(exist bool, old *ipLimiter, _ *ipLimiter) *ipLimiter {
			if exist {
				return old
			}
			return &ipLimiter{limiter: rate.NewLimiter(limit, burst)}
		})
		l.lastSeen.Store(now.UnixNano())

		if !l.limiter.AllowN(now, 1) {
			response.Abort(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		c.Next()
	}
}

// sweepIdle 每分钟最多清理一次长时间没有请求的 IP
func sweepIdle(limiters cmap.ConcurrentMap[string, *ipLimiter], lastSweep *atomic.Int64, now time.Time) {
	last := lastSweep.Load()
	if now.UnixNano()-last < int64(time.Minute) || !lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	deadline := now.Add(-limiterIdle).UnixNano()
	for item := range limiters.IterBuffered() {
		if item.Val.lastSeen.Load() < deadline {
			limiters.RemoveCb(item.Key, func(_ string, v *ipLimiter, exists bool) bool {
				return exists && v.lastSeen.Load() < deadline
			})
		}
	}
}
