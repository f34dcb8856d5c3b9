package middleware

import (
	"log/slog"
	"sync"
	"time"

	"roomhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// ExpireStaleRooms runs the room expiration sweep at the start of the
// request cycle. There is no background process, so cleanup is
// opportunistic; the interval just keeps the sweep off the hot path of
// every single request.
func ExpireStaleRooms(rooms service.RoomService, ttlDays int, interval time.Duration, logger *slog.Logger) gin.HandlerFunc {
	var mu sync.Mutex
	var lastRun time.Time

	return func(c *gin.Context) {
		now := time.Now()

		mu.Lock()
		due := now.Sub(lastRun) >= interval
		if due {
			lastRun = now
		}
		mu.Unlock()

		if due {
			removed, err := rooms.ExpireStale(now, ttlDays)
			if err != nil {
				logger.Warn("room expiration sweep failed", "error", err)
			}
			if removed > 0 {
				logger.Info("expired stale rooms", "count", removed)
			}
		}

		c.Next()
	}
}
