package ratelimiter

import (
	"sync"
	"time"

	"github.com/papermapper/papermapper/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// frame. The first request of a window starts it; once the limit is hit,
// further requests are rejected until the window expires.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]*windowState
	limit   int
	window  time.Duration
	Enabled bool
	logger  *zap.SugaredLogger
}

type windowState struct {
	count     int
	windowEnd time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	rl := &FixedWindowRateLimiter{
		clients: make(map[string]*windowState),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		Enabled: cfg.Enabled,
		logger:  logger,
	}

	go rl.evictLoop()

	return rl
}

// Allow reports whether clientID may proceed, returning the wait time
// until the window resets when it may not.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	if !rl.Enabled {
		return true, 0
	}

	now := time.Now()

	rl.Lock()
	defer rl.Unlock()

	state, ok := rl.clients[clientID]
	if !ok || now.After(state.windowEnd) {
		rl.clients[clientID] = &windowState{count: 1, windowEnd: now.Add(rl.window)}
		return true, 0
	}

	if state.count >= rl.limit {
		return false, time.Until(state.windowEnd)
	}

	state.count++
	return true, 0
}

// evictLoop drops expired windows so idle clients do not accumulate.
func (rl *FixedWindowRateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()

		rl.Lock()
		for id, state := range rl.clients {
			if now.After(state.windowEnd) {
				delete(rl.clients, id)
			}
		}
		rl.Unlock()
	}
}
