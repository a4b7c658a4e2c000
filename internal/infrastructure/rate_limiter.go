package infrastructure

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// SenderRateLimiter throttles inbound messages per sender so a single
// flooding number cannot monopolize the engine.
type SenderRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*senderLimiter
	rate     rate.Limit
	burst    int
}

type senderLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewSenderRateLimiter(perSecond float64, burst int) *SenderRateLimiter {
	rl := &SenderRateLimiter{
		limiters: make(map[string]*senderLimiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether the sender may submit another message now.
func (rl *SenderRateLimiter) Allow(sender string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	sl, ok := rl.limiters[sender]
	if !ok {
		sl = &senderLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[sender] = sl
	}
	sl.lastSeen = time.Now()
	return sl.limiter.Allow()
}

// cleanup drops limiters idle for more than an hour.
func (rl *SenderRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		rl.mu.Lock()
		for sender, sl := range rl.limiters {
			if sl.lastSeen.Before(cutoff) {
				delete(rl.limiters, sender)
			}
		}
		rl.mu.Unlock()
	}
}
