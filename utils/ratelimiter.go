package utils

import "time"

// RateLimiter spaces out consecutive requests to the same site so the run
// stays polite even though every fetch is sequential
type RateLimiter struct {
	lastCall time.Time
	delay    time.Duration
}

// NewRateLimiter creates a RateLimiter with the given minimum gap
func NewRateLimiter(delay time.Duration) *RateLimiter {
	return &RateLimiter{delay: delay}
}

// Wait blocks until enough time has passed since the last request
func (r *RateLimiter) Wait() {
	elapsed := time.Since(r.lastCall)
	if elapsed < r.delay {
		time.Sleep(r.delay - elapsed)
	}
	r.lastCall = time.Now()
}
