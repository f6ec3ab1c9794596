// Package ratelimit counts attempts per key in fixed windows. The first hit
// opens a window; every hit inside it counts; the window is never reset early.
package ratelimit

import (
	"context"
	"time"
)

// Result describes the outcome of one counted attempt.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration // time until the current window closes
}

// Limiter counts one attempt for key and reports whether it is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// Config holds the window and the number of attempts allowed inside it.
type Config struct {
	Window time.Duration
	Max    int
}

func result(count, limit int, retryAfter time.Duration) Result {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:    count <= limit,
		Remaining:  remaining,
		RetryAfter: retryAfter,
	}
}

// RetryAfterSeconds rounds d up to whole seconds, at least 1.
func RetryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}
