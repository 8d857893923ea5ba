package middleware

import (
	"intent-router/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. rateLimitPerMin <= 0 disables rate
// limiting.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var rl *rateLimiter
	if rateLimitPerMin > 0 {
		rl = newRateLimiter(rateLimitPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
