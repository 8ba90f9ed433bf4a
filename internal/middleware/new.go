package middleware

import (
	"taskdeck/config"
	"taskdeck/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set from config.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin),
	}
}
