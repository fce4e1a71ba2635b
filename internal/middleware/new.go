package middleware

import (
	"github.com/giorgi26/Planner/pkg/log"
)

// Config configures the middleware set.
type Config struct {
	// RateLimitPerMin caps requests per client per minute. Zero disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.rateLimiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
