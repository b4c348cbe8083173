package middleware

import (
	"assistant-relay/config"
	"assistant-relay/pkg/log"
)

type Middleware struct {
	l       log.Logger
	cfg     config.ChatConfig
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.ChatConfig) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
