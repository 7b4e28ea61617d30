package middleware

import (
	"telegram-bot-framework/pkg/log"
)

// Config holds the security settings shared by the public routes.
type Config struct {
	// RateLimitPerMin is the per client budget. Zero disables limiting.
	RateLimitPerMin int
	// SecretToken must match X-Telegram-Bot-Api-Secret-Token on webhook
	// calls. Empty disables the check.
	SecretToken string
}

type Middleware struct {
	l           log.Logger
	limiter     *rateLimiter
	secretToken string
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		secretToken: cfg.SecretToken,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
