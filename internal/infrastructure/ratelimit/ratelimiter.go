package ratelimit

import "context"

// Config bounds request counts over fixed windows. Zero disables a window.
type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

// Limiter decides whether a keyed request may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
}
