// Package ratelimit throttles abuse-prone public endpoints, primarily the
// anonymous ticket submission form.
package ratelimit

import "time"

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

// AllowAllLimiter is the fallback when Redis is disabled.
type AllowAllLimiter struct{}

func NewAllowAllLimiter() RateLimiter {
	return &AllowAllLimiter{}
}

func (l *AllowAllLimiter) Allow(string, RateLimitConfig) (bool, error) {
	return true, nil
}

func (l *AllowAllLimiter) GetRemaining(string, time.Duration) (int64, error) {
	return 0, nil
}

func (l *AllowAllLimiter) Reset(string) error {
	return nil
}
