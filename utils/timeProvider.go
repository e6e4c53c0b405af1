package utils

import "time"

// TimeProvider hides time.Now() so session issue times can be pinned in tests
type TimeProvider interface {
	Now() time.Time
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now()
}

// NewFixedTimeProvider returns a TimeProvider that always reports the given instant
func NewFixedTimeProvider(now time.Time) TimeProvider {
	return fixedTimeProvider{now: now}
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}
