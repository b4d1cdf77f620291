// ABOUTME: Capped exponential backoff policy for failed remote writes.
// ABOUTME: Exhaustion flips connectivity to offline until a manual sync.
package syncer

import "time"

// RetryPolicy is a capped exponential backoff with a fixed attempt maximum.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultRetryPolicy matches the documented schedule:
// min(1s * 2^n, 30s), giving up after 3 retries.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// Delay returns the wait before the retryCount-th retry.
func (p RetryPolicy) Delay(retryCount int) time.Duration {
	d := p.BaseDelay
	for i := 0; i < retryCount; i++ {
		d *= 2
		if d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Exhausted reports whether retryCount has passed the maximum.
func (p RetryPolicy) Exhausted(retryCount int) bool {
	return retryCount > p.MaxRetries
}
