package retryx

import "time"

type retryOptions struct {
	retryCount      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
}

type RetryOption func(*retryOptions)

// WithMaxRetries overrides the default maximum number of attempts.
func WithMaxRetries(count int) RetryOption {
	return func(o *retryOptions) {
		o.retryCount = count
	}
}

// WithInterval overrides the default initial interval between attempts.
func WithInterval(d time.Duration) RetryOption {
	return func(o *retryOptions) {
		o.initialInterval = d
	}
}

// WithMaxInterval overrides the default cap on the interval between attempts.
func WithMaxInterval(d time.Duration) RetryOption {
	return func(o *retryOptions) {
		o.maxInterval = d
	}
}

// WithMaxElapsedTime overrides the default total time budget.
func WithMaxElapsedTime(d time.Duration) RetryOption {
	return func(o *retryOptions) {
		o.maxElapsedTime = d
	}
}
