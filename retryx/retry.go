package retryx

import (
	"time"

	"github.com/cenkalti/backoff"
)

const (
	DefaultInterval       = 500 * time.Millisecond
	DefaultMaxInterval    = 2 * time.Second
	DefaultMaxElapsedTime = 5 * time.Second
	DefaultMaxRetries     = 3
)

// ConstantRetry executes the provided function `fn` with a constant retry
// interval. Intended for simple bootstrap scenarios; anything fancier should
// use the `backoff` package directly.
func ConstantRetry(fn func() error, opts ...RetryOption) error {
	rOpts := &retryOptions{}
	for _, opt := range opts {
		opt(rOpts)
	}

	duration := DefaultInterval
	if rOpts.initialInterval > 0 {
		duration = rOpts.initialInterval
	}

	bc := backoff.NewConstantBackOff(duration)
	bc.Reset()

	return retry(fn, bc, rOpts)
}

// ExponentialRetry executes the provided function `fn` with an exponential
// backoff retry strategy, capped by the max interval and elapsed time
// options.
func ExponentialRetry(fn func() error, opts ...RetryOption) error {
	rOpts := &retryOptions{}
	for _, opt := range opts {
		opt(rOpts)
	}

	duration := DefaultInterval
	maxInterval := DefaultMaxInterval
	maxElapsedTime := DefaultMaxElapsedTime
	if rOpts.initialInterval > 0 {
		duration = rOpts.initialInterval
	}
	if rOpts.maxInterval > 0 {
		maxInterval = rOpts.maxInterval
	}
	if rOpts.maxElapsedTime > 0 {
		maxElapsedTime = rOpts.maxElapsedTime
	}

	bc := backoff.NewExponentialBackOff()
	bc.InitialInterval = duration
	bc.MaxInterval = maxInterval
	bc.MaxElapsedTime = maxElapsedTime
	bc.Reset()

	return retry(fn, bc, rOpts)
}

func retry(fn func() error, bo backoff.BackOff, rOpts *retryOptions) error {
	maxRetryCount := DefaultMaxRetries
	if rOpts.retryCount > 0 {
		maxRetryCount = rOpts.retryCount
	}

	retries := 0
	return backoff.Retry(func() error {
		err := fn()
		if err == nil {
			return nil
		}

		retries++
		if retries >= maxRetryCount {
			return backoff.Permanent(err)
		}

		return err
	}, bo)
}
