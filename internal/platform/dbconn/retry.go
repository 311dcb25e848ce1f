package dbconn

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the connection retry loop: up to MaxRetries retries after
// the initial attempt, with delays of min(BaseDelay*2^n, MaxDelay) between
// attempts. Randomization is disabled so the delay sequence is exact.
type Policy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

// DefaultPolicy matches the documented defaults: 3 retries, 1s base
// delay, doubling up to a 10s cap.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   10 * time.Second,
	}
}

// backOff builds the backoff schedule for one connect sequence. The
// schedule deliberately has no elapsed-time bound; only the attempt
// count limits it.
func (p Policy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.MaxInterval = p.MaxDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithMaxRetries(b, uint64(p.MaxRetries))
}
