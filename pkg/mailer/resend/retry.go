package resend

import (
	"context"
	"strings"
	"time"
)

// sendState is a state of the delivery state machine.
//
//	attempting --ok--> succeeded
//	attempting --transient failure, attempts left--> backoff --> attempting
//	attempting --other failure or no attempts left--> exhausted
//	backoff    --context done--> exhausted
type sendState int

const (
	stateAttempting sendState = iota
	stateBackoff
	stateSucceeded
	stateExhausted
)

func (s sendState) String() string {
	switch s {
	case stateAttempting:
		return "attempting"
	case stateBackoff:
		return "backoff"
	case stateSucceeded:
		return "succeeded"
	case stateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// transientMarkers are the message fragments that make a failure retryable.
// Matching ignores case.
var transientMarkers = []string{"network", "rate limit", "timeout"}

// isTransient reports whether a failed attempt may be retried.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range transientMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// backoffDelay is linear: the wait after the n-th failed attempt is n*base.
func backoffDelay(attempt int, base time.Duration) time.Duration {
	return time.Duration(attempt) * base
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
