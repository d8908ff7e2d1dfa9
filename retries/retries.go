// Package retries provides a bounded retry helper with exponential backoff
// and a retriability classifier for DynamoDB errors.
//
// Read operations (list, index lookup, readiness probes) are side-effect
// free and safe to retry. Create is retried only with the already-built item
// so the generated filePdfId acts as the idempotency key. Delete is
// idempotent by key and retried freely.
package retries

import (
	"context"
	"errors"
	"time"

	"github.com/aws/smithy-go"
)

const (
	DefaultAttempts  = 3
	DefaultBaseDelay = 100 * time.Millisecond

	HealthAttempts  = 2
	HealthBaseDelay = 50 * time.Millisecond
)

// Retry runs fn up to attempts times, doubling the delay between attempts.
// It stops early when fn succeeds, when isRetriable rejects the error, or
// when ctx is done.
func Retry(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error, isRetriable func(error) bool) error {
	var err error
	delay := baseDelay

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		if err = fn(); err == nil {
			return nil
		}

		if !isRetriable(err) {
			return err
		}
	}

	return err
}

// retriableCodes are the DynamoDB error codes worth another attempt.
var retriableCodes = map[string]struct{}{
	"ThrottlingException":                    {},
	"ProvisionedThroughputExceededException": {},
	"RequestLimitExceeded":                   {},
	"InternalServerError":                    {},
	"ServiceUnavailable":                     {},
	"TransactionConflictException":           {},
}

// IsRetriableDbError reports whether err is a transient DynamoDB failure.
// Conditional-check failures and validation errors are never retriable.
func IsRetriableDbError(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if _, ok := retriableCodes[apiErr.ErrorCode()]; ok {
			return true
		}
		return apiErr.ErrorFault() == smithy.FaultServer
	}

	// Non-API errors are transport-level (timeouts, resets) and retriable.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
