// Package health defines the readiness contract implemented by external
// dependencies such as the DynamoDB store.
package health

import "context"

// ReadinessCheck is implemented by components that talk to an external
// resource and can probe it cheaply.
type ReadinessCheck interface {
	// IsReady returns nil when the dependency is reachable and usable.
	IsReady(ctx context.Context) error
	// Name identifies the check in logs.
	Name() string
}
