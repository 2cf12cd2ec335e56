package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound: the upstream users service has no such user, so no
	// aggregate can be built.
	ErrUserNotFound = errors.New("user not found")
	// ErrDashboardNotFound: read/delete of a user id with no persisted view.
	ErrDashboardNotFound = errors.New("dashboard not found")
	// ErrDownstreamUnavailable is reserved for deployments that surface
	// games/downloads failures instead of degrading to empty lists.
	ErrDownstreamUnavailable = errors.New("downstream unavailable")
)

// AggregationError wraps a failure that aborts aggregation: a non-404 user
// fetch or a store write. Games and downloads failures never produce one;
// they degrade to empty lists.
type AggregationError struct {
	Cause error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed: %v", e.Cause)
}

func (e *AggregationError) Unwrap() error { return e.Cause }
