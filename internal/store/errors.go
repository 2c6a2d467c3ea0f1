package store

import "errors"

// Sentinel errors returned by store methods. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrSessionNotFound is returned by [SessionStore.Load] when no session
	// has been persisted yet, or it was cleared on logout.
	ErrSessionNotFound = errors.New("session not found")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when reading the session row fails.
	ErrScanningRow = errors.New("failed to scan session row")
)
