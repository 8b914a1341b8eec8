package vector

import "errors"

// Error kinds surfaced by store operations. Call sites wrap the underlying
// driver error so both the kind and the cause are visible to errors.Is /
// errors.As. There are no retries and no fallbacks: every failure is
// returned to the immediate caller.
var (
	// ErrOpenFailed reports that the storage backend could not be created or
	// opened (permissions, invalid path, corruption).
	ErrOpenFailed = errors.New("vector: open failed")

	// ErrWriteFailed reports that an insert could not be prepared, bound or
	// committed. No partial record is visible to readers after this error.
	ErrWriteFailed = errors.New("vector: write failed")

	// ErrReadFailed reports that a query scan could not be executed.
	ErrReadFailed = errors.New("vector: read failed")
)
