package ports

import "errors"

// Sentinel errors returned across the repository boundary. Implementations
// wrap these so callers can classify failures with errors.Is without
// knowing the driver.
var (
	// ErrNotFound reports a read or targeted write that matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation reports a write that would duplicate a unique key,
	// such as an existing username.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrReferentialViolation reports a write referencing a parent row that
	// does not exist, such as an image for a deleted destination.
	ErrReferentialViolation = errors.New("referenced record does not exist")

	// ErrTransactionAborted reports a multi-statement unit of work that was
	// rolled back; none of its writes survive.
	ErrTransactionAborted = errors.New("transaction aborted")
)
