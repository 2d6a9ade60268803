package hashdb

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRecordFound - A lookup or delete was made for a key that is not in the table.
	// This is a normal outcome and not a fault.
	ErrNoRecordFound = errors.New("no record found")

	// ErrDuplicateKey - Add was called with a key that is already in the table
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCapacityExhausted - The table has no free slot for a new key (a full fixed table), or no valid
	// capacity could be found to grow to
	ErrCapacityExhausted = errors.New("capacity exhausted")

	// ErrOutOfMemory - A slot array could not be allocated, the request was above the configured max capacity
	ErrOutOfMemory = errors.New("out of memory")

	// ErrTruncated - A text export ran out of buffer before all entries were written
	ErrTruncated = errors.New("output truncated")
)

// OperationError - Wraps an error with the operation and key it occurred for.
// Use errors.Is with the Err* values to test for a specific kind of failure.
type OperationError struct {
	Op  string
	Key string
	Err error
}

// Error - Returns the error message including operation and key
func (E *OperationError) Error() string {
	if E.Key != "" {
		return fmt.Sprintf("%s %q: %v", E.Op, E.Key, E.Err)
	}
	return fmt.Sprintf("%s: %v", E.Op, E.Err)
}

// Unwrap - Returns the underlying error
func (E *OperationError) Unwrap() error {
	return E.Err
}

// opError - Returns err wrapped in an OperationError, or nil if err is nil
func opError(op string, key []byte, err error) error {
	if err == nil {
		return nil
	}

	return &OperationError{Op: op, Key: string(key), Err: err}
}
