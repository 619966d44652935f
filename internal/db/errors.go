package db

import "errors"

// Domain-level database error sentinels.
var (
	// Keyword errors
	ErrEmptyKeyword = errors.New("keyword must not be empty")

	// Chart errors
	ErrInvalidRank = errors.New("chart rank must be at least 1")
)

// StorageError reports a failed read or write against the backing store.
// Op names the store operation, e.g. "record search".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Wrap returns err as a *StorageError for op, or nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
