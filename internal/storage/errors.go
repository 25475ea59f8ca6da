package storage

import "fmt"

// NotFoundError indicates a missing history entry.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return "analysis history is empty"
	}
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// CorruptValueError indicates a stored value that is not valid JSON for its key.
type CorruptValueError struct {
	Key   string
	Cause error
}

func (e *CorruptValueError) Error() string {
	return fmt.Sprintf("corrupt value for key %s: %v", e.Key, e.Cause)
}

func (e *CorruptValueError) Unwrap() error {
	return e.Cause
}

// StoreError wraps a failure of the underlying Store.
type StoreError struct {
	Op    string
	Key   string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s %s: %v", e.Op, e.Key, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// InvalidStatusError indicates an unknown application status.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid application status: %q", e.Status)
}
