package matching

import (
	"fmt"

	"github.com/google/uuid"
)

// PersistenceError wraps any failure reading or writing engine state. The
// underlying message is surfaced verbatim to the operator.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ErrSessionNotFound indicates the requested matching session does not exist.
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("matching session not found: %s", e.SessionID)
}
