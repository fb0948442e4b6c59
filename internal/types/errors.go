package types

import "fmt"

// ValidationError indicates malformed or conflicting engine input: a bad
// grade value, weights that do not sum to one, or conflicting special
// interview pins. It is surfaced to the operator as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
