package types

import "fmt"

// MalformedInputError reports a structurally invalid candidate or job record
// rejected at the scoring boundary. Missing optional fields never produce
// this error; they resolve to documented neutral defaults instead.
type MalformedInputError struct {
	Entity string // "candidate" or "job"
	ID     string
	Cause  error
}

func (e *MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed %s record %s: %v", e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("malformed %s record %s", e.Entity, e.ID)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}
