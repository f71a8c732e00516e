package editor

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by LoadDocument when the store has no record for
// the requested id, or when the store itself fails during the load. Callers
// treat it as terminal for that view.
var ErrNotFound = errors.New("article not found")

// ErrUnknownField is returned by SetField for a field name outside the
// editable set.
var ErrUnknownField = errors.New("unknown editable field")

// StoreError wraps a failure reported by the content store on save. The
// store's message is surfaced verbatim so the user can see what went wrong
// and retry with their edits intact.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
