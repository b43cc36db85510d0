package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAuthRequired is returned when a submit is attempted without an owner
	// identity. Fatal for the session; there is no retry path in the form.
	ErrAuthRequired = errors.New("authentication required")
	// ErrSubmitPending is the busy signal returned while a previous submit is
	// still settling.
	ErrSubmitPending = errors.New("a submit is already in progress")
	// ErrNotTerminalStep is returned when submit is called before the last step.
	ErrNotTerminalStep = errors.New("submit is only available from the last step")
	// ErrSessionClosed is returned once a session has completed or been abandoned.
	ErrSessionClosed = errors.New("form session is closed")
	// ErrUnknownField is returned for a field name outside the closed set.
	ErrUnknownField = errors.New("unknown field")
)

// MissingFields reports a failed step gate. It blocks advancing only; nothing
// here ever reaches persistence.
type MissingFields struct {
	Step   int      `json:"step"`
	Fields []string `json:"fields"`
}

func (e *MissingFields) Error() string {
	return fmt.Sprintf("step %d is missing required fields: %s", e.Step, strings.Join(e.Fields, ", "))
}

// UploadError wraps a failed image commit. The draft's image stays Local so
// the user can retry without re-picking.
type UploadError struct {
	Cause error
}

func (e *UploadError) Error() string { return "image upload failed: " + e.Cause.Error() }
func (e *UploadError) Unwrap() error { return e.Cause }

// PersistError wraps a failed store write. The draft is retained for retry.
type PersistError struct {
	Cause error
}

func (e *PersistError) Error() string { return "could not save product: " + e.Cause.Error() }
func (e *PersistError) Unwrap() error { return e.Cause }
