package collection

import (
	"errors"
	"fmt"

	"github.com/zoharmedia/zohar/pkg/validation"
)

var (
	// ErrBusy is returned while a submission of the same form is in flight.
	ErrBusy = errors.New("collection: submission already in progress")
	// ErrNotFound is returned for an ID that is not in the list.
	ErrNotFound = errors.New("collection: record not found")
)

// ValidationError reports field-level problems. Nothing was sent.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Fields.Error()
}

// GuardError reports a precondition that blocked the operation before any
// remote call, such as deleting a category that still has projects.
type GuardError struct {
	Message string
}

func (e *GuardError) Error() string { return e.Message }

// RemoteError reports a gateway failure. The local list is unchanged.
type RemoteError struct {
	Op      string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Outcome classifies the result of a controller operation.
type Outcome int

const (
	OK Outcome = iota
	ValidationFailed
	RemoteFailed
	GuardFailed
	Busy
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case OK:
		return "ok"
	case ValidationFailed:
		return "validation failed"
	case RemoteFailed:
		return "remote failed"
	case GuardFailed:
		return "guard failed"
	case Busy:
		return "busy"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// KindOf maps an error returned by a controller to its Outcome.
func KindOf(err error) Outcome {
	var (
		ve *ValidationError
		ge *GuardError
		re *RemoteError
	)
	switch {
	case err == nil:
		return OK
	case errors.As(err, &ve):
		return ValidationFailed
	case errors.As(err, &ge):
		return GuardFailed
	case errors.Is(err, ErrBusy):
		return Busy
	case errors.Is(err, ErrNotFound):
		return NotFound
	case errors.As(err, &re):
		return RemoteFailed
	default:
		return RemoteFailed
	}
}

// FieldErrors returns the field messages of a validation failure, or nil.
func FieldErrors(err error) validation.FieldErrors {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
