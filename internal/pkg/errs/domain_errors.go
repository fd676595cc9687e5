package errs

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Sentinel kinds shared by the domain, usecase and handler layers
var (
	// Input errors
	ErrConflictInput = errors.New("conflicting date input")
	ErrInvalidInput  = errors.New("invalid input")

	// Availability errors
	ErrBookingConflict = errors.New("booking conflict")

	// Lookup errors
	ErrDwellingNotFound    = errors.New("dwelling not found")
	ErrReservationNotFound = errors.New("reservation not found")

	// Authorization and lifecycle errors
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")

	// Storage errors
	ErrPersistence = errors.New("persistence failure")
)

// Error is a classified failure carrying the detail needed to render a client message.
// Match the kind with errors.Is against the sentinels above.
type Error struct {
	Kind     error
	Field    string
	EntityID uuid.UUID
	Status   string
	Msg      string

	cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.cause}
}

func ConflictInput(field, msg string) error {
	return &Error{Kind: ErrConflictInput, Field: field, Msg: msg}
}

func InvalidInput(field, msg string) error {
	return &Error{Kind: ErrInvalidInput, Field: field, Msg: msg}
}

func BookingConflict(dwellingID uuid.UUID) error {
	return &Error{Kind: ErrBookingConflict, EntityID: dwellingID, Msg: "requested dates overlap an existing reservation"}
}

func DwellingNotFound(id uuid.UUID) error {
	return &Error{Kind: ErrDwellingNotFound, EntityID: id}
}

func ReservationNotFound(id uuid.UUID) error {
	return &Error{Kind: ErrReservationNotFound, EntityID: id}
}

func Forbidden(entityID uuid.UUID, msg string) error {
	return &Error{Kind: ErrForbidden, EntityID: entityID, Msg: msg}
}

func InvalidTransition(reservationID uuid.UUID, current, msg string) error {
	return &Error{Kind: ErrInvalidTransition, EntityID: reservationID, Status: current, Msg: msg}
}

// Persistence keeps the storage error for logs; it is never rendered to clients.
func Persistence(cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: ErrPersistence, cause: Wrap(cause, "storage operation failed")}
}

// Classify returns err unchanged when it already carries a kind and marks it as a
// persistence failure otherwise.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := Detail(err); ok {
		return err
	}
	return Persistence(err)
}

func Detail(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
