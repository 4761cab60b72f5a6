package entity

import "errors"

// Kind classifies a domain failure. The boundary layer translates each kind
// into a transport status code; the core only ever raises these values.
type Kind string

// Failure kinds raised by the validation and orchestration layer.
const (
	KindBadRequest          Kind = "BadRequest"
	KindNotFound            Kind = "NotFound"
	KindConflict            Kind = "Conflict"
	KindUnprocessableEntity Kind = "UnprocessableEntity"
	// KindForbidden is reserved; no current rule raises it.
	KindForbidden Kind = "Forbidden"
)

// Error is a tagged domain failure carrying a kind and a user-facing message.
// It propagates unchanged from the point of detection up to the HTTP boundary,
// which is the only place that converts it into a status code.
type Error struct {
	Kind    Kind
	Message string
}

// Error returns the user-facing message, implementing the error interface.
func (e *Error) Error() string {
	return e.Message
}

// E constructs a domain failure with the given kind and message.
func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the failure kind of err, or an empty Kind when err is not a
// domain failure (the boundary treats that as an unknown internal error).
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err is a domain failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
