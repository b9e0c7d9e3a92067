// Package apierr defines the error kinds the HTTP API reports.
//
// Handlers translate store and provider failures into an *Error carrying one
// of the Kind values below. The kind is written to the response body as a
// stable, machine-readable string so clients never have to match on message
// text.
package apierr

import (
	"errors"
	"net/http"
)

// Kind classifies an API error.
type Kind string

const (
	KindBadRequest      Kind = "bad_request"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindPaymentProvider Kind = "payment_provider_error"
	KindInternal        Kind = "internal_error"
)

// InternalMessage is the only message ever shown for KindInternal.
const InternalMessage = "Internal Server Error"

// Error is an API error with a kind, a client-facing message and an
// optional underlying cause (never shown to clients).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the kind to an HTTP status code.
//
// Conflict answers 400: registration clients already expect 400 for a
// duplicate email and tell the cases apart by the kind field.
func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindPaymentProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to send to the client.
func (e *Error) PublicMessage() string {
	if e.Kind == KindInternal || e.Message == "" {
		return InternalMessage
	}
	return e.Message
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func BadRequest(msg string) *Error { return New(KindBadRequest, msg) }

func NotFound(msg string) *Error { return New(KindNotFound, msg) }

func Conflict(msg string) *Error { return New(KindConflict, msg) }

// Internal wraps an unexpected failure. msg is logged, not returned.
func Internal(msg string, err error) *Error { return Wrap(KindInternal, msg, err) }

// PaymentProvider wraps a payment provider failure; msg is the provider's
// own message and is passed through to the client.
func PaymentProvider(msg string, err error) *Error { return Wrap(KindPaymentProvider, msg, err) }

// From converts any error into an *Error. Errors that are not already API
// errors become KindInternal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("unexpected error", err)
}
