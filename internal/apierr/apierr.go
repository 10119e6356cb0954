// Package apierr defines the normalized error shape produced by the request
// pipeline. Every layer above the pipeline (endpoint modules, services,
// commands) only ever sees *apierr.Error.
package apierr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a normalized error.
type Kind string

const (
	// KindNetwork means no response was received (transport failure, timeout).
	KindNetwork Kind = "network"
	// KindAuth is a 401 response; handled globally by session invalidation.
	KindAuth Kind = "auth"
	// KindPermission is a 403 response.
	KindPermission Kind = "permission"
	// KindNotFound is a 404 response.
	KindNotFound Kind = "not_found"
	// KindValidation is a 422 response carrying a per-field message map.
	KindValidation Kind = "validation"
	// KindServer is a 500 response.
	KindServer Kind = "server"
	// KindUnknown covers every other status.
	KindUnknown Kind = "unknown"
)

// Fixed user-facing messages per kind. Validation and Unknown prefer the
// server-provided message when one exists.
const (
	MsgNetwork    = "Network error. Please check your connection."
	MsgAuth       = "Session expired. Please login again."
	MsgPermission = "You do not have permission to perform this action."
	MsgNotFound   = "Resource not found."
	MsgValidation = "Validation failed"
	MsgServer     = "Server error. Please try again later."
	MsgUnknown    = "An error occurred"
)

// Error is the normalized error produced from any failed remote call.
type Error struct {
	Kind    Kind
	Message string
	// Status is the HTTP status code, 0 when no response was received.
	Status int
	// Fields maps field names to ordered validation messages (422 payloads).
	Fields map[string][]string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Kind, e.Message)
	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "\n  %s: %s", name, strings.Join(e.Fields[name], "; "))
		}
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Notifiable reports whether the error should produce a global notification.
// Validation errors are field-local and rendered by the initiating form.
func (e *Error) Notifiable() bool {
	return e.Kind != KindValidation
}

// New creates a normalized error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a normalized error wrapping a transport cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// WithStatus attaches the HTTP status code.
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// WithFields attaches the per-field validation message map.
func (e *Error) WithFields(fields map[string][]string) *Error {
	e.Fields = fields
	return e
}

// NewNetwork creates the no-response error.
func NewNetwork(cause error) *Error {
	return Wrap(KindNetwork, MsgNetwork, cause)
}

// NewValidation creates a 422 error, preferring the server's message.
func NewValidation(message string, fields map[string][]string) *Error {
	if message == "" {
		message = MsgValidation
	}
	return New(KindValidation, message).WithStatus(422).WithFields(fields)
}

// FromStatus classifies an HTTP status code into a normalized error.
// serverMessage and fields come from the response envelope and are only
// consulted where the taxonomy allows a server-provided message.
func FromStatus(status int, serverMessage string, fields map[string][]string) *Error {
	switch status {
	case 401:
		return New(KindAuth, MsgAuth).WithStatus(status)
	case 403:
		return New(KindPermission, MsgPermission).WithStatus(status)
	case 404:
		return New(KindNotFound, MsgNotFound).WithStatus(status)
	case 422:
		return NewValidation(serverMessage, fields)
	case 500:
		return New(KindServer, MsgServer).WithStatus(status)
	default:
		msg := serverMessage
		if msg == "" {
			msg = MsgUnknown
		}
		return New(KindUnknown, msg).WithStatus(status).WithFields(fields)
	}
}

// AsError extracts a normalized error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a normalized error of the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}
