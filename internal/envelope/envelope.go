// Package envelope defines the uniform result wrapper returned by every
// service operation. Services classify outcomes with a Status; only the
// transport layer translates a Status into an HTTP code.
package envelope

import "net/http"

// Status classifies the outcome of a service operation.
type Status int

const (
	StatusOK Status = iota
	StatusCreated
	StatusBadRequest
	StatusNotFound
	StatusConflict
	StatusForbidden
	StatusInternalError
)

// String returns the status name for logging.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusCreated:
		return "created"
	case StatusBadRequest:
		return "bad_request"
	case StatusNotFound:
		return "not_found"
	case StatusConflict:
		return "conflict"
	case StatusForbidden:
		return "forbidden"
	default:
		return "internal_error"
	}
}

// HTTPStatus maps a status classification to a transport status code. Called
// by the transport layer only; the core stays transport-agnostic.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusOK:
		return http.StatusOK
	case StatusCreated:
		return http.StatusCreated
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusNotFound:
		return http.StatusNotFound
	case StatusConflict:
		return http.StatusConflict
	case StatusForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Kind tags the payload shape carried by an envelope so transport bindings
// can serialize deterministically.
type Kind int

const (
	KindNone Kind = iota
	KindObject
	KindList
	KindStats
)

// Envelope is the common outcome type returned by every service operation.
// Failure envelopes carry a nil Data and a caller-safe message; internal
// error detail is logged by the service, never embedded here.
type Envelope struct {
	Kind    Kind
	Data    any
	Message string
	Success bool
	Status  Status
}

// OK wraps a single object payload in a success envelope.
func OK(data any, message string) Envelope {
	return Envelope{Kind: KindObject, Data: data, Message: message, Success: true, Status: StatusOK}
}

// OKList wraps a list payload in a success envelope.
func OKList(data any, message string) Envelope {
	return Envelope{Kind: KindList, Data: data, Message: message, Success: true, Status: StatusOK}
}

// Created wraps a freshly created representation.
func Created(data any, message string) Envelope {
	return Envelope{Kind: KindObject, Data: data, Message: message, Success: true, Status: StatusCreated}
}

// Stats wraps a computed-on-read aggregate.
func Stats(data any, message string) Envelope {
	return Envelope{Kind: KindStats, Data: data, Message: message, Success: true, Status: StatusOK}
}

// Empty reports success with no payload, used by delete operations.
func Empty(message string) Envelope {
	return Envelope{Kind: KindNone, Message: message, Success: true, Status: StatusOK}
}

// Fail builds a failure envelope with the given classification.
func Fail(status Status, message string) Envelope {
	return Envelope{Kind: KindNone, Message: message, Success: false, Status: status}
}
