package transform

import (
	"errors"
	"net/http"
)

// Kind classifies a transformation failure.
type Kind int

const (
	KindMissingEnvVar Kind = iota + 1
	KindMissingParameter
	KindRequestFailed
	KindUnexpectedResponse
)

func (k Kind) String() string {
	switch k {
	case KindMissingEnvVar:
		return "missing_env_var"
	case KindMissingParameter:
		return "missing_parameter"
	case KindRequestFailed:
		return "openai_request_failed"
	case KindUnexpectedResponse:
		return "unexpected_response"
	default:
		return "unknown"
	}
}

// HTTPStatus is the status code surfaced to the HTTP caller for this kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindMissingEnvVar, KindMissingParameter, KindRequestFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the single error type returned by the resolver and the upstream adapters.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingEnvVar:
		return "Missing environment variable: " + e.Detail
	case KindMissingParameter:
		return "Missing parameter: " + e.Detail
	case KindRequestFailed:
		return "OpenAI request failed: " + e.Detail
	case KindUnexpectedResponse:
		return "Unexpected response from OpenAI API"
	default:
		return e.Detail
	}
}

func MissingEnvVar(name string) *Error {
	return &Error{Kind: KindMissingEnvVar, Detail: name}
}

func MissingParameter(detail string) *Error {
	return &Error{Kind: KindMissingParameter, Detail: detail}
}

func RequestFailed(detail string) *Error {
	return &Error{Kind: KindRequestFailed, Detail: detail}
}

func UnexpectedResponse() *Error {
	return &Error{Kind: KindUnexpectedResponse}
}

// KindOf returns the kind carried by err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return 0
}

// StatusCode maps err to an HTTP status. Errors outside the taxonomy map to 500.
func StatusCode(err error) int {
	return KindOf(err).HTTPStatus()
}
