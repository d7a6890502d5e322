package tmdb

import (
	"errors"
	"fmt"
)

// Kind classifies a failure produced by the client pipeline.
type Kind int

const (
	// Unknown is used for failures that fit no other kind
	Unknown Kind = iota
	// ConnectionError indicates the server could not be reached or the body could not be read
	ConnectionError
	// ServiceUnavailable indicates the server answered 503
	ServiceUnavailable
	// MappingFailed indicates a response body did not match the expected shape
	MappingFailed
	// AuthorizationFailure indicates rejected credentials or an unusable token
	AuthorizationFailure
	// InvalidImageSize indicates an image size not listed in the configuration
	InvalidImageSize
	// InvalidURL indicates a request URL that could not be composed
	InvalidURL
	// UnsupportedOperation indicates a request the selected transport cannot send
	UnsupportedOperation
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case ConnectionError:
		return "CONNECTION_ERROR"
	case ServiceUnavailable:
		return "HTTP_503_ERROR"
	case MappingFailed:
		return "MAPPING_FAILED"
	case AuthorizationFailure:
		return "AUTHORISATION_FAILURE"
	case InvalidImageSize:
		return "INVALID_IMAGE"
	case InvalidURL:
		return "INVALID_URL"
	case UnsupportedOperation:
		return "UNSUPPORTED_OPERATION"
	default:
		return "UNKNOWN_CAUSE"
	}
}

// Error makes a Kind usable as an errors.Is target:
//
//	if errors.Is(err, tmdb.MappingFailed) { ... }
func (k Kind) Error() string {
	return "tmdb: " + k.String()
}

// Error is the single failure type returned by the client.
type Error struct {
	Kind       Kind
	Message    string
	Body       string // raw response body, when one was received
	StatusCode int    // HTTP status, when the server answered
	Err        error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("tmdb %s: %s", e.Kind.String(), e.Message)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of this error
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && e.Kind == k
}

// IsNotFound checks if the server answered 404
func (e *Error) IsNotFound() bool {
	return e.StatusCode == 404
}

// KindOf returns the Kind carried by err, or Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func mappingError(body []byte, cause error) *Error {
	return &Error{
		Kind:    MappingFailed,
		Message: "failed to map response",
		Body:    string(body),
		Err:     cause,
	}
}
