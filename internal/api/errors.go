package api

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind classifies an API failure
type ErrorKind int

const (
	// KindNetwork means the request produced no response at all
	KindNetwork ErrorKind = iota
	// KindClient is a 4xx other than 401; the server message is shown verbatim
	KindClient
	// KindUnauthorized is a 401; it additionally triggers session invalidation
	KindUnauthorized
	// KindServer is a 5xx
	KindServer
	// KindDecode means the response body could not be interpreted
	KindDecode
)

// String returns the string representation of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindClient:
		return "client"
	case KindUnauthorized:
		return "unauthorized"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a classified API failure.
//
// Message carries the server-provided text for client errors and is safe
// to show to the user; bodies are otherwise never retained.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Cause)
	case KindUnauthorized:
		return "unauthorized: session is invalid or expired"
	case KindClient:
		if e.Message != "" {
			return fmt.Sprintf("request rejected (%d): %s", e.Status, e.Message)
		}
		return fmt.Sprintf("request rejected (%d)", e.Status)
	case KindServer:
		return fmt.Sprintf("server error (%d)", e.Status)
	case KindDecode:
		return fmt.Sprintf("failed to decode response: %v", e.Cause)
	default:
		return "unknown API error"
	}
}

// Unwrap implements error unwrapping
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsUnauthorized reports whether err is a 401 API error
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return stderrors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

// IsNetwork reports whether err is a transport-level API error
func IsNetwork(err error) bool {
	var apiErr *Error
	return stderrors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// UserMessage returns text suitable for direct display.
// Network errors get a retry hint; everything else uses Error().
func UserMessage(err error) string {
	var apiErr *Error
	if !stderrors.As(err, &apiErr) {
		return err.Error()
	}
	if apiErr.Kind == KindNetwork {
		return "could not reach the server, check your connection and try again"
	}
	return apiErr.Error()
}
