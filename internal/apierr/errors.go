// Package apierr defines the unified error taxonomy shared by every registrar
// client.
//
// Every failure that crosses the network boundary is reported as an *Error with
// one of three kinds: the request never completed (transport), the payload
// could not be encoded or decoded (serialization), or the provider understood
// the request and rejected it (API). Callers branch on kind with errors.Is
// against ErrTransport, ErrSerialization and ErrAPI, or pull out the details
// with errors.As. API failures additionally wrap a classification sentinel
// such as ErrNotFound when the status code or message makes one obvious.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind identifies which of the three failure categories an Error belongs to.
type Kind int

const (
	KindUnknown Kind = iota
	KindTransport
	KindSerialization
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindSerialization:
		return "serialization"
	case KindAPI:
		return "api"
	default:
		return "unknown"
	}
}

// Kind sentinels. An *Error always unwraps to exactly one of these.
var (
	ErrTransport     = errors.New("transport failure")
	ErrSerialization = errors.New("serialization failure")
	ErrAPI           = errors.New("api failure")
)

// Classification sentinels for API failures.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// a duplicate record.
	ErrConflict = errors.New("conflict")
)

// ErrInvalidRequest is returned by request builders when a required field is
// missing. It is raised before any network call and is not one of the three kinds.
var ErrInvalidRequest = errors.New("invalid request")

// Error is the unified error value.
type Error struct {
	Kind Kind

	// Message is the provider-supplied message, unmodified. Only set for KindAPI.
	Message string

	// Details carries the secondary explanation some providers send next to Message.
	Details string

	// StatusCode is the HTTP status of the response, or 0 when no response arrived.
	StatusCode int

	// Err is the underlying cause for transport and serialization failures.
	Err error

	class error
}

// Transport wraps a failure to complete the HTTP exchange.
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// Serialization wraps a failure to encode a request or decode a response.
func Serialization(status int, err error) *Error {
	return &Error{Kind: KindSerialization, StatusCode: status, Err: err}
}

// API builds a logical failure carrying the provider's message verbatim.
func API(status int, message, details string) *Error {
	return &Error{
		Kind:       KindAPI,
		Message:    message,
		Details:    details,
		StatusCode: status,
		class:      classify(status, message),
	}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		if e.Details != "" && e.Details != e.Message {
			return fmt.Sprintf("api error: %s (%s)", e.Message, e.Details)
		}
		return "api error: " + e.Message
	case KindTransport:
		return fmt.Sprintf("transport error: %v", e.Err)
	case KindSerialization:
		if e.StatusCode != 0 {
			return fmt.Sprintf("serialization error (HTTP %d): %v", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("serialization error: %v", e.Err)
	default:
		return fmt.Sprintf("unknown error: %v", e.Err)
	}
}

// Unwrap exposes the kind sentinel, the classification sentinel (API only)
// and the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 3)
	switch e.Kind {
	case KindTransport:
		errs = append(errs, ErrTransport)
	case KindSerialization:
		errs = append(errs, ErrSerialization)
	case KindAPI:
		errs = append(errs, ErrAPI)
	}
	if e.class != nil {
		errs = append(errs, e.class)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the provider message of the first API error in err's chain.
func Message(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.Message, true
	}
	return "", false
}

// classify maps HTTP status codes first, then well-known message fragments,
// to a classification sentinel. Porkbun reports most failures as HTTP 200 or
// 400, so the message fallback matters there.
func classify(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusConflict:
		return ErrConflict
	}

	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "invalid api key") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "permission denied"):
		return ErrUnauthorized
	case strings.Contains(msg, "not found") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "invalid domain"):
		return ErrNotFound
	case strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "too many requests"):
		return ErrRateLimited
	case strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "conflict"):
		return ErrConflict
	}
	return nil
}
