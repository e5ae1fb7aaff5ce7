package api

import "fmt"

// GenericFailure is substituted when a non-2xx response carries no
// message field.
const GenericFailure = "Request failed"

// TransportError wraps a network-level failure: the request never
// produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError is a non-success HTTP response. Message is the
// server-supplied message when present, else GenericFailure.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// ValidationError is a draft rejected locally before any request was
// issued.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
