package generator

import "fmt"

// TransportError means the model call itself failed (network, quota, auth).
// It is never retried; the caller surfaces it and abandons the operation.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: model call failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the model answered but the response could not be turned
// into the structure the prompt demanded, even after stripping code fences.
type ParseError struct {
	Op  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: unusable model response: %v", e.Op, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
