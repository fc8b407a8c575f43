package api

import "fmt"

// Status classifies the outcome of an API call.
type Status int

const (
	// StatusOK means success with a payload.
	StatusOK Status = iota
	// StatusEmpty means success with no payload.
	StatusEmpty
	// StatusRejected means the API answered success:false.
	StatusRejected
	// StatusUnauthorized means the session cookie was missing or expired (HTTP 401/403).
	StatusUnauthorized
	// StatusTransient means a network, timeout, or malformed-response failure.
	StatusTransient
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusRejected:
		return "rejected"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusTransient:
		return "transient"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the tagged outcome of a single API call. Data is meaningful only
// when Status is StatusOK.
type Result[T any] struct {
	Status  Status
	Data    T
	Message string
	Err     error
}

// OK reports whether the call succeeded, with or without a payload
func (r Result[T]) OK() bool {
	return r.Status == StatusOK || r.Status == StatusEmpty
}

// Describe summarizes a result for logs
func (r Result[T]) Describe() string {
	switch {
	case r.Err != nil && r.Message != "":
		return fmt.Sprintf("%s: %s: %v", r.Status, r.Message, r.Err)
	case r.Err != nil:
		return fmt.Sprintf("%s: %v", r.Status, r.Err)
	case r.Message != "":
		return fmt.Sprintf("%s: %s", r.Status, r.Message)
	default:
		return r.Status.String()
	}
}
