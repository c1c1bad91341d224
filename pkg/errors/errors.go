package errors

import (
	"errors"
	"fmt"
)

// Common application errors
var (
	ErrUserNotFound = NewNotFoundError("user", "user not found")
)

// TransportError represents a failure on the wire: accept, read, or write.
// No response is guaranteed to have reached the client once one occurs.
type TransportError struct {
	Op  string // accept, read, write
	Err error
}

// NewTransportError creates a new transport error
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError represents a malformed id segment or a malformed/missing
// request body.
type ParseError struct {
	Part    string // id, body
	Message string
	Err     error
}

// NewIDParseError creates a parse error for the path id segment
func NewIDParseError(message string) *ParseError {
	return &ParseError{Part: "id", Message: message}
}

// NewBodyParseError creates a parse error for the request body
func NewBodyParseError(message string, err error) *ParseError {
	return &ParseError{Part: "body", Message: message, Err: err}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s parse failed: %s: %v", e.Part, e.Message, e.Err)
	}
	return fmt.Sprintf("%s parse failed: %s", e.Part, e.Message)
}

// Unwrap returns the wrapped error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// StoreConnectError represents a failure to acquire a store connection.
type StoreConnectError struct {
	Err error
}

// NewStoreConnectError creates a new store connect error
func NewStoreConnectError(err error) *StoreConnectError {
	return &StoreConnectError{Err: err}
}

// Error implements the error interface
func (e *StoreConnectError) Error() string {
	return fmt.Sprintf("store connect failed: %v", e.Err)
}

// Unwrap returns the wrapped error
func (e *StoreConnectError) Unwrap() error {
	return e.Err
}

// StoreQueryError represents a failure executing a statement or query
// against the store.
type StoreQueryError struct {
	Message string
	Err     error
}

// NewStoreQueryError creates a new store query error
func NewStoreQueryError(message string, err error) *StoreQueryError {
	return &StoreQueryError{Message: message, Err: err}
}

// Error implements the error interface
func (e *StoreQueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *StoreQueryError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsParse reports whether err is, or wraps, a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
