package protocol

import (
	"io"

	apperrors "tcp-user-service/pkg/errors"
)

// Response status lines. Each embeds its headers and the blank-line
// terminator; only 200 responses carry a Content-Type header.
const (
	StatusOK            = "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\n\r\n"
	StatusNotFound      = "HTTP/1.1 404 Not Found\r\n\r\n"
	StatusInternalError = "HTTP/1.1 500 Internal Error\r\n\r\n"
)

// Canonical response bodies.
const (
	BodyUserCreated   = "User created"
	BodyUserUpdated   = "User updated"
	BodyUserDeleted   = "User deleted"
	BodyUserNotFound  = "User not found"
	BodyInternalError = "Internal error"
	BodyRouteNotFound = "404 not found"
)

// WriteResponse concatenates the status line and body and writes the full
// byte sequence in a single call. The connection is not reused afterward.
func WriteResponse(w io.Writer, statusLine, body string) error {
	if _, err := w.Write([]byte(statusLine + body)); err != nil {
		return apperrors.NewTransportError("write", err)
	}
	return nil
}
