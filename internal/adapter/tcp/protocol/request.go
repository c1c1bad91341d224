package protocol

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "tcp-user-service/pkg/errors"
)

// headerBodySeparator divides the request head from its body on the wire.
const headerBodySeparator = "\r\n\r\n"

var validate = validator.New()

// UserPayload is the JSON body accepted on create and update requests.
// A caller-supplied id field is ignored; the store owns id assignment.
type UserPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

// DecodeLossy converts a raw read buffer into text, substituting the
// Unicode replacement character for invalid byte sequences. Decoding
// never fails on malformed input.
func DecodeLossy(buf []byte) string {
	return strings.ToValidUTF8(string(buf), "�")
}

// ExtractID returns the id segment of a request whose path has the shape
// "<METHOD> /users/<id> ...". It returns the empty string when the
// segment is absent; callers must treat empty or non-numeric values as a
// parse failure.
func ExtractID(raw string) string {
	line := raw
	if i := strings.IndexAny(raw, "\r\n"); i >= 0 {
		line = raw[:i]
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ""
	}

	// fields[1] is the path, e.g. /users/17
	segments := strings.Split(fields[1], "/")
	if len(segments) < 3 {
		return ""
	}
	return segments[2]
}

// ExtractBody splits the raw request on the blank line separating headers
// from body, takes the last segment, and decodes it as a user payload.
// A missing separator, empty body, invalid JSON, or a payload without
// both name and email yields a body ParseError.
func ExtractBody(raw string) (*UserPayload, error) {
	parts := strings.Split(raw, headerBodySeparator)
	if len(parts) < 2 {
		return nil, apperrors.NewBodyParseError("missing header/body separator", nil)
	}

	body := strings.TrimSpace(parts[len(parts)-1])
	if body == "" {
		return nil, apperrors.NewBodyParseError("empty body", nil)
	}

	var payload UserPayload
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, apperrors.NewBodyParseError("invalid JSON", err)
	}

	if err := validate.Struct(payload); err != nil {
		return nil, apperrors.NewBodyParseError("missing required fields", err)
	}

	return &payload, nil
}
