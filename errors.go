package fieldmap

import (
	"errors"
	"fmt"
)

// Error codes carried by Error.Code.
const (
	CodeParseFailure = "parse_failure"
	CodeInvalidValue = "invalid_value"
	CodeUnknownType  = "unknown_type"
	CodeUnknownMode  = "unknown_mode"
)

// Error is a structured failure raised while producing an indexable
// representation or while reading a mapping definition. Path carries the
// fully-qualified field name so callers can always identify which field
// failed.
type Error struct {
	Path    string // Fully dotted field path (for example: user.address.zip).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

func (e *Error) Error() string {
	s := fmt.Sprintf("%s at [%s]: %s", e.Code, e.Path, e.Message)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Cause }

// ParseFailure wraps cause with the fully-qualified field name. Every error
// escaping FieldMapper.Parse goes through here.
func ParseFailure(fullName string, cause error) *Error {
	return &Error{
		Path:    fullName,
		Code:    CodeParseFailure,
		Message: fmt.Sprintf("failed to parse [%s]", fullName),
		Cause:   cause,
	}
}

// AsError extracts a *Error from err using errors.As internally.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
