package multipartform

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per rejection kind. A *ValidationError matches the
// sentinel of its code with errors.Is.
var (
	ErrMissingContentType           = errors.New("missing content type")
	ErrMalformedMultipart           = errors.New("malformed multipart body")
	ErrUnknownField                 = errors.New("unknown field")
	ErrFieldTooLarge                = errors.New("field too large")
	ErrContentTypeMismatch          = errors.New("content type mismatch")
	ErrMissingField                 = errors.New("missing field")
	ErrUnexpectedMultipleOccurrence = errors.New("unexpected multiple occurrence")
	ErrMalformedPayload             = errors.New("malformed payload")

	// ErrInvalidSchema is a configuration error and never produced per request.
	ErrInvalidSchema = errors.New("invalid form schema")
)

// Code identifies the kind of a request rejection.
type Code string

const (
	CodeMissingContentType           Code = "missing_content_type"
	CodeMalformedMultipart           Code = "malformed_multipart"
	CodeUnknownField                 Code = "unknown_field"
	CodeFieldTooLarge                Code = "field_too_large"
	CodeContentTypeMismatch          Code = "content_type_mismatch"
	CodeMissingField                 Code = "missing_field"
	CodeUnexpectedMultipleOccurrence Code = "unexpected_multiple_occurrence"
	CodeMalformedPayload             Code = "malformed_payload"
)

var sentinels = map[Code]error{
	CodeMissingContentType:           ErrMissingContentType,
	CodeMalformedMultipart:           ErrMalformedMultipart,
	CodeUnknownField:                 ErrUnknownField,
	CodeFieldTooLarge:                ErrFieldTooLarge,
	CodeContentTypeMismatch:          ErrContentTypeMismatch,
	CodeMissingField:                 ErrMissingField,
	CodeUnexpectedMultipleOccurrence: ErrUnexpectedMultipleOccurrence,
	CodeMalformedPayload:             ErrMalformedPayload,
}

// ValidationError is the terminal rejection of a single request.
// Reason is safe to show to clients: it never embeds part content.
type ValidationError struct {
	Code   Code
	Field  string // offending field name, empty when not field specific
	Got    string // received content type, for CodeContentTypeMismatch and CodeMissingContentType
	Reason string

	cause error
}

// Error returns the human-readable reason.
func (e *ValidationError) Error() string {
	return e.Reason
}

// Unwrap exposes the sentinel of the error code and the underlying cause, if any.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := sentinels[e.Code]; ok {
		errs = append(errs, s)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// AsValidationError extracts a *ValidationError from the error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

// MissingContentType keeps the received header value in Got. The reason is
// always the same fixed message.
func MissingContentType(got string) *ValidationError {
	return &ValidationError{
		Code:   CodeMissingContentType,
		Got:    got,
		Reason: "Incorrect contentType, should be 'multipart/form-data'",
	}
}

func MalformedMultipart(detail string, cause error) *ValidationError {
	return &ValidationError{
		Code:   CodeMalformedMultipart,
		Reason: "Malformed multipart body: " + detail,
		cause:  cause,
	}
}

func UnknownField(name string) *ValidationError {
	return &ValidationError{
		Code:   CodeUnknownField,
		Field:  name,
		Reason: fmt.Sprintf("Unknown field '%s'", name),
	}
}

func FieldTooLarge(name string, limit int64) *ValidationError {
	return &ValidationError{
		Code:   CodeFieldTooLarge,
		Field:  name,
		Reason: fmt.Sprintf("Field '%s' exceeds the size limit of %d bytes", name, limit),
	}
}

func ContentTypeMismatch(name, got, want string) *ValidationError {
	return &ValidationError{
		Code:   CodeContentTypeMismatch,
		Field:  name,
		Got:    got,
		Reason: fmt.Sprintf("Field '%s' has content type '%s', expected '%s'", name, got, want),
	}
}

func MissingField(name string) *ValidationError {
	return &ValidationError{
		Code:   CodeMissingField,
		Field:  name,
		Reason: fmt.Sprintf("Missing field '%s'", name),
	}
}

func UnexpectedMultipleOccurrence(name string) *ValidationError {
	return &ValidationError{
		Code:   CodeUnexpectedMultipleOccurrence,
		Field:  name,
		Reason: fmt.Sprintf("Extra '%s' fields supplied", name),
	}
}

// MalformedPayload reports a field whose content does not decode into the
// domain shape. detail must not quote the payload itself.
func MalformedPayload(name, detail string, cause error) *ValidationError {
	return &ValidationError{
		Code:   CodeMalformedPayload,
		Field:  name,
		Reason: fmt.Sprintf("Malformed payload in field '%s': %s", name, detail),
		cause:  cause,
	}
}
