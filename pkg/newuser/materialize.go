package newuser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

// Option configures Materialize and DecodeAndValidate.
type Option func(*options)

type options struct {
	lenientQuotes bool
	maxParts      int
}

// WithLenientQuotes replaces every single quote in the data payload with a
// double quote before parsing, so {'name':'Ana','age':30} is accepted.
// Payloads whose values contain apostrophes break under this option.
func WithLenientQuotes() Option {
	return func(o *options) {
		o.lenientQuotes = true
	}
}

// WithMaxParts caps the number of parts DecodeAndValidate reads.
// Non-positive values keep multipartform.DefaultMaxParts.
func WithMaxParts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxParts = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{maxParts: multipartform.DefaultMaxParts}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Materialize extracts avatar and data from form and decodes data into a User.
// Presence is checked for data, then avatar; cardinality in the same order.
func Materialize(form multipartform.EnforcedForm, opts ...Option) (NewUser, error) {
	o := newOptions(opts)

	dataOcc, ok := form.Get(FieldData)
	if !ok {
		return NewUser{}, multipartform.MissingField(FieldData)
	}
	avatarOcc, ok := form.Get(FieldAvatar)
	if !ok {
		return NewUser{}, multipartform.MissingField(FieldAvatar)
	}

	data, ok := dataOcc.Single()
	if !ok {
		return NewUser{}, multipartform.UnexpectedMultipleOccurrence(FieldData)
	}
	avatar, ok := avatarOcc.Single()
	if !ok {
		return NewUser{}, multipartform.UnexpectedMultipleOccurrence(FieldAvatar)
	}

	user, err := parseUser(data.Bytes, o.lenientQuotes)
	if err != nil {
		return NewUser{}, err
	}

	return NewUser{Avatar: avatar.Bytes, User: user}, nil
}

// userPayload tells absent (or null) keys apart from zero values. Keys other
// than name and age are ignored.
type userPayload struct {
	Name *string `json:"name"`
	Age  *int32  `json:"age"`
}

func parseUser(raw []byte, lenient bool) (User, error) {
	if !utf8.Valid(raw) {
		return User{}, multipartform.MalformedPayload(FieldData, "payload is not valid UTF-8", nil)
	}

	text, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return User{}, multipartform.MalformedPayload(FieldData, "payload is not valid UTF-8", err)
	}
	if lenient {
		text = []byte(strings.ReplaceAll(string(text), "'", `"`))
	}

	dec := json.NewDecoder(bytes.NewReader(text))

	var p userPayload
	if err := dec.Decode(&p); err != nil {
		return User{}, multipartform.MalformedPayload(FieldData, describeJSONError(err), err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return User{}, multipartform.MalformedPayload(FieldData, "unexpected data after JSON object", err)
	}

	if key, ok := duplicateKey(text); ok {
		return User{}, multipartform.MalformedPayload(FieldData, "duplicate key '"+key+"'", nil)
	}

	switch {
	case p.Name == nil:
		return User{}, multipartform.MalformedPayload(FieldData, "missing key 'name'", nil)
	case p.Age == nil:
		return User{}, multipartform.MalformedPayload(FieldData, "missing key 'age'", nil)
	}

	return User{Name: *p.Name, Age: *p.Age}, nil
}

// describeJSONError summarises a decode failure by position and shape only.
func describeJSONError(err error) string {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, io.EOF):
		return "empty payload"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "unexpected end of JSON"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return fmt.Sprintf("expected a JSON object, got %s", typeErr.Value)
		}
		return fmt.Sprintf("key '%s' must be %s, got %s", typeErr.Field, jsonTypeName(typeErr.Type.String()), typeErr.Value)
	default:
		return "invalid JSON"
	}
}

// duplicateKey reports a top-level key that appears twice. Keys are compared
// the way encoding/json matches them to struct fields, case-insensitively.
// Other keys are ignored. text must already be a valid JSON object.
func duplicateKey(text []byte) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(text))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return "", false
	}

	seen := make(map[string]bool, 2)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}
		key, _ := tok.(string)
		for _, known := range []string{"name", "age"} {
			if !strings.EqualFold(key, known) {
				continue
			}
			if seen[known] {
				return known, true
			}
			seen[known] = true
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return "", false
		}
	}
	return "", false
}

func jsonTypeName(goType string) string {
	switch strings.TrimPrefix(goType, "*") {
	case "string":
		return "a string"
	case "int32":
		return "a 32-bit integer"
	default:
		return goType
	}
}
