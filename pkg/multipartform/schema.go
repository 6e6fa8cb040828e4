package multipartform

import (
	"errors"
	"fmt"
)

// DefaultMaxSize is the size ceiling given to fields built with Binary or Text.
const DefaultMaxSize int64 = 8 << 20 // 8 MiB

// Kind tells how a field's payload is interpreted downstream.
type Kind uint8

const (
	KindBinary Kind = iota + 1
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts "binary" or "text" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "binary", "raw", "file":
		return KindBinary, nil
	case "text":
		return KindText, nil
	default:
		return 0, fmt.Errorf("unknown field kind %q", s)
	}
}

// defaultContentType is assumed for parts that carry no Content-Type header (RFC 7578).
func (k Kind) defaultContentType() string {
	if k == KindText {
		return "text/plain"
	}
	return "application/octet-stream"
}

// Field declares one legal part of a form.
type Field struct {
	Name        string
	Kind        Kind
	MaxSize     int64
	ContentType string // acceptance pattern: "type/subtype", "type/*" or "*/*"
}

// Binary declares a binary field accepting any content type up to DefaultMaxSize.
func Binary(name string) Field {
	return Field{Name: name, Kind: KindBinary, MaxSize: DefaultMaxSize, ContentType: "*/*"}
}

// Text declares a text field accepting any content type up to DefaultMaxSize.
func Text(name string) Field {
	return Field{Name: name, Kind: KindText, MaxSize: DefaultMaxSize, ContentType: "*/*"}
}

// WithMaxSize returns a copy of the field with the given size ceiling.
func (f Field) WithMaxSize(n int64) Field {
	f.MaxSize = n
	return f
}

// WithContentType returns a copy of the field with the given acceptance pattern.
func (f Field) WithContentType(pattern string) Field {
	f.ContentType = pattern
	return f
}

type entry struct {
	field Field
	rng   mediaRange
}

// Schema is an immutable set of field declarations. It is built once at
// startup and safe for concurrent use.
type Schema struct {
	entries []entry
	index   map[string]int
}

// NewSchema validates the declarations and builds a Schema.
// All problems are reported at once, joined with ErrInvalidSchema.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		entries: make([]entry, 0, len(fields)),
		index:   make(map[string]int, len(fields)),
	}

	var errs []error
	for _, f := range fields {
		if f.Name == "" {
			errs = append(errs, errors.New("field with empty name"))
			continue
		}
		if _, dup := s.index[f.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate field %q", f.Name))
			continue
		}
		if f.Kind != KindBinary && f.Kind != KindText {
			errs = append(errs, fmt.Errorf("field %q: unknown kind %s", f.Name, f.Kind))
			continue
		}
		if f.MaxSize <= 0 {
			errs = append(errs, fmt.Errorf("field %q: size limit must be positive, got %d", f.Name, f.MaxSize))
			continue
		}
		rng, err := parseMediaRange(f.ContentType)
		if err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
			continue
		}

		s.index[f.Name] = len(s.entries)
		s.entries = append(s.entries, entry{field: f, rng: rng})
	}

	if len(fields) == 0 {
		errs = append(errs, errors.New("no fields declared"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(append([]error{ErrInvalidSchema}, errs...)...)
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid declaration.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the declaration for name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.entries[i].field, true
}

// Fields returns the declarations in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.field)
	}
	return out
}

// Names returns the declared field names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		names = append(names, e.field.Name)
	}
	return names
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	return len(s.entries)
}

// Check validates a decoded part against its declaration: the name must be
// declared, the payload must fit the ceiling and the content type must
// match the pattern.
func (s *Schema) Check(part RawPart) error {
	i, ok := s.index[part.Name]
	if !ok {
		return UnknownField(part.Name)
	}
	e := s.entries[i]

	if int64(len(part.Bytes)) > e.field.MaxSize {
		return FieldTooLarge(part.Name, e.field.MaxSize)
	}

	ct := part.ContentType
	if ct == "" {
		ct = e.field.Kind.defaultContentType()
	}
	if !e.rng.matches(ct) {
		return ContentTypeMismatch(part.Name, ct, e.rng.String())
	}

	return nil
}
