package newuser

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

// Form field names.
const (
	FieldAvatar = "avatar"
	FieldData   = "data"
)

// Default size ceilings.
const (
	DefaultAvatarMaxSize int64 = 8 << 20 // 8 MiB
	DefaultDataMaxSize   int64 = 1 << 20 // 1 MiB
)

// ErrSchemaMismatch is returned by ValidateSchema when a schema cannot
// carry a new user submission.
var ErrSchemaMismatch = errors.New("newuser: schema does not declare avatar and data fields")

// User is the JSON record carried by the data field.
type User struct {
	Name string `json:"name"`
	Age  int32  `json:"age"`
}

// NewUser is a fully validated submission.
type NewUser struct {
	Avatar []byte
	User   User
}

// DefaultSchema returns the schema used when no schema file is configured.
func DefaultSchema() *multipartform.Schema {
	return multipartform.MustSchema(
		multipartform.Binary(FieldAvatar).
			WithMaxSize(DefaultAvatarMaxSize).
			WithContentType("image/*"),
		multipartform.Text(FieldData).
			WithMaxSize(DefaultDataMaxSize),
	)
}

// ValidateSchema reports whether s declares avatar as binary and data as text.
// Extra fields are allowed; Materialize ignores them.
func ValidateSchema(s *multipartform.Schema) error {
	if s == nil {
		return fmt.Errorf("%w: nil schema", ErrSchemaMismatch)
	}

	want := []struct {
		name string
		kind multipartform.Kind
	}{
		{FieldAvatar, multipartform.KindBinary},
		{FieldData, multipartform.KindText},
	}

	var errs []error
	for _, w := range want {
		f, ok := s.Lookup(w.name)
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("field %q is not declared", w.name))
		case f.Kind != w.kind:
			errs = append(errs, fmt.Errorf("field %q must be %s, got %s", w.name, w.kind, f.Kind))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrSchemaMismatch}, errs...)...)
	}
	return nil
}
