package newuser

import (
	"context"
	"io"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

// DecodeAndValidate runs the full pipeline over a request body: decode the
// multipart framing, enforce schema, then materialize a NewUser.
// The first error from any stage is returned unchanged.
func DecodeAndValidate(ctx context.Context, schema *multipartform.Schema, contentType string, body io.Reader, opts ...Option) (NewUser, error) {
	o := newOptions(opts)

	dec, err := multipartform.NewDecoder(contentType, body, schema, multipartform.WithMaxParts(o.maxParts))
	if err != nil {
		return NewUser{}, err
	}

	form, err := multipartform.Enforce(ctx, dec, schema)
	if err != nil {
		return NewUser{}, err
	}

	return Materialize(form, opts...)
}
