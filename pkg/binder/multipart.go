package binder

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// DecodeFunc turns a request body into T.
type DecodeFunc[T any] func(ctx context.Context, contentType string, body io.Reader) (T, error)

// Multipart binds the request body with decode. The body is streamed, never
// parsed with http.Request.ParseMultipartForm, so size limits are enforced by
// decode as it reads. Errors from decode are returned unchanged.
//
//	binder.Multipart(func(ctx context.Context, ct string, body io.Reader) (newuser.NewUser, error) {
//		return newuser.DecodeAndValidate(ctx, schema, ct, body)
//	})
func Multipart[T any](decode DecodeFunc[T]) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		target, ok := v.(*T)
		if !ok || target == nil {
			return fmt.Errorf("%w: want *%T, got %T", ErrInvalidTarget, *new(T), v)
		}

		val, err := decode(r.Context(), r.Header.Get("Content-Type"), r.Body)
		if err != nil {
			return err
		}
		*target = val
		return nil
	}
}
