package binder_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formintake/pkg/binder"
)

type upload struct {
	ContentType string
	Body        string
}

func echoDecode(_ context.Context, ct string, body io.Reader) (upload, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return upload{}, err
	}
	return upload{ContentType: ct, Body: string(b)}, nil
}

func TestMultipart(t *testing.T) {
	t.Parallel()

	bind := binder.Multipart(echoDecode)

	req := httptest.NewRequest(http.MethodPost, "/create_user", strings.NewReader("payload"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")

	var got upload
	require.NoError(t, bind(req, &got))
	assert.Equal(t, "multipart/form-data; boundary=x", got.ContentType)
	assert.Equal(t, "payload", got.Body)
}

func TestMultipart_DecodeErrorUnchanged(t *testing.T) {
	t.Parallel()

	want := errors.New("rejected")
	bind := binder.Multipart(func(context.Context, string, io.Reader) (upload, error) {
		return upload{}, want
	})

	var got upload
	err := bind(httptest.NewRequest(http.MethodPost, "/", nil), &got)
	assert.Same(t, want, err)
}

func TestMultipart_InvalidTarget(t *testing.T) {
	t.Parallel()

	bind := binder.Multipart(echoDecode)
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	var wrong string
	assert.ErrorIs(t, bind(req, &wrong), binder.ErrInvalidTarget)
	assert.ErrorIs(t, bind(req, (*upload)(nil)), binder.ErrInvalidTarget)
}
