package multipartform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

func TestNewSchema(t *testing.T) {
	t.Parallel()

	t.Run("valid declarations keep order", func(t *testing.T) {
		t.Parallel()

		s, err := multipartform.NewSchema(
			multipartform.Binary("avatar").WithMaxSize(1024).WithContentType("image/*"),
			multipartform.Text("data"),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []string{"avatar", "data"}, s.Names())

		f, ok := s.Lookup("avatar")
		require.True(t, ok)
		assert.Equal(t, multipartform.KindBinary, f.Kind)
		assert.Equal(t, int64(1024), f.MaxSize)
		assert.Equal(t, "image/*", f.ContentType)

		f, ok = s.Lookup("data")
		require.True(t, ok)
		assert.Equal(t, multipartform.KindText, f.Kind)
		assert.Equal(t, multipartform.DefaultMaxSize, f.MaxSize)

		_, ok = s.Lookup("missing")
		assert.False(t, ok)
	})

	tests := []struct {
		name   string
		fields []multipartform.Field
	}{
		{name: "no fields"},
		{
			name:   "empty name",
			fields: []multipartform.Field{multipartform.Text("")},
		},
		{
			name:   "duplicate name",
			fields: []multipartform.Field{multipartform.Text("data"), multipartform.Binary("data")},
		},
		{
			name:   "zero size",
			fields: []multipartform.Field{multipartform.Text("data").WithMaxSize(0)},
		},
		{
			name:   "negative size",
			fields: []multipartform.Field{multipartform.Text("data").WithMaxSize(-1)},
		},
		{
			name:   "unknown kind",
			fields: []multipartform.Field{{Name: "data", MaxSize: 10, ContentType: "*/*"}},
		},
		{
			name:   "pattern without subtype",
			fields: []multipartform.Field{multipartform.Binary("avatar").WithContentType("image")},
		},
		{
			name:   "wildcard type with concrete subtype",
			fields: []multipartform.Field{multipartform.Binary("avatar").WithContentType("*/png")},
		},
		{
			name:   "empty pattern",
			fields: []multipartform.Field{multipartform.Binary("avatar").WithContentType("")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := multipartform.NewSchema(tt.fields...)
			require.Error(t, err)
			assert.ErrorIs(t, err, multipartform.ErrInvalidSchema)
			assert.Nil(t, s)
		})
	}
}

func TestMustSchema_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		multipartform.MustSchema(multipartform.Text("data"), multipartform.Text("data"))
	})
}

func TestSchema_FieldsReturnsCopy(t *testing.T) {
	t.Parallel()

	s := multipartform.MustSchema(multipartform.Text("data"))
	fields := s.Fields()
	fields[0].Name = "changed"

	_, ok := s.Lookup("data")
	assert.True(t, ok)
	assert.Equal(t, "data", s.Fields()[0].Name)
}

func TestSchema_Check(t *testing.T) {
	t.Parallel()

	s := multipartform.MustSchema(
		multipartform.Binary("avatar").WithMaxSize(4).WithContentType("image/*"),
		multipartform.Text("data").WithMaxSize(16).WithContentType("application/json"),
		multipartform.Text("note").WithMaxSize(16).WithContentType("text/plain"),
		multipartform.Binary("blob").WithMaxSize(16),
	)

	tests := []struct {
		name     string
		part     multipartform.RawPart
		wantErr  error
		wantCode multipartform.Code
	}{
		{
			name: "accepted image",
			part: multipartform.RawPart{Name: "avatar", ContentType: "image/png", Bytes: []byte{1, 2, 3, 4}},
		},
		{
			name: "content type match ignores case and params",
			part: multipartform.RawPart{Name: "data", ContentType: "Application/JSON; charset=utf-8", Bytes: []byte("{}")},
		},
		{
			name: "missing content type on text defaults to text/plain",
			part: multipartform.RawPart{Name: "note", Bytes: []byte("hi")},
		},
		{
			name: "missing content type on binary defaults to octet-stream",
			part: multipartform.RawPart{Name: "blob", Bytes: []byte("hi")},
		},
		{
			name:     "unknown field",
			part:     multipartform.RawPart{Name: "extra", Bytes: []byte("x")},
			wantErr:  multipartform.ErrUnknownField,
			wantCode: multipartform.CodeUnknownField,
		},
		{
			name:     "too large",
			part:     multipartform.RawPart{Name: "avatar", ContentType: "image/png", Bytes: []byte{1, 2, 3, 4, 5}},
			wantErr:  multipartform.ErrFieldTooLarge,
			wantCode: multipartform.CodeFieldTooLarge,
		},
		{
			name:     "wrong type",
			part:     multipartform.RawPart{Name: "avatar", ContentType: "text/plain", Bytes: []byte{1}},
			wantErr:  multipartform.ErrContentTypeMismatch,
			wantCode: multipartform.CodeContentTypeMismatch,
		},
		{
			name:     "default content type does not match image pattern",
			part:     multipartform.RawPart{Name: "avatar", Bytes: []byte{1}},
			wantErr:  multipartform.ErrContentTypeMismatch,
			wantCode: multipartform.CodeContentTypeMismatch,
		},
		{
			name:     "unparsable content type",
			part:     multipartform.RawPart{Name: "data", ContentType: "json", Bytes: []byte("{}")},
			wantErr:  multipartform.ErrContentTypeMismatch,
			wantCode: multipartform.CodeContentTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := s.Check(tt.part)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			vErr, ok := multipartform.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, vErr.Code)
			assert.Equal(t, tt.part.Name, vErr.Field)
		})
	}
}

func TestSchema_CheckMismatchReportsReceivedType(t *testing.T) {
	t.Parallel()

	s := multipartform.MustSchema(multipartform.Binary("avatar").WithContentType("image/*"))

	err := s.Check(multipartform.RawPart{Name: "avatar", ContentType: "application/pdf", Bytes: []byte{1}})
	vErr, ok := multipartform.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "application/pdf", vErr.Got)
	assert.Equal(t, "Field 'avatar' has content type 'application/pdf', expected 'image/*'", vErr.Error())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	k, err := multipartform.ParseKind("binary")
	require.NoError(t, err)
	assert.Equal(t, multipartform.KindBinary, k)

	k, err = multipartform.ParseKind("text")
	require.NoError(t, err)
	assert.Equal(t, multipartform.KindText, k)

	_, err = multipartform.ParseKind("json")
	assert.Error(t, err)
}
