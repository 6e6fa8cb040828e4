package multipartform_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

type formPart struct {
	name        string
	filename    string
	contentType string
	content     []byte
}

// buildBody writes parts in the given order and returns the body with its
// Content-Type header value.
func buildBody(t *testing.T, parts ...formPart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, p := range parts {
		header := textproto.MIMEHeader{}
		disposition := fmt.Sprintf(`form-data; name="%s"`, p.name)
		if p.filename != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, p.filename)
		}
		header.Set("Content-Disposition", disposition)
		if p.contentType != "" {
			header.Set("Content-Type", p.contentType)
		}

		w, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = w.Write(p.content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// partList is an in-memory PartSource.
type partList struct {
	parts []multipartform.RawPart
	pos   int
}

func (l *partList) Next() (*multipartform.RawPart, error) {
	if l.pos >= len(l.parts) {
		return nil, io.EOF
	}
	p := l.parts[l.pos]
	l.pos++
	return &p, nil
}
