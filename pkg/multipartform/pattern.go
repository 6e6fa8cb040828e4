package multipartform

import (
	"fmt"
	"mime"
	"strings"
)

// mediaRange is a parsed content-type acceptance pattern such as
// "image/png", "image/*" or "*/*".
type mediaRange struct {
	typ, sub string
}

func parseMediaRange(pattern string) (mediaRange, error) {
	mediaType, _, err := mime.ParseMediaType(pattern)
	if err != nil {
		return mediaRange{}, fmt.Errorf("content type pattern %q: %w", pattern, err)
	}

	typ, sub, ok := strings.Cut(mediaType, "/")
	if !ok || typ == "" || sub == "" {
		return mediaRange{}, fmt.Errorf("content type pattern %q: expected type/subtype", pattern)
	}
	if typ == "*" && sub != "*" {
		return mediaRange{}, fmt.Errorf("content type pattern %q: wildcard type requires wildcard subtype", pattern)
	}

	return mediaRange{typ: typ, sub: sub}, nil
}

// matches reports whether the content type falls into the range.
// Parameters of the content type are ignored.
func (m mediaRange) matches(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	typ, sub, ok := strings.Cut(mediaType, "/")
	if !ok || typ == "" || sub == "" {
		return false
	}

	if m.typ != "*" && m.typ != typ {
		return false
	}
	return m.sub == "*" || m.sub == sub
}

func (m mediaRange) String() string {
	return m.typ + "/" + m.sub
}
