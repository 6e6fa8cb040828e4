package multipartform

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// DefaultMaxParts bounds how many parts a single body may contain.
const DefaultMaxParts = 16

// RawPart is one decoded section of a multipart body.
type RawPart struct {
	Name        string
	Filename    string
	ContentType string // empty when the part has no Content-Type header
	Header      textproto.MIMEHeader
	Bytes       []byte
}

// Size returns the payload length in bytes.
func (p RawPart) Size() int64 {
	return int64(len(p.Bytes))
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithMaxParts overrides DefaultMaxParts. Non-positive values are ignored.
func WithMaxParts(n int) DecoderOption {
	return func(d *Decoder) {
		if n > 0 {
			d.maxParts = n
		}
	}
}

// Decoder splits a multipart/form-data body into parts, one at a time.
// Every part is read through the size ceiling of its schema field, so a
// single part never costs more memory than its declared limit.
// A Decoder is not safe for concurrent use and cannot be restarted.
type Decoder struct {
	reader   *multipart.Reader
	body     *tailReader
	closing  []byte
	schema   *Schema
	maxParts int
	parts    int
	err      error
}

// NewDecoder validates the request content type and prepares a Decoder for body.
func NewDecoder(contentType string, body io.Reader, schema *Schema, opts ...DecoderOption) (*Decoder, error) {
	if strings.TrimSpace(contentType) == "" {
		return nil, MissingContentType("")
	}

	// ParseMediaType still returns the media type when only a parameter is
	// broken, e.g. "boundary=". That case is a boundary problem.
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil && !(errors.Is(err, mime.ErrInvalidMediaParameter) && mediaType == "multipart/form-data") {
		return nil, MissingContentType(strings.TrimSpace(contentType))
	}
	if mediaType != "multipart/form-data" {
		return nil, MissingContentType(mediaType)
	}

	boundary := params["boundary"]
	if !validBoundary(boundary) {
		return nil, MalformedMultipart("missing or invalid boundary parameter", nil)
	}

	tail := &tailReader{r: body, size: len(boundary) + epilogueWindow}
	d := &Decoder{
		reader:   multipart.NewReader(tail, boundary),
		body:     tail,
		closing:  []byte("--" + boundary + "--"),
		schema:   schema,
		maxParts: DefaultMaxParts,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Next returns the next part or io.EOF after the closing delimiter.
// Once Next fails, every later call returns the same error.
func (d *Decoder) Next() (*RawPart, error) {
	if d.err != nil {
		return nil, d.err
	}

	part, err := d.next()
	if err != nil {
		d.err = err
		return nil, err
	}
	return part, nil
}

func (d *Decoder) next() (*RawPart, error) {
	// NextRawPart keeps the payload as sent: no quoted-printable decoding.
	p, err := d.reader.NextRawPart()
	if err == io.EOF {
		// multipart.Reader also reports a bare io.EOF when the body is cut
		// inside part headers.
		if d.body.eof && !bytes.Contains(d.body.tail, d.closing) {
			return nil, MalformedMultipart("missing closing delimiter", nil)
		}
		return nil, io.EOF
	}
	if err != nil {
		return nil, MalformedMultipart("invalid part delimiter", err)
	}

	d.parts++
	if d.parts > d.maxParts {
		return nil, MalformedMultipart("too many parts", nil)
	}

	name := p.FormName()
	if name == "" {
		return nil, MalformedMultipart("part without form-data name", nil)
	}

	field, ok := d.schema.Lookup(name)
	if !ok {
		return nil, UnknownField(name)
	}

	// One byte past the ceiling is enough to tell that the part is too large.
	// The rest of the part is never read.
	data, err := io.ReadAll(io.LimitReader(p, field.MaxSize+1))
	if err != nil {
		return nil, MalformedMultipart("truncated part '"+name+"'", err)
	}
	if int64(len(data)) > field.MaxSize {
		return nil, FieldTooLarge(name, field.MaxSize)
	}

	return &RawPart{
		Name:        name,
		Filename:    p.FileName(),
		ContentType: p.Header.Get("Content-Type"),
		Header:      p.Header,
		Bytes:       data,
	}, nil
}

// epilogueWindow is how many trailing body bytes are kept to find the
// closing delimiter.
const epilogueWindow = 512

// tailReader remembers whether the body reached EOF and keeps its last bytes.
type tailReader struct {
	r    io.Reader
	tail []byte
	size int
	eof  bool
}

func (t *tailReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 {
		t.tail = append(t.tail, p[:n]...)
		if over := len(t.tail) - t.size; over > 0 {
			t.tail = t.tail[over:]
		}
	}
	if err == io.EOF {
		t.eof = true
	}
	return n, err
}

// validBoundary checks the boundary against RFC 2046: 1 to 70 characters
// from a restricted set, not ending with a space.
func validBoundary(b string) bool {
	if len(b) == 0 || len(b) > 70 {
		return false
	}
	if b[len(b)-1] == ' ' {
		return false
	}
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("'()+_,-./:=? ", c) >= 0:
		default:
			return false
		}
	}
	return true
}

var _ PartSource = (*Decoder)(nil)
