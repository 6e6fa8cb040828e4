package multipartform

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlSchema struct {
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name        string `yaml:"name"`
	Kind        string `yaml:"kind"`
	MaxSize     string `yaml:"max_size"`
	ContentType string `yaml:"content_type"`
}

// LoadSchema reads field declarations from YAML:
//
//	fields:
//	  - name: avatar
//	    kind: binary
//	    max_size: 8MiB
//	    content_type: image/*
//	  - name: data
//	    kind: text
//	    max_size: 1MiB
//
// Omitted max_size and content_type fall back to DefaultMaxSize and "*/*".
// Unknown keys are rejected.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlSchema
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrInvalidSchema, errors.New("empty schema document"))
		}
		return nil, errors.Join(ErrInvalidSchema, err)
	}

	fields := make([]Field, 0, len(doc.Fields))
	for i, yf := range doc.Fields {
		kind, err := ParseKind(yf.Kind)
		if err != nil {
			return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("fields[%d]: %w", i, err))
		}

		var f Field
		if kind == KindText {
			f = Text(yf.Name)
		} else {
			f = Binary(yf.Name)
		}

		if yf.MaxSize != "" {
			size, err := ParseSize(yf.MaxSize)
			if err != nil {
				return nil, errors.Join(ErrInvalidSchema, fmt.Errorf("fields[%d]: %w", i, err))
			}
			f = f.WithMaxSize(size.Bytes())
		}
		if yf.ContentType != "" {
			f = f.WithContentType(yf.ContentType)
		}

		fields = append(fields, f)
	}

	return NewSchema(fields...)
}

// LoadSchemaFile opens path and passes it to LoadSchema.
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadSchema(f)
}
