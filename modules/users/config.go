package users

import (
	"fmt"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
	"github.com/dmitrymomot/formintake/pkg/newuser"
)

// Config is the env-tagged section for the create_user endpoint.
type Config struct {
	// SchemaFile, when set, replaces the size and content type settings
	// below with a YAML schema.
	SchemaFile        string             `env:"SCHEMA_FILE"`
	AvatarMaxSize     multipartform.Size `env:"AVATAR_MAX_SIZE" envDefault:"8MiB"`
	DataMaxSize       multipartform.Size `env:"DATA_MAX_SIZE" envDefault:"1MiB"`
	AvatarContentType string             `env:"AVATAR_CONTENT_TYPE" envDefault:"image/*"`
	DataContentType   string             `env:"DATA_CONTENT_TYPE" envDefault:"*/*"`
	LenientQuotes     bool               `env:"LENIENT_QUOTES" envDefault:"false"`
	MaxBodySize       multipartform.Size `env:"MAX_BODY_SIZE" envDefault:"32MiB"`
	MaxParts          int                `env:"MAX_PARTS" envDefault:"16"`
}

// Schema builds the form schema described by the config.
func (c Config) Schema() (*multipartform.Schema, error) {
	if c.SchemaFile != "" {
		s, err := multipartform.LoadSchemaFile(c.SchemaFile)
		if err != nil {
			return nil, err
		}
		if err := newuser.ValidateSchema(s); err != nil {
			return nil, fmt.Errorf("schema file %s: %w", c.SchemaFile, err)
		}
		return s, nil
	}

	return multipartform.NewSchema(
		multipartform.Binary(newuser.FieldAvatar).
			WithMaxSize(c.AvatarMaxSize.Bytes()).
			WithContentType(c.AvatarContentType),
		multipartform.Text(newuser.FieldData).
			WithMaxSize(c.DataMaxSize.Bytes()).
			WithContentType(c.DataContentType),
	)
}

// Options returns the decoding options described by the config.
func (c Config) Options() []newuser.Option {
	opts := []newuser.Option{newuser.WithMaxParts(c.MaxParts)}
	if c.LenientQuotes {
		opts = append(opts, newuser.WithLenientQuotes())
	}
	return opts
}
