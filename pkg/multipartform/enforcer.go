package multipartform

import (
	"context"
	"io"
)

// PartSource yields decoded parts until io.EOF. *Decoder implements it.
type PartSource interface {
	Next() (*RawPart, error)
}

// EnforcedForm holds the parts that passed the schema, grouped by name.
// It only contains declared names; declared names that never arrived are absent.
type EnforcedForm struct {
	fields map[string]Occurrence[RawPart]
	order  []string
}

// Get returns the occurrence recorded for name.
func (f EnforcedForm) Get(name string) (Occurrence[RawPart], bool) {
	o, ok := f.fields[name]
	return o, ok
}

// Names returns the received field names in order of first arrival.
func (f EnforcedForm) Names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Len returns the number of distinct received names.
func (f EnforcedForm) Len() int {
	return len(f.order)
}

func (f *EnforcedForm) add(p RawPart) {
	if f.fields == nil {
		f.fields = make(map[string]Occurrence[RawPart])
	}
	if o, ok := f.fields[p.Name]; ok {
		f.fields[p.Name] = o.add(p)
		return
	}
	f.fields[p.Name] = single(p)
	f.order = append(f.order, p.Name)
}

// Enforce drains src, checks every part against schema and groups the parts
// by name. The first violation aborts with no partial result.
// Cancellation of ctx is observed between parts.
func Enforce(ctx context.Context, src PartSource, schema *Schema) (EnforcedForm, error) {
	var form EnforcedForm

	for {
		if err := ctx.Err(); err != nil {
			return EnforcedForm{}, err
		}

		part, err := src.Next()
		if err == io.EOF {
			return form, nil
		}
		if err != nil {
			return EnforcedForm{}, err
		}

		// Repeated here so sources other than *Decoder are held to the same rules.
		if err := schema.Check(*part); err != nil {
			return EnforcedForm{}, err
		}

		form.add(*part)
	}
}
