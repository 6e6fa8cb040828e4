// Package multipartform decodes and validates multipart/form-data bodies
// against a declared field schema.
//
// The package is organised as a one-way pipeline:
//
//   - Schema: an immutable declaration of the legal fields: name, Kind
//     (binary or text), size ceiling and content-type pattern ("image/*",
//     "*/*", "application/json").
//   - Decoder: splits the body into RawPart values using the boundary from
//     the Content-Type header. Parts are read lazily and through the size
//     ceiling of their field, so an oversized part is rejected after at most
//     ceiling+1 bytes instead of being buffered.
//   - Enforce: checks each part against the schema and groups parts by name
//     into an EnforcedForm of Occurrence values (Single or Multiple).
//
// Turning an EnforcedForm into an application value is left to the caller;
// see package newuser for an example.
//
// # Usage
//
//	schema := multipartform.MustSchema(
//		multipartform.Binary("avatar").WithMaxSize(8<<20).WithContentType("image/*"),
//		multipartform.Text("data").WithMaxSize(1<<20),
//	)
//
//	dec, err := multipartform.NewDecoder(r.Header.Get("Content-Type"), r.Body, schema)
//	if err != nil {
//		return err
//	}
//	form, err := multipartform.Enforce(r.Context(), dec, schema)
//	if err != nil {
//		return err
//	}
//	avatar, _ := form.Get("avatar")
//
// Schemas can also be loaded from YAML with LoadSchema or LoadSchemaFile.
//
// # Errors
//
// Every request-level failure is a *ValidationError carrying a Code and a
// client-safe Reason. Each code has a sentinel (ErrUnknownField,
// ErrFieldTooLarge, ...) usable with errors.Is. Invalid declarations are
// reported with ErrInvalidSchema and are meant to stop the process at startup.
package multipartform
