// Package newuser turns a multipart/form-data submission into a validated
// NewUser: an avatar image plus a JSON record with the user's name and age.
//
// # Usage
//
//	schema := newuser.DefaultSchema()
//	u, err := newuser.DecodeAndValidate(ctx, schema, r.Header.Get("Content-Type"), r.Body)
//	if err != nil {
//		if vErr, ok := multipartform.AsValidationError(err); ok {
//			// vErr.Reason is safe to show to the client
//		}
//		return err
//	}
//
// The data field must hold a JSON object with the keys "name" and "age".
// Other keys are ignored. Repeated keys, trailing data and ages outside the
// int32 range are rejected. WithLenientQuotes accepts single-quoted JSON.
//
// A schema loaded from configuration can be checked with ValidateSchema
// before use.
package newuser
