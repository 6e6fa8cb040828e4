// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives an already bound request value and returns a
// Response. Wrap runs the configured binders, the decorators and the handler,
// and passes any bind or render error to an ErrorHandler.
//
// Responses are provided for plain text (Text), JSON envelopes (JSON,
// JSONError) and templ components (Templ), the latter patched over SSE when
// the request comes from a DataStar client.
//
// # Errors
//
// Classify turns an error into an ErrorInfo. Form validation errors keep
// their reason as the public message; status is 415 for a wrong Content-Type,
// 413 for oversized fields or bodies, 400 for other validation failures and
// 500 for unknown errors, whose details are never sent to the client.
//
// NewErrorHandler logs through slog and picks the response format from the
// request (JSON, DataStar toast, HTML page or plain text).
package handler
