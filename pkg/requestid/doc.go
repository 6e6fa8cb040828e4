// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware accepts a client supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-]; anything else is replaced by a fresh UUID.
// The ID is stored in the request context, echoed back in the response
// header and, through LoggerExtractor, added to every log record written with
// that context.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
