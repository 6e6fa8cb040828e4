// Package binder provides request binders for handler.Wrap.
//
// Multipart streams a request body through a decode function and stores the
// result in the handler's request value. A binder may return
// ErrBinderNotApplicable to let the next binder handle the request.
package binder
