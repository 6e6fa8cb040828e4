package binder

import "errors"

var (
	// ErrBinderNotApplicable tells handler.Wrap to skip a binder for this request.
	ErrBinderNotApplicable = errors.New("binder not applicable")
	// ErrInvalidTarget means the bind target is not a pointer to the decoded type.
	ErrInvalidTarget = errors.New("invalid bind target")
)
