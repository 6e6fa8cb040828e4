package users

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formintake/handler"
)

// Views are the optional HTML renderers. Nil fields fall back to plain text
// or JSON.
type Views struct {
	Created    func(CreatedParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// CreatedParams feeds the Created view.
type CreatedParams struct {
	Name       string
	Age        int32
	AvatarSize int
}

// DefaultViews returns minimal built-in components.
func DefaultViews() Views {
	return Views{
		Created:    createdView,
		ErrorPage:  errorPageView,
		ErrorToast: errorToastView,
	}
}

func createdView(p CreatedParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="result" class="success">%s</div>`,
			templ.EscapeString(greeting(p.Name, p.Age)))
		return err
	})
}

func errorPageView(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!doctype html><html><head><title>%d</title></head><body><main><h1>Error</h1><p>%s</p><small>Request ID: %s</small></main></body></html>`,
			p.StatusCode, templ.EscapeString(p.Message), templ.EscapeString(p.RequestID))
		return err
	})
}

func errorToastView(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" role="alert" data-code="%s">%s</div>`,
			templ.EscapeString(p.Type), templ.EscapeString(p.Code), templ.EscapeString(p.Message))
		return err
	})
}
