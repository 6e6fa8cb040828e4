package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formintake/handler"
	"github.com/dmitrymomot/formintake/pkg/binder"
	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

type greeting struct {
	Name string
}

func bindName(r *http.Request, v any) error {
	name := r.URL.Query().Get("name")
	if name == "" {
		return multipartform.MissingField("name")
	}
	v.(*greeting).Name = name
	return nil
}

func hello(_ handler.Context, req greeting) handler.Response {
	return handler.Text("Hello, " + req.Name + "!")
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(handler.HandlerFunc[handler.Context, greeting](hello),
			handler.WithBinder[handler.Context, greeting](bindName),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=Ana", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Hello, Ana!", rec.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	})

	t.Run("bind error goes to default error handler", func(t *testing.T) {
		t.Parallel()

		h := handler.Wrap(handler.HandlerFunc[handler.Context, greeting](hello),
			handler.WithBinder[handler.Context, greeting](bindName),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Error: Missing field 'name'", rec.Body.String())
	})

	t.Run("not applicable binders are skipped", func(t *testing.T) {
		t.Parallel()

		skip := func(*http.Request, any) error { return binder.ErrBinderNotApplicable }
		h := handler.Wrap(handler.HandlerFunc[handler.Context, greeting](hello),
			handler.WithBinders[handler.Context, greeting](skip, bindName),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/?name=Bo", nil))
		assert.Equal(t, "Hello, Bo!", rec.Body.String())
	})

	t.Run("custom error handler", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(handler.HandlerFunc[handler.Context, greeting](hello),
			handler.WithBinder[handler.Context, greeting](bindName),
			handler.WithErrorHandler[handler.Context, greeting](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusTeapot)
			}),
		)

		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.ErrorIs(t, got, multipartform.ErrMissingField)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()

		var got error
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, greeting](func(handler.Context, greeting) handler.Response { return nil }),
			handler.WithErrorHandler[handler.Context, greeting](func(ctx handler.Context, err error) {
				got = err
				ctx.ResponseWriter().WriteHeader(http.StatusInternalServerError)
			}),
		)

		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("decorators run outermost first", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) handler.Decorator[handler.Context, greeting] {
			return func(next handler.HandlerFunc[handler.Context, greeting]) handler.HandlerFunc[handler.Context, greeting] {
				return func(ctx handler.Context, req greeting) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.Wrap(handler.HandlerFunc[handler.Context, greeting](hello),
			handler.WithDecorators(mark("outer"), mark("inner")),
		)
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}

type appContext struct {
	handler.Context
	tenant string
}

func TestWrap_CustomContext(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(
		handler.HandlerFunc[appContext, greeting](func(ctx appContext, _ greeting) handler.Response {
			return handler.Text(ctx.tenant)
		}),
		handler.WithContextFactory[appContext, greeting](func(w http.ResponseWriter, r *http.Request) appContext {
			return appContext{Context: handler.NewContext(w, r), tenant: "acme"}
		}),
	)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "acme", rec.Body.String())

	missingFactory := handler.Wrap(handler.HandlerFunc[appContext, greeting](func(appContext, greeting) handler.Response {
		return handler.Text("")
	}))
	assert.Panics(t, func() { missingFactory(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)) })
}

func TestContextValue(t *testing.T) {
	t.Parallel()

	key := handler.NewContextKey("started")
	assert.Equal(t, "started", key.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := handler.NewContext(httptest.NewRecorder(), req.WithContext(contextWith(req, key, 42)))

	assert.Equal(t, 42, handler.ContextValue[int](ctx, key))
	_, ok := handler.ContextValueOK[string](ctx, key)
	assert.False(t, ok)
	v, ok := handler.ContextValueOK[int](ctx, key)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, handler.JSON(map[string]int{"age": 30}, handler.WithJSONStatus(http.StatusCreated)).
		Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"age":30}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, handler.JSONError(multipartform.UnknownField("extra")).
		Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"unknown_field","message":"Unknown field 'extra'"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	require.NoError(t, handler.JSONError(errors.New("db password is hunter2")).
		Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, strings.Contains(rec.Body.String(), "hunter2"))
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":                                  false,
		"text/plain":                        false,
		"application/json":                  true,
		"text/html, application/json;q=0.9": true,
		"application/problem+json":          true,
		"*/*":                               false,
	}
	for accept, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", accept)
		assert.Equal(t, want, handler.WantsJSON(req), accept)
	}
}

func TestWantsHTML(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"":          false,
		"*/*":       false,
		"text/*":    false,
		"text/html": true,
		"text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8": true,
		"application/xhtml+xml": true,
		"application/json":      false,
	}
	for accept, want := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept", accept)
		assert.Equal(t, want, handler.WantsHTML(req), accept)
	}
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(req))

	req.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(req))

	assert.True(t, handler.IsDataStar(httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)))

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Datastar-Request", "true")
	assert.True(t, handler.IsDataStar(req))
}
