package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formintake/pkg/logger"
	"github.com/dmitrymomot/formintake/pkg/requestid"
)

// ErrorPageParams feeds an HTML error page.
type ErrorPageParams struct {
	Message    string
	Code       string
	StatusCode int
	RequestID  string
}

// ErrorToastParams feeds a DataStar toast.
type ErrorToastParams struct {
	Message   string
	Code      string
	Type      string // "warning" for client errors, "error" otherwise
	RequestID string
}

// ErrorHandlerConfig selects optional renderers. Without them, or when the
// client does not ask for HTML or SSE, errors are written as plain text.
type ErrorHandlerConfig struct {
	ErrorPage  func(ErrorPageParams) templ.Component
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string
	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode
}

func (c ErrorHandlerConfig) withDefaults() ErrorHandlerConfig {
	if c.ToastTarget == "" {
		c.ToastTarget = "#toast-container"
	}
	if c.ToastMode == "" {
		c.ToastMode = PatchPrepend
	}
	return c
}

// NewErrorHandler returns an ErrorHandler that logs every error and answers
// in the format the client asked for:
//
//   - Accept: application/json gets a JSON envelope;
//   - DataStar requests get ErrorToast over SSE when configured;
//   - clients accepting text/html get ErrorPage when configured;
//   - everyone else gets "Error: <message>" as text/plain.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = cfg.withDefaults()
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)
		reqID := requestid.FromContext(r.Context())

		log.LogAttrs(r.Context(), info.LogLevel, "request failed",
			logger.Component("error_handler"),
			logger.Error(err),
			logger.Code(info.Code),
			logger.Status(info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		resp := errorResponse(r, cfg, info, reqID)
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(renderErr),
			)
		}
	}
}

func errorResponse(r *http.Request, cfg ErrorHandlerConfig, info ErrorInfo, reqID string) Response {
	switch {
	case WantsJSON(r):
		return &jsonResponse{
			status: info.StatusCode,
			body:   Envelope{Error: &ErrorDetail{Code: info.Code, Message: info.Message}},
		}
	case IsDataStar(r) && cfg.ErrorToast != nil:
		toastType := "error"
		if info.LogLevel == slog.LevelWarn {
			toastType = "warning"
		}
		return Templ(cfg.ErrorToast(ErrorToastParams{
			Message:   info.Message,
			Code:      info.Code,
			Type:      toastType,
			RequestID: reqID,
		}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
	case cfg.ErrorPage != nil && !IsDataStar(r) && WantsHTML(r):
		return TemplWithStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
			Message:    info.Message,
			Code:       info.Code,
			StatusCode: info.StatusCode,
			RequestID:  reqID,
		}))
	default:
		return Text("Error: "+info.Message, WithTextStatus(info.StatusCode))
	}
}
