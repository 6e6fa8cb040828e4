package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formintake/pkg/multipartform"
)

// Codes for failures that are not form validation errors.
const (
	CodeBodyTooLarge  = "body_too_large"
	CodeInternalError = "internal_error"
)

// ErrorInfo is what clients are told about an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	LogLevel   slog.Level
}

// Classify maps err to a status and a message that is safe to send.
//
//	missing_content_type         415
//	field_too_large, body limit  413
//	other validation errors      400
//	HTTPError                    its own status
//	anything else                500
func Classify(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An error occurred processing your request",
	}

	var (
		vErr     *multipartform.ValidationError
		maxErr   *http.MaxBytesError
		httpErr  HTTPError
		httpErrP *HTTPError
	)
	switch {
	case errors.As(err, &maxErr):
		// The body limit can surface wrapped in a malformed multipart error.
		info.StatusCode = http.StatusRequestEntityTooLarge
		info.Code = CodeBodyTooLarge
		info.Message = "Request body too large"
	case errors.As(err, &vErr):
		info.Code = string(vErr.Code)
		info.Message = vErr.Reason
		info.StatusCode = validationStatus(vErr.Code)
	case errors.As(err, &httpErr):
		info.StatusCode, info.Code, info.Message = httpErr.StatusCode, httpErr.Code, httpErr.Error()
	case errors.As(err, &httpErrP):
		info.StatusCode, info.Code, info.Message = httpErrP.StatusCode, httpErrP.Code, httpErrP.Error()
	}

	info.LogLevel = slog.LevelError
	if info.StatusCode >= 400 && info.StatusCode < 500 {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

func validationStatus(code multipartform.Code) int {
	switch code {
	case multipartform.CodeMissingContentType:
		return http.StatusUnsupportedMediaType
	case multipartform.CodeFieldTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}
