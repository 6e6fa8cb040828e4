package handler

import "net/http"

// HTTPError is an error carrying its own status and public message.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// NewHTTPError builds an HTTPError whose message is the status text.
func NewHTTPError(status int, code string) HTTPError {
	return HTTPError{StatusCode: status, Code: code, Message: http.StatusText(status)}
}
