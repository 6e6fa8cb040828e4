package handler

import (
	"io"
	"net/http"
)

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(t.status)
	_, err := io.WriteString(w, t.body)
	return err
}

// TextOption configures a text response.
type TextOption func(*textResponse)

func WithTextStatus(status int) TextOption {
	return func(t *textResponse) { t.status = status }
}

// Text renders body as text/plain with status 200 unless overridden.
func Text(body string, opts ...TextOption) Response {
	t := &textResponse{status: http.StatusOK, body: body}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
