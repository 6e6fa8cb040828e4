package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   Envelope
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(j *jsonResponse) { j.status = status }
}

// JSON wraps v in {"data": v} with status 200.
func JSON(v any, opts ...JSONOption) Response {
	j := &jsonResponse{status: http.StatusOK, body: Envelope{Data: v}}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// JSONError renders {"error": {"code", "message"}} using Classify.
func JSONError(err error, opts ...JSONOption) Response {
	info := Classify(err)
	j := &jsonResponse{
		status: info.StatusCode,
		body:   Envelope{Error: &ErrorDetail{Code: info.Code, Message: info.Message}},
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// WantsJSON reports whether the client asked for JSON via Accept.
func WantsJSON(r *http.Request) bool {
	return accepts(r, func(mt string) bool {
		return mt == "application/json" || strings.HasSuffix(mt, "+json")
	})
}

// WantsHTML reports whether the client named an HTML type in Accept.
// Wildcards such as "*/*" do not count.
func WantsHTML(r *http.Request) bool {
	return accepts(r, func(mt string) bool {
		return mt == "text/html" || mt == "application/xhtml+xml"
	})
}

func accepts(r *http.Request, match func(mediaType string) bool) bool {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if match(mt) {
			return true
		}
	}
	return false
}
