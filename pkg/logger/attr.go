package logger

import (
	"log/slog"
	"time"
)

// Error returns an "error" attribute, or an empty one for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr { return slog.String("component", name) }
func Event(name string) slog.Attr     { return slog.String("event", name) }
func Handler(name string) slog.Attr   { return slog.String("handler", name) }

// Field names the form field a record is about.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Code records a rejection code such as "field_too_large".
func Code(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("code", code)
}

func Status(status int) slog.Attr        { return slog.Int("status", status) }
func Bytes(n int64) slog.Attr            { return slog.Int64("bytes", n) }
func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }
