package log

import (
	"log/slog"
)

// CallbackFunc is a function that receives log records
type CallbackFunc func(record slog.Record)

// NewCallbackLogger creates a logger that forwards logs to a callback function
// This uses slog.Handler internally, so all logs are processed through the handler pipeline
func NewCallbackLogger(callback CallbackFunc, minLevel slog.Level) *slog.Logger {
	handler := NewCallbackHandler(callback, minLevel)
	return slog.New(handler)
}

// Format renders a record the way the line handler would, for callers that
// display forwarded records themselves
func Format(record slog.Record) string {
	msg := record.Message
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.TimeKey {
			return true
		}
		msg += " " + a.Key + "=" + a.Value.String()
		return true
	})
	return levelPrefix(record.Level) + msg
}
