// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"go.uber.org/zap"
)

// ErrorLogger logs a request-scoped failure and writes the JSON error body.
// Handlers hold one and never write 5xx bodies themselves.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg with err at error level and responds 500 with
// userMsg. The raw error never reaches the client.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Error(msg, e.fields(r, err)...)
	if userMsg == "" {
		userMsg = "Something went wrong. Please try again."
	}
	WriteError(w, http.StatusInternalServerError, userMsg)
}

// LogBadRequest logs at warn level and responds 400 with userMsg.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	WriteError(w, http.StatusBadRequest, userMsg)
}

// LogTimeout logs a deadline hit and responds 504.
func (e *ErrorLogger) LogTimeout(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.Log.Warn(msg, e.fields(r, err)...)
	WriteError(w, http.StatusGatewayTimeout, "The request took too long. Please try again.")
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if u, ok := auth.CurrentUser(r); ok {
		fs = append(fs, zap.String("uid", u.UID))
	}
	if err != nil {
		fs = append(fs, zap.Error(err))
	}
	return fs
}
