package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/paperhub/internal/app/features/errors"
	"github.com/dalemusser/paperhub/internal/app/system/auth"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) uierrors.Body {
	t.Helper()
	var b uierrors.Body
	if err := json.NewDecoder(rec.Body).Decode(&b); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return b
}

func TestLogServerError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	el := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest(http.MethodGet, "/api/library/OLevelNotes", nil)
	req = req.WithContext(auth.WithUser(req.Context(), &auth.User{UID: "u-1"}))
	rec := httptest.NewRecorder()

	el.LogServerError(rec, req, "list failed", stderrors.New("connection reset"), "")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	b := decode(t, rec)
	if b.Error == "" || b.Error == "connection reset" {
		t.Errorf("error body = %q, want a generic message", b.Error)
	}

	entries := logs.FilterMessage("list failed").All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["uid"] != "u-1" || ctx["path"] != "/api/library/OLevelNotes" {
		t.Errorf("log fields = %v", ctx)
	}
	if entries[0].Level != zapcore.ErrorLevel {
		t.Errorf("level = %v, want error", entries[0].Level)
	}
}

func TestLogBadRequest(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	el := uierrors.NewErrorLogger(zap.New(core))

	rec := httptest.NewRecorder()
	el.LogBadRequest(rec, httptest.NewRequest(http.MethodPost, "/api/uploads", nil), "bad json", nil, "Invalid request body.")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if b := decode(t, rec); b.Error != "Invalid request body." {
		t.Errorf("error = %q", b.Error)
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Error("expected one warn entry")
	}
}

func TestWriteFields(t *testing.T) {
	rec := httptest.NewRecorder()
	uierrors.WriteFields(rec, []uierrors.FieldError{
		{Field: "title", Message: "Please enter a title"},
		{Field: "year", Message: "Year must be a 4-digit year"},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	b := decode(t, rec)
	if b.Error != "Please enter a title" || len(b.Fields) != 2 {
		t.Errorf("body = %+v", b)
	}
}

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		name   string
		render func(http.ResponseWriter)
		status int
	}{
		{"not found", func(w http.ResponseWriter) { uierrors.RenderNotFound(w, "") }, http.StatusNotFound},
		{"unauthorized", uierrors.RenderUnauthorized, http.StatusUnauthorized},
		{"forbidden", func(w http.ResponseWriter) { uierrors.RenderForbidden(w, "") }, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.render(rec)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if decode(t, rec).Error == "" {
				t.Error("empty error message")
			}
		})
	}
}
