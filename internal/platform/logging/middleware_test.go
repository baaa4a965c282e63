package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLoggerUsesRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/tea", nil)
	req = req.WithContext(WithLogger(req.Context(), logger))
	resp := httptest.NewRecorder()
	access.ServeHTTP(resp, req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "request completed" {
		t.Fatalf("unexpected log message: %s", entries[0].Message)
	}

	fields := fieldMap(entries[0])
	if f := fields["status"]; f.Integer != http.StatusTeapot {
		t.Fatalf("expected status 418, got %+v", f)
	}
	if f := fields["method"]; f.String != http.MethodGet {
		t.Fatalf("expected method GET, got %+v", f)
	}
	if f := fields["path"]; f.String != "/tea" {
		t.Fatalf("expected path '/tea', got %+v", f)
	}
	if f := fields["bytes"]; f.Integer != int64(len("short and stout")) {
		t.Fatalf("unexpected bytes field: %+v", f)
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatalf("expected duration field, got %+v", fields)
	}
}

func TestRequestLoggerTagsRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	handler := requestLogger(func() *zap.Logger { return base })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		LogInfo(r.Context(), "handled")
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := fieldMap(entries[0])
	if f := fields["requestId"]; f.String != "req-42" {
		t.Fatalf("expected requestId req-42, got %+v", f)
	}
	if _, ok := fields["trace_id"]; ok {
		t.Fatal("did not expect trace_id without traceparent")
	}
}

func TestRequestLoggerAddsTraceparentFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	handler := requestLogger(func() *zap.Logger { return base })(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		LogInfo(r.Context(), "handled")
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceparentHeader, "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01")
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42"))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := fieldMap(entries[0])
	if f := fields["trace_id"]; f.String != "3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("expected W3C trace id, got %+v", f)
	}
	if f := fields["span_id"]; f.String != "08f067aa0ba902b7" {
		t.Fatalf("expected span id, got %+v", f)
	}
	if f := fields["requestId"]; f.String != "req-42" {
		t.Fatalf("expected requestId req-42, got %+v", f)
	}
}

func TestRequestLoggerUsesProcessLoggerByDefault(t *testing.T) {
	handler := RequestLogger()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		if LoggerFromContext(r.Context()) == nil {
			t.Fatal("expected non-nil logger in context")
		}
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
}
