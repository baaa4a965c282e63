package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func fieldMap(entry observer.LoggedEntry) map[string]zap.Field {
	fields := map[string]zap.Field{}
	for _, f := range entry.Context {
		fields[f.Key] = f
	}
	return fields
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	var nilCtx context.Context
	if LoggerFromContext(nilCtx) != Logger() {
		t.Fatal("expected global logger for nil context")
	}
	if LoggerFromContext(context.Background()) != Logger() {
		t.Fatal("expected global logger when none stored")
	}
}

func TestLogHelpersUseContextLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	LogInfo(ctx, "info message", zap.String("path", "/info"))
	LogWarn(ctx, "warn message")
	LogError(ctx, "error message", errors.New("boom"))
	LogError(ctx, "error without cause", nil)

	entries := recorded.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || fieldMap(entries[0])["path"].String != "/info" {
		t.Fatalf("unexpected info entry: %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected warn level: %s", entries[1].Level)
	}
	if f, ok := fieldMap(entries[2])["error"]; !ok || f.Type != zapcore.ErrorType {
		t.Fatalf("expected error field, got %+v", entries[2].Context)
	}
	if _, ok := fieldMap(entries[3])["error"]; ok {
		t.Fatal("did not expect error field for nil error")
	}
}

func TestLogFatalAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic))
	ctx := WithLogger(context.Background(), logger)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic triggered by fatal hook")
		}
		entries := recorded.All()
		if len(entries) != 1 || entries[0].Message != "fatal failure" {
			t.Fatalf("unexpected entries: %+v", entries)
		}
		if _, ok := fieldMap(entries[0])["error"]; !ok {
			t.Fatal("expected error field on fatal entry")
		}
	}()

	LogFatal(ctx, "fatal failure", errors.New("port in use"))
}
