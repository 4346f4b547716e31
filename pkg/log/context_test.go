package log_test

import (
	"context"
	"testing"

	"teamcity-notifier/pkg/log"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := log.TraceID(ctx); got != "" {
		t.Fatalf("expected empty trace id, got %q", got)
	}

	ctx = log.WithTraceID(ctx, "abc-123")
	if got := log.TraceID(ctx); got != "abc-123" {
		t.Errorf("TraceID() = %q, want %q", got, "abc-123")
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	for _, cfg := range []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "production", Encoding: "json"},
	} {
		l := log.Init(cfg)
		l.Infof(log.WithTraceID(context.Background(), "t-1"), "hello %s", "world")
	}
	log.NewNop().Error(context.Background(), "discarded")
}
