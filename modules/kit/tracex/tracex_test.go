package tracex

import (
	"context"
	"testing"
)

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "t-1")
	ctx = WithSpanID(ctx, "editor")
	if got, ok := TraceIDFrom(ctx); !ok || got != "t-1" {
		t.Fatalf("期望 TraceIDFrom round-trip 成功，got=%q ok=%v", got, ok)
	}
	if got, ok := SpanIDFrom(ctx); !ok || got != "editor" {
		t.Fatalf("期望 SpanIDFrom round-trip 成功，got=%q ok=%v", got, ok)
	}
	if _, ok := ConnIDFrom(ctx); ok {
		t.Fatalf("HTTP 请求不应带 conn id")
	}
	ctx = WithConnID(ctx, "c-1")
	if got, ok := ConnIDFrom(ctx); !ok || got != "c-1" {
		t.Fatalf("期望 ConnIDFrom round-trip 成功，got=%q ok=%v", got, ok)
	}
}

func TestNewTraceID_长度与唯一(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	if len(a) != 32 || a == b {
		t.Fatalf("trace id 不符合预期 a=%q b=%q", a, b)
	}
	if _, ok := TraceIDFrom(context.Background()); ok {
		t.Fatalf("空 ctx 不应取到 trace id")
	}
}
