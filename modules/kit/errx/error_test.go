package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is_只按code比较语义(t *testing.T) {
	e1 := NewBiz("TILEMAP_X", "x").WithData("k", "v").WithCause(errors.New("cause1"))
	e2 := NewBiz("TILEMAP_X", "x2").WithData("k2", "v2").WithCause(errors.New("cause2"))
	if !errors.Is(e1, e2) {
		t.Fatalf("期望 errors.Is(e1, e2)==true（只按 code 判断语义），e1=%v e2=%v", e1, e2)
	}
	if errors.Is(e1, NewBiz("TILEMAP_Y", "x")) {
		t.Fatalf("不同 code 不应该匹配")
	}
}

func TestError_业务错误不捕获栈_但保留cause链(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewBiz("TILEMAP_MALFORMED", "地图数据格式错误").WithCause(cause)
	if got := err.Stack(); got != nil {
		t.Fatalf("期望业务错误不捕获栈，got=%v", got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("期望 cause 链不丢，err=%v", err)
	}
	if !err.IsBiz() {
		t.Fatalf("期望 IsBiz()==true")
	}
}

func TestError_系统错误捕获一次栈_且不重复捕获(t *testing.T) {
	cause := errors.New("connection refused")
	sys := NewSys("SYS_MONGO_UNAVAILABLE", "预设库不可用").WithCause(cause)
	if got := sys.Stack(); len(got) == 0 {
		t.Fatalf("期望系统错误捕获栈，got=%v", got)
	}

	sys2 := NewSys("SYS_CATALOG_ERROR", "预设读取失败").WithCause(sys)
	if got := sys2.Stack(); got != nil {
		t.Fatalf("期望上层系统错误不重复捕获栈，got=%v", got)
	}
}

func TestError_Data_防止外部map污染(t *testing.T) {
	m := map[string]any{"k": "v"}
	err := NewBiz("BIZ_X", "").WithDataMap(m)
	m["k"] = "mutated"
	if got := err.Data()["k"]; got != "v" {
		t.Fatalf("期望构造时复制 data，got=%v", got)
	}
}

type testReason string

func (r testReason) ReasonCode() string { return string(r) }

func TestError_WithReason_与CodeOf(t *testing.T) {
	err := ErrNotFound.WithReason(testReason("MAP_NOT_FOUND"))
	if err.Reason() != "MAP_NOT_FOUND" {
		t.Fatalf("reason 不符合预期: %q", err.Reason())
	}
	if ErrNotFound.Reason() != "" {
		t.Fatalf("哨兵错误不应被污染")
	}
	wrapped := fmt.Errorf("outer: %w", err)
	if got := CodeOf(wrapped); got != CodeNotFound {
		t.Fatalf("CodeOf 期望 %s, got=%s", CodeNotFound, got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Fatalf("非 errx 错误 CodeOf 应为空, got=%s", got)
	}
}
