package logx

import (
	"context"
	"errors"
	"testing"

	"HexRealm/modules/kit/errx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuildErrorLog_能提取语义与栈(t *testing.T) {
	cause := errors.New("server selection timeout")
	e := errx.NewSys("SYS_INTERNAL", "服务器内部错误").
		WithData("preset", "island").
		WithCause(cause)

	meta := BuildErrorLog(e)
	if meta.Error == "" || meta.Code == "" || meta.Msg == "" {
		t.Fatalf("期望 Error/Code/Msg 非空, meta=%+v", meta)
	}
	if meta.Data == nil || meta.Data["preset"] != "island" {
		t.Fatalf("期望 meta.Data 包含 preset=island, got=%v", meta.Data)
	}
	if len(meta.CauseChain) == 0 {
		t.Fatalf("期望 meta.CauseChain 非空")
	}
	if meta.Origin == "" || meta.Stack == "" {
		t.Fatalf("期望 meta.Origin/meta.Stack 非空 origin=%q stack=%q", meta.Origin, meta.Stack)
	}
}

func TestReportError_业务错误走INFO_系统错误走ERROR(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	ReportError(context.Background(), l, "import map", errx.NewBiz("TILEMAP_MALFORMED", "地图数据格式错误"))
	ReportError(context.Background(), l, "load preset", errx.ErrUnavailable.WithCause(errors.New("dial tcp")))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("期望 2 条日志, got=%d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Fatalf("业务错误应为 INFO, got=%v", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Fatalf("系统错误应为 ERROR, got=%v", entries[1].Level)
	}
}

func TestReportError_业务错误带上map_id与上下文(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLogger(zap.New(core))

	err := errx.NewBiz("EDITOR_UNKNOWN_PLAYER", "玩家不存在").
		WithData("map_id", "m-1").
		WithData("player", 9)
	ReportError(context.Background(), l, "claim", err)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("期望 1 条日志, got=%d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["map_id"] != "m-1" {
		t.Fatalf("期望 map_id=m-1, got=%v", fields["map_id"])
	}
	data, ok := fields["error_data"].(map[string]any)
	if !ok || data["player"] != 9 {
		t.Fatalf("期望 error_data 包含 player, got=%#v", fields["error_data"])
	}
	if _, dup := data["map_id"]; dup {
		t.Fatalf("map_id 不应重复出现在 error_data 中")
	}
}

func TestBuildErrorLog_跳过runtime帧(t *testing.T) {
	meta := BuildErrorLog(errx.ErrInternal.WithCause(errors.New("boom")))
	if meta.Origin == "" {
		t.Fatalf("期望 origin 非空")
	}
	for _, p := range skippedFramePrefixes {
		if len(meta.Origin) >= len(p) && meta.Origin[:len(p)] == p {
			t.Fatalf("origin 不应是 %s 帧: %s", p, meta.Origin)
		}
	}
}
