package logx

import (
	"context"

	"go.uber.org/zap"
)

// Logger 是各包共用的最小日志接口：结构化字段 + ctx 透传 trace/span。
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	WithContext(ctx context.Context) Logger
	With(fields ...zap.Field) Logger
}

// Nop 返回丢弃全部输出的 Logger，测试和未初始化场景使用。
func Nop() Logger {
	return NewZapLogger(nil)
}

// ForMap 给日志挂上 map_id，地图 actor 和按地图处理的请求共用。
func ForMap(l Logger, mapID string) Logger {
	if l == nil {
		l = Nop()
	}
	if mapID == "" {
		return l
	}
	return l.With(zap.String("map_id", mapID))
}
