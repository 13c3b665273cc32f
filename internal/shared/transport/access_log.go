package transport

import (
	"HexRealm/modules/kit/errx"
	"HexRealm/modules/kit/logx"
	"HexRealm/modules/kit/tracex"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// AccessLog 是请求级日志上下文，HTTP 与 WS 共用。
type AccessLog struct {
	BizCode     BizCode
	ErrorReason string
	startTime   time.Time
	action      string
	protocol    string
	resolved    bool
}

type accessLogKey struct{}

// NewContext 创建带 AccessLog 的新 context（以 background 为父 context）。
func NewContext(protocol, action string) context.Context {
	return NewContextWithParent(context.Background(), protocol, action)
}

// NewContextWithParent 保留父 context 的取消/超时信号；父 context 已有 trace id 时沿用。
func NewContextWithParent(parent context.Context, protocol, action string) context.Context {
	ctx := parent
	if ctx == nil {
		ctx = context.Background()
	}
	if action == "" {
		action = "unknown"
	}
	if _, ok := tracex.TraceIDFrom(ctx); !ok {
		if traceID := tracex.NewTraceID(); traceID != "" {
			ctx = tracex.WithTraceID(ctx, traceID)
		}
	}
	ctx = tracex.WithSpanID(ctx, "editor."+protocol)

	al := &AccessLog{
		BizCode:   BizCode(SystemError),
		startTime: time.Now(),
		action:    action,
		protocol:  protocol,
	}
	return context.WithValue(ctx, accessLogKey{}, al)
}

func FromContext(ctx context.Context) *AccessLog {
	if ctx == nil {
		return nil
	}
	al, _ := ctx.Value(accessLogKey{}).(*AccessLog)
	return al
}

func SetBizCode(ctx context.Context, code BizCode) {
	if al := FromContext(ctx); al != nil {
		al.BizCode = code
		al.resolved = true
	}
}

// Resolved 表示业务码已由处理函数显式设置。
func (al *AccessLog) Resolved() bool {
	return al != nil && al.resolved
}

// SetErrorReason 设置 access 日志错误原因（失败场景）。
func SetErrorReason(ctx context.Context, reason string) {
	if reason == "" {
		return
	}
	if al := FromContext(ctx); al != nil {
		al.ErrorReason = reason
	}
}

// SetError 同时记录业务码与错误原因；原因优先取 errx 的 reason，其次取错误码。
func SetError(ctx context.Context, code BizCode, err error) {
	SetBizCode(ctx, code)
	if err == nil {
		return
	}
	var e *errx.Error
	if errors.As(err, &e) {
		if r := e.Reason(); r != "" {
			SetErrorReason(ctx, r)
			return
		}
		SetErrorReason(ctx, e.CodeText())
		return
	}
	SetErrorReason(ctx, err.Error())
}

// BizCodeOf 是通用映射：业务拒绝为 InvalidParam，资源不存在为 NotFound，其余为 SystemError。
func BizCodeOf(err error) BizCode {
	if err == nil {
		return BizCode(OK)
	}
	var e *errx.Error
	if !errors.As(err, &e) {
		return BizCode(SystemError)
	}
	switch {
	case e.Code() == errx.CodeNotFound:
		return BizCode(NotFound)
	case e.IsBiz():
		return BizCode(InvalidParam)
	default:
		return BizCode(SystemError)
	}
}

// WriteAccessLog 输出访问日志（建议在中间件 defer 调用）。
func WriteAccessLog(ctx context.Context, log logx.Logger) {
	al := FromContext(ctx)
	if al == nil || log == nil {
		return
	}

	fields := []zap.Field{
		zap.String("protocol", al.protocol),
		zap.Duration("latency", time.Since(al.startTime)),
	}
	if al.BizCode == BizCode(OK) {
		fields = append(fields, zap.String("result", "success"))
	} else {
		fields = append(fields, zap.String("result", "failure"))
		if al.ErrorReason != "" {
			fields = append(fields, zap.String("error_reason", al.ErrorReason))
		}
	}
	logx.ReportAccessWithLoggerContext(ctx, log, al.action, int(al.BizCode), fields...)
}
