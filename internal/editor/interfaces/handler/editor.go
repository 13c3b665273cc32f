package handler

import (
	editoractor "HexRealm/internal/editor/actor"
	"HexRealm/internal/shared/transport"
	"HexRealm/modules/kit/errx"
	"HexRealm/modules/kit/logx"
	"context"
	"errors"
)

const busyMsg = "系统繁忙，请稍后重试"

// Editor 是 HTTP 与 WS 处理函数共用的依赖。
type Editor struct {
	Runtime *editoractor.Runtime
	log     logx.Logger
}

func NewEditor(rt *editoractor.Runtime, log logx.Logger) *Editor {
	if log == nil {
		log = logx.Nop()
	}
	return &Editor{Runtime: rt, log: log}
}

func (e *Editor) Log() logx.Logger {
	return e.log
}

// HandleError 记录业务码与错误日志，返回给客户端的 code 与提示。
// 每个请求只调用一次。
func (e *Editor) HandleError(ctx context.Context, action string, err error) (int, string) {
	code := editoractor.CodeFromError(err)
	transport.SetError(ctx, transport.BizCode(code), err)
	logx.ReportError(ctx, e.log, action, err)

	var xe *errx.Error
	if code != transport.SystemError && errors.As(err, &xe) && xe.IsBiz() {
		return code, xe.Msg()
	}
	return code, busyMsg
}
