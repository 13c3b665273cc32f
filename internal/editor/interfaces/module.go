package interfaces

import (
	editoractor "HexRealm/internal/editor/actor"
	"HexRealm/internal/editor/interfaces/handler"
	"HexRealm/internal/editor/interfaces/handler/http"
	ws2 "HexRealm/internal/editor/interfaces/handler/ws"
	transporthttp "HexRealm/internal/shared/transport/http"
	"HexRealm/internal/shared/transport/ws"
	"HexRealm/modules/kit/logx"
)

// Module 把编辑器的 HTTP 与 WS 路由挂到各自的服务器上。
type Module struct {
	wsHandler   *ws2.WsHandler
	httpHandler *http.HttpHandler
}

func New(rt *editoractor.Runtime, log logx.Logger) *Module {
	editor := handler.NewEditor(rt, log)
	return &Module{
		wsHandler:   ws2.NewWsHandler(editor),
		httpHandler: http.NewHttpHandler(editor),
	}
}

func (m *Module) Ws() ws.Registrar {
	return m.wsHandler
}

func (m *Module) Http() transporthttp.Registrar {
	return m.httpHandler
}
