package ws

import (
	"HexRealm/modules/kit/logx"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type Server struct {
	router   *Router
	log      logx.Logger
	upgrader websocket.Upgrader
}

func NewServer(r *Router, l logx.Logger) *Server {
	if l == nil {
		l = logx.Nop()
	}
	return &Server{
		router: r,
		log:    l,
		upgrader: websocket.Upgrader{
			// 编辑器前端与后端可能不同源
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	wsConn, err := s.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Error("websocket upgrade error", zap.Error(err))
		return
	}

	wsServer := NewWsServer(wsConn, s.log)
	s.log.Info("websocket upgrade success",
		zap.String("addr", wsServer.Addr()),
		zap.String(ConnKeyID, wsServer.ID()),
	)
	wsServer.Router(s.router)
	wsServer.Run()
	wsServer.handshake()
}
