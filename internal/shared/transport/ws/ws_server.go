package ws

import (
	"HexRealm/modules/kit/logx"
	"fmt"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const outQueueSize = 1000

type WsServer struct {
	id       string
	conn     *websocket.Conn
	router   *Router
	outChan  chan *WsMsgResp
	property map[string]any
	sync.RWMutex
	done      chan struct{}
	closeOnce sync.Once
	log       logx.Logger
}

func NewWsServer(wsConn *websocket.Conn, l logx.Logger) *WsServer {
	id := uuid.NewString()
	s := &WsServer{
		id:       id,
		conn:     wsConn,
		outChan:  make(chan *WsMsgResp, outQueueSize),
		property: make(map[string]any),
		done:     make(chan struct{}),
		log:      l.With(zap.String(ConnKeyID, id)),
	}
	s.property[ConnKeyID] = id
	return s
}

func (s *WsServer) ID() string {
	return s.id
}

func (s *WsServer) Router(router *Router) {
	s.router = router
}

func (s *WsServer) SetProperty(key string, value any) {
	s.Lock()
	defer s.Unlock()
	s.property[key] = value
}

func (s *WsServer) GetProperty(key string) any {
	s.RLock()
	defer s.RUnlock()
	return s.property[key]
}

func (s *WsServer) RemoveProperty(key string) {
	s.Lock()
	defer s.Unlock()
	delete(s.property, key)
}

func (s *WsServer) Addr() string {
	return s.conn.RemoteAddr().String()
}

// Push 主动推送，不阻塞调用方：连接已关闭或发送队列已满时直接丢弃。
func (s *WsServer) Push(name string, data any) {
	msg := &WsMsgResp{
		Body: &RespBody{
			Seq:  0,
			Name: name,
			Msg:  data,
		},
	}
	select {
	case s.outChan <- msg:
	case <-s.done:
	default:
		s.log.Warn("ws_server push dropped, queue full", zap.String("name", name))
	}
}

func (s *WsServer) enqueue(msg *WsMsgResp) {
	select {
	case s.outChan <- msg:
	case <-s.done:
	}
}

func (s *WsServer) Run() {
	go s.readMsgLoop()
	go s.writeMsgLoop()
}

func (s *WsServer) readMsgLoop() {
	defer func() {
		if err := recover(); err != nil {
			e := fmt.Sprintf("%v", err)
			s.log.Error("ws readMsgLoop error", zap.String("err", e))
		}
		s.Close()
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Error("ws_server read msg", zap.Error(err))
			}
			return
		}

		reqBody := ReqBody{}
		if err := json.Unmarshal(data, &reqBody); err != nil {
			s.log.Warn("ws_server readMsgLoop unmarshal json error", zap.Error(err))
			continue
		}

		// req 和 resp 的 Seq 必须一致
		req := WsMsgReq{Body: &reqBody, Conn: s}
		resp := WsMsgResp{Body: &RespBody{Seq: reqBody.Seq, Name: reqBody.Name, Msg: reqBody.Msg}}
		if reqBody.Name == HeartbeatMsg {
			h := &Heartbeat{}
			if err := mapstructure.Decode(reqBody.Msg, h); err != nil {
				s.log.Debug("ws_server heartbeat decode", zap.Error(err))
			}
			h.STime = time.Now().UnixMilli()
			resp.Body.Msg = h
		} else {
			s.log.Debug("ws_server read msg", zap.String("name", reqBody.Name), zap.Int64("seq", reqBody.Seq))
			s.router.Dispatch(&req, &resp)
		}

		s.enqueue(&resp)
	}
}

func (s *WsServer) writeMsgLoop() {
	for {
		select {
		case msg, ok := <-s.outChan:
			if ok {
				s.write(msg)
			}
		case <-s.done:
			return
		}
	}
}

func (s *WsServer) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
		close(s.done)
	})
}

func (s *WsServer) Done() <-chan struct{} {
	return s.done
}

func (s *WsServer) write(msg *WsMsgResp) {
	payload, err := json.Marshal(msg.Body)
	if err != nil {
		s.log.Error("ws_server write marshal json error", zap.Error(err))
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		s.log.Error("ws_server write error", zap.Error(err))
	}
}

// handshake 告诉客户端本连接的 id，之后的推送都以它区分订阅者。
func (s *WsServer) handshake() {
	s.enqueue(&WsMsgResp{Body: &RespBody{Name: HandshakeMsg, Msg: &Handshake{ConnID: s.id}}})
}
