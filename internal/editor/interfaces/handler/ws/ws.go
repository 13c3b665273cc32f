package ws

import (
	"HexRealm/internal/editor/interfaces/handler"
	"HexRealm/internal/editor/interfaces/handler/dto"
	"HexRealm/internal/shared/actor/messages"
	"HexRealm/internal/shared/transport"
	"HexRealm/internal/shared/transport/ws"
	"context"
	"sync"

	"github.com/asynkron/protoactor-go/eventstream"
	"go.uber.org/zap"
)

const watchKeyPrefix = "watch:"

type WsHandler struct {
	editor *handler.Editor
}

func NewWsHandler(e *handler.Editor) *WsHandler {
	return &WsHandler{editor: e}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	g := r.Group("map")
	g.Handle("watch", h.Watch)
	g.Handle("unwatch", h.Unwatch)
	g.Handle("paint", h.Paint)
	g.Handle("fill", h.Fill)
	g.Handle("tile", h.Tile)
}

// watch 是一条连接对一张地图的订阅，连接关闭或 unwatch 时释放。
type watch struct {
	sub  *eventstream.Subscription
	stop chan struct{}
	once sync.Once
}

func (w *watch) close() {
	w.once.Do(func() { close(w.stop) })
}

// Watch 订阅地图变化，之后的修改以 map.changed 推送到本连接。
func (h *WsHandler) Watch(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	var req dto.WatchReq
	if !h.bind(wsReq, wsResp, &req) {
		return
	}

	summary, err := h.editor.Runtime.Summary(ctx, req.MapId)
	if err != nil {
		h.error(ctx, wsResp, "map watch", err)
		return
	}

	conn := wsReq.Conn
	key := watchKeyPrefix + req.MapId
	if _, ok := conn.GetProperty(key).(*watch); !ok {
		h.subscribe(conn, key, req.MapId)
	}
	h.ok(wsResp, dto.WatchResp{MapId: req.MapId, Version: summary.Version})
}

func (h *WsHandler) subscribe(conn ws.WSConn, key, mapID string) {
	rt := h.editor.Runtime
	w := &watch{stop: make(chan struct{})}
	w.sub = rt.Watch(mapID, func(e *messages.MapChanged) {
		conn.Push(dto.PushMapChanged, dto.MapChanged(e))
		if e.Kind == messages.ChangeKindClosed {
			w.close()
		}
	})
	conn.SetProperty(key, w)

	go func() {
		select {
		case <-conn.Done():
		case <-w.stop:
		}
		rt.Unwatch(w.sub)
		if cur, ok := conn.GetProperty(key).(*watch); ok && cur == w {
			conn.RemoveProperty(key)
		}
		h.editor.Log().Debug("map watch released", zap.String("map_id", mapID))
	}()
}

func (h *WsHandler) Unwatch(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	var req dto.WatchReq
	if !h.bind(wsReq, wsResp, &req) {
		return
	}
	if w, ok := wsReq.Conn.GetProperty(watchKeyPrefix + req.MapId).(*watch); ok {
		w.close()
	}
	h.ok(wsResp, dto.WatchResp{MapId: req.MapId})
}

// Paint 指定 type 时直接改该格地形，否则按会话当前工具作用于该格。
func (h *WsHandler) Paint(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	var req dto.PaintReq
	if !h.bind(wsReq, wsResp, &req) {
		return
	}

	var (
		changed *messages.MHChanged
		err     error
	)
	if req.Type != "" {
		changed, err = h.editor.Runtime.SetTile(ctx, req.MapId, req.Column, req.Row, req.Type)
	} else {
		changed, err = h.editor.Runtime.ApplyTool(ctx, req.MapId, req.Column, req.Row)
	}
	if err != nil {
		h.error(ctx, wsResp, "map paint", err)
		return
	}
	h.ok(wsResp, dto.Changed(changed))
}

func (h *WsHandler) Fill(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	var req dto.PaintReq
	if !h.bind(wsReq, wsResp, &req) {
		return
	}
	changed, err := h.editor.Runtime.Fill(ctx, req.MapId, req.Column, req.Row, req.Type)
	if err != nil {
		h.error(ctx, wsResp, "map fill", err)
		return
	}
	h.ok(wsResp, dto.Changed(changed))
}

func (h *WsHandler) Tile(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	var req dto.TileReq
	if !h.bind(wsReq, wsResp, &req) {
		return
	}
	tile, found, err := h.editor.Runtime.GetTile(ctx, req.MapId, req.Column, req.Row)
	if err != nil {
		h.error(ctx, wsResp, "map tile", err)
		return
	}
	h.ok(wsResp, dto.TileResp{Tile: tile, Found: found})
}

func (h *WsHandler) bind(wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp, dst any) bool {
	if wsReq == nil || wsReq.Body == nil || wsReq.Conn == nil || wsResp == nil || wsResp.Body == nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return false
	}
	if err := ws.BindJSON(wsReq, dst); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return false
	}
	return true
}

func (h *WsHandler) ok(resp *ws.WsMsgResp, data any) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = data
}

func (h *WsHandler) fail(resp *ws.WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	if msg != "" {
		resp.Body.Msg = msg
	}
}

func (h *WsHandler) error(ctx context.Context, resp *ws.WsMsgResp, action string, err error) {
	code, msg := h.editor.HandleError(ctx, action, err)
	h.fail(resp, code, msg)
}
